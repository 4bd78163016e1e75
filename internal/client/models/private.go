package models

import (
	"encoding/json"
	"time"
)

type ItemStatus string

const (
	ItemActive   ItemStatus = "ACTIVE"
	ItemReturned ItemStatus = "RETURNED"
)

// DefaultReminderDays is the backend's reminder interval for a new loan.
const DefaultReminderDays = 3

// ItemLoan is a thing lent to a connected user.
type ItemLoan struct {
	ID                   int64      `json:"id,omitempty"`
	Borrower             int64      `json:"borrower" validate:"required,gt=0"`
	ItemName             string     `json:"item_name" validate:"required,max=255"`
	ItemDescription      string     `json:"item_description,omitempty"`
	LentDate             string     `json:"lent_date" validate:"required,datetime=2006-01-02"`
	ExpectedReturnDate   string     `json:"expected_return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status               ItemStatus `json:"status,omitempty"`
	ReminderEnabled      bool       `json:"reminder_enabled"`
	ReminderIntervalDays int        `json:"reminder_interval_days,omitempty" validate:"gte=0"`
	CreatedAt            time.Time  `json:"created_at,omitzero"`
}

// ConnectedUser is the other side of a connection.
type ConnectedUser struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	InviteCode string `json:"invite_code,omitempty"`
}

// Connection links the current user to another private user. The backend
// has answered with the user nested under connected_user, as flat
// connected_user_* fields and as a bare id; UnmarshalJSON accepts all of
// them.
type Connection struct {
	ID   int64
	User ConnectedUser
}

func (c *Connection) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID                 int64           `json:"id"`
		Email              string          `json:"email"`
		ConnectedUser      json.RawMessage `json:"connected_user"`
		ConnectedUserID    int64           `json:"connected_user_id"`
		ConnectedUserEmail string          `json:"connected_user_email"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var nested ConnectedUser
	if len(raw.ConnectedUser) > 0 && raw.ConnectedUser[0] == '{' {
		if err := json.Unmarshal(raw.ConnectedUser, &nested); err != nil {
			return err
		}
	} else if len(raw.ConnectedUser) > 0 && string(raw.ConnectedUser) != "null" {
		if err := json.Unmarshal(raw.ConnectedUser, &nested.ID); err != nil {
			return err
		}
	}

	c.ID = raw.ID
	c.User = nested
	if raw.ConnectedUserID != 0 {
		c.User.ID = raw.ConnectedUserID
	}
	if raw.ConnectedUserEmail != "" {
		c.User.Email = raw.ConnectedUserEmail
	}
	if c.User.ID == 0 {
		c.User.ID = raw.ID
	}
	if c.User.Email == "" {
		c.User.Email = raw.Email
	}
	return nil
}

type GroupRole string

const (
	GroupAdmin  GroupRole = "ADMIN"
	GroupMember GroupRole = "MEMBER"
)

// Group is a private group as listed for one of its members.
type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required,max=255"`
	MemberCount int       `json:"member_count"`
	Role        GroupRole `json:"role"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}
