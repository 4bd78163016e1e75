package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/dmitrijs2005/udharoguru/internal/logging"
	"github.com/dmitrijs2005/udharoguru/internal/validator"
)

// PrivateAPI is the part of the backend behind the personal dashboard.
type PrivateAPI interface {
	PrivateTransactions(ctx context.Context) ([]models.PrivateTransaction, error)
	AddPrivateTransaction(ctx context.Context, t models.PrivateTransaction) (*models.PrivateTransaction, error)
	DeletePrivateTransaction(ctx context.Context, id int64) error
	PrivateSummary(ctx context.Context) (*models.PrivateSummary, error)
	ItemLoans(ctx context.Context) ([]models.ItemLoan, error)
	LendItem(ctx context.Context, item models.ItemLoan) (*models.ItemLoan, error)
	ReturnItem(ctx context.Context, id int64) (*models.ItemLoan, error)
	Connections(ctx context.Context) ([]models.Connection, error)
	Connect(ctx context.Context, inviteCode string) (*models.Connection, error)
	Groups(ctx context.Context) ([]models.Group, error)
	CreateGroup(ctx context.Context, name string) (*models.Group, error)
	AddGroupMember(ctx context.Context, groupID, userID int64) error
}

// PrivateService covers money records, lent items, connections and groups
// of a personal account.
type PrivateService struct {
	api      PrivateAPI
	validate *validator.Validator
	log      logging.Logger
}

func NewPrivateService(api PrivateAPI, log logging.Logger) *PrivateService {
	if log == nil {
		log = logging.Nop()
	}
	return &PrivateService{
		api:      api,
		validate: validator.New(),
		log:      log.With("component", "private"),
	}
}

func (p *PrivateService) Transactions(ctx context.Context) ([]models.PrivateTransaction, error) {
	out, err := p.api.PrivateTransactions(ctx)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load transactions.")
	}
	return out, nil
}

// AddTransaction records money lent to or borrowed from someone. A missing
// date means today.
func (p *PrivateService) AddTransaction(ctx context.Context, t models.PrivateTransaction) (*models.PrivateTransaction, error) {
	t.PersonName = strings.TrimSpace(t.PersonName)
	t.TransactionType = models.TransactionType(strings.ToUpper(string(t.TransactionType)))
	if t.TransactionDate == "" {
		t.TransactionDate = models.Today()
	}
	if err := p.validate.Validate(t); err != nil {
		return nil, NormalizeError(err, "Unable to save transaction.")
	}

	out, err := p.api.AddPrivateTransaction(ctx, t)
	if err != nil {
		return nil, NormalizeError(err, "Unable to save transaction.")
	}
	p.log.Info(ctx, "transaction recorded", "id", out.ID, "type", out.TransactionType)
	return out, nil
}

func (p *PrivateService) DeleteTransaction(ctx context.Context, id int64) error {
	if err := p.api.DeletePrivateTransaction(ctx, id); err != nil {
		return NormalizeError(err, "Unable to delete transaction.")
	}
	return nil
}

func (p *PrivateService) Summary(ctx context.Context) (*models.PrivateSummary, error) {
	out, err := p.api.PrivateSummary(ctx)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load summary.")
	}
	return out, nil
}

func (p *PrivateService) Items(ctx context.Context) ([]models.ItemLoan, error) {
	out, err := p.api.ItemLoans(ctx)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load items.")
	}
	return out, nil
}

// LendItem records an item lent to a connected user. Reminders default to
// the backend's interval.
func (p *PrivateService) LendItem(ctx context.Context, item models.ItemLoan) (*models.ItemLoan, error) {
	item.ItemName = strings.TrimSpace(item.ItemName)
	if item.LentDate == "" {
		item.LentDate = models.Today()
	}
	if item.ReminderEnabled && item.ReminderIntervalDays == 0 {
		item.ReminderIntervalDays = models.DefaultReminderDays
	}
	if err := p.validate.Validate(item); err != nil {
		return nil, NormalizeError(err, "Unable to lend item.")
	}

	out, err := p.api.LendItem(ctx, item)
	if err != nil {
		return nil, NormalizeError(err, "Unable to lend item.")
	}
	p.log.Info(ctx, "item lent", "id", out.ID, "borrower", out.Borrower)
	return out, nil
}

func (p *PrivateService) ReturnItem(ctx context.Context, id int64) (*models.ItemLoan, error) {
	out, err := p.api.ReturnItem(ctx, id)
	if err != nil {
		return nil, NormalizeError(err, "Unable to mark item returned.")
	}
	return out, nil
}

func (p *PrivateService) Connections(ctx context.Context) ([]models.Connection, error) {
	out, err := p.api.Connections(ctx)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load connections.")
	}
	return out, nil
}

// Connect links the user to the owner of an invite code.
func (p *PrivateService) Connect(ctx context.Context, inviteCode string) (*models.Connection, error) {
	code := strings.ToUpper(strings.TrimSpace(inviteCode))
	if code == "" {
		return nil, errorf("Invite code is required.")
	}
	out, err := p.api.Connect(ctx, code)
	if err != nil {
		return nil, NormalizeError(err, "Unable to connect.")
	}
	p.log.Info(ctx, "connected", "user_id", out.User.ID)
	return out, nil
}

func (p *PrivateService) Groups(ctx context.Context) ([]models.Group, error) {
	out, err := p.api.Groups(ctx)
	if err != nil {
		return nil, NormalizeError(err, "Unable to load groups.")
	}
	return out, nil
}

func (p *PrivateService) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	g := models.Group{Name: strings.TrimSpace(name)}
	if err := p.validate.Validate(g); err != nil {
		return nil, NormalizeError(err, "Unable to create group.")
	}
	out, err := p.api.CreateGroup(ctx, g.Name)
	if err != nil {
		return nil, NormalizeError(err, "Unable to create group.")
	}
	return out, nil
}

// AddGroupMember adds a connected user; only group admins may.
func (p *PrivateService) AddGroupMember(ctx context.Context, groupID, userID int64) error {
	if userID <= 0 {
		return errorf("Invalid user id %d.", userID)
	}
	if err := p.api.AddGroupMember(ctx, groupID, userID); err != nil {
		return NormalizeError(err, "Unable to add member.")
	}
	return nil
}
