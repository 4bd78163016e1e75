package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivate_AddTransaction(t *testing.T) {
	t.Run("normalizes and defaults the date", func(t *testing.T) {
		api := &fakeMoneyAPI{}
		p := NewPrivateService(api, nil)

		got, err := p.AddTransaction(context.Background(), models.PrivateTransaction{
			PersonName:      "  Hari  ",
			Amount:          decimal.RequireFromString("1500.50"),
			TransactionType: "lent",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), got.ID)
		assert.Equal(t, "Hari", api.LastTxn.PersonName)
		assert.Equal(t, models.TxnLent, api.LastTxn.TransactionType)
		assert.Equal(t, models.Today(), api.LastTxn.TransactionDate)
	})

	t.Run("non-positive amount rejected locally", func(t *testing.T) {
		api := &fakeMoneyAPI{}
		p := NewPrivateService(api, nil)

		_, err := p.AddTransaction(context.Background(), models.PrivateTransaction{
			PersonName: "Hari", Amount: decimal.Zero, TransactionType: models.TxnBorrowed,
		})
		var se *Error
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "amount must be greater than zero", se.Message)
		assert.Contains(t, se.Data, "amount")
		assert.Equal(t, 0, api.Calls)
	})

	t.Run("business types are not personal records", func(t *testing.T) {
		api := &fakeMoneyAPI{}
		_, err := NewPrivateService(api, nil).AddTransaction(context.Background(), models.PrivateTransaction{
			PersonName: "Hari", Amount: decimal.NewFromInt(5), TransactionType: models.TxnCredit,
		})
		require.Error(t, err)
		assert.Equal(t, 0, api.Calls)
	})

	t.Run("backend field error surfaces", func(t *testing.T) {
		api := &fakeMoneyAPI{Err: apiErr(http.StatusBadRequest, map[string]any{
			"amount": []any{"Amount must be greater than zero."},
		})}
		_, err := NewPrivateService(api, nil).AddTransaction(context.Background(), models.PrivateTransaction{
			PersonName: "Hari", Amount: decimal.NewFromInt(5), TransactionType: models.TxnLent,
		})
		assert.EqualError(t, err, "Amount must be greater than zero.")
	})
}

func TestPrivate_ListsAndSummary(t *testing.T) {
	api := &fakeMoneyAPI{
		Transactions: []models.PrivateTransaction{{ID: 1, PersonName: "Hari"}},
		Summary: &models.PrivateSummary{
			TotalReceivable: decimal.NewFromInt(500),
			TotalPayable:    decimal.NewFromInt(200),
			NetBalance:      decimal.NewFromInt(300),
		},
	}
	p := NewPrivateService(api, nil)

	txns, err := p.Transactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, txns, 1)

	sum, err := p.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, sum.NetBalance.Equal(decimal.NewFromInt(300)))

	require.NoError(t, p.DeleteTransaction(context.Background(), 1))
	assert.Equal(t, int64(1), api.LastID)

	api.Err = apiErr(http.StatusForbidden, map[string]any{"detail": "Private account required."})
	_, err = p.Summary(context.Background())
	assert.EqualError(t, err, "Private account required.")
}

func TestPrivate_LendAndReturnItem(t *testing.T) {
	api := &fakeMoneyAPI{}
	p := NewPrivateService(api, nil)

	item, err := p.LendItem(context.Background(), models.ItemLoan{Borrower: 5, ItemName: " Umbrella ", ReminderEnabled: true})
	require.NoError(t, err)
	assert.Equal(t, models.ItemActive, item.Status)
	assert.Equal(t, "Umbrella", api.LastItem.ItemName)
	assert.Equal(t, models.DefaultReminderDays, api.LastItem.ReminderIntervalDays)
	assert.Equal(t, models.Today(), api.LastItem.LentDate)

	_, err = p.LendItem(context.Background(), models.ItemLoan{ItemName: "Drill"})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Data, "borrower")

	back, err := p.ReturnItem(context.Background(), 21)
	require.NoError(t, err)
	assert.Equal(t, models.ItemReturned, back.Status)

	api.Err = apiErr(http.StatusBadRequest, map[string]any{"non_field_errors": []any{"Item is not active."}})
	_, err = p.ReturnItem(context.Background(), 21)
	assert.EqualError(t, err, "Item is not active.")
}

func TestPrivate_Connect(t *testing.T) {
	api := &fakeMoneyAPI{}
	p := NewPrivateService(api, nil)

	conn, err := p.Connect(context.Background(), "  ab12cd ")
	require.NoError(t, err)
	assert.Equal(t, "AB12CD", api.LastInvite)
	assert.Equal(t, "hari@example.com", conn.User.Email)

	_, err = p.Connect(context.Background(), "   ")
	assert.EqualError(t, err, "Invite code is required.")
	assert.Equal(t, 1, api.Calls)

	api.Err = apiErr(http.StatusBadRequest, map[string]any{"invite_code": []any{"Invalid invite code."}})
	_, err = p.Connect(context.Background(), "ZZZ")
	assert.EqualError(t, err, "Invalid invite code.")
}

func TestPrivate_Groups(t *testing.T) {
	api := &fakeMoneyAPI{Groups: []models.Group{{ID: 3, Name: "Trek", Role: models.GroupAdmin}}}
	p := NewPrivateService(api, nil)

	groups, err := p.Groups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Trek", groups[0].Name)

	g, err := p.CreateGroup(context.Background(), " Flatmates ")
	require.NoError(t, err)
	assert.Equal(t, "Flatmates", api.LastGroupName)
	assert.Equal(t, models.GroupAdmin, g.Role)

	_, err = p.CreateGroup(context.Background(), "")
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "name is required", se.Message)

	require.NoError(t, p.AddGroupMember(context.Background(), 3, 5))
	assert.Equal(t, [2]int64{3, 5}, api.LastMember)

	api.Err = apiErr(http.StatusForbidden, map[string]any{"detail": "Admin only."})
	err = p.AddGroupMember(context.Background(), 3, 6)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "Admin only.", se.Message)
	assert.Equal(t, http.StatusForbidden, se.Status)
}
