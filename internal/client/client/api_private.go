package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

func (c *HTTPClient) PrivateTransactions(ctx context.Context) ([]models.PrivateTransaction, error) {
	var out []models.PrivateTransaction
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: "private/transactions/"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AddPrivateTransaction(ctx context.Context, t models.PrivateTransaction) (*models.PrivateTransaction, error) {
	cl, err := jsonCall(http.MethodPost, "private/transactions/", t)
	if err != nil {
		return nil, err
	}
	var out models.PrivateTransaction
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeletePrivateTransaction(ctx context.Context, id int64) error {
	return c.doJSON(ctx, &call{method: http.MethodDelete, path: fmt.Sprintf("private/transactions/%d/", id)}, nil)
}

func (c *HTTPClient) PrivateSummary(ctx context.Context) (*models.PrivateSummary, error) {
	var out models.PrivateSummary
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: "private/transactions/summary/"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ItemLoans(ctx context.Context) ([]models.ItemLoan, error) {
	var out []models.ItemLoan
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: "private/items/"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) LendItem(ctx context.Context, item models.ItemLoan) (*models.ItemLoan, error) {
	cl, err := jsonCall(http.MethodPost, "private/items/", item)
	if err != nil {
		return nil, err
	}
	var out models.ItemLoan
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ReturnItem(ctx context.Context, id int64) (*models.ItemLoan, error) {
	cl, err := jsonCall(http.MethodPost, fmt.Sprintf("private/items/%d/return/", id),
		map[string]models.ItemStatus{"status": models.ItemReturned})
	if err != nil {
		return nil, err
	}
	var out models.ItemLoan
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Connections(ctx context.Context) ([]models.Connection, error) {
	var out []models.Connection
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: "private/connections/"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Connect(ctx context.Context, inviteCode string) (*models.Connection, error) {
	cl, err := jsonCall(http.MethodPost, "private/connect/", map[string]string{"invite_code": inviteCode})
	if err != nil {
		return nil, err
	}
	var out models.Connection
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Groups(ctx context.Context) ([]models.Group, error) {
	var out []models.Group
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: "private/groups/"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	cl, err := jsonCall(http.MethodPost, "private/groups/", map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	var out models.Group
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) AddGroupMember(ctx context.Context, groupID, userID int64) error {
	cl, err := jsonCall(http.MethodPost, fmt.Sprintf("private/groups/%d/add-member/", groupID),
		map[string]int64{"user_id": userID})
	if err != nil {
		return err
	}
	return c.doJSON(ctx, cl, nil)
}

func (c *HTTPClient) GroupThread(ctx context.Context, groupID int64) (*models.ChatThread, error) {
	var t models.ChatThread
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: fmt.Sprintf("private/chat/group/%d/", groupID)}, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
