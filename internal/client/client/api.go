package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.Tokens, error) {
	var out models.Tokens
	cl, err := jsonCall(http.MethodPost, "auth/login/", creds)
	if err != nil {
		return out, err
	}
	err = c.doJSON(ctx, cl, &out)
	return out, err
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var out models.RegisterResponse
	cl, err := jsonCall(http.MethodPost, "auth/register/", req)
	if err != nil {
		return out, err
	}
	err = c.doJSON(ctx, cl, &out)
	return out, err
}

func (c *HTTPClient) Me(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: "auth/me/"}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) BusinessStatus(ctx context.Context) (*models.BusinessStatusInfo, error) {
	var s models.BusinessStatusInfo
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: "business/status/"}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) SubmitPayment(ctx context.Context, p models.PaymentSubmission) error {
	cl, err := multipartCall("business/payment/submit/", p.Fields(),
		map[string]*models.Attachment{"screenshot": p.Screenshot})
	if err != nil {
		return fmt.Errorf("build payment form: %w", err)
	}
	return c.doJSON(ctx, cl, nil)
}

func (c *HTTPClient) SubmitKYC(ctx context.Context, k models.KYCSubmission) error {
	cl, err := multipartCall("business/kyc/submit/", k.Fields(),
		map[string]*models.Attachment{"identity_document": k.IdentityDoc})
	if err != nil {
		return fmt.Errorf("build kyc form: %w", err)
	}
	return c.doJSON(ctx, cl, nil)
}

func (c *HTTPClient) DirectThread(ctx context.Context, userID int64) (*models.ChatThread, error) {
	cl, err := jsonCall(http.MethodPost, "private/chat/direct/", map[string]int64{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var t models.ChatThread
	if err := c.doJSON(ctx, cl, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) ThreadMessages(ctx context.Context, threadID int64) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	path := fmt.Sprintf("private/chat/threads/%d/messages/", threadID)
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: path}, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *HTTPClient) SendMessage(ctx context.Context, threadID int64, text string) (*models.ChatMessage, error) {
	path := fmt.Sprintf("private/chat/threads/%d/messages/", threadID)
	cl, err := jsonCall(http.MethodPost, path, map[string]string{"message": text})
	if err != nil {
		return nil, err
	}
	var m models.ChatMessage
	if err := c.doJSON(ctx, cl, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
