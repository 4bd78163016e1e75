package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/udharoguru/internal/client/models"
)

func (c *HTTPClient) LedgerEntries(ctx context.Context) ([]models.LedgerEntry, error) {
	var out []models.LedgerEntry
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: "business/ledger/"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) AddLedgerEntry(ctx context.Context, e models.LedgerEntryRequest) (*models.LedgerEntry, error) {
	cl, err := jsonCall(http.MethodPost, "business/ledger/add/", e)
	if err != nil {
		return nil, err
	}
	var out models.LedgerEntry
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) SettleLedgerEntry(ctx context.Context, id int64) (*models.LedgerEntry, error) {
	var out models.LedgerEntry
	if err := c.doJSON(ctx, &call{method: http.MethodPost, path: fmt.Sprintf("business/ledger/%d/settle/", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CustomerBalances(ctx context.Context) ([]models.CustomerBalance, error) {
	var out []models.CustomerBalance
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: "business/ledger/customers/"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CustomerLedger lists the entries recorded against a customer name.
func (c *HTTPClient) CustomerLedger(ctx context.Context, name string) ([]models.LedgerEntry, error) {
	var out []models.LedgerEntry
	path := "business/ledger/customers/" + url.PathEscape(name) + "/"
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: path}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) OCRDocuments(ctx context.Context) ([]models.OCRDocument, error) {
	var out []models.OCRDocument
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: "business/ocr/"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) UploadReceipt(ctx context.Context, image *models.Attachment) (*models.OCRDocument, error) {
	cl, err := multipartCall("business/ocr/upload/", nil, map[string]*models.Attachment{"image": image})
	if err != nil {
		return nil, fmt.Errorf("build receipt form: %w", err)
	}
	var out models.OCRDocument
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) OCRDocument(ctx context.Context, id int64) (*models.OCRDocument, error) {
	var out models.OCRDocument
	if err := c.doJSON(ctx, &call{method: http.MethodGet, path: fmt.Sprintf("business/ocr/%d/", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ConfirmOCR(ctx context.Context, id int64, conf models.OCRConfirmation) (*models.OCRDocument, error) {
	cl, err := jsonCall(http.MethodPost, fmt.Sprintf("business/ocr/%d/confirm/", id), conf)
	if err != nil {
		return nil, err
	}
	var out models.OCRDocument
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
