package servicesRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cooptaxi/models"

	"github.com/go-resty/resty/v2"
)

// WebhookBackend is the thin client for the optional webhook-based remote
// store. The gateway only exposes list and create; there is no delete or
// update endpoint server-side.
type WebhookBackend struct {
	client   *resty.Client
	baseURL  func() string
	ownerKey string
}

// NewWebhookBackend returns a Backend against the webhook gateway. baseURL is
// read on every call so a mid-session settings change takes effect
// immediately; ownerKey scopes list calls to one driver's record set.
func NewWebhookBackend(baseURL func() string, ownerKey string) *WebhookBackend {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetHeader("Content-Type", "application/json")
	return &WebhookBackend{client: client, baseURL: baseURL, ownerKey: ownerKey}
}

type listResponse struct {
	Success  bool                   `json:"success"`
	Services []models.ServiceRecord `json:"services"`
}

type createResponse struct {
	Success bool                  `json:"success"`
	Service *models.ServiceRecord `json:"service"`
}

// List fetches the driver's records from the gateway's list endpoint.
func (b *WebhookBackend) List(ctx context.Context) ([]models.ServiceRecord, error) {
	url := fmt.Sprintf("%s/api/services/list/%s", strings.TrimRight(b.baseURL(), "/"), b.ownerKey)
	resp, err := b.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("webhook list: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("webhook list: status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	var out listResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("webhook list: malformed response: %w", err)
	}
	if !out.Success || out.Services == nil {
		return nil, fmt.Errorf("webhook list: malformed response: %s", strings.TrimSpace(resp.String()))
	}
	return out.Services, nil
}

// Create posts the draft to the gateway and returns the server-assigned
// record.
func (b *WebhookBackend) Create(ctx context.Context, draft models.ServiceDraft) (models.ServiceRecord, error) {
	url := strings.TrimRight(b.baseURL(), "/") + "/api/services/create"
	resp, err := b.client.R().SetContext(ctx).SetBody(draft).Post(url)
	if err != nil {
		return models.ServiceRecord{}, fmt.Errorf("webhook create: %w", err)
	}
	if !resp.IsSuccess() {
		return models.ServiceRecord{}, fmt.Errorf("webhook create: status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	var out createResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ServiceRecord{}, fmt.Errorf("webhook create: malformed response: %w", err)
	}
	if !out.Success || out.Service == nil {
		return models.ServiceRecord{}, fmt.Errorf("webhook create: malformed response: %s", strings.TrimSpace(resp.String()))
	}
	return *out.Service, nil
}
