package caret

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/caret-so/client-go/internal/api"
	"github.com/caret-so/client-go/internal/apierrors"
)

// WebhookEventType identifies the event that triggers a webhook delivery.
type WebhookEventType string

const (
	// WebhookEventNoteCreated fires when a new note is created.
	WebhookEventNoteCreated WebhookEventType = "note.created"
	// WebhookEventNoteUpdated fires when a note is updated.
	WebhookEventNoteUpdated WebhookEventType = "note.updated"
	// WebhookEventNoteDeleted fires when a note is deleted.
	WebhookEventNoteDeleted WebhookEventType = "note.deleted"
	// WebhookEventTranscriptReady fires when a note's transcript finishes processing.
	WebhookEventTranscriptReady WebhookEventType = "transcript.ready"
)

// Webhook is a registered webhook subscription.
type Webhook struct {
	ID        string             `json:"id"`
	URL       string             `json:"url"`
	Events    []WebhookEventType `json:"events"`
	Secret    string             `json:"secret,omitempty"`
	Enabled   bool               `json:"enabled"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// WebhookList is the response envelope for listing webhooks.
type WebhookList struct {
	Webhooks []*Webhook `json:"webhooks"`
	Total    int        `json:"total"`
}

// TestWebhookResult is the outcome of a test delivery.
type TestWebhookResult struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error,omitempty"`
}

// RotateSecretResult carries the new signing secret after a rotation.
type RotateSecretResult struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
}

// WebhooksService manages webhook subscriptions.
type WebhooksService struct {
	api *api.Client
}

// List returns all webhook subscriptions.
func (s *WebhooksService) List(ctx context.Context) (*WebhookList, error) {
	var result WebhookList
	if err := s.api.Get(ctx, "/webhooks", nil, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWebhook)
	}
	return &result, nil
}

// CreateWebhookRequest is the payload for registering a webhook.
type CreateWebhookRequest struct {
	URL    string             `json:"url"`
	Events []WebhookEventType `json:"events"`
}

// Create registers a new webhook. The response carries the signing secret;
// it is returned only once, at creation and rotation.
func (s *WebhooksService) Create(ctx context.Context, req *CreateWebhookRequest) (*Webhook, error) {
	var result Webhook
	if err := s.api.Post(ctx, "/webhooks", &api.RequestOptions{Body: req}, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWebhook)
	}
	return &result, nil
}

// Get returns a webhook by ID.
func (s *WebhooksService) Get(ctx context.Context, webhookID string) (*Webhook, error) {
	var result Webhook
	path := fmt.Sprintf("/webhooks/%s", url.PathEscape(webhookID))
	if err := s.api.Get(ctx, path, nil, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWebhook)
	}
	return &result, nil
}

// UpdateWebhookRequest is the payload for updating a webhook. Nil fields
// are left unchanged.
type UpdateWebhookRequest struct {
	URL     *string            `json:"url,omitempty"`
	Events  []WebhookEventType `json:"events,omitempty"`
	Enabled *bool              `json:"enabled,omitempty"`
}

// Update applies a partial update to a webhook.
func (s *WebhooksService) Update(ctx context.Context, webhookID string, req *UpdateWebhookRequest) (*Webhook, error) {
	var result Webhook
	path := fmt.Sprintf("/webhooks/%s", url.PathEscape(webhookID))
	if err := s.api.Patch(ctx, path, &api.RequestOptions{Body: req}, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWebhook)
	}
	return &result, nil
}

// Delete removes a webhook subscription.
func (s *WebhooksService) Delete(ctx context.Context, webhookID string) error {
	path := fmt.Sprintf("/webhooks/%s", url.PathEscape(webhookID))
	return apierrors.WithResource(s.api.Delete(ctx, path, nil, nil), apierrors.ResourceWebhook)
}

// Test sends a signed test delivery to the webhook's endpoint.
func (s *WebhooksService) Test(ctx context.Context, webhookID string) (*TestWebhookResult, error) {
	var result TestWebhookResult
	path := fmt.Sprintf("/webhooks/%s/test", url.PathEscape(webhookID))
	if err := s.api.Post(ctx, path, nil, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWebhook)
	}
	return &result, nil
}

// RotateSecret replaces the webhook's signing secret and returns the new one.
func (s *WebhooksService) RotateSecret(ctx context.Context, webhookID string) (*RotateSecretResult, error) {
	var result RotateSecretResult
	path := fmt.Sprintf("/webhooks/%s/rotate-secret", url.PathEscape(webhookID))
	if err := s.api.Post(ctx, path, nil, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWebhook)
	}
	return &result, nil
}
