package caret

import (
	"github.com/caret-so/client-go/internal/api"
)

// Client is the main Caret API client. Resource access goes through the
// service fields; the zero value is not usable, construct with New.
type Client struct {
	apiClient *api.Client

	// Notes manages meeting notes and their transcripts.
	Notes *NotesService
	// Tags manages workspace tags.
	Tags *TagsService
	// Workspace manages workspace settings, members, invites and groups.
	Workspace *WorkspaceService
	// Webhooks manages webhook subscriptions.
	Webhooks *WebhooksService
}

// New creates a new Caret client. When apiKey is empty, the CARET_API_KEY
// environment variable is consulted (once, at construction); if neither is
// set, New returns ErrMissingAPIKey.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		MaxRetries: cfg.maxRetries,
	})
	if err != nil {
		return nil, err
	}

	c := &Client{apiClient: apiClient}
	c.Notes = &NotesService{api: apiClient}
	c.Tags = &TagsService{api: apiClient}
	c.Workspace = &WorkspaceService{api: apiClient}
	c.Webhooks = &WebhooksService{api: apiClient}

	return c, nil
}

// BaseURL returns the normalized API base URL.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}
