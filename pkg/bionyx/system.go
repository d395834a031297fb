package bionyx

import (
	"context"
	"net/http"
	"net/url"
)

// System is an immutable snapshot of one access-control installation.
type System struct {
	data SystemResponse
	auth Requester
}

// NewSystem wraps a system payload. Requests go through auth.
func NewSystem(data SystemResponse, auth Requester) *System {
	return &System{data: data, auth: auth}
}

func (s *System) ID() string                            { return s.data.SystemID }
func (s *System) Name() string                          { return s.data.SystemName }
func (s *System) OwnSystem() bool                       { return s.data.OwnSystem }
func (s *System) FunctionWebhookQuotas() FunctionQuotas { return s.data.FunctionWebhookQuotas }

// Snapshot returns the payload the system was built from.
func (s *System) Snapshot() SystemResponse {
	return s.data
}

// GetWebhooks lists the function webhooks registered by this client on the system.
func (s *System) GetWebhooks(ctx context.Context) ([]*Webhook, error) {
	var payloads []WebhookResponse
	if err := call(ctx, s.auth, http.MethodGet, s.webhooksPath(), nil, &payloads); err != nil {
		return nil, err
	}

	webhooks := make([]*Webhook, 0, len(payloads))
	for _, p := range payloads {
		webhooks = append(webhooks, NewWebhook(p, s.data.SystemID, s.auth))
	}
	return webhooks, nil
}

// GetWebhook fetches a single webhook by id.
func (s *System) GetWebhook(ctx context.Context, webhookID string) (*Webhook, error) {
	var payload WebhookResponse
	if err := call(ctx, s.auth, http.MethodGet, webhookPath(s.data.SystemID, webhookID), nil, &payload); err != nil {
		return nil, err
	}
	return NewWebhook(payload, s.data.SystemID, s.auth), nil
}

// AddWebhook registers a new webhook. data is sent as is; the service validates it.
func (s *System) AddWebhook(ctx context.Context, data WebhookData) (*Webhook, error) {
	var payload WebhookResponse
	if err := call(ctx, s.auth, http.MethodPost, s.webhooksPath(), data, &payload); err != nil {
		return nil, err
	}
	return NewWebhook(payload, s.data.SystemID, s.auth), nil
}

func (s *System) webhooksPath() string {
	return pathSystems + "/" + url.PathEscape(s.data.SystemID) + "/" + pathFunctionWebhooks
}

func webhookPath(systemID, webhookID string) string {
	return pathSystems + "/" + url.PathEscape(systemID) + "/" + pathFunctionWebhooks + "/" + url.PathEscape(webhookID)
}
