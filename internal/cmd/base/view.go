package base

import "ekey-bionyx/pkg/bionyx"

// WebhookView is the printed form of a webhook.
type WebhookView struct {
	SystemID          string  `json:"systemId"`
	FunctionWebhookID string  `json:"functionWebhookId"`
	IntegrationName   string  `json:"integrationName"`
	LocationName      string  `json:"locationName"`
	FunctionName      string  `json:"functionName"`
	ExpiresAt         string  `json:"expiresAt"`
	ModificationState *string `json:"modificationState"`
	StateIsLocal      bool    `json:"stateIsLocal,omitempty"`
}

func NewWebhookView(w *bionyx.Webhook) WebhookView {
	snap := w.Snapshot()
	return WebhookView{
		SystemID:          w.SystemID(),
		FunctionWebhookID: snap.FunctionWebhookID,
		IntegrationName:   snap.IntegrationName,
		LocationName:      snap.LocationName,
		FunctionName:      snap.FunctionName,
		ExpiresAt:         snap.ExpiresAt,
		ModificationState: snap.ModificationState,
		StateIsLocal:      w.StateIsLocal(),
	}
}

func NewWebhookViews(webhooks []*bionyx.Webhook) []WebhookView {
	views := make([]WebhookView, 0, len(webhooks))
	for _, w := range webhooks {
		views = append(views, NewWebhookView(w))
	}
	return views
}
