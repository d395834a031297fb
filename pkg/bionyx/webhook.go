package bionyx

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/araddon/dateparse"
)

// Webhook is a function webhook registered on a system.
//
// Its fields are replaced wholesale whenever the service returns the webhook.
// Delete and Update get no body back, so they only set the modification state
// to the local markers DeleteRequested and UpdateRequested; StateIsLocal
// reports that the state has not been confirmed by the service yet.
type Webhook struct {
	systemID string
	auth     Requester

	mu         sync.RWMutex
	data       WebhookResponse
	stateLocal bool
}

// NewWebhook wraps a webhook payload belonging to systemID.
func NewWebhook(data WebhookResponse, systemID string, auth Requester) *Webhook {
	w := &Webhook{systemID: systemID, auth: auth}
	w.setValues(data)
	return w
}

func (w *Webhook) SystemID() string { return w.systemID }

func (w *Webhook) ID() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.data.FunctionWebhookID
}

func (w *Webhook) FunctionName() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.data.FunctionName
}

func (w *Webhook) LocationName() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.data.LocationName
}

func (w *Webhook) IntegrationName() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.data.IntegrationName
}

// ExpiresAt returns the expiry exactly as sent by the service.
func (w *Webhook) ExpiresAt() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.data.ExpiresAt
}

// ExpiresAtTime parses ExpiresAt. The layout is server-defined (seven fractional
// digits, offset sometimes missing), so it is not parsed with a fixed layout.
func (w *Webhook) ExpiresAtTime() (time.Time, error) {
	raw := w.ExpiresAt()
	t, err := dateparse.ParseStrict(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("bionyx: parse expiresAt %q: %w", raw, err)
	}
	return t, nil
}

// ModificationState returns the pending-change status. ok is false when the
// service reported null, i.e. nothing is pending.
func (w *Webhook) ModificationState() (state string, ok bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.data.ModificationState == nil {
		return "", false
	}
	return *w.data.ModificationState, true
}

// StateIsLocal reports whether the modification state was set by this client
// rather than read from the service.
func (w *Webhook) StateIsLocal() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stateLocal
}

// Snapshot returns a copy of the current field values.
func (w *Webhook) Snapshot() WebhookResponse {
	w.mu.RLock()
	defer w.mu.RUnlock()
	snap := w.data
	if snap.ModificationState != nil {
		state := *snap.ModificationState
		snap.ModificationState = &state
	}
	return snap
}

// GetUpdate reloads the webhook from the service, replacing every field.
func (w *Webhook) GetUpdate(ctx context.Context) error {
	var payload WebhookResponse
	if err := call(ctx, w.auth, http.MethodGet, w.path(), nil, &payload); err != nil {
		return err
	}
	w.setValues(payload)
	return nil
}

// Delete requests deletion. The account owner has to confirm it in the app.
func (w *Webhook) Delete(ctx context.Context) error {
	if err := call(ctx, w.auth, http.MethodDelete, w.path(), nil, nil); err != nil {
		return err
	}
	w.setLocalState(DeleteRequested)
	return nil
}

// Update replaces the webhook definition. The account owner has to confirm it in the app.
func (w *Webhook) Update(ctx context.Context, data WebhookData) error {
	if err := call(ctx, w.auth, http.MethodPut, w.path(), data, nil); err != nil {
		return err
	}
	w.setLocalState(UpdateRequested)
	return nil
}

// UpdateName renames the webhook. No confirmation is needed, so the
// modification state is left alone.
func (w *Webhook) UpdateName(ctx context.Context, rename WebhookRename) error {
	return call(ctx, w.auth, http.MethodPatch, w.path(), rename, nil)
}

func (w *Webhook) path() string {
	return webhookPath(w.systemID, w.ID())
}

func (w *Webhook) setValues(data WebhookResponse) {
	if data.ModificationState != nil {
		state := *data.ModificationState
		data.ModificationState = &state
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.data = data
	w.stateLocal = false
}

func (w *Webhook) setLocalState(state string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.data.ModificationState = &state
	w.stateLocal = true
}
