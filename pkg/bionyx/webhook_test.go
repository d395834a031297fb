package bionyx_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekey-bionyx/pkg/bionyx"
)

func TestWebhook_Accessors(t *testing.T) {
	data := webhookTemplate()
	w := bionyx.NewWebhook(data, systemID, nil)

	assert.Equal(t, data.FunctionWebhookID, w.ID())
	assert.Equal(t, systemID, w.SystemID())
	assert.Equal(t, data.FunctionName, w.FunctionName())
	assert.Equal(t, data.LocationName, w.LocationName())
	assert.Equal(t, data.IntegrationName, w.IntegrationName())
	assert.Equal(t, data.ExpiresAt, w.ExpiresAt())

	state, ok := w.ModificationState()
	assert.False(t, ok)
	assert.Empty(t, state)
	assert.False(t, w.StateIsLocal())
}

func TestWebhook_ExpiresAtTime(t *testing.T) {
	w := bionyx.NewWebhook(webhookTemplate(), systemID, nil)

	got, err := w.ExpiresAtTime()
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2022, 5, 16, 4, 11, 28, 0, time.UTC)))

	bad := webhookTemplate()
	bad.ExpiresAt = "soon"
	_, err = bionyx.NewWebhook(bad, systemID, nil).ExpiresAtTime()
	assert.Error(t, err)
}

func TestWebhook_SnapshotIsCopy(t *testing.T) {
	data := webhookTemplate()
	data.ModificationState = strPtr("UpdateRequested")
	w := bionyx.NewWebhook(data, systemID, nil)

	*data.ModificationState = "changed"
	snap := w.Snapshot()
	*snap.ModificationState = "changed again"

	state, ok := w.ModificationState()
	require.True(t, ok)
	assert.Equal(t, "UpdateRequested", state)
}

func TestWebhook_GetUpdate(t *testing.T) {
	updated := bionyx.WebhookResponse{
		FunctionWebhookID: webhookID,
		IntegrationName:   "Other Party",
		LocationName:      "Front door",
		FunctionName:      "Open",
		ExpiresAt:         "2023-01-01T00:00:00.0000000+00:00",
		ModificationState: strPtr("UpdateRequested"),
	}

	rec := newRecorder(t)
	rec.onJSON(http.MethodGet, webhookURLPath(), http.StatusOK, updated)

	w := bionyx.NewWebhook(webhookTemplate(), systemID, rec.auth())
	require.NoError(t, w.GetUpdate(context.Background()))

	assert.Equal(t, updated, w.Snapshot())
	assert.False(t, w.StateIsLocal())

	calls := rec.requests()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodGet, calls[0].Method)
	assert.Equal(t, webhookURLPath(), calls[0].Path)
}

func TestWebhook_GetUpdate_ClearsLocalState(t *testing.T) {
	rec := newRecorder(t)
	rec.onStatus(http.MethodDelete, webhookURLPath(), http.StatusOK)
	rec.onJSON(http.MethodGet, webhookURLPath(), http.StatusOK, webhookTemplate())

	w := bionyx.NewWebhook(webhookTemplate(), systemID, rec.auth())
	require.NoError(t, w.Delete(context.Background()))
	require.True(t, w.StateIsLocal())

	require.NoError(t, w.GetUpdate(context.Background()))
	_, ok := w.ModificationState()
	assert.False(t, ok)
	assert.False(t, w.StateIsLocal())
}

func TestWebhook_Delete(t *testing.T) {
	rec := newRecorder(t)
	rec.onStatus(http.MethodDelete, webhookURLPath(), http.StatusOK)

	w := bionyx.NewWebhook(webhookTemplate(), systemID, rec.auth())
	require.NoError(t, w.Delete(context.Background()))

	state, ok := w.ModificationState()
	require.True(t, ok)
	assert.Equal(t, bionyx.DeleteRequested, state)
	assert.True(t, w.StateIsLocal())

	snap := w.Snapshot()
	snap.ModificationState = nil
	assert.Equal(t, webhookTemplate(), snap)

	// Repeated deletes are not rejected locally.
	require.NoError(t, w.Delete(context.Background()))

	calls := rec.requests()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodDelete, calls[0].Method)
	assert.Empty(t, calls[0].Body)
}

func TestWebhook_Update(t *testing.T) {
	rec := newRecorder(t)
	rec.onStatus(http.MethodPut, webhookURLPath(), http.StatusNoContent)

	data := webhookDataTemplate()
	data.FunctionName = "Open garage"

	w := bionyx.NewWebhook(webhookTemplate(), systemID, rec.auth())
	require.NoError(t, w.Update(context.Background(), data))

	state, ok := w.ModificationState()
	require.True(t, ok)
	assert.Equal(t, bionyx.UpdateRequested, state)
	assert.True(t, w.StateIsLocal())
	assert.Equal(t, webhookTemplate().FunctionName, w.FunctionName())

	calls := rec.requests()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPut, calls[0].Method)
	assert.Equal(t, webhookURLPath(), calls[0].Path)
	assert.Contains(t, string(calls[0].Body), `"functionName":"Open garage"`)
}

func TestWebhook_UpdateName(t *testing.T) {
	rec := newRecorder(t)
	rec.onStatus(http.MethodPatch, webhookURLPath(), http.StatusNoContent)

	w := bionyx.NewWebhook(webhookTemplate(), systemID, rec.auth())
	require.NoError(t, w.UpdateName(context.Background(), bionyx.WebhookRename{LocationName: "Back door"}))

	_, ok := w.ModificationState()
	assert.False(t, ok)
	assert.Equal(t, webhookTemplate(), w.Snapshot())

	calls := rec.requests()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPatch, calls[0].Method)
	assert.JSONEq(t, `{"locationName":"Back door"}`, string(calls[0].Body))
}

func TestWebhook_FailureLeavesStateUntouched(t *testing.T) {
	tcs := map[string]struct {
		method string
		run    func(ctx context.Context, w *bionyx.Webhook) error
	}{
		"get_update": {
			method: http.MethodGet,
			run:    func(ctx context.Context, w *bionyx.Webhook) error { return w.GetUpdate(ctx) },
		},
		"delete": {
			method: http.MethodDelete,
			run:    func(ctx context.Context, w *bionyx.Webhook) error { return w.Delete(ctx) },
		},
		"update": {
			method: http.MethodPut,
			run: func(ctx context.Context, w *bionyx.Webhook) error {
				return w.Update(ctx, webhookDataTemplate())
			},
		},
		"update_name": {
			method: http.MethodPatch,
			run: func(ctx context.Context, w *bionyx.Webhook) error {
				return w.UpdateName(ctx, bionyx.WebhookRename{FunctionName: "x"})
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			rec := newRecorder(t)
			rec.onStatus(tc.method, webhookURLPath(), http.StatusUnauthorized)

			w := bionyx.NewWebhook(webhookTemplate(), systemID, rec.auth())
			err := tc.run(context.Background(), w)

			require.Error(t, err)
			assert.True(t, bionyx.IsStatus(err, http.StatusUnauthorized))
			assert.Equal(t, webhookTemplate(), w.Snapshot())
			assert.False(t, w.StateIsLocal())
		})
	}
}

func TestWebhook_CanceledContext(t *testing.T) {
	rec := newRecorder(t)
	rec.onStatus(http.MethodDelete, webhookURLPath(), http.StatusOK)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := bionyx.NewWebhook(webhookTemplate(), systemID, rec.auth())
	err := w.Delete(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, webhookTemplate(), w.Snapshot())
	assert.Empty(t, rec.requests())
}
