package fakeapi

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekey-bionyx/pkg/bionyx"
)

const testSystemID = "946da01f-9abd-4d9d-80c7-02af85c822a8"

func newTestStore(quota int) *Store {
	s := NewStore([]SystemSeed{{ID: testSystemID, Name: "TESTSYSTEM", OwnSystem: true, Quota: quota}}, time.Hour)
	s.now = func() time.Time { return time.Date(2022, 5, 16, 4, 11, 28, 0, time.UTC) }
	return s
}

func testData(name string) bionyx.WebhookData {
	return bionyx.WebhookData{
		IntegrationName: "Third Party",
		LocationName:    "Front door",
		FunctionName:    name,
		Definition: bionyx.WebhookDefinition{
			Method:        bionyx.MethodPost,
			URL:           "https://example.com/hook",
			SecurityLevel: bionyx.SecurityAllowHTTP,
			Authentication: bionyx.WebhookDefinitionAuthentication{
				APIAuthenticationType: bionyx.AuthNone,
			},
		},
	}
}

func TestStore_CreateAndQuota(t *testing.T) {
	s := newTestStore(1)

	wh, err := s.CreateWebhook(testSystemID, testData("Open"))
	require.NoError(t, err)
	assert.NotEmpty(t, wh.FunctionWebhookID)
	assert.Equal(t, "Open", wh.FunctionName)
	assert.Equal(t, "2022-05-16T05:11:28.0000000+00:00", wh.ExpiresAt)
	require.NotNil(t, wh.ModificationState)
	assert.Equal(t, StateCreateRequested, *wh.ModificationState)

	systems := s.Systems()
	require.Len(t, systems, 1)
	assert.Equal(t, bionyx.FunctionQuotas{Free: 0, Used: 1}, systems[0].FunctionWebhookQuotas)

	_, err = s.CreateWebhook(testSystemID, testData("Second"))
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	_, err = s.CreateWebhook("unknown", testData("x"))
	assert.ErrorIs(t, err, ErrSystemNotFound)
}

func TestStore_ConfirmCreate(t *testing.T) {
	s := newTestStore(2)
	wh, err := s.CreateWebhook(testSystemID, testData("Open"))
	require.NoError(t, err)

	require.NoError(t, s.Confirm(testSystemID, wh.FunctionWebhookID))
	got, err := s.Webhook(testSystemID, wh.FunctionWebhookID)
	require.NoError(t, err)
	assert.Nil(t, got.ModificationState)

	assert.ErrorIs(t, s.Confirm(testSystemID, wh.FunctionWebhookID), ErrNothingPending)
}

func TestStore_UpdateIsPendingUntilConfirmed(t *testing.T) {
	s := newTestStore(2)
	wh, err := s.CreateWebhook(testSystemID, testData("Open"))
	require.NoError(t, err)
	require.NoError(t, s.Confirm(testSystemID, wh.FunctionWebhookID))

	require.NoError(t, s.UpdateWebhook(testSystemID, wh.FunctionWebhookID, testData("Close")))
	got, err := s.Webhook(testSystemID, wh.FunctionWebhookID)
	require.NoError(t, err)
	assert.Equal(t, "Open", got.FunctionName)
	require.NotNil(t, got.ModificationState)
	assert.Equal(t, StateUpdateRequested, *got.ModificationState)

	require.NoError(t, s.Confirm(testSystemID, wh.FunctionWebhookID))
	got, err = s.Webhook(testSystemID, wh.FunctionWebhookID)
	require.NoError(t, err)
	assert.Equal(t, "Close", got.FunctionName)
	assert.Nil(t, got.ModificationState)

	def, err := s.Definition(testSystemID, wh.FunctionWebhookID)
	require.NoError(t, err)
	assert.Equal(t, wh.FunctionWebhookID, def.FunctionWebhookID)
}

func TestStore_UpdateDuringCreateKeepsCreateState(t *testing.T) {
	s := newTestStore(2)
	wh, err := s.CreateWebhook(testSystemID, testData("Open"))
	require.NoError(t, err)

	require.NoError(t, s.UpdateWebhook(testSystemID, wh.FunctionWebhookID, testData("Close")))
	got, err := s.Webhook(testSystemID, wh.FunctionWebhookID)
	require.NoError(t, err)
	assert.Equal(t, StateCreateRequested, *got.ModificationState)

	require.NoError(t, s.Confirm(testSystemID, wh.FunctionWebhookID))
	got, err = s.Webhook(testSystemID, wh.FunctionWebhookID)
	require.NoError(t, err)
	assert.Equal(t, "Close", got.FunctionName)
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(2)
	wh, err := s.CreateWebhook(testSystemID, testData("Open"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteWebhook(testSystemID, wh.FunctionWebhookID))
	require.NoError(t, s.DeleteWebhook(testSystemID, wh.FunctionWebhookID))
	assert.ErrorIs(t, s.UpdateWebhook(testSystemID, wh.FunctionWebhookID, testData("x")), ErrDeletePending)

	list, err := s.Webhooks(testSystemID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, StateDeleteRequested, *list[0].ModificationState)

	require.NoError(t, s.Confirm(testSystemID, wh.FunctionWebhookID))
	list, err = s.Webhooks(testSystemID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = s.Webhook(testSystemID, wh.FunctionWebhookID)
	assert.ErrorIs(t, err, ErrWebhookNotFound)
	assert.Equal(t, 2, s.Systems()[0].FunctionWebhookQuotas.Free)
}

func TestStore_Rename(t *testing.T) {
	s := newTestStore(2)
	wh, err := s.CreateWebhook(testSystemID, testData("Open"))
	require.NoError(t, err)

	require.NoError(t, s.RenameWebhook(testSystemID, wh.FunctionWebhookID, bionyx.WebhookRename{LocationName: "Back door"}))
	got, err := s.Webhook(testSystemID, wh.FunctionWebhookID)
	require.NoError(t, err)
	assert.Equal(t, "Back door", got.LocationName)
	assert.Equal(t, "Open", got.FunctionName)
	assert.Equal(t, StateCreateRequested, *got.ModificationState)
}

func TestStore_RenameDuringPendingUpdate(t *testing.T) {
	s := newTestStore(2)
	wh, err := s.CreateWebhook(testSystemID, testData("Open"))
	require.NoError(t, err)
	require.NoError(t, s.Confirm(testSystemID, wh.FunctionWebhookID))

	require.NoError(t, s.UpdateWebhook(testSystemID, wh.FunctionWebhookID, testData("Close")))
	require.NoError(t, s.RenameWebhook(testSystemID, wh.FunctionWebhookID, bionyx.WebhookRename{FunctionName: "Renamed"}))

	got, err := s.Webhook(testSystemID, wh.FunctionWebhookID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.FunctionName)

	require.NoError(t, s.Confirm(testSystemID, wh.FunctionWebhookID))
	got, err = s.Webhook(testSystemID, wh.FunctionWebhookID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.FunctionName)
	assert.Equal(t, "Front door", got.LocationName)
	assert.Nil(t, got.ModificationState)
}

func TestStore_GeneratesSystemIDs(t *testing.T) {
	s := NewStore([]SystemSeed{{Name: "A"}, {Name: "B"}}, time.Hour)
	systems := s.Systems()
	require.Len(t, systems, 2)
	assert.NotEmpty(t, systems[0].SystemID)
	assert.NotEqual(t, systems[0].SystemID, systems[1].SystemID)
	assert.Equal(t, "A", systems[0].SystemName)
}

func TestRateLimiter(t *testing.T) {
	assert.Nil(t, newRateLimiter(0))
	assert.NoError(t, (*rateLimiter)(nil).Allow("x"))

	rl := newRateLimiter(10)
	require.NoError(t, rl.Allow("a"))
	assert.ErrorIs(t, rl.Allow("a"), ErrRateLimited)
	assert.NoError(t, rl.Allow("b"))
	assert.InDelta(t, 6.0, rl.retryAfter().Seconds(), 0.01)
}

func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	rl := newRateLimiter(10)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("shared") == nil {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load())
}

func TestBearerToken(t *testing.T) {
	tcs := map[string]struct {
		header string
		token  string
		ok     bool
	}{
		"valid":       {header: "Bearer abc", token: "abc", ok: true},
		"lower case":  {header: "bearer abc", token: "abc", ok: true},
		"with spaces": {header: "Bearer not needed", token: "not needed", ok: true},
		"basic":       {header: "Basic abc"},
		"empty":       {header: ""},
		"no token":    {header: "Bearer "},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			token, ok := bearerToken(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}
