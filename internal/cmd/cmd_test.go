package cmd_test

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekey-bionyx/internal/cmd"
	"ekey-bionyx/internal/cmd/base"
	"ekey-bionyx/internal/fakeapi"
	"ekey-bionyx/internal/version"
	"ekey-bionyx/pkg/log"
)

const (
	testToken    = "cli-token"
	testSystemID = "946da01f-9abd-4d9d-80c7-02af85c822a8"
	otherSystem  = "0b8f3e0c-6a3d-4b0f-9d57-3c1b2f0e4c11"
)

type harness struct {
	t          *testing.T
	srv        *fakeapi.Server
	ts         *httptest.Server
	configPath string
}

func newHarness(t *testing.T, systems ...fakeapi.SystemSeed) *harness {
	t.Helper()
	if len(systems) == 0 {
		systems = []fakeapi.SystemSeed{{ID: testSystemID, Name: "TESTSYSTEM", OwnSystem: true, Quota: 3}}
	}

	srv, err := fakeapi.New(log.NewNop(), fakeapi.Config{Port: 8080, Mode: "test", Token: testToken, Systems: systems})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf(`
logger:
  level: error
bionyx:
  base_url: %s%s
oauth:
  access_token: %s
`, ts.URL, fakeapi.APIBasePath, testToken)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	return &harness{t: t, srv: srv, ts: ts, configPath: configPath}
}

// run executes one command and returns the exit code and the UI.
func (h *harness) run(name string, args ...string) (int, *cli.MockUi) {
	h.t.Helper()
	ui := cli.NewMockUi()
	b := &base.Command{UI: ui, Log: log.NewNop(), HTTPClient: h.ts.Client()}

	factory, ok := cmd.CommandsWith(b)[name]
	require.True(h.t, ok, "unknown command %q", name)
	c, err := factory()
	require.NoError(h.t, err)

	code := c.Run(append([]string{"-config", h.configPath}, args...))
	return code, ui
}

func decodeWebhook(t *testing.T, ui *cli.MockUi) base.WebhookView {
	t.Helper()
	var view base.WebhookView
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &view), ui.OutputWriter.String())
	return view
}

func TestVersion(t *testing.T) {
	ui := cli.NewMockUi()
	c, err := cmd.CommandsWith(&base.Command{UI: ui, Log: log.NewNop()})["version"]()
	require.NoError(t, err)

	assert.Equal(t, 0, c.Run(nil))
	assert.Contains(t, ui.OutputWriter.String(), version.Version)
}

func TestSystems(t *testing.T) {
	h := newHarness(t)

	code, ui := h.run("systems")
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	var out []map[string]any
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &out))
	require.Len(t, out, 1)
	assert.Equal(t, testSystemID, out[0]["systemId"])
	assert.Equal(t, "TESTSYSTEM", out[0]["systemName"])
}

func TestSystems_BadToken(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(h.configPath, []byte(fmt.Sprintf(`
logger:
  level: error
bionyx:
  base_url: %s%s
oauth:
  access_token: wrong
`, h.ts.URL, fakeapi.APIBasePath)), 0o600))

	code, ui := h.run("systems")
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "401")
}

func TestWebhooks_Lifecycle(t *testing.T) {
	h := newHarness(t)

	// add
	code, ui := h.run("webhooks add", "-file", "testdata/webhook.yaml")
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	added := decodeWebhook(t, ui)
	require.NotEmpty(t, added.FunctionWebhookID)
	require.NotNil(t, added.ModificationState)
	assert.Equal(t, fakeapi.StateCreateRequested, *added.ModificationState)
	assert.Equal(t, "Open", added.FunctionName)

	def, err := h.srv.Store().Definition(testSystemID, added.FunctionWebhookID)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"X-Api-Key": "secret", "X-Retry": float64(3)}, def.Definition.AdditionalHTTPHeaders)
	require.NotNil(t, def.Definition.Timeout)
	assert.Equal(t, 10, *def.Definition.Timeout)
	assert.Equal(t, map[string]any{"door": "front", "action": "open"}, def.Definition.Body.Content)

	require.NoError(t, h.srv.Store().Confirm(testSystemID, added.FunctionWebhookID))

	// list
	code, ui = h.run("webhooks list")
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	var list []base.WebhookView
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &list))
	require.Len(t, list, 1)
	assert.Nil(t, list[0].ModificationState)

	// rename
	code, ui = h.run("webhooks rename", "-location-name", "Back door", added.FunctionWebhookID)
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "Back door", decodeWebhook(t, ui).LocationName)

	// update
	code, ui = h.run("webhooks update", "-file", "testdata/webhook_update.json", added.FunctionWebhookID)
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	updated := decodeWebhook(t, ui)
	require.NotNil(t, updated.ModificationState)
	assert.Equal(t, "UpdateRequested", *updated.ModificationState)
	assert.True(t, updated.StateIsLocal)

	// get
	code, ui = h.run("webhooks get", added.FunctionWebhookID)
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	got := decodeWebhook(t, ui)
	assert.Equal(t, "UpdateRequested", *got.ModificationState)
	assert.False(t, got.StateIsLocal)

	// delete
	code, ui = h.run("webhooks delete", added.FunctionWebhookID)
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	var deleted []base.WebhookView
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &deleted))
	require.Len(t, deleted, 1)
	assert.Equal(t, "DeleteRequested", *deleted[0].ModificationState)
}

func TestWebhooks_DeleteReportsEveryFailure(t *testing.T) {
	h := newHarness(t)

	code, ui := h.run("webhooks add", "-file", "testdata/webhook.yaml")
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	added := decodeWebhook(t, ui)

	code, ui = h.run("webhooks delete", "missing-1", added.FunctionWebhookID, "missing-2")
	assert.Equal(t, 1, code)

	errOut := ui.ErrorWriter.String()
	assert.Contains(t, errOut, "missing-1")
	assert.Contains(t, errOut, "missing-2")
	assert.Contains(t, errOut, "2 errors occurred")

	var deleted []base.WebhookView
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &deleted))
	require.Len(t, deleted, 1)
	assert.Equal(t, added.FunctionWebhookID, deleted[0].FunctionWebhookID)
}

func TestWebhooks_RefreshWaitsForConfirmation(t *testing.T) {
	h := newHarness(t)

	code, ui := h.run("webhooks add", "-file", "testdata/webhook.yaml")
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	added := decodeWebhook(t, ui)

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = h.srv.Store().Confirm(testSystemID, added.FunctionWebhookID)
	}()

	code, ui = h.run("webhooks refresh", "-wait", "5s", "-interval", "10ms", added.FunctionWebhookID)
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Nil(t, decodeWebhook(t, ui).ModificationState)
}

func TestWebhooks_RefreshReportsDeletion(t *testing.T) {
	h := newHarness(t)

	code, ui := h.run("webhooks add", "-file", "testdata/webhook.yaml")
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	added := decodeWebhook(t, ui)
	require.NoError(t, h.srv.Store().DeleteWebhook(testSystemID, added.FunctionWebhookID))

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = h.srv.Store().Confirm(testSystemID, added.FunctionWebhookID)
	}()

	code, ui = h.run("webhooks refresh", "-wait", "5s", "-interval", "10ms", added.FunctionWebhookID)
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "was deleted")
}

func TestWebhooks_RefreshTimesOut(t *testing.T) {
	h := newHarness(t)

	code, ui := h.run("webhooks add", "-file", "testdata/webhook.yaml")
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	added := decodeWebhook(t, ui)

	code, ui = h.run("webhooks refresh", "-wait", "50ms", "-interval", "10ms", added.FunctionWebhookID)
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "deadline exceeded")
}

func TestWebhooks_SystemSelection(t *testing.T) {
	h := newHarness(t,
		fakeapi.SystemSeed{ID: testSystemID, Name: "Front", Quota: 1},
		fakeapi.SystemSeed{ID: otherSystem, Name: "Garage", Quota: 1},
	)

	code, ui := h.run("webhooks list")
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "-system")

	code, ui = h.run("webhooks list", "-system", otherSystem)
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Equal(t, "[]", strings.TrimSpace(ui.OutputWriter.String()))

	code, ui = h.run("webhooks list", "-system", "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "not found")
}

func TestWebhooks_ArgumentErrors(t *testing.T) {
	h := newHarness(t)

	tcs := map[string]struct {
		name string
		args []string
		want string
	}{
		"add without file":       {name: "webhooks add", want: "file flag is required"},
		"add invalid enum":       {name: "webhooks add", args: []string{"-file", "testdata/webhook_invalid.yaml"}, want: "unknown webhook method"},
		"add missing file":       {name: "webhooks add", args: []string{"-file", "testdata/nope.yaml"}, want: "error reading definition"},
		"get without id":         {name: "webhooks get", want: "exactly one webhook id"},
		"rename without names":   {name: "webhooks rename", args: []string{"id"}, want: "-function-name"},
		"delete without ids":     {name: "webhooks delete", want: "at least one webhook id"},
		"refresh zero interval":  {name: "webhooks refresh", args: []string{"-interval", "0s", "id"}, want: "interval must be positive"},
		"unknown flag":           {name: "webhooks list", args: []string{"-bogus"}, want: "error parsing flags"},
		"get unknown webhook id": {name: "webhooks get", args: []string{"nope"}, want: "404"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			code, ui := h.run(tc.name, tc.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, ui.ErrorWriter.String(), tc.want)
		})
	}
}

func TestHelpListsFlags(t *testing.T) {
	ui := cli.NewMockUi()
	c, err := cmd.CommandsWith(&base.Command{UI: ui, Log: log.NewNop()})["webhooks refresh"]()
	require.NoError(t, err)

	help := c.Help()
	assert.Contains(t, help, "-wait")
	assert.Contains(t, help, "-interval=5s")
	assert.Contains(t, help, "-system")
}
