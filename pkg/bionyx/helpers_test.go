package bionyx_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"ekey-bionyx/pkg/bionyx"
)

const (
	testToken = "not needed"
	systemID  = "946da01f-9abd-4d9d-80c7-02af85c822a8"
	webhookID = "946da01f-9abd-4d9d-80c7-02af85c822a8"
)

func systemTemplate() bionyx.SystemResponse {
	return bionyx.SystemResponse{
		SystemName:            "TESTSYSTEM",
		SystemID:              systemID,
		OwnSystem:             true,
		FunctionWebhookQuotas: bionyx.FunctionQuotas{Free: 5, Used: 0},
	}
}

func webhookTemplate() bionyx.WebhookResponse {
	return bionyx.WebhookResponse{
		FunctionWebhookID: webhookID,
		IntegrationName:   "Third Party",
		LocationName:      "A simple string containing 0 to 128 word, space and punctuation characters.",
		FunctionName:      "A simple string containing 0 to 50 word, space and punctuation characters.",
		ExpiresAt:         "2022-05-16T04:11:28.0000000+00:00",
		ModificationState: nil,
	}
}

func webhookDataTemplate() bionyx.WebhookData {
	return bionyx.WebhookData{
		IntegrationName: "Third Party",
		LocationName:    "A simple string containing 0 to 128 word, space and punctuation characters.",
		FunctionName:    "A simple string containing 0 to 50 word, space and punctuation characters.",
		Definition: bionyx.WebhookDefinition{
			Method: bionyx.MethodPost,
			URL:    "https://www.rfc-editor.org/rfc/rfc3986.html",
			Body: &bionyx.WebhookDefinitionBody{
				ContentType: "application/json",
				Content:     "string",
			},
			SecurityLevel: bionyx.SecurityAllowHTTP,
			Authentication: bionyx.WebhookDefinitionAuthentication{
				APIAuthenticationType: bionyx.AuthNone,
			},
		},
	}
}

// recorded is one request seen by the test server.
type recorded struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// recorder is an httptest server that records requests and answers from a route table
// keyed by "METHOD /path".
type recorder struct {
	t      *testing.T
	srv    *httptest.Server
	mu     sync.Mutex
	calls  []recorded
	routes map[string]func(w http.ResponseWriter)
}

func newRecorder(t *testing.T) *recorder {
	t.Helper()
	rec := &recorder{t: t, routes: map[string]func(w http.ResponseWriter){}}
	rec.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.calls = append(rec.calls, recorded{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone(), Body: body})
		handler, ok := rec.routes[r.Method+" "+r.URL.Path]
		rec.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w)
	}))
	t.Cleanup(rec.srv.Close)
	return rec
}

func (rec *recorder) on(method, path string, handler func(w http.ResponseWriter)) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.routes[method+" "+path] = handler
}

func (rec *recorder) onJSON(method, path string, status int, payload any) {
	rec.on(method, path, func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	})
}

func (rec *recorder) onStatus(method, path string, status int) {
	rec.on(method, path, func(w http.ResponseWriter) {
		w.WriteHeader(status)
	})
}

func (rec *recorder) requests() []recorded {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]recorded(nil), rec.calls...)
}

func (rec *recorder) auth(opts ...bionyx.Option) *bionyx.Auth {
	rec.t.Helper()
	auth, err := bionyx.NewAuth(rec.srv.Client(), rec.srv.URL, bionyx.StaticToken(testToken), opts...)
	require.NoError(rec.t, err)
	return auth
}

func webhooksPath() string {
	return "/systems/" + systemID + "/function-webhooks"
}

func webhookURLPath() string {
	return webhooksPath() + "/" + webhookID
}

func strPtr(s string) *string { return &s }
