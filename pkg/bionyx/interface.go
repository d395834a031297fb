package bionyx

import (
	"context"
	"net/http"
)

// TokenProvider supplies the bearer token attached to every request.
// It is asked once per request; caching and refreshing are up to the implementation.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// TokenProviderFunc adapts a function to TokenProvider.
type TokenProviderFunc func(ctx context.Context) (string, error)

func (f TokenProviderFunc) AccessToken(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticToken is a TokenProvider that always returns the same token.
type StaticToken string

func (t StaticToken) AccessToken(context.Context) (string, error) {
	return string(t), nil
}

// HTTPDoer executes HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Requester issues authenticated requests against the API host.
// Implementations are safe for concurrent use.
type Requester interface {
	Request(ctx context.Context, method, path string, body any, headers http.Header) (*Response, error)
}
