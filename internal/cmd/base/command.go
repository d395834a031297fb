package base

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mitchellh/cli"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"ekey-bionyx/config"
	"ekey-bionyx/internal/tokenstore"
	"ekey-bionyx/pkg/bionyx"
	"ekey-bionyx/pkg/log"
)

// Command carries what every subcommand needs.
type Command struct {
	UI  cli.Ui
	Log log.Logger

	// HTTPClient overrides the client built from the configured timeout.
	HTTPClient bionyx.HTTPDoer
}

// Setup loads and validates the client configuration. An empty path searches
// the default locations. The logger is rebuilt from the logger section.
func (c *Command) Setup(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateClient(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c.Log = log.Init(cfg.Logger.ZapConfig())
	return cfg, nil
}

// API builds an authenticated client from cfg.
func (c *Command) API(ctx context.Context, cfg *config.Config) (*bionyx.API, error) {
	tokens, err := c.tokenProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Bionyx.Timeout}
	}

	opts := []bionyx.Option{
		bionyx.WithLogger(c.Log),
		bionyx.WithUserAgent(cfg.Bionyx.UserAgent),
	}
	if cfg.Bionyx.RateLimitPerSec > 0 {
		opts = append(opts, bionyx.WithRateLimit(rate.Limit(cfg.Bionyx.RateLimitPerSec), cfg.Bionyx.RateLimitBurst))
	}

	auth, err := bionyx.NewAuth(httpClient, cfg.Bionyx.BaseURL, tokens, opts...)
	if err != nil {
		return nil, err
	}
	return bionyx.NewAPI(auth), nil
}

func (c *Command) tokenProvider(ctx context.Context, cfg *config.Config) (bionyx.TokenProvider, error) {
	if cfg.OAuth.AccessToken != "" {
		return bionyx.StaticToken(cfg.OAuth.AccessToken), nil
	}

	conf := bionyx.OAuth2Config(cfg.OAuth.ClientID, cfg.OAuth.ClientSecret, cfg.OAuth.RedirectURL, cfg.OAuth.Scopes...)
	conf.Endpoint = oauth2.Endpoint{AuthURL: cfg.OAuth.AuthURL, TokenURL: cfg.OAuth.TokenURL}

	src, err := tokenstore.NewTokenSource(ctx, conf, cfg.OAuth.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("%w (run bionyx-auth to create %s)", err, cfg.OAuth.TokenFile)
	}
	return bionyx.NewOAuth2TokenProvider(src), nil
}

// ErrAmbiguousSystem is returned by ResolveSystem when no id is given and the
// account has more than one system.
var ErrAmbiguousSystem = errors.New("account has several systems, pick one with -system")

// ResolveSystem finds the system with id. With an empty id the account must
// have exactly one system.
func ResolveSystem(ctx context.Context, api *bionyx.API, id string) (*bionyx.System, error) {
	systems, err := api.GetSystems(ctx)
	if err != nil {
		return nil, err
	}

	if id == "" {
		switch len(systems) {
		case 0:
			return nil, errors.New("account has no systems")
		case 1:
			return systems[0], nil
		default:
			return nil, ErrAmbiguousSystem
		}
	}

	for _, s := range systems {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("system %s not found", id)
}

// Print writes v as indented JSON to the UI.
func (c *Command) Print(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	c.UI.Output(string(raw))
	return nil
}
