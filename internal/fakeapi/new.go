package fakeapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"ekey-bionyx/pkg/log"
)

const (
	// APIBasePath mirrors the path prefix of the production host.
	APIBasePath = "/3rd-party/api"

	defaultSystemName = "Demo system"
	defaultWebhookTTL = 365 * 24 * time.Hour
)

// Server is an in-memory stand-in for the bionyx third-party API.
type Server struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	token    string
	store    *Store
	limiter  *rateLimiter
	registry *prometheus.Registry
	metrics  *Metrics
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// Token is the only accepted bearer token. Empty accepts any token.
	Token           string
	RateLimitPerMin int

	// Quota applies to systems seeded without one.
	Quota      int
	WebhookTTL time.Duration
	Systems    []SystemSeed

	// Registry receives the HTTP metrics. A private registry is created when nil.
	Registry *prometheus.Registry
}

// New creates the server and registers its routes.
func New(logger log.Logger, cfg Config) (*Server, error) {
	gin.SetMode(cfg.Mode)

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	ttl := cfg.WebhookTTL
	if ttl <= 0 {
		ttl = defaultWebhookTTL
	}

	seeds := make([]SystemSeed, 0, len(cfg.Systems))
	for _, seed := range cfg.Systems {
		if seed.Quota == 0 {
			seed.Quota = cfg.Quota
		}
		seeds = append(seeds, seed)
	}
	if len(seeds) == 0 {
		seeds = append(seeds, SystemSeed{Name: defaultSystemName, OwnSystem: true, Quota: cfg.Quota})
	}

	srv := &Server{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		token:       cfg.Token,
		store:       NewStore(seeds, ttl),
		limiter:     newRateLimiter(cfg.RateLimitPerMin),
		registry:    registry,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.metrics = NewMetrics(registry)
	srv.mapHandlers()

	return srv, nil
}

// Handler exposes the router, e.g. for httptest.NewServer.
func (srv *Server) Handler() http.Handler {
	return srv.gin
}

// Store gives direct access to the in-memory state.
func (srv *Server) Store() *Store {
	return srv.store
}

func (srv *Server) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
