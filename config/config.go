package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"

	"ekey-bionyx/pkg/bionyx"
	"ekey-bionyx/pkg/log"
)

// Config holds the configuration of the CLI and the fake API.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Client side
	Bionyx BionyxConfig
	OAuth  OAuthConfig

	// Local stand-in for the service
	FakeAPI FakeAPIConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	Output     string
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type BionyxConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RateLimitPerSec float64
	RateLimitBurst  int
	UserAgent       string
}

// OAuthConfig selects where bearer tokens come from. AccessToken wins over
// TokenFile when both are set.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	RedirectURL  string
	Scopes       []string
	TokenFile    string
	AccessToken  string
}

type FakeAPIConfig struct {
	Port            int
	Mode            string
	Token           string
	Quota           int
	RateLimitPerMin int
	WebhookTTL      time.Duration
	Systems         []FakeSystemConfig
}

// FakeSystemConfig seeds one system of the fake API. Quota 0 falls back to FakeAPIConfig.Quota.
type FakeSystemConfig struct {
	ID        string
	Name      string
	OwnSystem bool
	Quota     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/bionyx/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/bionyx/")
	return load(v)
}

// LoadFile loads configuration from an explicit file. Environment overrides still apply.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.Output = v.GetString("logger.output")
	cfg.Logger.FilePath = v.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = v.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = v.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = v.GetInt("logger.max_age_days")
	cfg.Logger.Compress = v.GetBool("logger.compress")

	cfg.Bionyx.BaseURL = v.GetString("bionyx.base_url")
	cfg.Bionyx.Timeout = v.GetDuration("bionyx.timeout")
	cfg.Bionyx.RateLimitPerSec = v.GetFloat64("bionyx.rate_limit_per_sec")
	cfg.Bionyx.RateLimitBurst = v.GetInt("bionyx.rate_limit_burst")
	cfg.Bionyx.UserAgent = v.GetString("bionyx.user_agent")
	if baseURL := v.GetString("bionyx_base_url"); baseURL != "" {
		cfg.Bionyx.BaseURL = baseURL
	}

	cfg.OAuth.ClientID = v.GetString("oauth.client_id")
	cfg.OAuth.ClientSecret = expandEnvVar(v, v.GetString("oauth.client_secret"))
	cfg.OAuth.AuthURL = v.GetString("oauth.auth_url")
	cfg.OAuth.TokenURL = v.GetString("oauth.token_url")
	cfg.OAuth.RedirectURL = v.GetString("oauth.redirect_url")
	cfg.OAuth.Scopes = v.GetStringSlice("oauth.scopes")
	cfg.OAuth.TokenFile = v.GetString("oauth.token_file")
	cfg.OAuth.AccessToken = expandEnvVar(v, v.GetString("oauth.access_token"))
	if token := v.GetString("bionyx_access_token"); token != "" {
		cfg.OAuth.AccessToken = token
	}

	cfg.FakeAPI.Port = v.GetInt("fake_api.port")
	cfg.FakeAPI.Mode = v.GetString("fake_api.mode")
	cfg.FakeAPI.Token = expandEnvVar(v, v.GetString("fake_api.token"))
	cfg.FakeAPI.Quota = v.GetInt("fake_api.quota")
	cfg.FakeAPI.RateLimitPerMin = v.GetInt("fake_api.rate_limit_per_min")
	cfg.FakeAPI.WebhookTTL = v.GetDuration("fake_api.webhook_ttl")

	if v.IsSet("fake_api.systems") {
		if systemsList, ok := v.Get("fake_api.systems").([]interface{}); ok {
			for _, s := range systemsList {
				if systemMap, ok := s.(map[string]interface{}); ok {
					cfg.FakeAPI.Systems = append(cfg.FakeAPI.Systems, FakeSystemConfig{
						ID:        getStringFromMap(systemMap, "id"),
						Name:      getStringFromMap(systemMap, "name"),
						OwnSystem: getBoolFromMap(systemMap, "own_system"),
						Quota:     getIntFromMap(systemMap, "quota"),
					})
				}
			}
		}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", log.ModeDevelopment)
	v.SetDefault("logger.encoding", log.EncodingConsole)
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.output", log.OutputStderr)

	v.SetDefault("bionyx.base_url", bionyx.DefaultBaseURL)
	v.SetDefault("bionyx.timeout", "30s")
	v.SetDefault("bionyx.rate_limit_burst", 1)
	v.SetDefault("bionyx.user_agent", bionyx.DefaultUserAgent)

	v.SetDefault("oauth.auth_url", bionyx.Endpoint.AuthURL)
	v.SetDefault("oauth.token_url", bionyx.Endpoint.TokenURL)
	v.SetDefault("oauth.redirect_url", "http://localhost:8085/callback")
	v.SetDefault("oauth.scopes", []string{bionyx.Scope, "offline_access"})
	v.SetDefault("oauth.token_file", "token.json")

	v.SetDefault("fake_api.port", 8080)
	v.SetDefault("fake_api.mode", "debug")
	v.SetDefault("fake_api.quota", 5)
	v.SetDefault("fake_api.rate_limit_per_min", 600)
	v.SetDefault("fake_api.webhook_ttl", "8760h")
}

// ZapConfig maps the logger section onto the pkg/log configuration.
func (c LoggerConfig) ZapConfig() log.ZapConfig {
	return log.ZapConfig{
		Level:        c.Level,
		Mode:         c.Mode,
		Encoding:     c.Encoding,
		ColorEnabled: c.ColorEnabled,
		Output:       c.Output,
		FilePath:     c.FilePath,
		MaxSizeMB:    c.MaxSizeMB,
		MaxBackups:   c.MaxBackups,
		MaxAgeDays:   c.MaxAgeDays,
		Compress:     c.Compress,
	}
}

// ValidateClient checks the sections used to talk to the bionyx API.
func (c *Config) ValidateClient() error {
	return validation.Errors{
		"bionyx": validation.ValidateStruct(&c.Bionyx,
			validation.Field(&c.Bionyx.BaseURL, validation.Required, is.URL),
			validation.Field(&c.Bionyx.Timeout, validation.Min(time.Duration(0))),
			validation.Field(&c.Bionyx.RateLimitPerSec, validation.Min(0.0)),
			validation.Field(&c.Bionyx.RateLimitBurst, validation.When(c.Bionyx.RateLimitPerSec > 0, validation.Required, validation.Min(1))),
		),
		"oauth": validation.ValidateStruct(&c.OAuth,
			validation.Field(&c.OAuth.TokenFile, validation.When(c.OAuth.AccessToken == "",
				validation.Required.Error("token_file or access_token is required"))),
			validation.Field(&c.OAuth.ClientID, validation.When(c.OAuth.AccessToken == "", validation.Required)),
			validation.Field(&c.OAuth.TokenURL, validation.When(c.OAuth.AccessToken == "", validation.Required, is.URL)),
		),
	}.Filter()
}

// ValidateFakeAPI checks the fake_api section.
func (c *Config) ValidateFakeAPI() error {
	return validation.ValidateStruct(&c.FakeAPI,
		validation.Field(&c.FakeAPI.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.FakeAPI.Mode, validation.Required, validation.In("debug", "release", "test")),
		validation.Field(&c.FakeAPI.Quota, validation.Min(0)),
		validation.Field(&c.FakeAPI.RateLimitPerMin, validation.Min(0)),
		validation.Field(&c.FakeAPI.WebhookTTL, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.FakeAPI.Systems),
	)
}

func (s FakeSystemConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.ID, validation.When(s.ID != "", is.UUID)),
		validation.Field(&s.Quota, validation.Min(0)),
	)
}

// expandEnvVar expands values of the form ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
