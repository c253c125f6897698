package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	AppURL   string `env:"NEXT_PUBLIC_APP_URL" envDefault:"http://localhost:3000"`
	Postgres Postgres
	Kafka    Kafka
	Mailer   Mailer
	N8N      N8N
	Session  Session
	OAuth    OAuth
	Job      Job

	// DefaultOrganizationID owns integrations connected without a session.
	DefaultOrganizationID string `env:"DEFAULT_ORGANIZATION_ID" envDefault:"org_1"`

	Slack      Credentials `envPrefix:"SLACK_"`
	Asana      Credentials `envPrefix:"ASANA_"`
	HubSpot    Credentials `envPrefix:"HUBSPOT_"`
	Salesforce Credentials `envPrefix:"SALESFORCE_"`
	Mailchimp  Credentials `envPrefix:"MAILCHIMP_"`
	Microsoft  Credentials `envPrefix:"MICROSOFT_"`
	Stripe     Credentials `envPrefix:"STRIPE_"`
	QuickBooks Credentials `envPrefix:"QUICKBOOKS_"`
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers     []string `env:"KAFKA_BROKERS" envSeparator:","`
	EventsTopic string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"callcenter.events"`
}

type Mailer struct {
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Call Center"`
}

type N8N struct {
	APIKey         string  `env:"N8N_API_KEY"`
	OrganizationID string  `env:"N8N_ORGANIZATION_ID" envDefault:"org_1"`
	RateLimitRPS   float64 `env:"N8N_RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"N8N_RATE_LIMIT_BURST" envDefault:"40"`

	// TrustProxy keys the rate limiter on X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites them.
	TrustProxy bool `env:"N8N_TRUST_PROXY" envDefault:"false"`
}

type Session struct {
	Secret string        `env:"SESSION_SECRET"`
	TTL    time.Duration `env:"SESSION_TTL" envDefault:"12h"`
}

type OAuth struct {
	StateSecret   string        `env:"OAUTH_STATE_SECRET"`
	StateTTL      time.Duration `env:"OAUTH_STATE_TTL" envDefault:"10m"`
	Timeout       time.Duration `env:"OAUTH_TIMEOUT" envDefault:"10s"`
	RetryAttempts int           `env:"OAUTH_RETRY_ATTEMPTS" envDefault:"0"`
}

type Job struct {
	StateCleanupEnabled  bool          `env:"JOB_STATE_CLEANUP_ENABLED" envDefault:"true"`
	StateCleanupInterval time.Duration `env:"JOB_STATE_CLEANUP_INTERVAL" envDefault:"5m"`
	LimiterPruneEnabled  bool          `env:"JOB_LIMITER_PRUNE_ENABLED" envDefault:"true"`
	LimiterPruneInterval time.Duration `env:"JOB_LIMITER_PRUNE_INTERVAL" envDefault:"1m"`
}

// Credentials is a {PROVIDER}_CLIENT_ID / {PROVIDER}_CLIENT_SECRET pair.
type Credentials struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	var c Config

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	c.AppURL = strings.TrimRight(c.AppURL, "/")

	return c, nil
}

// FillMissingSecrets replaces empty signing secrets with random values and
// returns the names of the variables it filled. Sessions and pending OAuth
// states signed with a generated secret do not survive a restart.
func (c *Config) FillMissingSecrets() ([]string, error) {
	var filled []string

	for _, s := range []struct {
		name  string
		value *string
	}{
		{"SESSION_SECRET", &c.Session.Secret},
		{"OAUTH_STATE_SECRET", &c.OAuth.StateSecret},
	} {
		if *s.value != "" {
			continue
		}

		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return nil, err
		}

		*s.value = hex.EncodeToString(b)
		filled = append(filled, s.name)
	}

	return filled, nil
}
