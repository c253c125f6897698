package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/callcenter/pkg/config"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, "info", cfg.Logger.Level)
	require.Equal(t, "http://localhost:3000", cfg.AppURL)
	require.Equal(t, 10*time.Minute, cfg.OAuth.StateTTL)
	require.Equal(t, 0, cfg.OAuth.RetryAttempts)
	require.Equal(t, "org_1", cfg.N8N.OrganizationID)
	require.Equal(t, "org_1", cfg.DefaultOrganizationID)
	require.False(t, cfg.N8N.TrustProxy)
	require.True(t, cfg.Job.StateCleanupEnabled)
	require.True(t, cfg.Job.LimiterPruneEnabled)
	require.Equal(t, time.Minute, cfg.Job.LimiterPruneInterval)
	require.Empty(t, cfg.Session.Secret)
	require.Empty(t, cfg.OAuth.StateSecret)
}

func TestConfig_FillMissingSecrets(t *testing.T) {
	cfg, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	filled, err := cfg.FillMissingSecrets()
	require.NoError(t, err)
	require.Equal(t, []string{"SESSION_SECRET", "OAUTH_STATE_SECRET"}, filled)
	require.Len(t, cfg.Session.Secret, 64)
	require.Len(t, cfg.OAuth.StateSecret, 64)
	require.NotEqual(t, cfg.Session.Secret, cfg.OAuth.StateSecret)

	other, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	_, err = other.FillMissingSecrets()
	require.NoError(t, err)
	require.NotEqual(t, cfg.Session.Secret, other.Session.Secret)

	t.Setenv("SESSION_SECRET", "from-env")

	cfg, err = config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	filled, err = cfg.FillMissingSecrets()
	require.NoError(t, err)
	require.Equal(t, []string{"OAUTH_STATE_SECRET"}, filled)
	require.Equal(t, "from-env", cfg.Session.Secret)
}

func TestNew_ProviderPrefixesAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	content := "SLACK_CLIENT_ID=slack-id\nSLACK_CLIENT_SECRET=slack-secret\nQUICKBOOKS_CLIENT_ID=qb-id\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Cleanup(func() {
		_ = os.Unsetenv("SLACK_CLIENT_ID")
		_ = os.Unsetenv("SLACK_CLIENT_SECRET")
		_ = os.Unsetenv("QUICKBOOKS_CLIENT_ID")
	})

	t.Setenv("NEXT_PUBLIC_APP_URL", "https://calls.example.com/")
	t.Setenv("N8N_API_KEY", "n8n-key")

	cfg, err := config.New(path)
	require.NoError(t, err)

	require.Equal(t, "slack-id", cfg.Slack.ClientID)
	require.Equal(t, "slack-secret", cfg.Slack.ClientSecret)
	require.Equal(t, "qb-id", cfg.QuickBooks.ClientID)
	require.Empty(t, cfg.Asana.ClientID)
	require.Equal(t, "https://calls.example.com", cfg.AppURL)
	require.Equal(t, "n8n-key", cfg.N8N.APIKey)
}
