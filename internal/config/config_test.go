package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("PUBLIC_BASE_URL", "https://example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverDynamoDB, cfg.Store.Driver)
	assert.Equal(t, "practice_applications", cfg.DynamoDB.PracticeApplicationsTable)
	assert.Equal(t, "https://example.com", cfg.App.PublicBaseURL)
	assert.Equal(t, "110000", cfg.Payapp.Price.String())
	assert.Equal(t, FailurePolicyAck, cfg.Payapp.PersistenceFailurePolicy)
	assert.Equal(t, 5*time.Second, cfg.Slack.Timeout)
	assert.Equal(t, 465, cfg.Mail.SMTPPort)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Payapp.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/app?sslmode=disable")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("PAYAPP_USER_ID", "seller")
	t.Setenv("PAYAPP_PERSISTENCE_FAILURE_POLICY", "retry")
	t.Setenv("BREVO_SMTP_LOGIN", "login@example.com")
	t.Setenv("AUTH_ADMIN_EMAILS", " Admin@Example.com , ,ops@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.True(t, cfg.Redis.Enabled())
	assert.True(t, cfg.Payapp.Enabled())
	assert.Equal(t, FailurePolicyRetry, cfg.Payapp.PersistenceFailurePolicy)
	assert.Equal(t, "login@example.com", cfg.Mail.FromEmail)
	assert.Equal(t, []string{"admin@example.com", "ops@example.com"}, cfg.Auth.AdminEmails)
}

func TestLoad_InvalidPrice(t *testing.T) {
	t.Setenv("PAYAPP_PRICE", "abc")
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			App:    AppConfig{Environment: "development"},
			Store:  StoreConfig{Driver: StoreDriverDynamoDB},
			Mail:   MailConfig{Provider: MailProviderNone},
			Payapp: PayappConfig{PersistenceFailurePolicy: FailurePolicyAck},
		}
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown store", mutate: func(c *Config) { c.Store.Driver = "mongo" }, want: ErrUnknownStoreDriver},
		{name: "postgres without url", mutate: func(c *Config) { c.Store.Driver = StoreDriverPostgres }, want: ErrMissingDatabaseURL},
		{name: "unknown mail", mutate: func(c *Config) { c.Mail.Provider = "pigeon" }, want: ErrUnknownMailProvider},
		{name: "unknown policy", mutate: func(c *Config) { c.Payapp.PersistenceFailurePolicy = "maybe" }, want: ErrUnknownFailurePolicy},
		{name: "production without secret", mutate: func(c *Config) { c.App.Environment = "production" }, want: ErrMissingJWTSecret},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(c)
			err := c.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.want), "expected %v, got %v", tc.want, err)
		})
	}
}

func TestContinuationURL(t *testing.T) {
	c := &Config{App: AppConfig{PublicBaseURL: "https://example.com"}}
	assert.Equal(t, "https://example.com/?payment=success&step=3", c.ContinuationURL(3))
}
