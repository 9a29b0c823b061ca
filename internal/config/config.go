package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverPostgres = "postgres"

	MailProviderSMTP = "smtp"
	MailProviderSES  = "ses"
	MailProviderNone = "none"

	// FailurePolicyAck answers SUCCESS to payapp even when the store write failed.
	FailurePolicyAck = "ack"
	// FailurePolicyRetry answers FAIL so payapp redelivers the notification.
	FailurePolicyRetry = "retry"
)

var (
	ErrUnknownStoreDriver   = errors.New("unknown STORE_DRIVER")
	ErrUnknownMailProvider  = errors.New("unknown MAIL_PROVIDER")
	ErrUnknownFailurePolicy = errors.New("unknown PAYAPP_PERSISTENCE_FAILURE_POLICY")
	ErrMissingJWTSecret     = errors.New("AUTH_JWT_SECRET must be set in production")
	ErrMissingDatabaseURL   = errors.New("DATABASE_URL must be set for the postgres store")
)

// Config is built once at process start and passed down explicitly.
type Config struct {
	App      AppConfig
	Store    StoreConfig
	DynamoDB DynamoDBConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Payapp   PayappConfig
	Slack    SlackConfig
	Mail     MailConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        string
	LogLevel    string
	// PublicBaseURL is the landing page origin used for continuation redirects.
	PublicBaseURL string
	// APIBaseURL is this service's public origin, handed to payapp for callbacks.
	APIBaseURL string
}

type StoreConfig struct {
	Driver string
}

type DynamoDBConfig struct {
	Region                    string
	Endpoint                  string
	AccessKeyID               string
	SecretAccessKey           string
	PracticeApplicationsTable string
	ConsultationsTable        string
}

type PostgresConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	DedupeTTL time.Duration
}

// Enabled reports whether a redis address was configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

type PayappConfig struct {
	APIURL    string
	UserID    string
	LinkKey   string
	LinkVal   string
	GoodsName string
	Price     decimal.Decimal
	Timeout   time.Duration
	Mock      bool
	// PersistenceFailurePolicy is one of FailurePolicyAck or FailurePolicyRetry.
	PersistenceFailurePolicy string
}

// Enabled reports whether payment requests can be created against payapp.
func (c PayappConfig) Enabled() bool {
	return c.Mock || strings.TrimSpace(c.UserID) != ""
}

type SlackConfig struct {
	WebhookURL string
	Timeout    time.Duration
}

type MailConfig struct {
	Provider  string
	SMTPHost  string
	SMTPPort  int
	SMTPLogin string
	SMTPKey   string
	FromEmail string
	FromName  string
	Recipient string
	SESRegion string
	Timeout   time.Duration
}

type AuthConfig struct {
	JWTSecret   string
	AdminEmails []string
}

// Load reads configuration from the environment and, when present, a config.yaml
// in ./configs or the working directory. Environment variables always win.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := fromViper(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "Practice Placement API")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_LOG_LEVEL", "info")
	v.SetDefault("PUBLIC_BASE_URL", "http://localhost:3000")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")

	v.SetDefault("STORE_DRIVER", StoreDriverDynamoDB)

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("PRACTICE_APPLICATIONS_TABLE", "practice_applications")
	v.SetDefault("CONSULTATIONS_TABLE", "consultations")

	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("DB_MAX_RETRIES", 5)
	v.SetDefault("DB_RETRY_DELAY", "1s")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("NOTIFICATION_DEDUPE_TTL", "168h")

	v.SetDefault("PAYAPP_API_URL", "https://api.payapp.kr/oapi/apiLoad.html")
	v.SetDefault("PAYAPP_USER_ID", "")
	v.SetDefault("PAYAPP_LINK_KEY", "")
	v.SetDefault("PAYAPP_LINK_VAL", "")
	v.SetDefault("PAYAPP_GOODS_NAME", "실습 섭외 신청")
	v.SetDefault("PAYAPP_PRICE", "110000")
	v.SetDefault("PAYAPP_TIMEOUT", "10s")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
	v.SetDefault("PAYAPP_PERSISTENCE_FAILURE_POLICY", FailurePolicyAck)

	v.SetDefault("SLACK_WEBHOOK_URL", "")
	v.SetDefault("SLACK_TIMEOUT", "5s")

	v.SetDefault("MAIL_PROVIDER", MailProviderSMTP)
	v.SetDefault("BREVO_SMTP_HOST", "smtp-relay.brevo.com")
	v.SetDefault("BREVO_SMTP_PORT", 465)
	v.SetDefault("BREVO_SMTP_LOGIN", "")
	v.SetDefault("BREVO_SMTP_KEY", "")
	v.SetDefault("BREVO_FROM_EMAIL", "")
	v.SetDefault("BREVO_FROM_NAME", "한평생 바로기업")
	v.SetDefault("CONSULTATION_EMAIL", "")
	v.SetDefault("SES_REGION", "ap-northeast-2")
	v.SetDefault("MAIL_TIMEOUT", "10s")

	v.SetDefault("AUTH_JWT_SECRET", "")
	v.SetDefault("AUTH_ADMIN_EMAILS", "")
}

func fromViper(v *viper.Viper) (*Config, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(v.GetString("PAYAPP_PRICE")))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYAPP_PRICE: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:          v.GetString("APP_NAME"),
			Environment:   v.GetString("APP_ENV"),
			Port:          v.GetString("APP_PORT"),
			LogLevel:      v.GetString("APP_LOG_LEVEL"),
			PublicBaseURL: strings.TrimRight(v.GetString("PUBLIC_BASE_URL"), "/"),
			APIBaseURL:    strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
		},
		Store: StoreConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		},
		DynamoDB: DynamoDBConfig{
			Region:                    v.GetString("AWS_REGION"),
			Endpoint:                  v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:               v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:           v.GetString("AWS_SECRET_ACCESS_KEY"),
			PracticeApplicationsTable: v.GetString("PRACTICE_APPLICATIONS_TABLE"),
			ConsultationsTable:        v.GetString("CONSULTATIONS_TABLE"),
		},
		Postgres: PostgresConfig{
			URL:             v.GetString("DATABASE_URL"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			MaxRetries:      v.GetInt("DB_MAX_RETRIES"),
			RetryDelay:      v.GetDuration("DB_RETRY_DELAY"),
		},
		Redis: RedisConfig{
			Addr:      v.GetString("REDIS_ADDR"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			DedupeTTL: v.GetDuration("NOTIFICATION_DEDUPE_TTL"),
		},
		Payapp: PayappConfig{
			APIURL:                   v.GetString("PAYAPP_API_URL"),
			UserID:                   v.GetString("PAYAPP_USER_ID"),
			LinkKey:                  v.GetString("PAYAPP_LINK_KEY"),
			LinkVal:                  v.GetString("PAYAPP_LINK_VAL"),
			GoodsName:                v.GetString("PAYAPP_GOODS_NAME"),
			Price:                    price,
			Timeout:                  v.GetDuration("PAYAPP_TIMEOUT"),
			Mock:                     v.GetBool("PAYMENT_GATEWAY_MOCK"),
			PersistenceFailurePolicy: strings.ToLower(strings.TrimSpace(v.GetString("PAYAPP_PERSISTENCE_FAILURE_POLICY"))),
		},
		Slack: SlackConfig{
			WebhookURL: v.GetString("SLACK_WEBHOOK_URL"),
			Timeout:    v.GetDuration("SLACK_TIMEOUT"),
		},
		Mail: MailConfig{
			Provider:  strings.ToLower(strings.TrimSpace(v.GetString("MAIL_PROVIDER"))),
			SMTPHost:  v.GetString("BREVO_SMTP_HOST"),
			SMTPPort:  v.GetInt("BREVO_SMTP_PORT"),
			SMTPLogin: v.GetString("BREVO_SMTP_LOGIN"),
			SMTPKey:   v.GetString("BREVO_SMTP_KEY"),
			FromEmail: v.GetString("BREVO_FROM_EMAIL"),
			FromName:  v.GetString("BREVO_FROM_NAME"),
			Recipient: v.GetString("CONSULTATION_EMAIL"),
			SESRegion: v.GetString("SES_REGION"),
			Timeout:   v.GetDuration("MAIL_TIMEOUT"),
		},
		Auth: AuthConfig{
			JWTSecret:   v.GetString("AUTH_JWT_SECRET"),
			AdminEmails: splitList(v.GetString("AUTH_ADMIN_EMAILS")),
		},
	}

	if cfg.Mail.FromEmail == "" {
		cfg.Mail.FromEmail = cfg.Mail.SMTPLogin
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail far from their source.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverDynamoDB:
	case StoreDriverPostgres:
		if strings.TrimSpace(c.Postgres.URL) == "" {
			return ErrMissingDatabaseURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStoreDriver, c.Store.Driver)
	}

	switch c.Mail.Provider {
	case MailProviderSMTP, MailProviderSES, MailProviderNone:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMailProvider, c.Mail.Provider)
	}

	switch c.Payapp.PersistenceFailurePolicy {
	case FailurePolicyAck, FailurePolicyRetry:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFailurePolicy, c.Payapp.PersistenceFailurePolicy)
	}

	if c.App.Environment == "production" && strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// ContinuationURL is where the result page sends the browser to resume the form at step.
func (c *Config) ContinuationURL(step int) string {
	return fmt.Sprintf("%s/?payment=success&step=%d", c.App.PublicBaseURL, step)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
