package mail

import (
	"context"
	"fmt"
	"strings"

	"placement_service/internal/config"
	"placement_service/internal/infrastructure/database"
	"placement_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/rs/zerolog/log"
)

// New picks the transport named by MAIL_PROVIDER. It returns nil, nil when mail
// is disabled or no recipient is configured.
func New(ctx context.Context, cfg config.MailConfig, creds config.DynamoDBConfig) (interfaces.IMailer, error) {
	if strings.TrimSpace(cfg.Recipient) == "" {
		log.Warn().Msg("[mail] CONSULTATION_EMAIL not set, consultation mail disabled")
		return nil, nil
	}

	switch cfg.Provider {
	case config.MailProviderNone:
		return nil, nil
	case config.MailProviderSES:
		awsCfg, err := database.NewAWSConfig(ctx, cfg.SESRegion, creds.AccessKeyID, creds.SecretAccessKey)
		if err != nil {
			return nil, fmt.Errorf("ses config: %w", err)
		}
		return NewSESMailer(ses.NewFromConfig(awsCfg), cfg), nil
	case config.MailProviderSMTP:
		m, err := NewSMTPMailer(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("[mail] smtp not configured, consultation mail disabled")
			return nil, nil
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownMailProvider, cfg.Provider)
}
