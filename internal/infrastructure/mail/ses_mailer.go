package mail

import (
	"context"
	"fmt"

	"placement_service/internal/config"
	"placement_service/internal/domain/entities"
	"placement_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rs/zerolog/log"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESMailer struct {
	client    sesAPI
	from      string
	recipient string
}

var _ interfaces.IMailer = (*SESMailer)(nil)

func NewSESMailer(client sesAPI, cfg config.MailConfig) *SESMailer {
	return &SESMailer{
		client:    client,
		from:      FormatFrom(cfg.FromName, cfg.FromEmail),
		recipient: cfg.Recipient,
	}
}

func (m *SESMailer) SendConsultationNotice(ctx context.Context, c entities.Consultation) error {
	msg, err := BuildConsultationMessage(m.from, []string{m.recipient}, c)
	if err != nil {
		return fmt.Errorf("render consultation mail: %w", err)
	}

	out, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(msg.From),
		Destination: &types.Destination{ToAddresses: msg.To},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(msg.HTMLBody), Charset: aws.String("UTF-8")},
				Text: &types.Content{Data: aws.String(msg.TextBody), Charset: aws.String("UTF-8")},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	log.Info().Str("message_id", aws.ToString(out.MessageId)).Msg("[mail][ses] message sent")
	return nil
}
