package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"placement_service/internal/config"
	"placement_service/internal/domain/entities"
	"placement_service/internal/infrastructure/metrics"
	"placement_service/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

const (
	paymentCompletedTitle = "💳 결제 완료 - 새로운 실습 섭외 신청"
	submittedTitle        = "📝 새로운 실습 신청"
	emptyValue            = "-"
	// Slack rejects section blocks with more than 10 fields.
	maxSectionFields = 10
)

var (
	ErrMissingWebhookURL = errors.New("missing SLACK_WEBHOOK_URL")
	kst                  = time.FixedZone("KST", 9*3600)
)

type SlackNotifier struct {
	client     *resty.Client
	webhookURL string
}

var _ interfaces.INotifier = (*SlackNotifier)(nil)

func NewSlackNotifier(cfg config.SlackConfig) (*SlackNotifier, error) {
	if strings.TrimSpace(cfg.WebhookURL) == "" {
		return nil, ErrMissingWebhookURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SlackNotifier{
		client:     resty.New().SetTimeout(timeout),
		webhookURL: cfg.WebhookURL,
	}, nil
}

type slackText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

type slackBlock struct {
	Type     string      `json:"type"`
	Text     *slackText  `json:"text,omitempty"`
	Fields   []slackText `json:"fields,omitempty"`
	Elements []slackText `json:"elements,omitempty"`
}

type slackMessage struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks"`
}

func (s *SlackNotifier) NotifyPaymentCompleted(ctx context.Context, n entities.PaymentNotification) error {
	err := s.post(ctx, buildPaymentCompletedMessage(n))
	metrics.ObserveNotification("slack", err)
	if err != nil {
		return err
	}
	log.Info().Str("application_id", n.Application.ID).Msg("[notification][slack] payment completed sent")
	return nil
}

func (s *SlackNotifier) NotifyApplicationSubmitted(ctx context.Context, app entities.PracticeApplication) error {
	err := s.post(ctx, buildSubmittedMessage(app, time.Now()))
	metrics.ObserveNotification("slack", err)
	if err != nil {
		return err
	}
	log.Info().Str("application_id", app.ID).Msg("[notification][slack] application submitted sent")
	return nil
}

func (s *SlackNotifier) post(ctx context.Context, msg slackMessage) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(s.webhookURL)
	if err != nil {
		return fmt.Errorf("slack webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("slack webhook: http %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	return nil
}

// buildPaymentCompletedMessage renders the Block Kit payload for a paid application.
func buildPaymentCompletedMessage(n entities.PaymentNotification) slackMessage {
	app := n.Application

	resume := "보유하지 않음"
	if app.HasResume {
		resume = "보유함"
	}

	fields := []slackText{
		field("이름", app.Name),
		field("연락처", app.Contact),
		field("성별", app.Gender),
		field("생년월일", app.BirthDate),
		field("주소", app.FullAddress()),
		field("실습 유형", app.PracticeType),
		field("취업 희망분야", app.DesiredJobField),
		field("고용형태", strings.Join(app.EmploymentTypes, ", ")),
		field("이력서 보유", resume),
		field("결제금액", n.AmountLabel()),
	}
	if strings.TrimSpace(app.Certifications) != "" {
		fields = append(fields, field("보유 자격증", app.Certifications))
	}
	if strings.TrimSpace(app.ClickSource) != "" {
		fields = append(fields, field("유입경로", app.ClickSource))
	}
	fields = append(fields,
		field("결제수단", entities.PayMethodLabel(n.PaymentMethod)),
		field("결제번호", n.TransactionID),
		field("신청 ID", app.ID),
	)

	paidAt := n.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}
	return blockMessage(paymentCompletedTitle, fields, "결제 시간: "+paidAt.In(kst).Format("2006-01-02 15:04:05"))
}

// buildSubmittedMessage announces a new application before any payment happens.
func buildSubmittedMessage(app entities.PracticeApplication, at time.Time) slackMessage {
	clickSource := app.ClickSource
	if strings.TrimSpace(clickSource) == "" {
		clickSource = "미입력"
	}
	fields := []slackText{
		field("이름", app.Name),
		field("성별", app.Gender),
		field("연락처", app.Contact),
		field("생년월일", app.BirthDate),
		field("주소", app.FullAddress()),
		field("실습 유형", app.PracticeType),
		field("취업 희망분야", app.DesiredJobField),
		field("고용형태", strings.Join(app.EmploymentTypes, ", ")),
		field("유입경로", clickSource),
		field("신청 ID", app.ID),
	}
	return blockMessage(submittedTitle, fields, "접수 시간: "+at.In(kst).Format("2006-01-02 15:04:05"))
}

func blockMessage(title string, fields []slackText, footer string) slackMessage {
	blocks := []slackBlock{{
		Type: "header",
		Text: &slackText{Type: "plain_text", Text: title, Emoji: true},
	}}
	for start := 0; start < len(fields); start += maxSectionFields {
		end := min(start+maxSectionFields, len(fields))
		blocks = append(blocks, slackBlock{Type: "section", Fields: fields[start:end]})
	}
	blocks = append(blocks, slackBlock{
		Type:     "context",
		Elements: []slackText{{Type: "mrkdwn", Text: footer}},
	})
	return slackMessage{Text: title, Blocks: blocks}
}

func field(label, value string) slackText {
	if strings.TrimSpace(value) == "" {
		value = emptyValue
	}
	return slackText{Type: "mrkdwn", Text: "*" + label + "*\n" + value}
}
