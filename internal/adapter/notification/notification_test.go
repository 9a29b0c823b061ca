package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"placement_service/internal/config"
	"placement_service/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidNotification() entities.PaymentNotification {
	return entities.PaymentNotification{
		Application: entities.PracticeApplication{
			ID:              "42",
			Name:            "김민수",
			Gender:          "남",
			Contact:         "01012345678",
			BirthDate:       "990101",
			Address:         "서울시 도봉구",
			AddressDetail:   "101호",
			PracticeType:    "사회복지",
			DesiredJobField: "요양",
			EmploymentTypes: []string{"정규직", "계약직"},
			HasResume:       true,
			ClickSource:     "naver",
		},
		TransactionID: "TX1",
		Amount:        decimal.NewNullDecimal(decimal.NewFromInt(110000)),
		PaymentMethod: "card",
		PaidAt:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func allText(msg slackMessage) string {
	var b strings.Builder
	for _, blk := range msg.Blocks {
		if blk.Text != nil {
			b.WriteString(blk.Text.Text + "\n")
		}
		for _, f := range blk.Fields {
			b.WriteString(f.Text + "\n")
		}
		for _, e := range blk.Elements {
			b.WriteString(e.Text + "\n")
		}
	}
	return b.String()
}

func TestBuildPaymentCompletedMessage(t *testing.T) {
	msg := buildPaymentCompletedMessage(paidNotification())
	text := allText(msg)

	assert.Equal(t, paymentCompletedTitle, msg.Text)
	assert.Contains(t, text, "*이름*\n김민수")
	assert.Contains(t, text, "*주소*\n서울시 도봉구 101호")
	assert.Contains(t, text, "*고용형태*\n정규직, 계약직")
	assert.Contains(t, text, "*이력서 보유*\n보유함")
	assert.Contains(t, text, "*결제금액*\n110,000원")
	assert.Contains(t, text, "*유입경로*\nnaver")
	assert.Contains(t, text, "*결제번호*\nTX1")
	assert.Contains(t, text, "*신청 ID*\n42")
	assert.Contains(t, text, "결제 시간: 2025-01-01 09:00:00")
	assert.NotContains(t, text, "보유 자격증")

	for _, blk := range msg.Blocks {
		assert.LessOrEqual(t, len(blk.Fields), maxSectionFields)
	}
}

func TestBuildPaymentCompletedMessage_MissingValues(t *testing.T) {
	n := entities.PaymentNotification{Application: entities.PracticeApplication{ID: "1"}}
	text := allText(buildPaymentCompletedMessage(n))

	assert.Contains(t, text, "*이름*\n-")
	assert.Contains(t, text, "*결제번호*\n-")
	assert.Contains(t, text, "*신청 ID*\n1")
	assert.Contains(t, text, "*이력서 보유*\n보유하지 않음")
	assert.Contains(t, text, "*결제금액*\n110,000원")
}

func TestSlackNotifier_Posts(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	n, err := NewSlackNotifier(config.SlackConfig{WebhookURL: srv.URL})
	require.NoError(t, err)
	require.NoError(t, n.NotifyPaymentCompleted(context.Background(), paidNotification()))
	assert.Equal(t, paymentCompletedTitle, body["text"])
}

func TestBuildSubmittedMessage(t *testing.T) {
	app := paidNotification().Application
	app.ClickSource = ""
	msg := buildSubmittedMessage(app, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	text := allText(msg)

	assert.Equal(t, submittedTitle, msg.Text)
	assert.Contains(t, text, "*이름*\n김민수")
	assert.Contains(t, text, "*연락처*\n01012345678")
	assert.Contains(t, text, "*실습 유형*\n사회복지")
	assert.Contains(t, text, "*유입경로*\n미입력")
	assert.Contains(t, text, "*신청 ID*\n42")
	assert.Contains(t, text, "접수 시간: 2025-01-01 09:00:00")
	assert.NotContains(t, text, "결제")
}

func TestSlackNotifier_PostsSubmission(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	n, err := NewSlackNotifier(config.SlackConfig{WebhookURL: srv.URL})
	require.NoError(t, err)
	require.NoError(t, n.NotifyApplicationSubmitted(context.Background(), paidNotification().Application))
	assert.Equal(t, submittedTitle, body["text"])
}

func TestSlackNotifier_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no_service"))
	}))
	defer srv.Close()

	n, err := NewSlackNotifier(config.SlackConfig{WebhookURL: srv.URL})
	require.NoError(t, err)
	err = n.NotifyPaymentCompleted(context.Background(), paidNotification())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestNewSlackNotifier_RequiresURL(t *testing.T) {
	_, err := NewSlackNotifier(config.SlackConfig{})
	assert.ErrorIs(t, err, ErrMissingWebhookURL)
}

func TestRedisDeduper(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	d := NewRedisDeduper(client, time.Hour)
	ctx := context.Background()

	ok, err := d.Acquire(ctx, "payapp:notified:42:TX1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Acquire(ctx, "payapp:notified:42:TX1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, d.Release(ctx, "payapp:notified:42:TX1"))
	ok, err = d.Acquire(ctx, "payapp:notified:42:TX1")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Hour)
	ok, err = d.Acquire(ctx, "payapp:notified:42:TX1")
	require.NoError(t, err)
	assert.True(t, ok)
}
