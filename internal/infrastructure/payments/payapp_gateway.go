package payments

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"syscall"
	"time"

	"placement_service/internal/config"
	"placement_service/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

var (
	ErrMissingPayappUserID = errors.New("missing PAYAPP_USER_ID")
	ErrPayappRejected      = errors.New("payapp rejected payrequest")
)

// PayappGateway calls payapp's REST endpoint (cmd=payrequest). Responses are
// URL-encoded key/value pairs, not JSON.
type PayappGateway struct {
	client   *resty.Client
	apiURL   string
	userID   string
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*PayappGateway)(nil)

func NewPayappGateway(cfg config.PayappConfig) (*PayappGateway, error) {
	if cfg.Mock {
		log.Info().Msg("[payapp][gateway] mock mode enabled")
		return &PayappGateway{mockMode: true}, nil
	}
	if strings.TrimSpace(cfg.UserID) == "" {
		return nil, ErrMissingPayappUserID
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	// payrequest creates a bill on every call, so only a refused dial is retried.
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500*time.Millisecond).
		AddRetryCondition(retryOnRefused).
		SetHeader("Accept", "text/plain")

	log.Info().Str("api_url", cfg.APIURL).Msg("[payapp][gateway] client initialized")
	return &PayappGateway{client: client, apiURL: cfg.APIURL, userID: cfg.UserID}, nil
}

func retryOnRefused(_ *resty.Response, err error) bool {
	return err != nil && errors.Is(err, syscall.ECONNREFUSED)
}

func (g *PayappGateway) RequestPayment(ctx context.Context, req interfaces.PaymentRequest) (interfaces.PaymentRequestResult, error) {
	if g.mockMode {
		mulNo := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		q := url.Values{}
		q.Set("state", "1")
		q.Set("var1", req.ApplicationID)
		q.Set("mul_no", mulNo)
		q.Set("price", req.Price.String())
		log.Info().Str("var1", req.ApplicationID).Str("mul_no", mulNo).Msg("[payapp][gateway] mock payrequest")
		return interfaces.PaymentRequestResult{PayURL: req.ReturnURL + "?" + q.Encode(), MulNo: mulNo}, nil
	}

	form := map[string]string{
		"cmd":         "payrequest",
		"userid":      g.userID,
		"goodname":    req.GoodsName,
		"price":       req.Price.StringFixed(0),
		"recvphone":   req.RecvPhone,
		"buyername":   req.BuyerName,
		"feedbackurl": req.FeedbackURL,
		"returnurl":   req.ReturnURL,
		"var1":        req.ApplicationID,
		"smsuse":      "n",
		"checkretry":  "y",
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post(g.apiURL)
	if err != nil {
		return interfaces.PaymentRequestResult{}, fmt.Errorf("payapp payrequest: %w", err)
	}
	if resp.IsError() {
		return interfaces.PaymentRequestResult{}, fmt.Errorf("payapp payrequest: http %d", resp.StatusCode())
	}

	values, err := url.ParseQuery(strings.TrimSpace(resp.String()))
	if err != nil {
		return interfaces.PaymentRequestResult{}, fmt.Errorf("payapp payrequest: decode response: %w", err)
	}
	if values.Get("state") != "1" {
		msg := values.Get("errorMessage")
		log.Warn().Str("var1", req.ApplicationID).Str("error_message", msg).Msg("[payapp][gateway] payrequest rejected")
		return interfaces.PaymentRequestResult{}, fmt.Errorf("%w: %s", ErrPayappRejected, msg)
	}

	return interfaces.PaymentRequestResult{
		PayURL: values.Get("payurl"),
		MulNo:  values.Get("mul_no"),
	}, nil
}
