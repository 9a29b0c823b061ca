package handlers

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"placement_service/internal/adapter/http/dto/request"
	"placement_service/internal/config"
	"placement_service/internal/domain/entities"
	"placement_service/internal/infrastructure/metrics"
	"placement_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Payapp reads the response body verbatim; anything but SUCCESS is treated as
// a failed delivery and retried.
const (
	tokenSuccess = "SUCCESS"
	tokenFail    = "FAIL"
	tokenPing    = "OK"

	defaultCancelMessage = "결제가 취소되었습니다. 잠시 후 처음 화면으로 이동합니다."

	successRedirectDelay = 500 * time.Millisecond
	failureRedirectDelay = 3000 * time.Millisecond
)

//go:embed templates/payapp_result.html
var resultTemplateFS embed.FS

var resultPage = template.Must(template.ParseFS(resultTemplateFS, "templates/payapp_result.html"))

// PayappHandlerConfig holds what the receivers need from the process config.
type PayappHandlerConfig struct {
	FailurePolicy   string
	ContinuationURL string
	HomeURL         string
}

type PayappHandler struct {
	usecase usecase.IPaymentCallbackUseCase
	cfg     PayappHandlerConfig
}

func NewPayappHandler(uc usecase.IPaymentCallbackUseCase, cfg PayappHandlerConfig) *PayappHandler {
	if cfg.FailurePolicy == "" {
		cfg.FailurePolicy = config.FailurePolicyAck
	}
	return &PayappHandler{usecase: uc, cfg: cfg}
}

// degradedToken is answered when the callback could not be persisted. Under the
// ack policy payapp stops retrying; under retry it redelivers.
func (h *PayappHandler) degradedToken() string {
	if h.cfg.FailurePolicy == config.FailurePolicyRetry {
		return tokenFail
	}
	return tokenSuccess
}

// Feedback godoc
// @Summary      Payapp feedback receiver
// @Description  Server-to-server payment notification. Answers SUCCESS or FAIL as plain text.
// @Tags         payapp
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Param        var1    formData  string  true   "Practice application id"
// @Param        state   formData  string  false  "Payment state"
// @Param        mul_no  formData  string  false  "Payapp transaction number"
// @Success      200  {string}  string  "SUCCESS"
// @Failure      400  {string}  string  "FAIL"
// @Router       /v1/payapp/feedback [post]
func (h *PayappHandler) Feedback(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("[payapp][handler] feedback panic")
			h.writeToken(c, http.StatusOK, h.degradedToken())
		}
	}()

	values, err := callbackValues(c.Request)
	if err != nil {
		log.Error().Err(err).Msg("[payapp][handler] feedback body unreadable")
		h.writeToken(c, http.StatusOK, h.degradedToken())
		return
	}
	if c.Request.Method == http.MethodGet && len(values) == 0 {
		h.writeToken(c, http.StatusOK, tokenPing)
		return
	}

	cb := request.ParsePaymentCallback(values)
	if cb.CorrelationID == "" {
		log.Warn().Msg("[payapp][handler] feedback without var1")
		metrics.PayappCallbacks.WithLabelValues(string(entities.CallbackChannelFeedback), "invalid", "rejected").Inc()
		h.writeToken(c, http.StatusBadRequest, tokenFail)
		return
	}

	res, err := h.usecase.Reconcile(c.Request.Context(), entities.CallbackChannelFeedback, cb)
	observeCallback(entities.CallbackChannelFeedback, cb, res)
	switch {
	case errors.Is(err, entities.ErrMissingCorrelationID):
		h.writeToken(c, http.StatusBadRequest, tokenFail)
	case err != nil:
		log.Error().Err(err).Str("var1", cb.CorrelationID).Str("policy", h.cfg.FailurePolicy).Msg("[payapp][handler] feedback not persisted")
		h.writeToken(c, http.StatusOK, h.degradedToken())
	default:
		log.Info().Str("var1", cb.CorrelationID).Str("status", string(res.Status)).Msg("[payapp][handler] feedback processed")
		h.writeToken(c, http.StatusOK, tokenSuccess)
	}
}

type resultView struct {
	Title       string
	Heading     string
	Message     string
	RedirectURL string
	DelayMS     int64
}

// Result godoc
// @Summary      Payapp result page
// @Description  Browser return after checkout. Renders an HTML page that redirects back to the landing page.
// @Tags         payapp
// @Produce      html
// @Param        var1    query  string  false  "Practice application id"
// @Param        state   query  string  false  "Payment state"
// @Success      200  {string}  string  "HTML page"
// @Router       /v1/payapp/result [get]
func (h *PayappHandler) Result(c *gin.Context) {
	values, err := callbackValues(c.Request)
	if err != nil {
		log.Warn().Err(err).Msg("[payapp][handler] result body unreadable")
		values = c.Request.URL.Query()
	}
	cb := request.ParsePaymentCallback(values)
	outcome := cb.Outcome(entities.CallbackChannelResult)

	if cb.CorrelationID != "" {
		h.reconcileResult(c, cb)
	}

	view := h.resultView(outcome, cb.ErrorMessage)
	c.Header("Cache-Control", "no-store")
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := resultPage.Execute(c.Writer, view); err != nil {
		log.Error().Err(err).Msg("[payapp][handler] render result page")
	}
}

// reconcileResult is best effort; the page renders whatever happens here.
func (h *PayappHandler) reconcileResult(c *gin.Context, cb entities.PaymentCallback) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("var1", cb.CorrelationID).Msg("[payapp][handler] result reconcile panic")
		}
	}()
	res, err := h.usecase.Reconcile(c.Request.Context(), entities.CallbackChannelResult, cb)
	observeCallback(entities.CallbackChannelResult, cb, res)
	if err != nil {
		log.Error().Err(err).Str("var1", cb.CorrelationID).Msg("[payapp][handler] result reconcile failed")
	}
}

func (h *PayappHandler) resultView(outcome entities.CallbackOutcome, errorMessage string) resultView {
	switch outcome {
	case entities.CallbackOutcomeSuccess:
		return resultView{
			Title:       "결제 완료",
			Heading:     "결제가 완료되었습니다",
			Message:     "신청이 정상적으로 접수되었습니다. 잠시 후 다음 단계로 이동합니다.",
			RedirectURL: h.cfg.ContinuationURL,
			DelayMS:     successRedirectDelay.Milliseconds(),
		}
	case entities.CallbackOutcomeFailure:
		msg := strings.TrimSpace(errorMessage)
		if msg == "" {
			msg = defaultCancelMessage
		}
		return resultView{
			Title:       "결제 실패",
			Heading:     "결제가 완료되지 않았습니다",
			Message:     msg,
			RedirectURL: h.cfg.HomeURL,
			DelayMS:     failureRedirectDelay.Milliseconds(),
		}
	default:
		return resultView{
			Title:       "결제 확인 중",
			Heading:     "결제 결과를 확인하고 있습니다",
			Message:     "결제 결과는 확인되는 대로 반영됩니다. 잠시 후 다음 단계로 이동합니다.",
			RedirectURL: h.cfg.ContinuationURL,
			DelayMS:     successRedirectDelay.Milliseconds(),
		}
	}
}

func (h *PayappHandler) writeToken(c *gin.Context, status int, token string) {
	if c.Writer.Written() {
		return
	}
	c.Data(status, "text/plain; charset=utf-8", []byte(token))
}

// callbackValues decodes the body as url-encoded whatever the Content-Type
// and merges the query string after it, so body values win on Get.
func callbackValues(r *http.Request) (url.Values, error) {
	values := url.Values{}
	if r.Body != nil && r.Body != http.NoBody {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
		body, err := url.ParseQuery(strings.TrimSpace(string(raw)))
		if err != nil {
			return nil, err
		}
		for k, vs := range body {
			values[k] = append(values[k], vs...)
		}
	}
	for k, vs := range r.URL.Query() {
		values[k] = append(values[k], vs...)
	}
	return values, nil
}

func observeCallback(channel entities.CallbackChannel, cb entities.PaymentCallback, res usecase.ReconcileResult) {
	status := string(res.Status)
	if status == "" {
		status = "error"
	}
	metrics.PayappCallbacks.WithLabelValues(string(channel), string(cb.Outcome(channel)), status).Inc()
}
