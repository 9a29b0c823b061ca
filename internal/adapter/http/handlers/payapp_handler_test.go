package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"placement_service/internal/adapter/http/handlers/mocks"
	"placement_service/internal/config"
	"placement_service/internal/domain/entities"
	"placement_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

const (
	testContinuationURL = "https://landing.example.com/?payment=success&step=3"
	testHomeURL         = "https://landing.example.com/"
)

func newPayappRouter(uc usecase.IPaymentCallbackUseCase, policy string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPayappHandler(uc, PayappHandlerConfig{
		FailurePolicy:   policy,
		ContinuationURL: testContinuationURL,
		HomeURL:         testHomeURL,
	})
	r := gin.New()
	r.Any("/v1/payapp/feedback", h.Feedback)
	r.Any("/v1/payapp/result", h.Result)
	return r
}

// hasDelay matches the setTimeout delay; html/template pads JS numbers with spaces.
func hasDelay(body string, ms int) bool {
	return regexp.MustCompile(`\},\s*` + strconv.Itoa(ms) + `\s*\)`).MatchString(body)
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPayappHandler_Feedback(t *testing.T) {
	t.Run("missing var1 is rejected without reconcile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyAck)

		w := postForm(r, "/v1/payapp/feedback", url.Values{"state": {"1"}, "mul_no": {"TX1"}})

		if w.Code != http.StatusBadRequest || w.Body.String() != "FAIL" {
			t.Fatalf("expected 400 FAIL, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("paid callback answers SUCCESS", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyAck)

		uc.EXPECT().Reconcile(gomock.Any(), entities.CallbackChannelFeedback, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.CallbackChannel, cb entities.PaymentCallback) (usecase.ReconcileResult, error) {
				if cb.CorrelationID != "42" || cb.TransactionID != "TX1" || cb.State != "1" {
					t.Fatalf("unexpected callback: %+v", cb)
				}
				return usecase.ReconcileResult{Status: usecase.ReconcileStatusReconciled, Outcome: entities.CallbackOutcomeSuccess}, nil
			})

		w := postForm(r, "/v1/payapp/feedback", url.Values{"state": {"1"}, "mul_no": {"TX1"}, "var1": {"42"}})

		if w.Code != http.StatusOK || w.Body.String() != "SUCCESS" {
			t.Fatalf("expected 200 SUCCESS, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("notification failure still answers SUCCESS", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyRetry)

		uc.EXPECT().Reconcile(gomock.Any(), entities.CallbackChannelFeedback, gomock.Any()).
			Return(usecase.ReconcileResult{Status: usecase.ReconcileStatusReconciledNotificationFails}, nil)

		w := postForm(r, "/v1/payapp/feedback", url.Values{"state": {"1"}, "var1": {"42"}})

		if w.Code != http.StatusOK || w.Body.String() != "SUCCESS" {
			t.Fatalf("expected 200 SUCCESS, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("already paid and not found answer SUCCESS", func(t *testing.T) {
		for _, status := range []usecase.ReconcileStatus{usecase.ReconcileStatusAlreadyPaid, usecase.ReconcileStatusNotFound} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
			r := newPayappRouter(uc, config.FailurePolicyRetry)
			uc.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.ReconcileResult{Status: status}, nil)

			w := postForm(r, "/v1/payapp/feedback", url.Values{"state": {"0"}, "var1": {"42"}})
			if w.Code != http.StatusOK || w.Body.String() != "SUCCESS" {
				t.Fatalf("%s: expected 200 SUCCESS, got %d %q", status, w.Code, w.Body.String())
			}
		}
	})

	t.Run("persistence failure follows policy", func(t *testing.T) {
		cases := map[string]string{
			config.FailurePolicyAck:   "SUCCESS",
			config.FailurePolicyRetry: "FAIL",
		}
		for policy, want := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
			r := newPayappRouter(uc, policy)
			uc.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(usecase.ReconcileResult{Status: usecase.ReconcileStatusPersistenceFailed}, usecase.ErrPersistence)

			w := postForm(r, "/v1/payapp/feedback", url.Values{"state": {"1"}, "var1": {"42"}})
			if w.Code != http.StatusOK || w.Body.String() != want {
				t.Fatalf("policy %s: expected 200 %s, got %d %q", policy, want, w.Code, w.Body.String())
			}
		}
	})

	t.Run("panic answers the policy token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyRetry)
		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, entities.CallbackChannel, entities.PaymentCallback) (usecase.ReconcileResult, error) {
				panic("boom")
			})

		w := postForm(r, "/v1/payapp/feedback", url.Values{"state": {"1"}, "var1": {"42"}})
		if w.Code != http.StatusOK || w.Body.String() != "FAIL" {
			t.Fatalf("expected 200 FAIL, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("unreadable body answers the policy token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyAck)

		req := httptest.NewRequest(http.MethodPost, "/v1/payapp/feedback", nil)
		req.Body = failingReadCloser{}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "SUCCESS" {
			t.Fatalf("expected 200 SUCCESS, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("GET without params is a liveness check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyAck)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payapp/feedback", nil))

		if w.Code != http.StatusOK || w.Body.String() != "OK" {
			t.Fatalf("expected 200 OK, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("GET with var1 is processed like POST", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyAck)
		uc.EXPECT().Reconcile(gomock.Any(), entities.CallbackChannelFeedback, gomock.Any()).
			Return(usecase.ReconcileResult{Status: usecase.ReconcileStatusReconciled}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payapp/feedback?var1=42&mul_no=TX1", nil))

		if w.Code != http.StatusOK || w.Body.String() != "SUCCESS" {
			t.Fatalf("expected 200 SUCCESS, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("form body is read whatever the content type", func(t *testing.T) {
		for _, contentType := range []string{"", "text/plain", "application/json"} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
			r := newPayappRouter(uc, config.FailurePolicyRetry)
			uc.EXPECT().Reconcile(gomock.Any(), entities.CallbackChannelFeedback, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ entities.CallbackChannel, cb entities.PaymentCallback) (usecase.ReconcileResult, error) {
					if cb.CorrelationID != "42" || cb.TransactionID != "TX123" || cb.Amount.Decimal.IntPart() != 110000 {
						t.Fatalf("content type %q: unexpected callback %+v", contentType, cb)
					}
					return usecase.ReconcileResult{Status: usecase.ReconcileStatusReconciled}, nil
				})

			req := httptest.NewRequest(http.MethodPost, "/v1/payapp/feedback", strings.NewReader("state=1&mul_no=TX123&var1=42&price=110000"))
			if contentType != "" {
				req.Header.Set("Content-Type", contentType)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK || w.Body.String() != "SUCCESS" {
				t.Fatalf("content type %q: expected 200 SUCCESS, got %d %q", contentType, w.Code, w.Body.String())
			}
		}
	})

	t.Run("body values take precedence over the query string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyAck)
		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.CallbackChannel, cb entities.PaymentCallback) (usecase.ReconcileResult, error) {
				if cb.CorrelationID != "42" || cb.State != "0" {
					t.Fatalf("unexpected callback: %+v", cb)
				}
				return usecase.ReconcileResult{Status: usecase.ReconcileStatusReconciled}, nil
			})

		req := httptest.NewRequest(http.MethodPut, "/v1/payapp/feedback?var1=7&state=1", strings.NewReader("var1=42&state=0"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "SUCCESS" {
			t.Fatalf("expected 200 SUCCESS, got %d %q", w.Code, w.Body.String())
		}
	})
}

func TestPayappHandler_Result(t *testing.T) {
	t.Run("success redirects to the continuation url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyAck)
		uc.EXPECT().Reconcile(gomock.Any(), entities.CallbackChannelResult, gomock.Any()).
			Return(usecase.ReconcileResult{Status: usecase.ReconcileStatusReconciled}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payapp/result?state=1&var1=42&mul_no=TX1", nil))

		body := w.Body.String()
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(body, "결제가 완료되었습니다") || !strings.Contains(body, "step=3") || !hasDelay(body, 500) {
			t.Fatalf("unexpected success page: %s", body)
		}
		if !strings.Contains(body, "window.opener") {
			t.Fatalf("expected opener handling: %s", body)
		}
	})

	t.Run("failure shows the escaped message and goes home", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyAck)
		uc.EXPECT().Reconcile(gomock.Any(), entities.CallbackChannelResult, gomock.Any()).
			Return(usecase.ReconcileResult{}, usecase.ErrPersistence)

		w := postForm(r, "/v1/payapp/result", url.Values{"state": {"0"}, "var1": {"42"}, "errorMessage": {"<script>x</script>"}})

		body := w.Body.String()
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(body, "<script>x</script>") || !strings.Contains(body, "&lt;script&gt;x&lt;/script&gt;") {
			t.Fatalf("message not escaped: %s", body)
		}
		if !hasDelay(body, 3000) || strings.Contains(body, "step=3") {
			t.Fatalf("unexpected failure redirect: %s", body)
		}
	})

	t.Run("posted body without content type drives the page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyAck)
		uc.EXPECT().Reconcile(gomock.Any(), entities.CallbackChannelResult, gomock.Any()).
			Return(usecase.ReconcileResult{Status: usecase.ReconcileStatusReconciled}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/payapp/result", strings.NewReader("state=0&var1=42&errorMessage=limit")))

		body := w.Body.String()
		if !strings.Contains(body, "limit") || !hasDelay(body, 3000) {
			t.Fatalf("unexpected failure page: %s", body)
		}
	})

	t.Run("failure without message uses the default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyAck)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payapp/result?state=0", nil))

		if !strings.Contains(w.Body.String(), "결제가 취소되었습니다") {
			t.Fatalf("expected default cancel message: %s", w.Body.String())
		}
	})

	t.Run("indeterminate redirects like success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentCallbackUseCase(ctrl)
		r := newPayappRouter(uc, config.FailurePolicyAck)
		uc.EXPECT().Reconcile(gomock.Any(), entities.CallbackChannelResult, gomock.Any()).
			Return(usecase.ReconcileResult{Status: usecase.ReconcileStatusSkipped}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payapp/result?var1=42&mul_no=TX1", nil))

		body := w.Body.String()
		if !strings.Contains(body, "결제 결과를 확인하고 있습니다") || !strings.Contains(body, "step=3") || !hasDelay(body, 500) {
			t.Fatalf("unexpected indeterminate page: %s", body)
		}
	})
}
