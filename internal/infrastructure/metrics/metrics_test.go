package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	m := &dto.Metric{}
	require.NoError(t, c.Write(m))
	return m.GetCounter().GetValue()
}

func TestObserveNotification(t *testing.T) {
	sent := counterValue(t, Notifications.WithLabelValues("slack", ResultSent))
	failed := counterValue(t, Notifications.WithLabelValues("slack", ResultFailed))

	ObserveNotification("slack", nil)
	ObserveNotification("slack", errors.New("boom"))

	assert.Equal(t, sent+1, counterValue(t, Notifications.WithLabelValues("slack", ResultSent)))
	assert.Equal(t, failed+1, counterValue(t, Notifications.WithLabelValues("slack", ResultFailed)))
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	obs, err := HTTPRequestDuration.GetMetricWithLabelValues(http.MethodGet, "/ping", "200")
	require.NoError(t, err)
	m := &dto.Metric{}
	require.NoError(t, obs.(prometheus.Histogram).Write(m))
	assert.GreaterOrEqual(t, m.GetHistogram().GetSampleCount(), uint64(1))
}
