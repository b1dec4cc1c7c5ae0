package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/xiebiao/bookstore-api/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
	"github.com/xiebiao/bookstore-api/pkg/logger"
	"github.com/xiebiao/bookstore-api/pkg/metrics"
	"github.com/xiebiao/bookstore-api/pkg/response"
	"github.com/xiebiao/bookstore-api/pkg/tracing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf))

	r := gin.New()
	r.Use(Logger())
	var seen string
	r.GET("/books/:isbn", func(c *gin.Context) {
		seen = c.GetString(response.RequestIDKey)
		c.Status(http.StatusNotFound)
	})

	t.Run("生成请求ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/1", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, seen)
		assert.Contains(t, buf.String(), `"status":404`)
		assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
	})

	t.Run("沿用客户端请求ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/books/1", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", seen)
	})
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/customers/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	labels := map[string]string{"method": "GET", "path": "/customers/:id", "status": "200"}
	before := counterValue(t, metrics.HTTPRequestsTotal, labels)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers/7", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, before+1, counterValue(t, metrics.HTTPRequestsTotal, labels))

	unmatched := map[string]string{"method": "GET", "path": "unmatched", "status": "404"}
	before = counterValue(t, metrics.HTTPRequestsTotal, unmatched)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, before+1, counterValue(t, metrics.HTTPRequestsTotal, unmatched))
}

func TestTracing(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	tracing.Install(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var buf bytes.Buffer
	logger.Set(zerolog.New(&buf))

	r := gin.New()
	r.Use(Tracing())
	r.GET("/books/:isbn", func(c *gin.Context) {
		response.Error(c, apperrors.Wrap(errors.New("connection refused"), "查询图书失败"))
	})
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("5xx日志带trace_id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/1", nil))
		require.Equal(t, http.StatusInternalServerError, w.Code)

		ended := rec.Ended()
		require.NotEmpty(t, ended)
		span := ended[len(ended)-1]
		assert.Equal(t, "GET /books/:isbn", span.Name())
		assert.Equal(t, codes.Error, span.Status().Code)
		assert.Contains(t, buf.String(), `"trace_id":"`+span.SpanContext().TraceID().String()+`"`)
	})

	t.Run("延续上游traceparent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
		r.ServeHTTP(httptest.NewRecorder(), req)

		ended := rec.Ended()
		span := ended[len(ended)-1]
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", span.SpanContext().TraceID().String())
		assert.Equal(t, codes.Unset, span.Status().Code)
	})
}

func TestCORS(t *testing.T) {
	t.Run("指定来源", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS(config.CORSConfig{AllowOrigins: []string{"http://localhost:3000"}, MaxAge: time.Hour}))
		r.GET("/books/:isbn", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodOptions, "/books/1", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "GET")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/books/1", nil)
		req.Header.Set("Origin", "http://evil.example")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("通配符", func(t *testing.T) {
		r := gin.New()
		r.Use(CORS(config.CORSConfig{AllowOrigins: []string{"*"}}))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://anywhere.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func counterValue(t *testing.T, vec *prometheus.CounterVec, labels map[string]string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, vec.With(labels).Write(&m))
	return m.GetCounter().GetValue()
}
