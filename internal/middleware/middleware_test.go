package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bents-gateway/internal/handler"
	gateway_errors "bents-gateway/pkg/errors"
	"bents-gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &logger.Logger{Logger: zap.New(core)}, logs
}

func TestRequestIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen, _ = c.Request.Context().Value(logger.RequestIdKey).(string)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestErrorHandler_LogsKindWithRequestID(t *testing.T) {
	l, logs := observedLogger()
	r := gin.New()
	r.Use(RequestIDMiddleware(), ErrorHandler(l))
	r.GET("/x", func(c *gin.Context) {
		_ = c.Error(&gateway_errors.DownstreamError{Method: "GET", Path: "/documents", Err: errors.New("connection refused")})
		c.Set(handler.ErrorKindKey, handler.ErrorKindDownstream)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while fetching documents."})
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "fetching documents")

	entries := logs.FilterLevelExact(zap.ErrorLevel).All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "(downstream)")
	assert.Contains(t, entries[0].Message, "connection refused")
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
}

func TestErrorHandler_BindErrorsAreWarnings(t *testing.T) {
	l, logs := observedLogger()
	r := gin.New()
	r.Use(ErrorHandler(l))
	r.POST("/x", func(c *gin.Context) {
		_ = c.Error(errors.New("unexpected EOF")).SetType(gin.ErrorTypeBind)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON body."})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
	assert.Equal(t, 0, logs.FilterLevelExact(zap.ErrorLevel).Len())
}

func TestErrorHandler_WritesFallbackResponse(t *testing.T) {
	l, _ := observedLogger()
	r := gin.New()
	r.Use(ErrorHandler(l))
	r.GET("/x", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"An error occurred while processing your request."}`, w.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	l, logs := observedLogger()
	r := gin.New()
	r.Use(RecoveryMiddleware(l))
	r.GET("/x", func(c *gin.Context) {
		panic("nil map")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"An error occurred while processing your request."}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessageSnippet("panic serving").Len())
}

func TestLoggingMiddleware(t *testing.T) {
	l, logs := observedLogger()
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggingMiddleware(l))
	r.GET("/documents", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	req.Header.Set(RequestIDHeader, "req-9")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("GET /documents").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "req-9", fields["request_id"])
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware("http://localhost:5173"))
	r.GET("/documents", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/documents", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/documents", nil)
	req.Header.Set("Origin", "http://other.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
