package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupMiddlewareTest(logger *zap.Logger) (*httptest.ResponseRecorder, *gin.Engine) {
	w := httptest.NewRecorder()
	_, testServer := gin.CreateTestContext(w)
	testServer.Use(RequestID(), RequestLogger(logger))
	testServer.GET("/test", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(RequestIDKey))
	})
	testServer.GET("/fail", func(ctx *gin.Context) {
		ctx.Status(http.StatusInternalServerError)
	})
	return w, testServer
}

func Test_RequestID__should_generate_id(t *testing.T) {
	w, testServer := setupMiddlewareTest(zap.NewNop())

	testServer.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}

func Test_RequestID__should_reuse_valid_incoming_id(t *testing.T) {
	w, testServer := setupMiddlewareTest(zap.NewNop())
	incoming := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, incoming)
	testServer.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
}

func Test_RequestID__should_replace_invalid_incoming_id(t *testing.T) {
	w, testServer := setupMiddlewareTest(zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	testServer.ServeHTTP(w, req)

	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func Test_RequestLogger__should_log_request(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	w, testServer := setupMiddlewareTest(zap.New(core))

	testServer.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), entries[0].ContextMap()["status"])
	assert.Equal(t, "/fail", entries[0].ContextMap()["path"])
}
