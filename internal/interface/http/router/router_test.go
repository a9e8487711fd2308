package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/store"
	"github.com/xiebiao/bookshelf/internal/interface/alert"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

func newEngine(t *testing.T, opts Options, logger *zap.Logger) *gin.Engine {
	t.Helper()

	repo := store.NewBookStore(memory.New(0), "", nil)
	notifier := alert.NewNotifier(time.Hour)
	books := handler.NewBookHandler(
		appbook.NewSubmitBookUseCase(repo, notifier, nil, nil),
		appbook.NewDeleteBookUseCase(repo, notifier, nil, nil),
		appbook.NewLoadBooksUseCase(repo),
	)
	opts.Mode = gin.TestMode
	return New(opts, logger, books, handler.NewAlertHandler(notifier))
}

func serve(r *gin.Engine, method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Ping(t *testing.T) {
	r := newEngine(t, Options{}, zap.NewNop())

	w := serve(r, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"code":0,"message":"success","data":{"message":"pong","status":"healthy"}}`, w.Body.String())
}

func TestRouter_RequestLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newEngine(t, Options{}, zap.New(core))

	t.Run("生成请求ID", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/books", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
	})

	t.Run("沿用客户端的请求ID", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/api/v1/books", `{"title":"Dune","author":"Herbert","isbn":"1"}`,
			map[string]string{middleware.RequestIDHeader: "req-42"})
		assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
	})

	entries := logs.FilterMessage("请求完成").All()
	require.Len(t, entries, 2)
	fields := entries[1].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, http.MethodPost, fields["method"])
	assert.Equal(t, "/api/v1/books", fields["path"])
}

func TestRouter_Metrics(t *testing.T) {
	metrics.InitMetrics()
	r := newEngine(t, Options{MetricsEnabled: true}, zap.NewNop())

	serve(r, http.MethodDelete, "/api/v1/books/123", "", nil)

	w := serve(r, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `bookshelf_http_requests_total{method="DELETE",path="/api/v1/books/:isbn",status="200"}`)
	assert.Contains(t, body, "bookshelf_books_removed_total")
}

func TestRouter_OptionalRoutes(t *testing.T) {
	r := newEngine(t, Options{}, zap.NewNop())

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/metrics", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/swagger/doc.json", "", nil).Code)

	r = newEngine(t, Options{SwaggerEnabled: true}, zap.NewNop())
	w := serve(r, http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/books/{isbn}")
}
