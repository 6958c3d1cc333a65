package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/premio-backend/internal/ai/provider/openrouter"
	"github.com/lk2023060901/premio-backend/internal/conf"
	contentbiz "github.com/lk2023060901/premio-backend/internal/content/biz"
	contentservice "github.com/lk2023060901/premio-backend/internal/content/service"
	credentialbiz "github.com/lk2023060901/premio-backend/internal/credential/biz"
	credentialdata "github.com/lk2023060901/premio-backend/internal/credential/data"
	credentialservice "github.com/lk2023060901/premio-backend/internal/credential/service"
	exportbiz "github.com/lk2023060901/premio-backend/internal/export/biz"
	exportservice "github.com/lk2023060901/premio-backend/internal/export/service"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/middleware"
	"github.com/lk2023060901/premio-backend/internal/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type countingLimiter struct{ n int }

func (l *countingLimiter) Allow(_ context.Context, _ string, limit, _ int) (bool, int, int64, error) {
	l.n++
	return l.n <= limit, 0, 0, nil
}

func newTestServer(t *testing.T, limiter middleware.Limiter) http.Handler {
	t.Helper()

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"content":"**done**"}}]}`)
	}))
	t.Cleanup(gateway.Close)

	cfg, err := conf.LoadConfig("")
	require.NoError(t, err)
	cfg.Server.Mode = gin.TestMode
	cfg.OpenRouter.BaseURL = gateway.URL
	cfg.RateLimit.MaxRequests = 3

	log := logger.NewNop()
	provider, err := openrouter.New(&cfg.OpenRouter)
	require.NoError(t, err)
	renderer, err := render.New(cfg.Render.Engine)
	require.NoError(t, err)

	credentials := credentialbiz.NewCredentialUseCase(credentialdata.NewMemoryRepo(), provider, log)

	srv := NewHTTPServer(cfg, log,
		contentservice.NewContentService(contentbiz.NewContentUseCase(provider, credentials, renderer, log), log),
		credentialservice.NewCredentialService(credentials, log),
		exportservice.NewExportService(exportbiz.NewExportUseCase(nil, log), log),
		limiter,
	)
	return srv.Handler()
}

func request(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(logger.HeaderClientID, "browser-1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h := newTestServer(t, nil)

	w := request(h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", gjson.Get(w.Body.String(), "data.status").String())
	assert.NotEmpty(t, w.Header().Get(logger.HeaderRequestID))
}

func TestRoutes(t *testing.T) {
	h := newTestServer(t, nil)

	w := request(h, http.MethodGet, "/api/v1/tools", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(h, http.MethodPost, "/api/v1/tools/keywords", `{"seed_keyword":"coffee"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(6000), gjson.Get(w.Body.String(), "code").Int())

	w = request(h, http.MethodPut, "/api/v1/settings/api-key", `{"api_key":"sk-or-v1-abcdef123456"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = request(h, http.MethodPost, "/api/v1/tools/seo-content?format=html", `{"prompt":"write"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "<p><strong>done</strong></p>\n", gjson.Get(w.Body.String(), "data.html").String())

	w = request(h, http.MethodGet, "/api/v1/settings/api-key", "")
	assert.Equal(t, "****3456", gjson.Get(w.Body.String(), "data.hint").String())

	w = request(h, http.MethodDelete, "/api/v1/settings/api-key", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(h, http.MethodPost, "/api/v1/exports", `{"tool":"keywords","content":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(h, http.MethodGet, "/api/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimitOnlyOnAPI(t *testing.T) {
	limiter := &countingLimiter{}
	h := newTestServer(t, limiter)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, request(h, http.MethodGet, "/api/v1/tools", "").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, request(h, http.MethodGet, "/api/v1/tools", "").Code)
	assert.Equal(t, http.StatusOK, request(h, http.MethodGet, "/health", "").Code)
}
