package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
	"github.com/lk2023060901/premio-backend/internal/credential/biz"
	"github.com/lk2023060901/premio-backend/internal/credential/data"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{}

func (stubVerifier) VerifyKey(_ context.Context, credential string) error {
	switch credential {
	case "":
		return types.NewMissingCredentialError()
	case "sk-or-v1-valid-0001":
		return nil
	default:
		return types.ClassifyStatus(http.StatusUnauthorized, "")
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	svc := NewCredentialService(biz.NewCredentialUseCase(data.NewMemoryRepo(), stubVerifier{}, log), log)

	r := gin.New()
	r.Use(middleware.ClientID())
	g := r.Group("/settings/api-key")
	g.GET("", svc.GetStatus)
	g.PUT("", svc.Save)
	g.DELETE("", svc.Delete)
	g.POST("/verify", svc.Verify)
	return r
}

func do(t *testing.T, r http.Handler, method, path, clientID, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.Header.Set(logger.HeaderClientID, clientID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func TestCredentialLifecycle(t *testing.T) {
	r := setupRouter()

	code, resp := do(t, r, http.MethodGet, "/settings/api-key", "alice", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"configured":false}`, string(resp.Data))

	code, resp = do(t, r, http.MethodPut, "/settings/api-key", "alice", `{"api_key":" sk-or-v1-abcdef123456 "}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"configured":true,"hint":"****3456"}`, string(resp.Data))
	assert.NotContains(t, string(resp.Data), "sk-or-v1")

	// 其他调用方互不可见
	_, resp = do(t, r, http.MethodGet, "/settings/api-key", "bob", "")
	assert.JSONEq(t, `{"configured":false}`, string(resp.Data))

	code, _ = do(t, r, http.MethodDelete, "/settings/api-key", "alice", "")
	require.Equal(t, http.StatusOK, code)

	_, resp = do(t, r, http.MethodGet, "/settings/api-key", "alice", "")
	assert.JSONEq(t, `{"configured":false}`, string(resp.Data))
}

func TestSave_EmptyClears(t *testing.T) {
	r := setupRouter()

	do(t, r, http.MethodPut, "/settings/api-key", "", `{"api_key":"sk-or-v1-abcdef123456"}`)
	code, resp := do(t, r, http.MethodPut, "/settings/api-key", "", `{"api_key":""}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"configured":false}`, string(resp.Data))
}

func TestSave_MissingField(t *testing.T) {
	r := setupRouter()

	code, resp := do(t, r, http.MethodPut, "/settings/api-key", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, 2001, resp.Code)
}

func TestVerify(t *testing.T) {
	r := setupRouter()

	code, resp := do(t, r, http.MethodPost, "/settings/api-key/verify", "", `{"api_key":"sk-or-v1-valid-0001"}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"valid":true}`, string(resp.Data))

	code, resp = do(t, r, http.MethodPost, "/settings/api-key/verify", "", `{"api_key":"sk-or-v1-nope"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, 6001, resp.Code)
	assert.Equal(t, types.MessageInvalidCredential, resp.Message)

	// 空请求体校验已保存的凭证，未保存时提示缺少凭证
	code, resp = do(t, r, http.MethodPost, "/settings/api-key/verify", "", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, 6000, resp.Code)
	assert.Equal(t, types.MessageMissingCredential, resp.Message)

	do(t, r, http.MethodPut, "/settings/api-key", "", `{"api_key":"sk-or-v1-valid-0001"}`)
	code, _ = do(t, r, http.MethodPost, "/settings/api-key/verify", "", `{}`)
	assert.Equal(t, http.StatusOK, code)
}
