package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/premio-backend/internal/export/biz"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/middleware"
	"github.com/lk2023060901/premio-backend/internal/pkg/minio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type memoryStore struct{}

func (memoryStore) ObjectName(name string) string { return name }

func (memoryStore) PutText(_ context.Context, objectName, _ string, content string) (minio.UploadInfo, error) {
	return minio.UploadInfo{Key: objectName, Size: int64(len(content))}, nil
}

func (memoryStore) PresignedGetObject(_ context.Context, objectName string, _ time.Duration, _ url.Values) (*url.URL, error) {
	return url.Parse("http://storage.local/" + objectName)
}

func (memoryStore) PresignExpiry() time.Duration { return time.Minute }

func (memoryStore) RemoveObject(context.Context, string) error { return nil }

func newRouter(store biz.ObjectStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	svc := NewExportService(biz.NewExportUseCase(store, log), log)

	r := gin.New()
	r.Use(middleware.ClientID())
	r.POST("/exports", svc.Create)
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/exports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(logger.HeaderClientID, "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateExport(t *testing.T) {
	r := newRouter(memoryStore{})

	w := post(r, `{"tool":"seo-article","subject":"Go Generics","content":"# Go"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := w.Body.String()
	assert.Equal(t, "seo-article-go-generics.txt", gjson.Get(body, "data.file_name").String())
	assert.True(t, strings.HasPrefix(gjson.Get(body, "data.object").String(), "alice/"))
	assert.True(t, strings.HasPrefix(gjson.Get(body, "data.url").String(), "http://storage.local/alice/"))

	_, err := time.Parse(time.RFC3339, gjson.Get(body, "data.expires_at").String())
	assert.NoError(t, err)
}

func TestCreateExport_InvalidInput(t *testing.T) {
	r := newRouter(memoryStore{})

	for _, body := range []string{`{}`, `{"tool":"keywords"}`, `{"tool":"nope","content":"x"}`, `{"tool":"keywords","content":"   "}`} {
		w := post(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, int64(4001), gjson.Get(w.Body.String(), "code").Int(), body)
	}
}

func TestCreateExport_Disabled(t *testing.T) {
	r := newRouter(nil)

	w := post(r, `{"tool":"keywords","content":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(4000), gjson.Get(w.Body.String(), "code").Int())
}

type failingStore struct{ memoryStore }

func (failingStore) PutText(context.Context, string, string, string) (minio.UploadInfo, error) {
	return minio.UploadInfo{}, errors.New("dial tcp 10.0.0.9:9000: connection refused")
}

func TestCreateExport_StorageFailure(t *testing.T) {
	r := newRouter(failingStore{})

	w := post(r, `{"tool":"keywords","subject":"coffee","content":"espresso"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, int64(4002), gjson.Get(w.Body.String(), "code").Int())
	assert.Equal(t, "Export failed", gjson.Get(w.Body.String(), "message").String())
	assert.NotContains(t, w.Body.String(), "10.0.0.9")
}
