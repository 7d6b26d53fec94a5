package analyses

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"resume-assistant/internal/shared/metrics"
	"resume-assistant/internal/shared/storage/object/local"
)

type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeGenerator) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

func setupRouter(t *testing.T, gen *fakeGenerator, maxUploadBytes int64) (*gin.Engine, *local.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := local.New(t.TempDir())
	require.NoError(t, err)

	m := metrics.New(nil)
	handler := NewHandler(NewService(gen, m), store, maxUploadBytes, m)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router, store
}

func multipartFile(t *testing.T, field, fileName string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", "application/octet-stream")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func postAnalyze(router http.Handler, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}
