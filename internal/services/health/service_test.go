package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewService().RegisterRoutes(r)

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: `{"message":"Backend is running"}`},
		{path: "/health", want: `{"ok":true}`},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

		require.Equal(t, http.StatusOK, w.Code, tt.path)
		assert.JSONEq(t, tt.want, w.Body.String(), tt.path)
	}
}
