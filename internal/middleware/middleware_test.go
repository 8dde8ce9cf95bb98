package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"couponscan/internal/models"
	"couponscan/internal/utils"
	"couponscan/pkg/logger"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestIDMiddleware(), LoggingMiddleware(logger.NewNop()), CORSMiddleware())
	r.GET("/owner", AuthRequired("secret"), RoleRequired(models.RoleBusinessOwner), func(c *gin.Context) {
		c.String(http.StatusOK, "%d", c.GetInt64(ContextUserID))
	})
	return r
}

func get(r http.Handler, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/owner", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	r := newRouter()
	owner, _, _ := utils.GenerateToken("5", "BUSINESS_OWNER", "o@x.co", "secret", time.Now(), time.Hour)
	customer, _, _ := utils.GenerateToken("6", "CUSTOMER", "c@x.co", "secret", time.Now(), time.Hour)
	forged, _, _ := utils.GenerateToken("5", "BUSINESS_OWNER", "o@x.co", "other", time.Now(), time.Hour)
	expired, _, _ := utils.GenerateToken("5", "BUSINESS_OWNER", "o@x.co", "secret", time.Now().Add(-2*time.Hour), time.Hour)

	tests := []struct {
		name string
		auth string
		code int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Token " + owner, http.StatusUnauthorized},
		{"forged", "Bearer " + forged, http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong role", "Bearer " + customer, http.StatusForbidden},
		{"ok", "Bearer " + owner, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.auth)
			if w.Code != tt.code {
				t.Fatalf("code = %d, want %d (%s)", w.Code, tt.code, w.Body.String())
			}
			if tt.code == http.StatusOK && w.Body.String() != "5" {
				t.Fatalf("user id = %q", w.Body.String())
			}
		})
	}
}

func TestRequestIDEchoed(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/owner", nil)
	req.Header.Set("X-Request-ID", "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") != "abc" {
		t.Fatalf("request id = %q", w.Header().Get("X-Request-ID"))
	}

	if w := get(r, ""); len(w.Header().Get("X-Request-ID")) != 36 {
		t.Fatalf("generated id = %q", w.Header().Get("X-Request-ID"))
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter()
	req := httptest.NewRequest(http.MethodOptions, "/owner", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("code = %d, headers = %v", w.Code, w.Header())
	}
}
