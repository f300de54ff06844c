package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pointsclub/clubadmin/internal/auth"
	"github.com/pointsclub/clubadmin/internal/config"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/pointsclub/clubadmin/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubProvider struct {
	claims *auth.Claims
	err    error
}

func (p stubProvider) GetProvider() types.AuthProvider { return types.AuthProviderLocal }

func (p stubProvider) Login(context.Context, auth.AuthRequest) (*auth.AuthResponse, error) {
	return nil, errors.New("not used")
}

func (p stubProvider) ValidateToken(context.Context, string) (*auth.Claims, error) {
	return p.claims, p.err
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ierr.ErrorResponse {
	t.Helper()
	var resp ierr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
		details map[string]any
	}{
		{
			name:    "not_found",
			err:     ierr.NewError("branch b1 not found").WithHint("Branch not found").Mark(ierr.ErrNotFound),
			status:  http.StatusNotFound,
			code:    ierr.ErrCodeNotFound,
			message: "Branch not found",
		},
		{
			name: "details",
			err: ierr.NewError("no stock").
				WithHint("The product is out of stock").
				WithReportableDetails(map[string]any{"product_id": "prod_1"}).
				Mark(ierr.ErrInvalidOperation),
			status:  http.StatusBadRequest,
			code:    ierr.ErrCodeInvalidOperation,
			message: "The product is out of stock",
			details: map[string]any{"product_id": "prod_1"},
		},
		{
			name:    "unknown",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    ierr.ErrCodeSystemError,
			message: ierr.DefaultDisplayMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler(logger.NewNop()))
			r.GET("/", func(c *gin.Context) { _ = c.Error(tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, w.Code)
			resp := decodeError(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Error.Message)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.details, resp.Error.Details)
		})
	}
}

func TestAuthenticateMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		provider stubProvider
		status   int
		message  string
	}{
		{
			name:    "missing_header",
			status:  http.StatusUnauthorized,
			message: "Unauthorized",
		},
		{
			name:    "not_bearer",
			header:  "Basic abc",
			status:  http.StatusUnauthorized,
			message: "Invalid authorization header format",
		},
		{
			name:     "invalid_token",
			header:   "Bearer abc",
			provider: stubProvider{err: errors.New("bad signature")},
			status:   http.StatusUnauthorized,
			message:  "Invalid token",
		},
		{
			name:     "valid",
			header:   "Bearer abc",
			provider: stubProvider{claims: &auth.Claims{UserID: "user_1", Email: "a@example.com"}},
			status:   http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler(logger.NewNop()), AuthenticateMiddleware(tt.provider, logger.NewNop()))
			r.GET("/", func(c *gin.Context) {
				c.String(http.StatusOK, types.GetUserID(c.Request.Context()))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(types.HeaderAuthorization, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "user_1", w.Body.String())
				return
			}
			assert.Equal(t, tt.message, decodeError(t, w).Error.Message)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware)
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, types.GetRequestID(c.Request.Context()))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(types.HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(types.HeaderRequestID, "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Body.String())

	for _, bad := range []string{strings.Repeat("x", 65), "has space"} {
		req = httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(types.HeaderRequestID, bad)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.NotEqual(t, bad, w.Body.String())
		assert.NotEmpty(t, w.Body.String())
	}
}

func TestCORSMiddleware(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Server.AllowedOrigins = []string{"https://admin.example.com"}

	r := gin.New()
	r.Use(CORSMiddleware(cfg))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoginRateLimiter(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Auth.LoginRateLimit = config.LoginRateLimitConfig{RequestsPerMinute: 1, Burst: 2}
	limiter := NewLoginRateLimiter(cfg, logger.NewNop())

	r := gin.New()
	r.Use(ErrorHandler(logger.NewNop()), limiter.Middleware())
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)

	w := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code, "limits are per client")
}

func TestLoginRateLimiterDisabled(t *testing.T) {
	cfg := config.GetDefaultConfig()
	limiter := NewLoginRateLimiter(cfg, logger.NewNop())
	for i := 0; i < 100; i++ {
		require.True(t, limiter.Allow("10.0.0.1"))
	}
}
