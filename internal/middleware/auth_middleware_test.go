package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cadebeck-hr/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func authRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString(middleware.ContextUserID),
			"actor_id": middleware.ActorID(c),
			"role":     c.GetString(middleware.ContextRole),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	r := authRouter(testSecret)

	tests := []struct {
		name       string
		header     string
		cookie     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "valid bearer with employee",
			header: "Bearer " + signToken(t, testSecret, jwt.MapClaims{
				"user_id": "u1", "employee_id": "e1", "role": "payroll_officer",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusOK,
			wantBody:   `{"actor_id":"e1","role":"payroll_officer","user_id":"u1"}`,
		},
		{
			name: "cookie without employee falls back to user",
			cookie: signToken(t, testSecret, jwt.MapClaims{
				"user_id": "u2", "role": "hr_admin",
			}),
			wantStatus: http.StatusOK,
			wantBody:   `{"actor_id":"u2","role":"hr_admin","user_id":"u2"}`,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, "other", jwt.MapClaims{"user_id": "u1"}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired",
			header: "Bearer " + signToken(t, testSecret, jwt.MapClaims{
				"user_id": "u1", "exp": time.Now().Add(-time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing user id claim",
			header:     "Bearer " + signToken(t, testSecret, jwt.MapClaims{"role": "employee"}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_EmptySecretRejectsEveryToken(t *testing.T) {
	r := authRouter("")

	for name, secret := range map[string]string{"signed with empty key": "", "signed with other key": testSecret} {
		t.Run(name, func(t *testing.T) {
			token := signToken(t, secret, jwt.MapClaims{
				"user_id": "u1", "role": "super_admin",
				"exp": time.Now().Add(time.Hour).Unix(),
			})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
