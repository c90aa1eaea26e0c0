package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-cv-backend/internal/domain"
	"go-cv-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	r := gin.New()
	r.Use(AuthMiddleware(tokens))
	r.GET("/protected", func(c *gin.Context) {
		userID := c.GetInt64(string(domain.KeyUserID))
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	t.Run("Should reject a request without a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a forged token", func(t *testing.T) {
		forged := auth.NewTokenManager("other-secret", time.Hour)
		token, err := forged.Issue(1, "jane")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should pass a valid bearer token through", func(t *testing.T) {
		token, err := tokens.Issue(42, "jane")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
	})

	t.Run("Should accept the token from a cookie", func(t *testing.T) {
		token, err := tokens.Issue(7, "john")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
