package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birdfeed/birdfeed/domain"
	"github.com/birdfeed/birdfeed/internal/rest/middleware"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func serve(handler gin.HandlerFunc, authHeader string, mw gin.HandlerFunc) (*httptest.ResponseRecorder, domain.Viewer) {
	gin.SetMode(gin.TestMode)

	var viewer domain.Viewer
	r := gin.New()
	r.GET("/whoami", mw, func(c *gin.Context) {
		viewer = middleware.Viewer(c)
		handler(c)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(rec, req)
	return rec, viewer
}

func ok(c *gin.Context) { c.Status(http.StatusOK) }

func TestAuthMiddleware(t *testing.T) {
	valid := signToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	t.Run("valid token", func(t *testing.T) {
		rec, viewer := serve(ok, "Bearer "+valid, middleware.AuthMiddleware(testSecret))

		assert.Equal(t, http.StatusOK, rec.Code)
		viewerID, authed := viewer.ID()
		assert.True(t, authed)
		assert.Equal(t, "u1", viewerID)
	})

	t.Run("missing header", func(t *testing.T) {
		rec, _ := serve(ok, "", middleware.AuthMiddleware(testSecret))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		forged := signToken(t, "other-secret", jwt.MapClaims{
			"sub": "u1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		rec, _ := serve(ok, "Bearer "+forged, middleware.AuthMiddleware(testSecret))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := signToken(t, testSecret, jwt.MapClaims{
			"sub": "u1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		rec, _ := serve(ok, "Bearer "+expired, middleware.AuthMiddleware(testSecret))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing subject", func(t *testing.T) {
		noSub := signToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		rec, _ := serve(ok, "Bearer "+noSub, middleware.AuthMiddleware(testSecret))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Run("no header resolves anonymous", func(t *testing.T) {
		rec, viewer := serve(ok, "", middleware.OptionalAuthMiddleware(testSecret))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, viewer.Authenticated())
	})

	t.Run("valid token resolves viewer", func(t *testing.T) {
		valid := signToken(t, testSecret, jwt.MapClaims{
			"sub": "u1",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		rec, viewer := serve(ok, "Bearer "+valid, middleware.OptionalAuthMiddleware(testSecret))

		assert.Equal(t, http.StatusOK, rec.Code)
		viewerID, authed := viewer.ID()
		assert.True(t, authed)
		assert.Equal(t, "u1", viewerID)
	})

	t.Run("present but invalid token is rejected", func(t *testing.T) {
		rec, _ := serve(ok, "Bearer garbage", middleware.OptionalAuthMiddleware(testSecret))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestViewerWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.False(t, middleware.Viewer(c).Authenticated())
}
