package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/birdfeed/birdfeed/domain"
)

const viewerKey = "viewer"

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, err := viewerFromHeader(c, secret)
		if err != nil || !viewer.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": domain.ErrUnauthorized.Error()})
			return
		}
		c.Set(viewerKey, viewer)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the viewer when a bearer token is
// present and falls back to the anonymous viewer when it is not.
// A present but invalid token is still rejected.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Set(viewerKey, domain.AnonymousViewer())
			c.Next()
			return
		}

		viewer, err := viewerFromHeader(c, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": domain.ErrUnauthorized.Error()})
			return
		}
		c.Set(viewerKey, viewer)
		c.Next()
	}
}

// Viewer returns the viewer resolved by the auth middleware, or the
// anonymous viewer when no middleware ran.
func Viewer(c *gin.Context) domain.Viewer {
	val, exists := c.Get(viewerKey)
	if !exists {
		return domain.AnonymousViewer()
	}
	viewer, ok := val.(domain.Viewer)
	if !ok {
		return domain.AnonymousViewer()
	}
	return viewer
}

func viewerFromHeader(c *gin.Context, secret string) (domain.Viewer, error) {
	header := c.GetHeader("Authorization")
	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenStr == "" {
		return domain.AnonymousViewer(), domain.ErrUnauthorized
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return domain.AnonymousViewer(), domain.ErrUnauthorized
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return domain.AnonymousViewer(), domain.ErrUnauthorized
	}

	return domain.AuthenticatedViewer(sub), nil
}
