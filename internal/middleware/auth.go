package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/requestdata"
	"github.com/veraroam/ambassador-backend/internal/services"
)

const SessionCookieName = "session"

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, authService: authService}
}

// RequireSession guards the admin path prefix. It checks only that a
// decodable, unexpired session is present; the role check is a separate
// layer. Unauthenticated requests are redirected to loginPath and never
// reach a handler.
func (am *AuthMiddleware) RequireSession(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := am.authService.DecodeToken(extractToken(c))
		if err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Request = c.Request.WithContext(requestdata.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// RequireAuth is the API-facing variant: 401 JSON instead of a redirect.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := am.authService.DecodeToken(extractToken(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid session"})
			return
		}
		c.Request = c.Request.WithContext(requestdata.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// RequireAdmin runs after RequireAuth. The principal's IsAdmin was already
// derived through the shared predicate at token decode.
func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := requestdata.GetPrincipal(c.Request.Context())
		if principal == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid session"})
			return
		}
		if !principal.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// AttachSession decodes the session if one is present and attaches the
// principal, but never rejects the request. Used on endpoints that serve
// both signed-in and anonymous visitors.
func (am *AuthMiddleware) AttachSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if principal, err := am.authService.DecodeToken(extractToken(c)); err == nil {
			c.Request = c.Request.WithContext(requestdata.WithPrincipal(c.Request.Context(), principal))
		}
		c.Next()
	}
}

// extractToken accepts the session cookie or a bearer header, nothing
// else. Tokens in URLs would end up in access logs and Referer headers.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
