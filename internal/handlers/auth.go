package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/middleware"
	"github.com/veraroam/ambassador-backend/internal/requestdata"
	"github.com/veraroam/ambassador-backend/internal/services"
)

const oauthStateCookieName = "oauth_state"

type AuthHandler struct {
	authService   services.AuthService
	oauthProvider services.OAuthProvider
	postLoginPath string
}

func NewAuthHandler(authService services.AuthService, oauthProvider services.OAuthProvider, postLoginPath string) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		oauthProvider: oauthProvider,
		postLoginPath: postLoginPath,
	}
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "code": "invalid_request"})
		return
	}
	token, principal, err := ah.authService.LoginWithPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		Fail(c, err)
		return
	}
	ah.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  principalPayload(principal),
	})
}

func (ah *AuthHandler) OAuthURL(c *gin.Context) {
	state := newState()
	c.SetCookie(oauthStateCookieName, state, 600, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"url": ah.oauthProvider.LoginURL(state)})
}

func (ah *AuthHandler) OAuthCallback(c *gin.Context) {
	state := c.Query("state")
	expected, err := c.Cookie(oauthStateCookieName)
	if err != nil || state == "" || state != expected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "oauth state mismatch", "code": "invalid_request"})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code", "code": "invalid_request"})
		return
	}
	profile, err := ah.oauthProvider.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "code": "invalid_credentials"})
		return
	}
	token, _, err := ah.authService.LoginWithProvider(c.Request.Context(), profile)
	if err != nil {
		Fail(c, err)
		return
	}
	ah.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, ah.postLoginPath)
}

// Session backs the page-level guard: it reports the same IsAdmin the
// middleware derives, so both enforcement layers share one predicate.
func (ah *AuthHandler) Session(c *gin.Context) {
	principal := requestdata.GetPrincipal(c.Request.Context())
	if principal == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          principalPayload(principal),
	})
}

func (ah *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ah *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(ah.authService.GetAccessTTL().Seconds())
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)
}

func principalPayload(p *requestdata.Principal) gin.H {
	return gin.H{
		"id":       p.UserID,
		"email":    p.Email,
		"name":     p.Name,
		"image":    p.Image,
		"is_admin": p.IsAdmin,
	}
}

func newState() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
