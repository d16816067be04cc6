package session

import (
	"time"

	"github.com/GunarsK-portfolio/recipe-service/internal/config"
	"github.com/gin-gonic/gin"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// CookieHelper manages the session cookie.
type CookieHelper struct {
	config config.CookieConfig
}

// NewCookieHelper creates a new cookie helper with the given configuration.
func NewCookieHelper(config config.CookieConfig) *CookieHelper {
	return &CookieHelper{config: config}
}

// SetSessionCookie writes the signed session token.
func (h *CookieHelper) SetSessionCookie(c *gin.Context, token string, maxAge time.Duration) {
	h.setCookie(c, token, int(maxAge.Seconds()))
}

// ClearSessionCookie expires the session cookie.
func (h *CookieHelper) ClearSessionCookie(c *gin.Context) {
	h.setCookie(c, "", -1)
}

// GetSessionToken retrieves the session token from the request cookie.
func (h *CookieHelper) GetSessionToken(c *gin.Context) string {
	token, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return token
}

func (h *CookieHelper) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.config.SameSite)
	c.SetCookie(
		CookieName,
		value,
		maxAge,
		h.config.Path,
		h.config.Domain,
		h.config.Secure,
		true, // httpOnly - always true for session cookies
	)
}
