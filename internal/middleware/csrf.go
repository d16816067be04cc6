// Package middleware provides HTTP middleware for the recipe service.
package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// CSRFConfig holds configuration for CSRF protection middleware.
type CSRFConfig struct {
	// AllowedOrigins should match the CORS origins. Empty disables the check.
	AllowedOrigins []string
}

// originSet holds normalized origins.
type originSet map[string]struct{}

func newOriginSet(origins []string) originSet {
	set := make(originSet, len(origins))
	for _, origin := range origins {
		set[normalizeOrigin(origin)] = struct{}{}
	}
	return set
}

func (s originSet) has(origin string) bool {
	if origin == "" {
		return false
	}
	_, ok := s[normalizeOrigin(origin)]
	return ok
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(origin), "/")
}

// CSRF returns middleware that checks Origin, then Referer, on requests that
// can change state. The session cookie rides along on every request to the
// API, so signup, login, logout and recipe creation must come from a known
// page.
func CSRF(config CSRFConfig) gin.HandlerFunc {
	if len(config.AllowedOrigins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	allowed := newOriginSet(config.AllowedOrigins)

	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		if origin := c.GetHeader("Origin"); origin != "" {
			if !allowed.has(origin) {
				abortCSRF(c, "invalid origin")
				return
			}
			c.Next()
			return
		}

		if referer := c.GetHeader("Referer"); referer != "" {
			if !allowed.has(extractOrigin(referer)) {
				abortCSRF(c, "invalid referer")
				return
			}
			c.Next()
			return
		}

		abortCSRF(c, "missing origin")
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func abortCSRF(c *gin.Context, reason string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"error": "CSRF validation failed: " + reason,
	})
}

// extractOrigin reduces a URL to scheme://host[:port], or "" if it has neither.
func extractOrigin(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host
}
