// Package session owns the browser-facing half of authentication: the
// cookie that carries the opaque session token.
package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/rentdesk/internal/config"
)

const DefaultCookieName = "_sid"

// Manager reads and writes the session cookie. The Secure flag follows
// deployment config so local development over plain HTTP still works.
type Manager struct {
	cookieName string
	secure     bool
}

func NewManager(cfg config.Config) *Manager {
	return &Manager{
		cookieName: DefaultCookieName,
		secure:     cfg.AuthCookieSecure,
	}
}

func (m *Manager) CookieName() string { return m.cookieName }

// ReadToken returns the raw session token from the request cookie, if any.
func (m *Manager) ReadToken(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(m.cookieName)
	if err != nil || strings.TrimSpace(raw) == "" {
		return "", false
	}
	return raw, true
}

// Set writes the session cookie with an expiry matching the server-side
// session row, so browser and store age out together.
func (m *Manager) Set(c *gin.Context, token string, expiresAt time.Time) {
	m.write(c, token, int(time.Until(expiresAt).Seconds()))
}

// Clear expires the cookie client side. Server-side revocation is the
// auth service's job; Clear alone does not invalidate the session row.
func (m *Manager) Clear(c *gin.Context) {
	m.write(c, "", -1)
}

func (m *Manager) write(c *gin.Context, value string, maxAge int) {
	if maxAge < -1 {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
