package middleware

import (
	"net/http"

	"abstract-review-web/config"
	"abstract-review-web/session"

	"github.com/gin-gonic/gin"
)

// CookieName is the front-end session cookie.
const CookieName = "forum_session"

// Context keys set for downstream handlers.
const (
	KeySession = "session"
	KeyToken   = "token"
)

// RequireSession gates a route group behind a cached login of the given
// role. Fail closed: no cookie, unknown session, wrong role or an expired
// token all redirect to the login page before any data fetch happens.
func RequireSession(role, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err != nil || cookie == "" {
			redirectToLogin(c, loginPath)
			return
		}

		sess, err := config.Sessions.Get(cookie)
		if err != nil || sess.Role != role {
			clearCookie(c)
			redirectToLogin(c, loginPath)
			return
		}

		if session.TokenExpired(sess.Token) {
			_ = config.Sessions.Delete(sess.ID)
			clearCookie(c)
			redirectToLogin(c, loginPath)
			return
		}

		c.Set(KeySession, sess)
		c.Set(KeyToken, sess.Token)
		c.Next()
	}
}

// SessionFrom returns the session placed in the context by RequireSession.
func SessionFrom(c *gin.Context) *session.Session {
	if v, ok := c.Get(KeySession); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}

// TokenFrom returns the bearer token for the current request.
func TokenFrom(c *gin.Context) string {
	return c.GetString(KeyToken)
}

// SetSessionCookie attaches a session to the browser.
func SetSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, sessionID, 0, "/", "", false, true)
}

func clearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// ClearSessionCookie removes the session cookie (logout).
func ClearSessionCookie(c *gin.Context) {
	clearCookie(c)
}

func redirectToLogin(c *gin.Context, loginPath string) {
	c.Redirect(http.StatusSeeOther, loginPath)
	c.Abort()
}
