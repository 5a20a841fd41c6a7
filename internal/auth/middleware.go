package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	MsgUnauthenticated = "Oturum açmanız gerekiyor."
	MsgForbidden       = "Yetkisiz."
)

// PrincipalLoader resolves an admin id into the current principal.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, adminID string) (Principal, error)
}

// resolve reads the session cookie and loads the principal behind it.
func resolve(c *gin.Context, sessions *SessionManager, loader PrincipalLoader) (Principal, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return Principal{}, false
	}

	adminID, err := sessions.Parse(cookie)
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("rejected session cookie")
		return Principal{}, false
	}

	p, err := loader.LoadPrincipal(c.Request.Context(), adminID)
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Str("admin_id", adminID).Msg("session admin could not be loaded")
		return Principal{}, false
	}
	return p, true
}

// SessionRequired is a Gin middleware that validates the admin session cookie
// and stores the freshly loaded principal in the context.
func SessionRequired(sessions *SessionManager, loader PrincipalLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := resolve(c, sessions, loader)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgUnauthenticated})
			return
		}
		SetPrincipal(c, p)
		c.Next()
	}
}

// OptionalSession loads the principal when a valid session is present
// and lets anonymous requests through untouched.
func OptionalSession(sessions *SessionManager, loader PrincipalLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p, ok := resolve(c, sessions, loader); ok {
			SetPrincipal(c, p)
		}
		c.Next()
	}
}

// RequirePermission ensures the principal holds perm.
// It MUST be used after SessionRequired.
func RequirePermission(perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgUnauthenticated})
			return
		}
		if !p.Can(perm) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": MsgForbidden})
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin ensures the principal is a super admin.
// It MUST be used after SessionRequired.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MsgUnauthenticated})
			return
		}
		if !p.IsSuperAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": MsgForbidden})
			return
		}
		c.Next()
	}
}

// SetSessionCookie writes the session cookie (HttpOnly, SameSite=Lax).
func SetSessionCookie(c *gin.Context, token string, sessions *SessionManager, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(sessions.TTL().Seconds()), "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
