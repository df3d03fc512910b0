package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	principalKey = "principal"
	LoginPath    = "/login/"
)

type SessionResolver interface {
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

// Authenticate resolves the session cookie, if any, into a principal stored
// on the context. Unknown or expired sessions leave the request anonymous.
func Authenticate(resolver SessionResolver, cookieName string, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		p, err := resolver.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(principalKey, p)
		case errors.Is(err, domain.ErrSessionNotFound):
			c.SetCookie(cookieName, "", -1, "/", "", false, true)
		default:
			log.LogAttrs(c.Request.Context(), logger.WarnLevel, "session lookup failed",
				logger.String("error", err.Error()),
			)
		}

		c.Next()
	}
}

// PrincipalFrom returns the authenticated principal, or nil for anonymous requests.
func PrincipalFrom(c *ginext.Context) *domain.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*domain.Principal)
	return p
}

// RequireLogin redirects anonymous callers to the login page.
func RequireLogin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if PrincipalFrom(c) == nil {
			RedirectToLogin(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func RedirectToLogin(c *ginext.Context) {
	target := LoginURL(c.Request.URL.RequestURI())
	c.Header("Location", target)
	c.JSON(http.StatusSeeOther, ginext.H{"message": "Please log in to continue.", "location": target})
}

func LoginURL(next string) string {
	if next == "" {
		return LoginPath
	}
	return LoginPath + "?next=" + url.QueryEscape(next)
}
