package handler

import (
	"net/http"
	"strings"

	"github.com/brinto-swe/event-management-system/internal/access"
	"github.com/brinto-swe/event-management-system/internal/handler/dto"
	"github.com/brinto-swe/event-management-system/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

var signupFields = []string{"username", "email", "first_name", "last_name", "password1", "password2"}

func (h *Handler) Home(c *ginext.Context) {
	if p := middleware.PrincipalFrom(c); p != nil {
		c.Header("Location", access.LandingPath(p))
		c.Status(http.StatusSeeOther)
		return
	}
	c.Header("Location", "/events/")
	c.Status(http.StatusSeeOther)
}

func (h *Handler) SignupForm(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"fields": signupFields})
}

func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if !bind(c, &req) {
		return
	}

	if _, err := h.accountService.Signup(c.Request.Context(), req.ToInput()); err != nil {
		h.handleError(c, err)
		return
	}

	redirect(c, middleware.LoginPath, "A confirmation email has been sent. Please check your email.")
}

func (h *Handler) Activate(c *ginext.Context) {
	uid := c.Param("uid")
	token := c.Param("token")

	if _, err := h.accountService.Activate(c.Request.Context(), uid, token); err != nil {
		h.handleError(c, err)
		return
	}

	redirect(c, middleware.LoginPath, "Your account has been activated. You can now log in.")
}

func (h *Handler) LoginForm(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{
		"fields": []string{"username", "password"},
		"next":   safeNext(c.Query("next")),
	})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if !bind(c, &req) {
		return
	}

	res, err := h.accountService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, res.Token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)

	next := safeNext(req.Next)
	if next == "" {
		next = access.LandingPath(res.User.Principal())
	}
	redirect(c, next, "Welcome back, "+res.User.DisplayName()+"!")
}

func (h *Handler) Logout(c *ginext.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil {
		if err = h.accountService.Logout(c.Request.Context(), token); err != nil {
			h.handleError(c, err)
			return
		}
	}

	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	redirect(c, middleware.LoginPath, "You have been logged out.")
}

func (h *Handler) PostLoginRedirect(c *ginext.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		middleware.RedirectToLogin(c)
		return
	}
	c.Header("Location", access.LandingPath(p))
	c.Status(http.StatusSeeOther)
}

// safeNext accepts only local absolute paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}
