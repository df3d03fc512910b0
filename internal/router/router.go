package router

import (
	"net/http"

	"github.com/brinto-swe/event-management-system/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Health(c *ginext.Context)
	Home(c *ginext.Context)

	SignupForm(c *ginext.Context)
	Signup(c *ginext.Context)
	Activate(c *ginext.Context)
	LoginForm(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	PostLoginRedirect(c *ginext.Context)

	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEventForm(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	EditEventForm(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEventConfirm(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	RSVP(c *ginext.Context)
	MyRSVPs(c *ginext.Context)

	ListCategories(c *ginext.Context)
	CreateCategory(c *ginext.Context)
	EditCategoryForm(c *ginext.Context)
	UpdateCategory(c *ginext.Context)
	DeleteCategoryConfirm(c *ginext.Context)
	DeleteCategory(c *ginext.Context)

	AdminDashboard(c *ginext.Context)
	OrganizerDashboard(c *ginext.Context)
	ParticipantDashboard(c *ginext.Context)

	ListUsers(c *ginext.Context)
	SetUserRole(c *ginext.Context)
	Profile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
}

// InitRouter registers the route table. auth resolves the session on every
// request; routes in the login group additionally redirect anonymous callers.
func InitRouter(mode string, h Handler, metrics http.Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	router.GET("/health", h.Health)
	if metrics != nil {
		router.GET("/metrics", func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	site := router.Group("/", auth)
	{
		site.GET("/", h.Home)

		// Accounts
		site.GET("/signup/", h.SignupForm)
		site.POST("/signup/", h.Signup)
		site.GET("/activate/:uid/:token/", h.Activate)
		site.GET("/login/", h.LoginForm)
		site.POST("/login/", h.Login)

		// Events
		site.GET("/events/", h.ListEvents)
		site.GET("/events/:id/", h.GetEvent)
	}

	member := site.Group("/", middleware.RequireLogin())
	{
		member.POST("/logout/", h.Logout)
		member.GET("/post-login-redirect/", h.PostLoginRedirect)

		member.GET("/events/create/", h.CreateEventForm)
		member.POST("/events/create/", h.CreateEvent)
		member.GET("/events/:id/edit/", h.EditEventForm)
		member.POST("/events/:id/edit/", h.UpdateEvent)
		member.GET("/events/:id/delete/", h.DeleteEventConfirm)
		member.POST("/events/:id/delete/", h.DeleteEvent)
		member.POST("/events/:id/rsvp/", h.RSVP)
		member.GET("/my-rsvps/", h.MyRSVPs)

		// Categories
		member.GET("/categories/", h.ListCategories)
		member.POST("/categories/create/", h.CreateCategory)
		member.GET("/categories/:id/edit/", h.EditCategoryForm)
		member.POST("/categories/:id/edit/", h.UpdateCategory)
		member.GET("/categories/:id/delete/", h.DeleteCategoryConfirm)
		member.POST("/categories/:id/delete/", h.DeleteCategory)

		// Dashboards
		member.GET("/dashboard/admin/", h.AdminDashboard)
		member.GET("/dashboard/organizer/", h.OrganizerDashboard)
		member.GET("/dashboard/participant/", h.ParticipantDashboard)

		// Users
		member.GET("/users/", h.ListUsers)
		member.POST("/users/:id/role/", h.SetUserRole)
		member.GET("/profile/", h.Profile)
		member.POST("/profile/", h.UpdateProfile)
	}

	return router
}
