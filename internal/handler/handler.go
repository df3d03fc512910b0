package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/handler/dto"
	"github.com/brinto-swe/event-management-system/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type AccountSvc interface {
	Signup(ctx context.Context, in domain.SignupInput) (*domain.User, error)
	Activate(ctx context.Context, uid, token string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)
	Logout(ctx context.Context, token string) error
}

type UserSvc interface {
	GetProfile(ctx context.Context, actor *domain.Principal) (*domain.User, error)
	UpdateProfile(ctx context.Context, actor *domain.Principal, in domain.ProfileInput) (*domain.User, error)
	List(ctx context.Context, actor *domain.Principal) ([]*domain.User, error)
	SetRole(ctx context.Context, actor *domain.Principal, userID string, role domain.Role) (*domain.User, error)
}

type EventSvc interface {
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	FormOptions(ctx context.Context, actor *domain.Principal) ([]*domain.Category, error)
	Create(ctx context.Context, actor *domain.Principal, in domain.EventInput) (*domain.Event, error)
	GetForEdit(ctx context.Context, actor *domain.Principal, id string) (*domain.Event, error)
	Update(ctx context.Context, actor *domain.Principal, id string, in domain.EventInput) (*domain.Event, error)
	DeletePreview(ctx context.Context, actor *domain.Principal, id string) (*domain.DeletionImpact, error)
	Delete(ctx context.Context, actor *domain.Principal, id string) error
}

type CategorySvc interface {
	List(ctx context.Context, actor *domain.Principal) ([]*domain.Category, error)
	Get(ctx context.Context, actor *domain.Principal, id string) (*domain.Category, error)
	Create(ctx context.Context, actor *domain.Principal, in domain.CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, actor *domain.Principal, id string, in domain.CategoryInput) (*domain.Category, error)
	DeletePreview(ctx context.Context, actor *domain.Principal, id string) (*domain.DeletionImpact, error)
	Delete(ctx context.Context, actor *domain.Principal, id string) error
}

type RSVPSvc interface {
	Register(ctx context.Context, actor *domain.Principal, eventID string) (*domain.RSVPOutcome, error)
	ListMine(ctx context.Context, actor *domain.Principal) ([]*domain.UserRSVP, error)
}

type DashboardSvc interface {
	Admin(ctx context.Context, actor *domain.Principal) (*domain.AdminDashboard, error)
	Organizer(ctx context.Context, actor *domain.Principal) (*domain.OrganizerDashboard, error)
	Participant(ctx context.Context, actor *domain.Principal) (*domain.ParticipantDashboard, error)
}

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type Handler struct {
	accountService   AccountSvc
	userService      UserSvc
	eventService     EventSvc
	categoryService  CategorySvc
	rsvpService      RSVPSvc
	dashboardService DashboardSvc
	cookie           SessionCookie
}

func NewHandler(
	accountService AccountSvc,
	userService UserSvc,
	eventService EventSvc,
	categoryService CategorySvc,
	rsvpService RSVPSvc,
	dashboardService DashboardSvc,
	cookie SessionCookie,
) *Handler {
	return &Handler{
		accountService:   accountService,
		userService:      userService,
		eventService:     eventService,
		categoryService:  categoryService,
		rsvpService:      rsvpService,
		dashboardService: dashboardService,
		cookie:           cookie,
	}
}

func (h *Handler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, ginext.H{"status": "ok"})
}

// redirect answers with 303 and a message for the client to display.
func redirect(c *ginext.Context, location, message string) {
	c.Header("Location", location)
	c.JSON(http.StatusSeeOther, ginext.H{"message": message, "location": location})
}

// pathID reads a uuid path parameter, answering 400 when it is malformed.
func pathID(c *ginext.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return "", false
	}
	return id, true
}

func bind(c *ginext.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		middleware.RedirectToLogin(c)

	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "You do not have permission to perform this action."})

	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: verr.Fields})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrCategoryNameTaken),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrAccountInactive):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidActivationToken),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
