package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/handler/dto"
	hmocks "github.com/brinto-swe/event-management-system/internal/handler/mocks"
	"github.com/brinto-swe/event-management-system/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const cookieName = "sessionid"

type mocksSet struct {
	account    *hmocks.MockAccountSvc
	users      *hmocks.MockUserSvc
	events     *hmocks.MockEventSvc
	categories *hmocks.MockCategorySvc
	rsvps      *hmocks.MockRSVPSvc
	dashboards *hmocks.MockDashboardSvc
}

// sessions maps cookie values to principals for the test router.
type sessions map[string]*domain.Principal

func (s sessions) Authenticate(_ context.Context, token string) (*domain.Principal, error) {
	if p, ok := s[token]; ok {
		return p, nil
	}
	return nil, domain.ErrSessionNotFound
}

var (
	organizerPrincipal   = &domain.Principal{UserID: uuid.NewString(), Username: "org", Roles: []domain.Role{domain.RoleOrganizer}}
	participantPrincipal = &domain.Principal{UserID: uuid.NewString(), Username: "pat", Roles: []domain.Role{domain.RoleParticipant}}
	adminPrincipal       = &domain.Principal{UserID: uuid.NewString(), Username: "adm", Roles: []domain.Role{domain.RoleAdmin}}
)

func setupRouter(t *testing.T) (*mocksSet, http.Handler) {
	t.Helper()
	m := &mocksSet{
		account:    hmocks.NewMockAccountSvc(t),
		users:      hmocks.NewMockUserSvc(t),
		events:     hmocks.NewMockEventSvc(t),
		categories: hmocks.NewMockCategorySvc(t),
		rsvps:      hmocks.NewMockRSVPSvc(t),
		dashboards: hmocks.NewMockDashboardSvc(t),
	}

	h := NewHandler(m.account, m.users, m.events, m.categories, m.rsvps, m.dashboards,
		SessionCookie{Name: cookieName, TTL: time.Hour})

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	r := ginext.New("test")
	r.Use(middleware.Authenticate(sessions{
		"org": organizerPrincipal,
		"pat": participantPrincipal,
		"adm": adminPrincipal,
	}, cookieName, log))

	r.GET("/", h.Home)
	r.POST("/signup/", h.Signup)
	r.GET("/activate/:uid/:token/", h.Activate)
	r.POST("/login/", h.Login)
	r.POST("/logout/", h.Logout)
	r.GET("/post-login-redirect/", h.PostLoginRedirect)
	r.GET("/events/", h.ListEvents)
	r.GET("/events/create/", h.CreateEventForm)
	r.POST("/events/create/", h.CreateEvent)
	r.GET("/events/:id/", h.GetEvent)
	r.GET("/events/:id/edit/", h.EditEventForm)
	r.POST("/events/:id/edit/", h.UpdateEvent)
	r.GET("/events/:id/delete/", h.DeleteEventConfirm)
	r.POST("/events/:id/delete/", h.DeleteEvent)
	r.POST("/events/:id/rsvp/", h.RSVP)
	r.GET("/my-rsvps/", h.MyRSVPs)
	r.POST("/categories/create/", h.CreateCategory)
	r.POST("/categories/:id/delete/", h.DeleteCategory)
	r.GET("/dashboard/admin/", h.AdminDashboard)
	r.POST("/users/:id/role/", h.SetUserRole)
	r.POST("/profile/", h.UpdateProfile)

	return m, r
}

func do(r http.Handler, method, target, session string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: session})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:          uuid.NewString(),
		Name:        "Go Meetup",
		Date:        time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC),
		Time:        "18:30",
		Location:    "Dhaka",
		OrganizerID: organizerPrincipal.UserID,
	}
}

// --- Accounts ---

func TestHandler_Signup_RedirectsToLogin(t *testing.T) {
	m, r := setupRouter(t)

	m.account.EXPECT().Signup(mock.Anything, domain.SignupInput{
		Username: "alice", Email: "a@example.com", Password1: "s3cret-pass", Password2: "s3cret-pass",
	}).Return(&domain.User{ID: uuid.NewString()}, nil)

	w := do(r, http.MethodPost, "/signup/", "", url.Values{
		"username": {"alice"}, "email": {"a@example.com"},
		"password1": {"s3cret-pass"}, "password2": {"s3cret-pass"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
}

func TestHandler_Signup_ValidationError(t *testing.T) {
	m, r := setupRouter(t)

	verr := domain.NewValidationError()
	verr.Add("password2", "Passwords do not match.")
	m.account.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, verr)

	w := do(r, http.MethodPost, "/signup/", "", url.Values{"username": {"alice"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Passwords do not match.", decodeError(t, w).Fields["password2"])
}

func TestHandler_Activate(t *testing.T) {
	m, r := setupRouter(t)

	m.account.EXPECT().Activate(mock.Anything, "dWlk", "good-token").Return(&domain.User{IsActive: true}, nil)
	m.account.EXPECT().Activate(mock.Anything, "dWlk", "bad-token").Return(nil, domain.ErrInvalidActivationToken)

	w := do(r, http.MethodGet, "/activate/dWlk/good-token/", "", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))

	w = do(r, http.MethodGet, "/activate/dWlk/bad-token/", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_SetsCookieAndRedirectsToDashboard(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: uuid.NewString(), Username: "org", IsActive: true, Roles: []domain.Role{domain.RoleOrganizer}}
	m.account.EXPECT().Login(mock.Anything, "org", "pw").
		Return(&domain.LoginResult{User: user, Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	w := do(r, http.MethodPost, "/login/", "", url.Values{"username": {"org"}, "password": {"pw"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/organizer/", w.Header().Get("Location"))
	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, cookieName+"=tok")
	assert.Contains(t, cookie, "HttpOnly")
}

func TestHandler_Login_HonoursLocalNextOnly(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: uuid.NewString(), IsActive: true, Roles: []domain.Role{domain.RoleParticipant}}
	m.account.EXPECT().Login(mock.Anything, "pat", "pw").
		Return(&domain.LoginResult{User: user, Token: "tok"}, nil)

	w := do(r, http.MethodPost, "/login/", "", url.Values{"username": {"pat"}, "password": {"pw"}, "next": {"/my-rsvps/"}})
	assert.Equal(t, "/my-rsvps/", w.Header().Get("Location"))

	w = do(r, http.MethodPost, "/login/", "", url.Values{"username": {"pat"}, "password": {"pw"}, "next": {"//evil.example"}})
	assert.Equal(t, "/dashboard/participant/", w.Header().Get("Location"))
}

func TestHandler_Login_Failures(t *testing.T) {
	m, r := setupRouter(t)

	m.account.EXPECT().Login(mock.Anything, "pending", "pw").Return(nil, domain.ErrAccountInactive)

	w := do(r, http.MethodPost, "/login/", "", url.Values{"username": {"pending"}, "password": {"pw"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodPost, "/login/", "", url.Values{"username": {"x"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	m, r := setupRouter(t)

	m.account.EXPECT().Logout(mock.Anything, "pat").Return(nil)

	w := do(r, http.MethodPost, "/logout/", "pat", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), cookieName+"=;")
}

func TestHandler_HomeAndPostLoginRedirect(t *testing.T) {
	_, r := setupRouter(t)

	assert.Equal(t, "/events/", do(r, http.MethodGet, "/", "", nil).Header().Get("Location"))
	assert.Equal(t, "/dashboard/admin/", do(r, http.MethodGet, "/", "adm", nil).Header().Get("Location"))
	assert.Equal(t, "/dashboard/participant/", do(r, http.MethodGet, "/post-login-redirect/", "pat", nil).Header().Get("Location"))

	w := do(r, http.MethodGet, "/post-login-redirect/", "", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login/?next="))
}

// --- Events ---

func TestHandler_ListEvents_PassesFilter(t *testing.T) {
	m, r := setupRouter(t)
	catID := uuid.NewString()
	from := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	m.events.EXPECT().List(mock.Anything, domain.EventFilter{Query: "go", CategoryID: catID, From: &from}).
		Return([]*domain.Event{sampleEvent()}, nil)

	w := do(r, http.MethodGet, "/events/?q=go&category="+catID+"&from=2030-01-01", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2030-05-01", resp[0].Date)
}

func TestHandler_ListEvents_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := do(r, http.MethodGet, "/events/?to=yesterday", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Fields, "to")
}

func TestHandler_GetEvent(t *testing.T) {
	m, r := setupRouter(t)
	event := sampleEvent()

	m.events.EXPECT().GetDetails(mock.Anything, event.ID).Return(&domain.EventDetails{
		Event:     *event,
		Attendees: []domain.Attendee{{UserID: participantPrincipal.UserID, Username: "pat"}},
	}, nil)

	w := do(r, http.MethodGet, "/events/"+event.ID+"/", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, event.ID, resp.Event.ID)
	assert.Len(t, resp.Attendees, 1)
}

func TestHandler_GetEvent_InvalidAndMissing(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.NewString()

	m.events.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/events/not-a-uuid/", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/events/"+id+"/", "", nil).Code)
}

func TestHandler_CreateEvent(t *testing.T) {
	m, r := setupRouter(t)
	event := sampleEvent()

	m.events.EXPECT().Create(mock.Anything, organizerPrincipal, domain.EventInput{
		Name: "Go Meetup", Date: "2030-05-01", Time: "18:30", Location: "Dhaka", CategoryID: "c1",
	}).Return(event, nil)

	w := do(r, http.MethodPost, "/events/create/", "org", url.Values{
		"name": {"Go Meetup"}, "date": {"2030-05-01"}, "time": {"18:30"}, "location": {"Dhaka"}, "category": {"c1"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/events/"+event.ID+"/", w.Header().Get("Location"))
}

func TestHandler_CreateEvent_AccessErrors(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().Create(mock.Anything, (*domain.Principal)(nil), mock.Anything).Return(nil, domain.ErrUnauthenticated)
	m.events.EXPECT().Create(mock.Anything, participantPrincipal, mock.Anything).
		Return(nil, permissionDenied())

	w := do(r, http.MethodPost, "/events/create/", "", url.Values{"name": {"x"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login/?next=%2Fevents%2Fcreate%2F", w.Header().Get("Location"))

	w = do(r, http.MethodPost, "/events/create/", "pat", url.Values{"name": {"x"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func permissionDenied() error {
	return errors.Join(domain.ErrPermissionDenied, errors.New("requires organizer"))
}

func TestHandler_DeleteEvent_RequiresConfirmation(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.NewString()

	m.events.EXPECT().Delete(mock.Anything, organizerPrincipal, id).Return(nil)

	w := do(r, http.MethodPost, "/events/"+id+"/delete/", "org", url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.events.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)

	w = do(r, http.MethodPost, "/events/"+id+"/delete/", "org", url.Values{"confirm": {"true"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/events/", w.Header().Get("Location"))
}

func TestHandler_DeleteEventConfirm(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.NewString()

	m.events.EXPECT().DeletePreview(mock.Anything, organizerPrincipal, id).
		Return(&domain.DeletionImpact{Type: "Event", ID: id, Name: "Meetup", RSVPs: 3}, nil)

	w := do(r, http.MethodGet, "/events/"+id+"/delete/", "org", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.DeletionImpactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.RSVPs)
}

func TestHandler_EditEventForm_OwnerWithoutEditorRole(t *testing.T) {
	m, r := setupRouter(t)
	event := sampleEvent()

	m.events.EXPECT().GetForEdit(mock.Anything, participantPrincipal, event.ID).Return(event, nil)
	m.events.EXPECT().FormOptions(mock.Anything, participantPrincipal).Return(nil, permissionDenied())

	w := do(r, http.MethodGet, "/events/"+event.ID+"/edit/", "pat", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.EventFormResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Event)
	assert.Empty(t, resp.Categories)
}

// --- RSVP ---

func TestHandler_RSVP_FirstAndRepeat(t *testing.T) {
	m, r := setupRouter(t)
	event := sampleEvent()

	m.rsvps.EXPECT().Register(mock.Anything, participantPrincipal, event.ID).
		Return(&domain.RSVPOutcome{Status: domain.RSVPRegistered, RSVP: &domain.RSVP{ID: "r1"}, Event: event}, nil).Once()
	m.rsvps.EXPECT().Register(mock.Anything, participantPrincipal, event.ID).
		Return(&domain.RSVPOutcome{Status: domain.RSVPAlreadyRegistered, Event: event}, nil).Once()

	w := do(r, http.MethodPost, "/events/"+event.ID+"/rsvp/", "pat", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.RSVPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "registered", resp.Status)

	w = do(r, http.MethodPost, "/events/"+event.ID+"/rsvp/", "pat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "already_registered", resp.Status)
}

func TestHandler_RSVP_Anonymous(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.NewString()

	m.rsvps.EXPECT().Register(mock.Anything, (*domain.Principal)(nil), id).Return(nil, domain.ErrUnauthenticated)

	w := do(r, http.MethodPost, "/events/"+id+"/rsvp/", "", nil)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login/?next="))
}

func TestHandler_MyRSVPs(t *testing.T) {
	m, r := setupRouter(t)

	m.rsvps.EXPECT().ListMine(mock.Anything, participantPrincipal).
		Return([]*domain.UserRSVP{{RSVP: domain.RSVP{ID: "r1"}, Event: *sampleEvent()}}, nil)

	w := do(r, http.MethodGet, "/my-rsvps/", "pat", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.UserRSVPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "r1", resp[0].RSVPID)
}

// --- Categories, users, dashboards ---

func TestHandler_CreateCategory_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	verr := domain.NewValidationError()
	verr.Add("name", "Category with this Name already exists.")
	m.categories.EXPECT().Create(mock.Anything, organizerPrincipal, domain.CategoryInput{Name: "Music"}).Return(nil, verr)

	w := do(r, http.MethodPost, "/categories/create/", "org", url.Values{"name": {"Music"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Fields, "name")
}

func TestHandler_DeleteCategory(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.NewString()

	m.categories.EXPECT().Delete(mock.Anything, adminPrincipal, id).Return(nil)

	w := do(r, http.MethodPost, "/categories/"+id+"/delete/", "adm", url.Values{"confirm": {"true"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/categories/", w.Header().Get("Location"))
}

func TestHandler_SetUserRole(t *testing.T) {
	m, r := setupRouter(t)
	id := uuid.NewString()

	m.users.EXPECT().SetRole(mock.Anything, adminPrincipal, id, domain.RoleOrganizer).
		Return(&domain.User{ID: id, Roles: []domain.Role{domain.RoleOrganizer}}, nil)

	w := do(r, http.MethodPost, "/users/"+id+"/role/", "adm", url.Values{"role": {"Organizer"}})

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Organizer"}, resp.Roles)
}

func TestHandler_AdminDashboard(t *testing.T) {
	m, r := setupRouter(t)

	m.dashboards.EXPECT().Admin(mock.Anything, adminPrincipal).Return(&domain.AdminDashboard{
		Events:     domain.EventCounts{Total: 4, Upcoming: 3, Past: 1},
		TotalRSVPs: 7,
	}, nil)
	m.dashboards.EXPECT().Admin(mock.Anything, organizerPrincipal).Return(nil, permissionDenied())

	w := do(r, http.MethodGet, "/dashboard/admin/", "adm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.AdminDashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Events.Total)
	assert.Equal(t, 7, resp.TotalRSVPs)
	assert.NotNil(t, resp.TodayEvents)

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/dashboard/admin/", "org", nil).Code)
}

func TestHandler_UpdateProfile(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().UpdateProfile(mock.Anything, participantPrincipal, domain.ProfileInput{
		Email: "pat@example.com", FirstName: "Pat",
	}).Return(&domain.User{ID: participantPrincipal.UserID}, nil)

	w := do(r, http.MethodPost, "/profile/", "pat", url.Values{"email": {"pat@example.com"}, "first_name": {"Pat"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/profile/", w.Header().Get("Location"))
}

func TestHandler_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	m.rsvps.EXPECT().ListMine(mock.Anything, participantPrincipal).Return(nil, errors.New("db down"))

	w := do(r, http.MethodGet, "/my-rsvps/", "pat", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w).Error)
}
