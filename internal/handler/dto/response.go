package dto

import (
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type EventResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	CategoryID    string `json:"category_id"`
	CategoryName  string `json:"category_name"`
	OrganizerID   string `json:"organizer_id"`
	Image         string `json:"image"`
	AttendeeCount int    `json:"attendee_count"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type AttendeeResponse struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	RSVPAt    string `json:"rsvp_at"`
}

type EventDetailsResponse struct {
	Event     EventResponse      `json:"event"`
	Attendees []AttendeeResponse `json:"attendees"`
}

type EventFormResponse struct {
	Event      *EventResponse     `json:"event,omitempty"`
	Categories []CategoryResponse `json:"categories"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	EventCount  int    `json:"event_count"`
}

type DeletionImpactResponse struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Events int    `json:"events"`
	RSVPs  int    `json:"rsvps"`
}

type RSVPResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	RSVPID  string        `json:"rsvp_id,omitempty"`
	Event   EventResponse `json:"event"`
}

type UserRSVPResponse struct {
	RSVPID    string        `json:"rsvp_id"`
	CreatedAt string        `json:"created_at"`
	Event     EventResponse `json:"event"`
}

type UserResponse struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	PhoneNumber    string   `json:"phone_number"`
	ProfilePicture string   `json:"profile_picture"`
	TelegramChatID *int64   `json:"telegram_chat_id,omitempty"`
	IsActive       bool     `json:"is_active"`
	IsSuperuser    bool     `json:"is_superuser"`
	Roles          []string `json:"roles"`
	LastLogin      string   `json:"last_login,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type AdminDashboardResponse struct {
	Events      domain.EventCounts `json:"events"`
	Users       domain.UserCounts  `json:"users"`
	TotalRSVPs  int                `json:"total_rsvps"`
	TodayEvents []EventResponse    `json:"today_events"`
}

type OrganizerDashboardResponse struct {
	Events      domain.EventCounts `json:"events"`
	TotalRSVPs  int                `json:"total_rsvps"`
	TodayEvents []EventResponse    `json:"today_events"`
}

type ParticipantDashboardResponse struct {
	TotalRSVPs  int                `json:"total_rsvps"`
	Upcoming    []UserRSVPResponse `json:"upcoming"`
	TodayEvents []UserRSVPResponse `json:"today_events"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		Date:          e.Date.Format(domain.DateLayout),
		Time:          e.Time,
		Location:      e.Location,
		CategoryID:    e.CategoryID,
		CategoryName:  e.CategoryName,
		OrganizerID:   e.OrganizerID,
		Image:         e.Image,
		AttendeeCount: e.AttendeeCount,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventResponses(events []*domain.Event) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventResponse(e))
	}
	return resp
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	attendees := make([]AttendeeResponse, 0, len(d.Attendees))
	for _, a := range d.Attendees {
		attendees = append(attendees, AttendeeResponse{
			UserID:    a.UserID,
			Username:  a.Username,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			RSVPAt:    a.RSVPAt.Format(time.RFC3339),
		})
	}

	return EventDetailsResponse{
		Event:     ToEventResponse(&d.Event),
		Attendees: attendees,
	}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		EventCount:  c.EventCount,
	}
}

func ToCategoryResponses(categories []*domain.Category) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, ToCategoryResponse(c))
	}
	return resp
}

func ToDeletionImpactResponse(d *domain.DeletionImpact) DeletionImpactResponse {
	return DeletionImpactResponse{
		Type:   d.Type,
		ID:     d.ID,
		Name:   d.Name,
		Events: d.Events,
		RSVPs:  d.RSVPs,
	}
}

func ToRSVPResponse(o *domain.RSVPOutcome) RSVPResponse {
	resp := RSVPResponse{
		Status: string(o.Status),
		Event:  ToEventResponse(o.Event),
	}
	if o.RSVP != nil {
		resp.RSVPID = o.RSVP.ID
	}
	if o.Status == domain.RSVPAlreadyRegistered {
		resp.Message = "You have already RSVP'd to this event."
	} else {
		resp.Message = "RSVP successful!"
	}
	return resp
}

func ToUserRSVPResponses(rsvps []*domain.UserRSVP) []UserRSVPResponse {
	resp := make([]UserRSVPResponse, 0, len(rsvps))
	for _, r := range rsvps {
		resp = append(resp, UserRSVPResponse{
			RSVPID:    r.RSVP.ID,
			CreatedAt: r.RSVP.CreatedAt.Format(time.RFC3339),
			Event:     ToEventResponse(&r.Event),
		})
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}

	resp := UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		PhoneNumber:    u.PhoneNumber,
		ProfilePicture: u.ProfilePicture,
		TelegramChatID: u.TelegramChatID,
		IsActive:       u.IsActive,
		IsSuperuser:    u.IsSuperuser,
		Roles:          roles,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		resp.LastLogin = u.LastLogin.Format(time.RFC3339)
	}
	return resp
}

func ToUserResponses(users []*domain.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, ToUserResponse(u))
	}
	return resp
}

func ToAdminDashboardResponse(d *domain.AdminDashboard) AdminDashboardResponse {
	return AdminDashboardResponse{
		Events:      d.Events,
		Users:       d.Users,
		TotalRSVPs:  d.TotalRSVPs,
		TodayEvents: ToEventResponses(d.TodayEvents),
	}
}

func ToOrganizerDashboardResponse(d *domain.OrganizerDashboard) OrganizerDashboardResponse {
	return OrganizerDashboardResponse{
		Events:      d.Events,
		TotalRSVPs:  d.TotalRSVPs,
		TodayEvents: ToEventResponses(d.TodayEvents),
	}
}

func ToParticipantDashboardResponse(d *domain.ParticipantDashboard) ParticipantDashboardResponse {
	return ParticipantDashboardResponse{
		TotalRSVPs:  d.TotalRSVPs,
		Upcoming:    ToUserRSVPResponses(d.Upcoming),
		TodayEvents: ToUserRSVPResponses(d.TodayEvents),
	}
}
