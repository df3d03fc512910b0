package domain

import "time"

const (
	DefaultEventImage = "events/defaults/event_default.png"

	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	EventCount  int    `json:"event_count"`
}

type CategoryInput struct {
	Name        string
	Description string
}

type Event struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	Location      string    `json:"location"`
	CategoryID    string    `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	OrganizerID   string    `json:"organizer_id"`
	Image         string    `json:"image"`
	AttendeeCount int       `json:"attendee_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type EventDetails struct {
	Event     Event      `json:"event"`
	Attendees []Attendee `json:"attendees"`
}

type EventInput struct {
	Name        string
	Description string
	Date        string
	Time        string
	Location    string
	CategoryID  string
	Image       string
}

// EventFilter narrows List. From and To are inclusive calendar dates.
type EventFilter struct {
	Query      string
	CategoryID string
	From       *time.Time
	To         *time.Time
}

// DeletionImpact describes what a confirmed delete would remove.
type DeletionImpact struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Events int    `json:"events"`
	RSVPs  int    `json:"rsvps"`
}
