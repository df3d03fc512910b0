package domain

import "time"

type RSVP struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

type RSVPStatus string

const (
	RSVPRegistered        RSVPStatus = "registered"
	RSVPAlreadyRegistered RSVPStatus = "already_registered"
)

type RSVPOutcome struct {
	Status RSVPStatus
	RSVP   *RSVP
	Event  *Event
}

type Attendee struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	RSVPAt    time.Time `json:"rsvp_at"`
}

// UserRSVP is an RSVP of the current user joined with its event.
type UserRSVP struct {
	RSVP  RSVP  `json:"rsvp"`
	Event Event `json:"event"`
}
