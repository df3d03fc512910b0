package domain

type EventCounts struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
}

type UserCounts struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Participants int `json:"participants"`
	Organizers   int `json:"organizers"`
	Admins       int `json:"admins"`
}

type AdminDashboard struct {
	Events      EventCounts `json:"events"`
	Users       UserCounts  `json:"users"`
	TotalRSVPs  int         `json:"total_rsvps"`
	TodayEvents []*Event    `json:"today_events"`
}

type OrganizerDashboard struct {
	Events      EventCounts `json:"events"`
	TotalRSVPs  int         `json:"total_rsvps"`
	TodayEvents []*Event    `json:"today_events"`
}

type ParticipantDashboard struct {
	TotalRSVPs  int         `json:"total_rsvps"`
	Upcoming    []*UserRSVP `json:"upcoming"`
	TodayEvents []*UserRSVP `json:"today_events"`
}
