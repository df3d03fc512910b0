package dto

import "github.com/brinto-swe/event-management-system/internal/domain"

// Requests bind from JSON or urlencoded forms.

type SignupRequest struct {
	Username  string `json:"username" form:"username"`
	Email     string `json:"email" form:"email"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Password1 string `json:"password1" form:"password1"`
	Password2 string `json:"password2" form:"password2"`
}

func (r SignupRequest) ToInput() domain.SignupInput {
	return domain.SignupInput{
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password1: r.Password1,
		Password2: r.Password2,
	}
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Next     string `json:"next" form:"next"`
}

type ProfileRequest struct {
	Email          string `json:"email" form:"email"`
	FirstName      string `json:"first_name" form:"first_name"`
	LastName       string `json:"last_name" form:"last_name"`
	PhoneNumber    string `json:"phone_number" form:"phone_number"`
	ProfilePicture string `json:"profile_picture" form:"profile_picture"`
	TelegramChatID *int64 `json:"telegram_chat_id" form:"telegram_chat_id"`
}

func (r ProfileRequest) ToInput() domain.ProfileInput {
	return domain.ProfileInput{
		Email:          r.Email,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		PhoneNumber:    r.PhoneNumber,
		ProfilePicture: r.ProfilePicture,
		TelegramChatID: r.TelegramChatID,
	}
}

// EventRequest keeps date and time as text so the service can report
// malformed values per field.
type EventRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	Date        string `json:"date" form:"date"`
	Time        string `json:"time" form:"time"`
	Location    string `json:"location" form:"location"`
	Category    string `json:"category" form:"category"`
	Image       string `json:"image" form:"image"`
}

func (r EventRequest) ToInput() domain.EventInput {
	return domain.EventInput{
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		Location:    r.Location,
		CategoryID:  r.Category,
		Image:       r.Image,
	}
}

type EventFilterQuery struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	From     string `form:"from"`
	To       string `form:"to"`
}

type CategoryRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

func (r CategoryRequest) ToInput() domain.CategoryInput {
	return domain.CategoryInput{Name: r.Name, Description: r.Description}
}

type DeleteRequest struct {
	Confirm bool `json:"confirm" form:"confirm"`
}

type RoleRequest struct {
	Role string `json:"role" form:"role" binding:"required"`
}
