package domain

import "time"

const DefaultProfilePicture = "users/defaults/profile_default.png"

type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	PasswordHash   string     `json:"-"`
	PhoneNumber    string     `json:"phone_number"`
	ProfilePicture string     `json:"profile_picture"`
	TelegramChatID *int64     `json:"telegram_chat_id"`
	IsActive       bool       `json:"is_active"`
	IsSuperuser    bool       `json:"is_superuser"`
	Roles          []Role     `json:"roles"`
	LastLogin      *time.Time `json:"last_login"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DisplayName mirrors how greetings address a user: first name when set.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}

func (u *User) Principal() *Principal {
	roles := make([]Role, len(u.Roles))
	copy(roles, u.Roles)
	return &Principal{
		UserID:      u.ID,
		Username:    u.Username,
		IsSuperuser: u.IsSuperuser,
		Roles:       roles,
	}
}

type SignupInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password1 string
	Password2 string
}

type ProfileInput struct {
	Email          string
	FirstName      string
	LastName       string
	PhoneNumber    string
	ProfilePicture string
	TelegramChatID *int64
}

type Session struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type LoginResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

type CleanupResult struct {
	PendingAccounts int64
	Sessions        int64
}
