package domain

type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleOrganizer   Role = "Organizer"
	RoleParticipant Role = "Participant"
)

// DefaultRole is assigned to every account created through signup.
const DefaultRole = RoleParticipant

var AllRoles = []Role{RoleAdmin, RoleOrganizer, RoleParticipant}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOrganizer, RoleParticipant:
		return true
	}
	return false
}

// Principal is the authenticated caller of a request. A nil *Principal is anonymous.
type Principal struct {
	UserID      string
	Username    string
	IsSuperuser bool
	Roles       []Role
}

func (p *Principal) HasRole(role Role) bool {
	if p == nil {
		return false
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
