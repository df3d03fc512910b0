// Package access decides which actions a principal may perform.
//
// Decisions are computed from the principal as loaded for the current
// request and are never cached: role memberships can change between
// requests.
package access

import (
	"fmt"

	"github.com/brinto-swe/event-management-system/internal/domain"
)

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Err converts a denial into ErrUnauthenticated or ErrPermissionDenied.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	if d.Reason == reasonAnonymous {
		return domain.ErrUnauthenticated
	}
	return fmt.Errorf("%w: %s", domain.ErrPermissionDenied, d.Reason)
}

const reasonAnonymous = "login required"

// Authorize allows superusers unconditionally, never allows anonymous
// principals, and otherwise allows iff the principal holds one of the
// required roles. With no required roles any authenticated principal passes.
func Authorize(p *domain.Principal, required ...domain.Role) Decision {
	if p == nil {
		return deny(reasonAnonymous)
	}
	if p.IsSuperuser {
		return allow()
	}
	if len(required) == 0 {
		return allow()
	}
	for _, r := range required {
		if p.HasRole(r) {
			return allow()
		}
	}
	return deny(fmt.Sprintf("requires one of %v", required))
}

// CanManageEvent allows the event's organizer or a superuser.
func CanManageEvent(p *domain.Principal, e *domain.Event) Decision {
	if p == nil {
		return deny(reasonAnonymous)
	}
	if p.IsSuperuser || p.UserID == e.OrganizerID {
		return allow()
	}
	return deny("only the organizer can change this event")
}

const (
	AdminDashboardPath       = "/dashboard/admin/"
	OrganizerDashboardPath   = "/dashboard/organizer/"
	ParticipantDashboardPath = "/dashboard/participant/"
)

// LandingPath picks the dashboard a principal lands on after login.
func LandingPath(p *domain.Principal) string {
	switch {
	case p == nil:
		return "/events/"
	case p.IsSuperuser, p.HasRole(domain.RoleAdmin):
		return AdminDashboardPath
	case p.HasRole(domain.RoleOrganizer):
		return OrganizerDashboardPath
	default:
		return ParticipantDashboardPath
	}
}
