package service

import (
	"context"
	"time"

	"github.com/brinto-swe/event-management-system/internal/access"
	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	stats    ports.StatsRepo
	rsvpRepo ports.RSVPRepo
	loc      *time.Location
	now      func() time.Time
}

// NewDashboardService reports "today" as the current calendar day in loc.
func NewDashboardService(stats ports.StatsRepo, rsvpRepo ports.RSVPRepo, loc *time.Location) *DashboardService {
	return &DashboardService{
		stats:    stats,
		rsvpRepo: rsvpRepo,
		loc:      loc,
		now:      time.Now,
	}
}

func (s *DashboardService) today() time.Time {
	return dateOf(s.now().In(s.loc))
}

func (s *DashboardService) Admin(ctx context.Context, actor *domain.Principal) (*domain.AdminDashboard, error) {
	if d := access.Authorize(actor, domain.RoleAdmin); !d.Allowed {
		return nil, d.Err()
	}

	today := s.today()
	var res domain.AdminDashboard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.Events, err = s.stats.EventCounts(gctx, "", today)
		return err
	})
	g.Go(func() (err error) {
		res.Users, err = s.stats.UserCounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		res.TotalRSVPs, err = s.stats.CountRSVPs(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		res.TodayEvents, err = s.stats.EventsOn(gctx, today, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &res, nil
}

// Organizer scopes counters to the caller's own events; admins and superusers see everything.
func (s *DashboardService) Organizer(ctx context.Context, actor *domain.Principal) (*domain.OrganizerDashboard, error) {
	if d := access.Authorize(actor, domain.RoleOrganizer, domain.RoleAdmin); !d.Allowed {
		return nil, d.Err()
	}

	scope := actor.UserID
	if actor.IsSuperuser || actor.HasRole(domain.RoleAdmin) {
		scope = ""
	}

	today := s.today()
	var res domain.OrganizerDashboard

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.Events, err = s.stats.EventCounts(gctx, scope, today)
		return err
	})
	g.Go(func() (err error) {
		res.TotalRSVPs, err = s.stats.CountRSVPs(gctx, scope)
		return err
	})
	g.Go(func() (err error) {
		res.TodayEvents, err = s.stats.EventsOn(gctx, today, scope)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &res, nil
}

func (s *DashboardService) Participant(ctx context.Context, actor *domain.Principal) (*domain.ParticipantDashboard, error) {
	if d := access.Authorize(actor, domain.RoleParticipant, domain.RoleOrganizer, domain.RoleAdmin); !d.Allowed {
		return nil, d.Err()
	}

	rsvps, err := s.rsvpRepo.ListByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	today := s.today()
	res := &domain.ParticipantDashboard{
		TotalRSVPs:  len(rsvps),
		Upcoming:    make([]*domain.UserRSVP, 0),
		TodayEvents: make([]*domain.UserRSVP, 0),
	}
	for _, r := range rsvps {
		day := dateOf(r.Event.Date)
		switch {
		case day.Equal(today):
			res.TodayEvents = append(res.TodayEvents, r)
		case day.After(today):
			res.Upcoming = append(res.Upcoming, r)
		}
	}

	return res, nil
}
