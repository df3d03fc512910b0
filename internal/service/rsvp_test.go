package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type rsvpFixture struct {
	rsvps    *mocks.MockRSVPRepo
	events   *mocks.MockEventRepo
	users    *mocks.MockUserRepo
	notifier *mocks.MockRSVPNotifier
	svc      *RSVPService
}

func newRSVPFixture(t *testing.T) *rsvpFixture {
	f := &rsvpFixture{
		rsvps:    mocks.NewMockRSVPRepo(t),
		events:   mocks.NewMockEventRepo(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockRSVPNotifier(t),
	}
	f.svc = NewRSVPService(f.rsvps, f.events, f.users, f.notifier, newTestLogger(t))
	f.svc.now = fixedClock
	return f
}

func TestRSVPService_Register_NotifiesInBackground(t *testing.T) {
	f := newRSVPFixture(t)
	actor := participant()
	event := &domain.Event{ID: "e1", Name: "Meetup", AttendeeCount: 2}
	user := &domain.User{ID: actor.UserID, Email: "pat@example.com"}

	notified := make(chan *domain.User, 1)
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.rsvps.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.RSVP) bool {
		return r.UserID == actor.UserID && r.EventID == "e1" && r.CreatedAt.Equal(testNow)
	})).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, actor.UserID).Return(user, nil)
	f.notifier.EXPECT().NotifyRSVPCreated(mock.Anything, user, event).
		Run(func(_ context.Context, u *domain.User, _ *domain.Event) { notified <- u }).
		Return()

	out, err := f.svc.Register(context.Background(), actor, "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RSVPRegistered, out.Status)
	require.NotNil(t, out.RSVP)
	assert.Equal(t, 3, out.Event.AttendeeCount)

	select {
	case u := <-notified:
		assert.Same(t, user, u)
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestRSVPService_Register_Idempotent(t *testing.T) {
	f := newRSVPFixture(t)
	event := &domain.Event{ID: "e1", AttendeeCount: 1}

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.rsvps.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyRegistered)

	out, err := f.svc.Register(context.Background(), participant(), "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RSVPAlreadyRegistered, out.Status)
	assert.Nil(t, out.RSVP)
	assert.Equal(t, 1, out.Event.AttendeeCount)
	f.notifier.AssertNotCalled(t, "NotifyRSVPCreated", mock.Anything, mock.Anything, mock.Anything)
}

func TestRSVPService_Register_UserLookupFailureStillRegisters(t *testing.T) {
	f := newRSVPFixture(t)
	actor := participant()

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	f.rsvps.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.users.EXPECT().GetByID(mock.Anything, actor.UserID).Return(nil, errors.New("db down"))

	out, err := f.svc.Register(context.Background(), actor, "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RSVPRegistered, out.Status)
}

func TestRSVPService_Register_EventNotFound(t *testing.T) {
	f := newRSVPFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := f.svc.Register(context.Background(), participant(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRSVPService_Register_Anonymous(t *testing.T) {
	f := newRSVPFixture(t)

	_, err := f.svc.Register(context.Background(), nil, "e1")

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestRSVPService_ListMine(t *testing.T) {
	f := newRSVPFixture(t)
	actor := participant()
	want := []*domain.UserRSVP{{RSVP: domain.RSVP{ID: "r1"}, Event: domain.Event{ID: "e1"}}}

	f.rsvps.EXPECT().ListByUser(mock.Anything, actor.UserID).Return(want, nil)

	got, err := f.svc.ListMine(context.Background(), actor)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
