package service

import (
	"context"
	"testing"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCategoryID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"

type eventFixture struct {
	events     *mocks.MockEventRepo
	categories *mocks.MockCategoryRepo
	rsvps      *mocks.MockRSVPRepo
	svc        *EventService
}

func newEventFixture(t *testing.T) *eventFixture {
	f := &eventFixture{
		events:     mocks.NewMockEventRepo(t),
		categories: mocks.NewMockCategoryRepo(t),
		rsvps:      mocks.NewMockRSVPRepo(t),
	}
	f.svc = NewEventService(f.events, f.categories, f.rsvps, time.UTC, newTestLogger(t))
	f.svc.now = fixedClock
	return f
}

func validEventInput() domain.EventInput {
	return domain.EventInput{
		Name:        "Go Meetup",
		Description: "Monthly meetup",
		Date:        "2025-02-01",
		Time:        "18:30",
		Location:    "Dhaka",
		CategoryID:  testCategoryID,
	}
}

func TestEventService_Create_Success(t *testing.T) {
	f := newEventFixture(t)
	actor := organizer()

	f.categories.EXPECT().GetByID(mock.Anything, testCategoryID).
		Return(&domain.Category{ID: testCategoryID, Name: "Tech"}, nil)
	f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := f.svc.Create(context.Background(), actor, validEventInput())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, actor.UserID, event.OrganizerID)
	assert.Equal(t, "Tech", event.CategoryName)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), event.Date)
	assert.Equal(t, "18:30", event.Time)
	assert.Equal(t, domain.DefaultEventImage, event.Image)
}

func TestEventService_Create_TodayIsAllowed(t *testing.T) {
	f := newEventFixture(t)
	in := validEventInput()
	in.Date = "2025-01-15"
	in.Time = "08:00:00"

	f.categories.EXPECT().GetByID(mock.Anything, testCategoryID).
		Return(&domain.Category{ID: testCategoryID, Name: "Tech"}, nil)
	f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := f.svc.Create(context.Background(), organizer(), in)

	require.NoError(t, err)
	assert.Equal(t, "08:00", event.Time)
}

func TestEventService_Create_PastDateRejected(t *testing.T) {
	f := newEventFixture(t)
	in := validEventInput()
	in.Date = "2025-01-14"

	f.categories.EXPECT().GetByID(mock.Anything, testCategoryID).
		Return(&domain.Category{ID: testCategoryID, Name: "Tech"}, nil)

	_, err := f.svc.Create(context.Background(), organizer(), in)

	requireFieldError(t, err, "date")
	f.events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEventService_Create_PastDateFollowsZone(t *testing.T) {
	lateEvening := time.Date(2025, 1, 15, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		loc     *time.Location
		date    string
		allowed bool
	}{
		{name: "utc same day", loc: time.UTC, date: "2025-01-15", allowed: true},
		{name: "east of utc already tomorrow", loc: time.FixedZone("UTC+3", 3*3600), date: "2025-01-15", allowed: false},
		{name: "east of utc local today", loc: time.FixedZone("UTC+3", 3*3600), date: "2025-01-16", allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEventFixture(t)
			f.svc.loc = tt.loc
			f.svc.now = func() time.Time { return lateEvening }

			f.categories.EXPECT().GetByID(mock.Anything, testCategoryID).
				Return(&domain.Category{ID: testCategoryID, Name: "Tech"}, nil)
			if tt.allowed {
				f.events.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
			}

			in := validEventInput()
			in.Date = tt.date
			_, err := f.svc.Create(context.Background(), organizer(), in)

			if tt.allowed {
				require.NoError(t, err)
				return
			}
			requireFieldError(t, err, "date")
		})
	}
}

func TestEventService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*domain.EventInput)
		field string
	}{
		{"missing name", func(in *domain.EventInput) { in.Name = "" }, "name"},
		{"missing description", func(in *domain.EventInput) { in.Description = "  " }, "description"},
		{"bad date", func(in *domain.EventInput) { in.Date = "01/02/2025" }, "date"},
		{"bad time", func(in *domain.EventInput) { in.Time = "25:99" }, "time"},
		{"missing location", func(in *domain.EventInput) { in.Location = "" }, "location"},
		{"bad category", func(in *domain.EventInput) { in.CategoryID = "tech" }, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEventFixture(t)
			f.categories.EXPECT().GetByID(mock.Anything, testCategoryID).
				Return(&domain.Category{ID: testCategoryID, Name: "Tech"}, nil).Maybe()
			in := validEventInput()
			tt.edit(&in)

			_, err := f.svc.Create(context.Background(), organizer(), in)

			requireFieldError(t, err, tt.field)
		})
	}
}

func TestEventService_Create_UnknownCategory(t *testing.T) {
	f := newEventFixture(t)

	f.categories.EXPECT().GetByID(mock.Anything, testCategoryID).Return(nil, domain.ErrCategoryNotFound)

	_, err := f.svc.Create(context.Background(), organizer(), validEventInput())

	requireFieldError(t, err, "category")
}

func TestEventService_Create_Forbidden(t *testing.T) {
	f := newEventFixture(t)

	_, err := f.svc.Create(context.Background(), participant(), validEventInput())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = f.svc.Create(context.Background(), nil, validEventInput())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestEventService_Update_OnlyOwnerOrSuperuser(t *testing.T) {
	owner := organizer()
	event := &domain.Event{ID: "e1", Name: "Old", OrganizerID: owner.UserID, Image: "custom.png"}
	other := &domain.Principal{UserID: "other", Roles: []domain.Role{domain.RoleOrganizer}}

	t.Run("other organizer", func(t *testing.T) {
		f := newEventFixture(t)
		f.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

		_, err := f.svc.Update(context.Background(), other, "e1", validEventInput())

		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("admin without ownership", func(t *testing.T) {
		f := newEventFixture(t)
		f.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

		_, err := f.svc.Update(context.Background(), admin(), "e1", validEventInput())

		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	for name, actor := range map[string]*domain.Principal{"owner": owner, "superuser": superuser()} {
		t.Run(name, func(t *testing.T) {
			f := newEventFixture(t)
			f.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
			f.categories.EXPECT().GetByID(mock.Anything, testCategoryID).
				Return(&domain.Category{ID: testCategoryID, Name: "Tech"}, nil)
			f.events.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

			updated, err := f.svc.Update(context.Background(), actor, "e1", validEventInput())

			require.NoError(t, err)
			assert.Equal(t, "Go Meetup", updated.Name)
			assert.Equal(t, "custom.png", updated.Image)
			assert.Equal(t, owner.UserID, updated.OrganizerID)
			assert.Equal(t, "Old", event.Name)
		})
	}
}

func TestEventService_Update_PastDateRejected(t *testing.T) {
	owner := organizer()
	stored := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "e1", Name: "Old", Date: stored, OrganizerID: owner.UserID}

	f := newEventFixture(t)
	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.categories.EXPECT().GetByID(mock.Anything, testCategoryID).
		Return(&domain.Category{ID: testCategoryID, Name: "Tech"}, nil)

	in := validEventInput()
	in.Date = "2020-01-01"
	_, err := f.svc.Update(context.Background(), owner, "e1", in)

	requireFieldError(t, err, "date")
	f.events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, stored, event.Date)
}

func TestEventService_Update_NotFound(t *testing.T) {
	f := newEventFixture(t)

	f.events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := f.svc.Update(context.Background(), organizer(), "missing", validEventInput())

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_DeletePreviewAndDelete(t *testing.T) {
	f := newEventFixture(t)
	actor := organizer()
	event := &domain.Event{ID: "e1", Name: "Meetup", OrganizerID: actor.UserID, AttendeeCount: 4}

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	f.events.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	impact, err := f.svc.DeletePreview(context.Background(), actor, "e1")
	require.NoError(t, err)
	assert.Equal(t, &domain.DeletionImpact{Type: "Event", ID: "e1", Name: "Meetup", RSVPs: 4}, impact)

	require.NoError(t, f.svc.Delete(context.Background(), actor, "e1"))
}

func TestEventService_Delete_Forbidden(t *testing.T) {
	f := newEventFixture(t)
	event := &domain.Event{ID: "e1", OrganizerID: "someone-else"}

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	err := f.svc.Delete(context.Background(), organizer(), "e1")

	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	f.events.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestEventService_GetDetails(t *testing.T) {
	f := newEventFixture(t)
	attendees := []domain.Attendee{{UserID: "u1", Username: "alice"}}

	f.events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", AttendeeCount: 1}, nil)
	f.rsvps.EXPECT().ListByEvent(mock.Anything, "e1").Return(attendees, nil)

	details, err := f.svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, "e1", details.Event.ID)
	assert.Equal(t, attendees, details.Attendees)
}

func TestEventService_List_Filters(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("inverted range", func(t *testing.T) {
		f := newEventFixture(t)
		_, err := f.svc.List(context.Background(), domain.EventFilter{From: &from, To: &to})
		requireFieldError(t, err, "to")
	})

	t.Run("bad category", func(t *testing.T) {
		f := newEventFixture(t)
		_, err := f.svc.List(context.Background(), domain.EventFilter{CategoryID: "nope"})
		requireFieldError(t, err, "category")
	})

	t.Run("passes through", func(t *testing.T) {
		f := newEventFixture(t)
		filter := domain.EventFilter{Query: "go", CategoryID: testCategoryID, From: &to, To: &from}
		want := []*domain.Event{{ID: "e1"}}
		f.events.EXPECT().List(mock.Anything, filter).Return(want, nil)

		got, err := f.svc.List(context.Background(), filter)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestEventService_FormOptions(t *testing.T) {
	f := newEventFixture(t)
	cats := []*domain.Category{{ID: testCategoryID, Name: "Tech"}}

	f.categories.EXPECT().List(mock.Anything).Return(cats, nil)

	got, err := f.svc.FormOptions(context.Background(), admin())
	require.NoError(t, err)
	assert.Equal(t, cats, got)

	_, err = f.svc.FormOptions(context.Background(), participant())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
