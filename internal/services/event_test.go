package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communitycalendar/internal/domain"
)

type fakeEventRepo struct {
	listOut   []*domain.Event
	getOut    *domain.Event
	err       error
	created   *domain.Event
	updated   *domain.Event
	deletedID string
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	return f.listOut, f.err
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return f.getOut, f.err
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.created = e
	if f.err == nil {
		e.ID = "evt-1"
	}
	return f.err
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	f.updated = e
	return f.err
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return f.err
}

func strPtr(s string) *string { return &s }

func TestEventServiceCreateNormalizesInput(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventService(repo, time.Second)

	start := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	event, err := svc.Create(context.Background(), domain.EventInput{
		Title:       "  Go Meetup  ",
		Description: strPtr("  monthly talk  "),
		StartDate:   start,
		EndDate:     end,
		ImageURL:    strPtr("  https://example.com/a.png  "),
		Speaker:     strPtr(" Ada "),
		IsOnline:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, "Go Meetup", event.Title)
	assert.Equal(t, "monthly talk", *event.Description)
	// imageUrl is stored exactly as submitted
	assert.Equal(t, "  https://example.com/a.png  ", *event.ImageURL)
	assert.Equal(t, "Ada", *event.Speaker)
	assert.Nil(t, event.Location)
	assert.Nil(t, event.Platform)
	assert.True(t, event.IsOnline)
	assert.Equal(t, "evt-1", event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.Equal(t, event.CreatedAt, event.UpdatedAt)
}

func TestEventServiceCreateRepoError(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("connection reset")}
	svc := NewEventService(repo, time.Second)

	_, err := svc.Create(context.Background(), domain.EventInput{Title: "x"})
	require.Error(t, err)
}

func TestEventServiceUpdateSetsIDAndTimestamp(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventService(repo, time.Second)

	event, err := svc.Update(context.Background(), "evt-9", domain.EventInput{
		Title:     " Updated ",
		StartDate: time.Now(),
		EndDate:   time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)

	assert.Equal(t, "evt-9", event.ID)
	assert.Equal(t, "Updated", event.Title)
	assert.False(t, event.UpdatedAt.IsZero())
}

func TestEventServiceUpdatePropagatesNotFound(t *testing.T) {
	repo := &fakeEventRepo{err: domain.ErrNotFound}
	svc := NewEventService(repo, time.Second)

	_, err := svc.Update(context.Background(), "missing", domain.EventInput{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventServiceDelete(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewEventService(repo, time.Second)

	require.NoError(t, svc.Delete(context.Background(), "evt-3"))
	assert.Equal(t, "evt-3", repo.deletedID)
}

func TestEventServiceListPassthrough(t *testing.T) {
	want := []*domain.Event{{ID: "a"}, {ID: "b"}}
	repo := &fakeEventRepo{listOut: want}
	svc := NewEventService(repo, time.Second)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
