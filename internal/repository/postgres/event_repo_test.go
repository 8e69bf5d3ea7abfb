package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communitycalendar/internal/domain"
)

func newEventRepoMock(t *testing.T) (domain.EventRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEventRepository(db), mock
}

func eventRows(events ...*domain.Event) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "start_date", "end_date",
		"image_url", "speaker", "location", "platform",
		"is_online", "created_at", "updated_at",
	})
	for _, e := range events {
		rows.AddRow(e.ID, e.Title, e.Description, e.StartDate, e.EndDate,
			e.ImageURL, e.Speaker, e.Location, e.Platform,
			e.IsOnline, e.CreatedAt, e.UpdatedAt)
	}
	return rows
}

func TestEventRepoList(t *testing.T) {
	repo, mock := newEventRepoMock(t)
	now := time.Now()
	desc := "talk"
	mock.ExpectQuery(`(?s)SELECT(.+)FROM events(.+)ORDER BY start_date ASC`).
		WillReturnRows(eventRows(
			&domain.Event{ID: "a", Title: "First", Description: &desc, StartDate: now, EndDate: now, CreatedAt: now, UpdatedAt: now},
			&domain.Event{ID: "b", Title: "Second", StartDate: now, EndDate: now, IsOnline: true, CreatedAt: now, UpdatedAt: now},
		))

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "talk", *events[0].Description)
	assert.Nil(t, events[1].Description)
	assert.True(t, events[1].IsOnline)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepoListEmpty(t *testing.T) {
	repo, mock := newEventRepoMock(t)
	mock.ExpectQuery(`(?s)SELECT(.+)FROM events`).WillReturnRows(eventRows())

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestEventRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newEventRepoMock(t)
	mock.ExpectQuery(`(?s)SELECT(.+)FROM events(.+)WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepoCreateAssignsID(t *testing.T) {
	repo, mock := newEventRepoMock(t)
	mock.ExpectQuery(`(?s)INSERT INTO events(.+)RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("evt-1"))

	e := &domain.Event{Title: "Go Meetup", StartDate: time.Now(), EndDate: time.Now()}
	require.NoError(t, repo.Create(context.Background(), e))
	assert.Equal(t, "evt-1", e.ID)
}

func TestEventRepoUpdateMissingRow(t *testing.T) {
	repo, mock := newEventRepoMock(t)
	mock.ExpectQuery(`(?s)UPDATE events(.+)SET(.+)RETURNING created_at`).
		WillReturnError(sql.ErrNoRows)

	err := repo.Update(context.Background(), &domain.Event{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepoUpdateReadsBackCreatedAt(t *testing.T) {
	repo, mock := newEventRepoMock(t)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)UPDATE events(.+)SET(.+)RETURNING created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	e := &domain.Event{ID: "evt-1", Title: "x", UpdatedAt: time.Now()}
	require.NoError(t, repo.Update(context.Background(), e))
	assert.Equal(t, created, e.CreatedAt)
}

func TestEventRepoDelete(t *testing.T) {
	repo, mock := newEventRepoMock(t)
	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs("evt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "evt-1"))
}

func TestEventRepoDeleteMissingRow(t *testing.T) {
	repo, mock := newEventRepoMock(t)
	mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
