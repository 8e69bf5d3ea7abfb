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

func newUserRepoMock(t *testing.T) (domain.UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(db), mock
}

func TestUserRepoCreateAssignsID(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	mock.ExpectQuery(`(?s)INSERT INTO users(.+)RETURNING id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-1"))

	now := time.Now()
	u := &domain.User{Email: "a@b.co", PasswordHash: "hash", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, "user-1", u.ID)
}

func TestUserRepoGetByEmail(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	now := time.Now()
	mock.ExpectQuery(`(?s)SELECT(.+)FROM users(.+)WHERE email = \$1`).
		WithArgs("a@b.co").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at", "updated_at"}).
			AddRow("user-1", "a@b.co", "hash", nil, now, now))

	u, err := repo.GetByEmail(context.Background(), "a@b.co")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Nil(t, u.Name)
}

func TestUserRepoGetByEmailNotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)
	mock.ExpectQuery(`(?s)SELECT(.+)FROM users(.+)WHERE email = \$1`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
