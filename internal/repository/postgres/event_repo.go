package postgres

import (
	"context"
	"database/sql"
	"errors"

	"communitycalendar/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

const eventColumns = `id, title, description, start_date, end_date, image_url, speaker, location, platform, is_online, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, imageNull, speakerNull, locationNull, platformNull sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &descNull, &e.StartDate, &e.EndDate,
		&imageNull, &speakerNull, &locationNull, &platformNull,
		&e.IsOnline, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if imageNull.Valid {
		e.ImageURL = &imageNull.String
	}
	if speakerNull.Valid {
		e.Speaker = &speakerNull.String
	}
	if locationNull.Valid {
		e.Location = &locationNull.String
	}
	if platformNull.Valid {
		e.Platform = &platformNull.String
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY start_date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, start_date, end_date, image_url, speaker, location, platform, is_online, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.StartDate, e.EndDate,
		e.ImageURL, e.Speaker, e.Location, e.Platform,
		e.IsOnline, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

// Update performs a full replace of all event fields. The stored
// created_at is read back into the event.
func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, start_date = $3, end_date = $4,
			image_url = $5, speaker = $6, location = $7, platform = $8,
			is_online = $9, updated_at = $10
		WHERE id = $11
		RETURNING created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.StartDate, e.EndDate,
		e.ImageURL, e.Speaker, e.Location, e.Platform,
		e.IsOnline, e.UpdatedAt, e.ID,
	).Scan(&e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
