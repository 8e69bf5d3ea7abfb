package postgres

import (
	"context"
	"database/sql"
	"errors"

	"communitycalendar/internal/domain"
)

type registrationCodeRepository struct {
	DB *sql.DB
}

func NewRegistrationCodeRepository(db *sql.DB) domain.RegistrationCodeRepository {
	return &registrationCodeRepository{DB: db}
}

// GetActiveByCode matches the code exactly; inactive codes behave as
// absent.
func (r *registrationCodeRepository) GetActiveByCode(ctx context.Context, code string) (*domain.RegistrationCode, error) {
	query := `
		SELECT id, code, is_active, created_at
		FROM registration_codes
		WHERE code = $1 AND is_active = TRUE
	`
	c := &domain.RegistrationCode{}
	err := r.DB.QueryRowContext(ctx, query, code).Scan(&c.ID, &c.Code, &c.IsActive, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
