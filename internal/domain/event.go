package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Event represents a calendar entry with a time range, location/online
// metadata, and descriptive fields. Optional fields are pointers so that
// absent values serialize as JSON null rather than being omitted.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	ImageURL    *string   `json:"imageUrl"`
	Speaker     *string   `json:"speaker"`
	Location    *string   `json:"location"`
	Platform    *string   `json:"platform"`
	IsOnline    bool      `json:"isOnline"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventInput carries the fields of a create or full-replace update after
// request-level validation. Dates are already parsed; string fields are
// trimmed by the service before persistence.
type EventInput struct {
	Title       string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	ImageURL    *string
	Speaker     *string
	Location    *string
	Platform    *string
	IsOnline    bool
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for event CRUD.
type EventService interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, in EventInput) (*Event, error)
	Update(ctx context.Context, id string, in EventInput) (*Event, error)
	Delete(ctx context.Context, id string) error
}
