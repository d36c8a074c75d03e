package domain

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("resource not found")

// Recruit represents one recruitment cycle
type Recruit struct {
	ID          string    `json:"recruit_id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Active      bool      `json:"is_active"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`

	// Derived for list responses
	Available bool `json:"available"`
}

// Open reports whether the cycle accepts submissions at the given time
func (r *Recruit) Open(now time.Time) bool {
	return r.Active && !now.Before(r.StartTime) && !now.After(r.EndTime)
}

// RecruitSettings holds the interview booking window for a cycle.
// One row per recruit, upserted by admins.
type RecruitSettings struct {
	RecruitID     string    `json:"recruit_id"`
	BookStartTime time.Time `json:"book_start_time"`
	BookEndTime   time.Time `json:"book_end_time"`
}

// RecruitRepository defines data access methods for recruitment cycles
type RecruitRepository interface {
	Create(ctx context.Context, recruit *Recruit) error
	GetByID(ctx context.Context, id string) (*Recruit, error)
	List(ctx context.Context) ([]Recruit, error)
	Update(ctx context.Context, recruit *Recruit) error
	GetSettings(ctx context.Context, recruitID string) (*RecruitSettings, error)
	UpsertSettings(ctx context.Context, settings *RecruitSettings) error
}

// RecruitUsecase defines business logic for recruitment cycles
type RecruitUsecase interface {
	List(ctx context.Context, includeInactive bool) ([]Recruit, error)
	Get(ctx context.Context, id string, includeInactive bool) (*Recruit, error)
	Create(ctx context.Context, recruit *Recruit) (*Recruit, error)
	Update(ctx context.Context, recruit *Recruit) error
	SetBookingWindow(ctx context.Context, recruitID string, start, end time.Time) error
}
