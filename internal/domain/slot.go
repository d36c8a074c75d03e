package domain

import (
	"context"
	"time"
)

// InterviewSlot is one bookable time range in a room. A slot moves from
// unbooked to booked exactly once; it only returns to unbooked through an
// explicit cancellation.
type InterviewSlot struct {
	ID          string    `json:"slot_id"`
	RoomID      string    `json:"room_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Booked      bool      `json:"booked"`
	InterviewID *string   `json:"booked_interview_id,omitempty"`
}

// AvailableSlot is a free slot joined with its room for applicant-facing
// availability listings
type AvailableSlot struct {
	SlotID    string    `json:"slot_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	RoomName  string    `json:"room_name"`
	Location  string    `json:"location"`
}

// SlotRepository defines data access methods for interview slots.
// Claim is the single serialization point of the booking flow: it performs
// a conditional update (booked = TRUE only where booked = FALSE) and reports
// whether this caller won the row.
type SlotRepository interface {
	Create(ctx context.Context, slot *InterviewSlot) error
	GetByID(ctx context.Context, id string) (*InterviewSlot, error)
	GetByInterviewID(ctx context.Context, interviewID string) (*InterviewSlot, error)
	ListByRoom(ctx context.Context, roomID string) ([]InterviewSlot, error)
	ListAvailableByRooms(ctx context.Context, roomIDs []string) ([]AvailableSlot, error)
	Claim(ctx context.Context, id string) (bool, error)
	LinkInterview(ctx context.Context, id, interviewID string) error
	Release(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteUnbookedByRoom(ctx context.Context, roomID string) error
	HasBookedByRoom(ctx context.Context, roomID string) (bool, error)
}
