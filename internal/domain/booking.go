package domain

import (
	"context"
	"time"
)

// TxManager runs a function inside a single database transaction.
// The callback's context carries the transaction; repositories participate
// automatically. Commit on nil return, rollback on error.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingNotice carries the details of a confirmed or cancelled booking
// for applicant notifications
type BookingNotice struct {
	RecruitName string
	Choice      string
	Time        time.Time
	Location    string
}

// Notifier sends applicant notifications after a booking state change has
// been committed. Implementations must never block the caller and never
// surface delivery failures.
type Notifier interface {
	NotifyBooking(uid string, notice BookingNotice)
	NotifyCancellation(uid string, notice BookingNotice)
	NotifyStatusChange(uid, recruitName, choice, statusName string)
}

// BookingWindow reports whether interview booking is currently open for a
// recruitment cycle
type BookingWindow struct {
	Available bool       `json:"available"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// BookingUsecase is the interview booking engine: availability listing, the
// atomic claim-or-fail booking operation and the admin cancellation that
// releases a slot for rebooking.
type BookingUsecase interface {
	BookingOpen(ctx context.Context, recruitID, uid string) (*BookingWindow, error)
	AvailableSlots(ctx context.Context, applicationID, uid string) ([]AvailableSlot, error)
	Book(ctx context.Context, applicationID, slotID, uid string) (*Interview, error)
	Cancel(ctx context.Context, interviewID string) error
	MyBookings(ctx context.Context, uid, recruitID string) ([]MyBooking, error)
}

// SlotGeneration are the parameters for batch slot creation in a room
type SlotGeneration struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Duration    time.Duration
}

// ScheduleUsecase manages interview rooms and their slots (admin only)
type ScheduleUsecase interface {
	CreateRoom(ctx context.Context, room *InterviewRoom) (*InterviewRoom, error)
	UpdateRoom(ctx context.Context, room *InterviewRoom) error
	DeleteRoom(ctx context.Context, roomID string) error
	ListRooms(ctx context.Context, recruitID string) ([]InterviewRoom, error)
	GenerateSlots(ctx context.Context, roomID string, gen SlotGeneration) ([]string, error)
	ListSlots(ctx context.Context, roomID string) ([]InterviewSlot, error)
	DeleteSlot(ctx context.Context, slotID string) error
}

// InterviewAdminUsecase covers the admin interview overview and result
// recording
type InterviewAdminUsecase interface {
	ListByRecruit(ctx context.Context, recruitID string) ([]InterviewDetail, error)
	Reschedule(ctx context.Context, interviewID string, update InterviewUpdate) error
	RecordResult(ctx context.Context, interviewID, reviewerUID string, passed bool, score int, comments string) error
}
