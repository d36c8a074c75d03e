package domain

import (
	"context"
	"time"
)

// Interview is a booked interview instance. It is created atomically with
// the slot claim and deleted on cancellation.
type Interview struct {
	ID            string    `json:"interview_id"`
	ApplicationID string    `json:"submit_id"`
	UID           string    `json:"interviewee_uid"`
	Time          time.Time `json:"interview_time"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
}

// InterviewReview is an admin-recorded interview result
type InterviewReview struct {
	ID          string    `json:"review_id"`
	InterviewID string    `json:"interview_id"`
	ReviewerUID string    `json:"reviewer_uid"`
	Passed      bool      `json:"passed"`
	Score       int       `json:"score"`
	Comments    string    `json:"comments"`
	ReviewTime  time.Time `json:"review_time"`
}

// InterviewDetail is an interview joined with applicant, room and review
// data for the admin overview
type InterviewDetail struct {
	Interview
	ApplicantName *string    `json:"interviewee_name,omitempty"`
	RoomID        *string    `json:"room_id,omitempty"`
	RoomName      *string    `json:"room_name,omitempty"`
	FirstChoice   *string    `json:"first_choice,omitempty"`
	ResultPassed  *bool      `json:"result_passed,omitempty"`
	Score         *int       `json:"score,omitempty"`
	Feedback      *string    `json:"interviewer_feedback,omitempty"`
	ReviewerUID   *string    `json:"reviewer_uid,omitempty"`
	ReviewTime    *time.Time `json:"review_time,omitempty"`
}

// MyBooking is an applicant-facing view of a booked interview
type MyBooking struct {
	InterviewID   string    `json:"interview_id"`
	ApplicationID string    `json:"submit_id"`
	Time          time.Time `json:"interview_time"`
	Location      string    `json:"location"`
	Choice        string    `json:"choice"`
}

// InterviewUpdate carries the optional fields of a reschedule request
type InterviewUpdate struct {
	Time     *time.Time
	Location *string
	Notes    *string
}

// InterviewRepository defines data access methods for interviews and reviews
type InterviewRepository interface {
	Create(ctx context.Context, interview *Interview) error
	GetByID(ctx context.Context, id string) (*Interview, error)
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, update InterviewUpdate) error
	ListByRecruit(ctx context.Context, recruitID string) ([]InterviewDetail, error)
	ListByUser(ctx context.Context, uid, recruitID string) ([]MyBooking, error)
	CreateReview(ctx context.Context, review *InterviewReview) error
}
