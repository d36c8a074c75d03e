package domain

import (
	"context"
	"time"
)

// ApplicationStatus is the numeric status id of a resume submission.
// The ids are stable and exposed to clients together with the names catalog.
type ApplicationStatus int16

const (
	StatusUnprocessed       ApplicationStatus = 0
	StatusResumePassed      ApplicationStatus = 1
	StatusResumeRejected    ApplicationStatus = 2
	StatusAwaitingInterview ApplicationStatus = 3
	StatusInterviewRejected ApplicationStatus = 4
	StatusAdmitted          ApplicationStatus = 5
	StatusNoShow            ApplicationStatus = 6
)

// StatusNames is the catalog of status ids to display names
var StatusNames = map[ApplicationStatus]string{
	StatusUnprocessed:       "unprocessed",
	StatusResumePassed:      "resume passed",
	StatusResumeRejected:    "resume rejected",
	StatusAwaitingInterview: "awaiting interview",
	StatusInterviewRejected: "interview rejected",
	StatusAdmitted:          "admitted",
	StatusNoShow:            "no show",
}

// Name returns the display name for a status, or "unknown" for ids outside
// the catalog
func (s ApplicationStatus) Name() string {
	if name, ok := StatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether the status id exists in the catalog
func (s ApplicationStatus) Valid() bool {
	_, ok := StatusNames[s]
	return ok
}

// Application is one resume submission to a recruitment cycle. Only a
// submission in StatusResumePassed may book an interview; booking moves it
// to StatusAwaitingInterview and cancellation moves it back.
type Application struct {
	ID          string            `json:"submit_id"`
	UID         string            `json:"uid"`
	RecruitID   string            `json:"recruit_id"`
	FirstChoice string            `json:"first_choice"`
	Status      ApplicationStatus `json:"status"`
	SubmitTime  time.Time         `json:"submit_time"`

	// Joined data for admin list responses
	StatusName    string  `json:"status_name,omitempty"`
	ApplicantName *string `json:"applicant_name,omitempty"`
}

// ApplicationRepository defines data access methods for resume submissions
type ApplicationRepository interface {
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByUserAndRecruit(ctx context.Context, uid, recruitID string) (*Application, error)
	ListByRecruit(ctx context.Context, recruitID string) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) error
}

// ApplicationAdminUsecase defines resume review logic for administrators
type ApplicationAdminUsecase interface {
	ListByRecruit(ctx context.Context, recruitID string) ([]Application, error)
	BatchUpdateStatus(ctx context.Context, ids []string, status ApplicationStatus) (int, error)
}
