package domain

import "context"

// InterviewRoom is a physical interview location tied to one recruitment
// cycle. Each room serves exactly one applicant first-choice category.
type InterviewRoom struct {
	ID        string `json:"room_id"`
	RecruitID string `json:"recruit_id" validate:"required"`
	Name      string `json:"room_name" validate:"required"`
	Location  string `json:"location" validate:"required"`
	Choice    string `json:"applicable_to_choice" validate:"required"`
}

// RoomRepository defines data access methods for interview rooms
type RoomRepository interface {
	Create(ctx context.Context, room *InterviewRoom) error
	GetByID(ctx context.Context, id string) (*InterviewRoom, error)
	ListByRecruit(ctx context.Context, recruitID string) ([]InterviewRoom, error)
	ListByRecruitAndChoice(ctx context.Context, recruitID, choice string) ([]InterviewRoom, error)
	Update(ctx context.Context, room *InterviewRoom) error
	Delete(ctx context.Context, id string) error
}
