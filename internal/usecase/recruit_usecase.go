package usecase

import (
	"context"
	"errors"
	"time"

	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type recruitUsecase struct {
	recruitRepo domain.RecruitRepository
	validate    *validator.Validate
}

// NewRecruitUsecase creates the recruitment cycle usecase
func NewRecruitUsecase(recruitRepo domain.RecruitRepository, validate *validator.Validate) domain.RecruitUsecase {
	return &recruitUsecase{recruitRepo: recruitRepo, validate: validate}
}

// List returns all cycles. Applicants only see active cycles; admins see
// everything.
func (uc *recruitUsecase) List(ctx context.Context, includeInactive bool) ([]domain.Recruit, error) {
	recruits, err := uc.recruitRepo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	visible := make([]domain.Recruit, 0, len(recruits))
	for _, recruit := range recruits {
		if !includeInactive && !recruit.Active {
			continue
		}
		recruit.Available = recruit.Open(now)
		visible = append(visible, recruit)
	}
	return visible, nil
}

// Get returns one cycle; inactive or closed cycles are hidden from
// non-admins
func (uc *recruitUsecase) Get(ctx context.Context, id string, includeInactive bool) (*domain.Recruit, error) {
	recruit, err := uc.recruitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recruitment cycle not found")
		}
		return nil, apperror.Internal(err)
	}

	recruit.Available = recruit.Open(time.Now())
	if !includeInactive && !recruit.Available {
		return nil, apperror.NotFound("Recruitment cycle not found")
	}
	return recruit, nil
}

// Create adds a new recruitment cycle
func (uc *recruitUsecase) Create(ctx context.Context, recruit *domain.Recruit) (*domain.Recruit, error) {
	if err := uc.validate.Struct(recruit); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	if !recruit.StartTime.Before(recruit.EndTime) {
		return nil, apperror.BadRequest("Cycle start time must precede end time")
	}

	recruit.ID = newID()
	if err := uc.recruitRepo.Create(ctx, recruit); err != nil {
		return nil, apperror.Internal(err)
	}
	return recruit, nil
}

// Update modifies a recruitment cycle
func (uc *recruitUsecase) Update(ctx context.Context, recruit *domain.Recruit) error {
	if err := uc.validate.Struct(recruit); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if !recruit.StartTime.Before(recruit.EndTime) {
		return apperror.BadRequest("Cycle start time must precede end time")
	}

	if err := uc.recruitRepo.Update(ctx, recruit); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Recruitment cycle not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// SetBookingWindow upserts the interview booking window of a cycle
func (uc *recruitUsecase) SetBookingWindow(ctx context.Context, recruitID string, start, end time.Time) error {
	if !start.Before(end) {
		return apperror.BadRequest("Booking window start must precede end")
	}

	if _, err := uc.recruitRepo.GetByID(ctx, recruitID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Recruitment cycle not found")
		}
		return apperror.Internal(err)
	}

	settings := &domain.RecruitSettings{
		RecruitID:     recruitID,
		BookStartTime: start,
		BookEndTime:   end,
	}
	if err := uc.recruitRepo.UpsertSettings(ctx, settings); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
