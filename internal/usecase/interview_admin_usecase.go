package usecase

import (
	"context"
	"errors"

	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/apperror"
)

type interviewAdminUsecase struct {
	interviewRepo domain.InterviewRepository
}

// NewInterviewAdminUsecase creates the admin interview overview usecase
func NewInterviewAdminUsecase(interviewRepo domain.InterviewRepository) domain.InterviewAdminUsecase {
	return &interviewAdminUsecase{interviewRepo: interviewRepo}
}

// ListByRecruit returns all booked interviews of a cycle with applicant,
// room and review data
func (uc *interviewAdminUsecase) ListByRecruit(ctx context.Context, recruitID string) ([]domain.InterviewDetail, error) {
	details, err := uc.interviewRepo.ListByRecruit(ctx, recruitID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if details == nil {
		details = []domain.InterviewDetail{}
	}
	return details, nil
}

// Reschedule patches an interview's time, location or notes
func (uc *interviewAdminUsecase) Reschedule(ctx context.Context, interviewID string, update domain.InterviewUpdate) error {
	if update.Time == nil && update.Location == nil && update.Notes == nil {
		return apperror.BadRequest("No updatable fields provided")
	}

	if err := uc.interviewRepo.Update(ctx, interviewID, update); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Interview not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// RecordResult stores an interview review
func (uc *interviewAdminUsecase) RecordResult(ctx context.Context, interviewID, reviewerUID string, passed bool, score int, comments string) error {
	if _, err := uc.interviewRepo.GetByID(ctx, interviewID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Interview not found")
		}
		return apperror.Internal(err)
	}

	review := &domain.InterviewReview{
		ID:          newID(),
		InterviewID: interviewID,
		ReviewerUID: reviewerUID,
		Passed:      passed,
		Score:       score,
		Comments:    comments,
	}
	if err := uc.interviewRepo.CreateReview(ctx, review); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
