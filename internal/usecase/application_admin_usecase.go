package usecase

import (
	"context"
	"errors"

	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/apperror"
)

type applicationAdminUsecase struct {
	applicationRepo domain.ApplicationRepository
	recruitRepo     domain.RecruitRepository
	notifier        domain.Notifier
}

// NewApplicationAdminUsecase creates the resume review usecase
func NewApplicationAdminUsecase(
	applicationRepo domain.ApplicationRepository,
	recruitRepo domain.RecruitRepository,
	notifier domain.Notifier,
) domain.ApplicationAdminUsecase {
	return &applicationAdminUsecase{
		applicationRepo: applicationRepo,
		recruitRepo:     recruitRepo,
		notifier:        notifier,
	}
}

// ListByRecruit returns all submissions of a cycle for review
func (uc *applicationAdminUsecase) ListByRecruit(ctx context.Context, recruitID string) ([]domain.Application, error) {
	apps, err := uc.applicationRepo.ListByRecruit(ctx, recruitID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

// BatchUpdateStatus sets the status of several submissions and notifies each
// applicant of the change. Missing ids are skipped; the returned count is
// the number of submissions actually updated.
func (uc *applicationAdminUsecase) BatchUpdateStatus(ctx context.Context, ids []string, status domain.ApplicationStatus) (int, error) {
	if !status.Valid() {
		return 0, apperror.BadRequest("Unknown status id")
	}
	if len(ids) == 0 {
		return 0, apperror.BadRequest("No submission ids provided")
	}

	updated := 0
	for _, id := range ids {
		app, err := uc.applicationRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return updated, apperror.Internal(err)
		}

		if err := uc.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return updated, apperror.Internal(err)
		}
		updated++

		recruitName := "N/A"
		if recruit, err := uc.recruitRepo.GetByID(ctx, app.RecruitID); err == nil {
			recruitName = recruit.Name
		}
		uc.notifier.NotifyStatusChange(app.UID, recruitName, app.FirstChoice, status.Name())
	}
	return updated, nil
}
