package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/apperror"
	"lab-recruitment-backend/pkg/logger"
)

// errSlotTaken is the internal signal that the conditional claim lost the
// race; it aborts the transaction and maps to a 409 for the caller.
var errSlotTaken = errors.New("slot already booked")

type bookingUsecase struct {
	applicationRepo domain.ApplicationRepository
	slotRepo        domain.SlotRepository
	roomRepo        domain.RoomRepository
	interviewRepo   domain.InterviewRepository
	recruitRepo     domain.RecruitRepository
	tx              domain.TxManager
	notifier        domain.Notifier
}

// NewBookingUsecase creates the interview booking engine
func NewBookingUsecase(
	applicationRepo domain.ApplicationRepository,
	slotRepo domain.SlotRepository,
	roomRepo domain.RoomRepository,
	interviewRepo domain.InterviewRepository,
	recruitRepo domain.RecruitRepository,
	tx domain.TxManager,
	notifier domain.Notifier,
) domain.BookingUsecase {
	return &bookingUsecase{
		applicationRepo: applicationRepo,
		slotRepo:        slotRepo,
		roomRepo:        roomRepo,
		interviewRepo:   interviewRepo,
		recruitRepo:     recruitRepo,
		tx:              tx,
		notifier:        notifier,
	}
}

// BookingOpen reports whether the applicant can book an interview for the
// given cycle right now: the cycle must be active, the applicant must hold a
// passed submission and the booking window must be open.
func (uc *bookingUsecase) BookingOpen(ctx context.Context, recruitID, uid string) (*domain.BookingWindow, error) {
	recruit, err := uc.recruitRepo.GetByID(ctx, recruitID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.BookingWindow{Available: false}, nil
		}
		return nil, apperror.Internal(err)
	}
	if !recruit.Active {
		return &domain.BookingWindow{Available: false}, nil
	}

	app, err := uc.applicationRepo.GetByUserAndRecruit(ctx, uid, recruitID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if app == nil || app.Status != domain.StatusResumePassed {
		return &domain.BookingWindow{Available: false}, nil
	}

	settings, err := uc.recruitRepo.GetSettings(ctx, recruitID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.BookingWindow{Available: false}, nil
		}
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	open := !now.Before(settings.BookStartTime) && !now.After(settings.BookEndTime)
	return &domain.BookingWindow{
		Available: open,
		StartTime: &settings.BookStartTime,
		EndTime:   &settings.BookEndTime,
	}, nil
}

// AvailableSlots lists the free slots an applicant may book for a
// submission: slots of rooms serving the submission's first choice within
// the submission's cycle. Requires ownership and status "resume passed".
func (uc *bookingUsecase) AvailableSlots(ctx context.Context, applicationID, uid string) ([]domain.AvailableSlot, error) {
	app, err := uc.eligibleApplication(ctx, applicationID, uid)
	if err != nil {
		return nil, err
	}

	rooms, err := uc.roomRepo.ListByRecruitAndChoice(ctx, app.RecruitID, app.FirstChoice)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(rooms) == 0 {
		return []domain.AvailableSlot{}, nil
	}

	roomIDs := make([]string, 0, len(rooms))
	for _, room := range rooms {
		roomIDs = append(roomIDs, room.ID)
	}

	slots, err := uc.slotRepo.ListAvailableByRooms(ctx, roomIDs)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if slots == nil {
		slots = []domain.AvailableSlot{}
	}
	return slots, nil
}

// Book claims a slot for a submission. The conditional slot claim is the
// single serialization point: of N concurrent callers exactly one wins, the
// rest receive a 409 and must re-query availability. The claim, the
// interview insert, the slot link and the status transition commit as one
// transaction.
func (uc *bookingUsecase) Book(ctx context.Context, applicationID, slotID, uid string) (*domain.Interview, error) {
	// Second eligibility check, distinct from what the client saw when it
	// listed availability
	app, err := uc.eligibleApplication(ctx, applicationID, uid)
	if err != nil {
		return nil, err
	}

	var interview *domain.Interview
	claimed := false

	txErr := uc.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		won, err := uc.slotRepo.Claim(txCtx, slotID)
		if err != nil {
			return err
		}
		if !won {
			return errSlotTaken
		}
		claimed = true

		slot, err := uc.slotRepo.GetByID(txCtx, slotID)
		if err != nil {
			return err
		}
		room, err := uc.roomRepo.GetByID(txCtx, slot.RoomID)
		if err != nil {
			return err
		}

		interview = &domain.Interview{
			ID:            newID(),
			ApplicationID: app.ID,
			UID:           uid,
			Time:          slot.StartTime,
			Location:      room.Location,
			Notes:         fmt.Sprintf("Booked by %s at %s", uid, time.Now().Format(time.DateTime)),
		}
		if err := uc.interviewRepo.Create(txCtx, interview); err != nil {
			return err
		}
		if err := uc.slotRepo.LinkInterview(txCtx, slotID, interview.ID); err != nil {
			return err
		}
		return uc.applicationRepo.UpdateStatus(txCtx, app.ID, domain.StatusAwaitingInterview)
	})

	if txErr != nil {
		if errors.Is(txErr, errSlotTaken) {
			return nil, apperror.Conflict("This slot has already been booked, please pick another time")
		}
		if claimed {
			// The rollback already undoes the in-transaction writes; this
			// compensating release covers a store whose transactionality
			// cannot be fully trusted. Its failure is logged, never surfaced.
			uc.releaseSlot(slotID)
		}
		return nil, apperror.Internal(txErr)
	}

	uc.notifyBooking(ctx, app, interview)
	return interview, nil
}

// Cancel releases a booked interview (admin operation): the slot returns to
// unbooked, the interview record is deleted and the submission reverts to
// "resume passed" if it was still awaiting this interview.
func (uc *bookingUsecase) Cancel(ctx context.Context, interviewID string) error {
	interview, err := uc.interviewRepo.GetByID(ctx, interviewID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Interview not found")
		}
		return apperror.Internal(err)
	}

	var app *domain.Application

	txErr := uc.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		// Zero linked slots is a valid degraded state; anything else aborts
		slot, err := uc.slotRepo.GetByInterviewID(txCtx, interviewID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if slot != nil {
			if err := uc.slotRepo.Release(txCtx, slot.ID); err != nil {
				return err
			}
		}

		if err := uc.interviewRepo.Delete(txCtx, interviewID); err != nil {
			return err
		}

		app, err = uc.applicationRepo.GetByID(txCtx, interview.ApplicationID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return err
		}
		if app.Status == domain.StatusAwaitingInterview {
			return uc.applicationRepo.UpdateStatus(txCtx, app.ID, domain.StatusResumePassed)
		}
		return nil
	})
	if txErr != nil {
		return apperror.Internal(txErr)
	}

	uc.notifyCancellation(ctx, app, interview)
	return nil
}

// MyBookings lists the applicant's booked interviews within a cycle
func (uc *bookingUsecase) MyBookings(ctx context.Context, uid, recruitID string) ([]domain.MyBooking, error) {
	bookings, err := uc.interviewRepo.ListByUser(ctx, uid, recruitID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if bookings == nil {
		bookings = []domain.MyBooking{}
	}
	return bookings, nil
}

// eligibleApplication loads a submission and enforces the booking
// preconditions: the caller owns it and its status is exactly "resume
// passed"
func (uc *bookingUsecase) eligibleApplication(ctx context.Context, applicationID, uid string) (*domain.Application, error) {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Forbidden("This submission is not eligible for interview booking")
		}
		return nil, apperror.Internal(err)
	}
	if app.UID != uid || app.Status != domain.StatusResumePassed {
		return nil, apperror.Forbidden("This submission is not eligible for interview booking")
	}
	return app, nil
}

// releaseSlot is the best-effort compensating write after a failed booking
// transaction. It runs outside the primary transaction on a fresh context.
func (uc *bookingUsecase) releaseSlot(slotID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.slotRepo.Release(ctx, slotID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Log.Error("Failed to release slot after booking failure",
			"slot_id", slotID, "error", err)
	}
}

func (uc *bookingUsecase) notifyBooking(ctx context.Context, app *domain.Application, interview *domain.Interview) {
	uc.notifier.NotifyBooking(interview.UID, domain.BookingNotice{
		RecruitName: uc.recruitName(ctx, app.RecruitID),
		Choice:      app.FirstChoice,
		Time:        interview.Time,
		Location:    interview.Location,
	})
}

func (uc *bookingUsecase) notifyCancellation(ctx context.Context, app *domain.Application, interview *domain.Interview) {
	notice := domain.BookingNotice{
		Time:     interview.Time,
		Location: interview.Location,
	}
	if app != nil {
		notice.RecruitName = uc.recruitName(ctx, app.RecruitID)
		notice.Choice = app.FirstChoice
	}
	uc.notifier.NotifyCancellation(interview.UID, notice)
}

func (uc *bookingUsecase) recruitName(ctx context.Context, recruitID string) string {
	recruit, err := uc.recruitRepo.GetByID(ctx, recruitID)
	if err != nil {
		return "N/A"
	}
	return recruit.Name
}
