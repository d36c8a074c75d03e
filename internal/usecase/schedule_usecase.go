package usecase

import (
	"context"
	"errors"

	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type scheduleUsecase struct {
	roomRepo    domain.RoomRepository
	slotRepo    domain.SlotRepository
	recruitRepo domain.RecruitRepository
	tx          domain.TxManager
	validate    *validator.Validate
}

// NewScheduleUsecase creates the room and slot management usecase
func NewScheduleUsecase(
	roomRepo domain.RoomRepository,
	slotRepo domain.SlotRepository,
	recruitRepo domain.RecruitRepository,
	tx domain.TxManager,
	validate *validator.Validate,
) domain.ScheduleUsecase {
	return &scheduleUsecase{
		roomRepo:    roomRepo,
		slotRepo:    slotRepo,
		recruitRepo: recruitRepo,
		tx:          tx,
		validate:    validate,
	}
}

// CreateRoom adds an interview room to a recruitment cycle
func (uc *scheduleUsecase) CreateRoom(ctx context.Context, room *domain.InterviewRoom) (*domain.InterviewRoom, error) {
	if err := uc.validate.Struct(room); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	if _, err := uc.recruitRepo.GetByID(ctx, room.RecruitID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recruitment cycle not found")
		}
		return nil, apperror.Internal(err)
	}

	room.ID = newID()
	if err := uc.roomRepo.Create(ctx, room); err != nil {
		return nil, apperror.Internal(err)
	}
	return room, nil
}

// UpdateRoom modifies a room's name, location or served choice
func (uc *scheduleUsecase) UpdateRoom(ctx context.Context, room *domain.InterviewRoom) error {
	existing, err := uc.roomRepo.GetByID(ctx, room.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Interview room not found")
		}
		return apperror.Internal(err)
	}

	if room.Name == "" {
		room.Name = existing.Name
	}
	if room.Location == "" {
		room.Location = existing.Location
	}
	if room.Choice == "" {
		room.Choice = existing.Choice
	}

	if err := uc.roomRepo.Update(ctx, room); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// DeleteRoom removes a room together with its free slots. Refused while any
// of the room's slots is booked.
func (uc *scheduleUsecase) DeleteRoom(ctx context.Context, roomID string) error {
	if _, err := uc.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Interview room not found")
		}
		return apperror.Internal(err)
	}

	booked, err := uc.slotRepo.HasBookedByRoom(ctx, roomID)
	if err != nil {
		return apperror.Internal(err)
	}
	if booked {
		return apperror.Conflict("Room has booked interviews, cancel them before deleting the room")
	}

	txErr := uc.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.slotRepo.DeleteUnbookedByRoom(txCtx, roomID); err != nil {
			return err
		}
		return uc.roomRepo.Delete(txCtx, roomID)
	})
	if txErr != nil {
		return apperror.Internal(txErr)
	}
	return nil
}

// ListRooms retrieves all rooms of a recruitment cycle
func (uc *scheduleUsecase) ListRooms(ctx context.Context, recruitID string) ([]domain.InterviewRoom, error) {
	rooms, err := uc.roomRepo.ListByRecruit(ctx, recruitID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if rooms == nil {
		rooms = []domain.InterviewRoom{}
	}
	return rooms, nil
}

// GenerateSlots fills a room with consecutive fixed-duration slots covering
// [WindowStart, WindowEnd). A trailing remainder shorter than the duration
// is dropped. Generation is not idempotent: re-running it over an
// overlapping window creates duplicate slots.
func (uc *scheduleUsecase) GenerateSlots(ctx context.Context, roomID string, gen domain.SlotGeneration) ([]string, error) {
	if !gen.WindowStart.Before(gen.WindowEnd) || gen.Duration <= 0 {
		return nil, apperror.BadRequest("Window start must precede window end and duration must be positive")
	}

	if _, err := uc.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview room not found")
		}
		return nil, apperror.Internal(err)
	}

	var generated []string
	txErr := uc.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for cursor := gen.WindowStart; ; cursor = cursor.Add(gen.Duration) {
			end := cursor.Add(gen.Duration)
			if end.After(gen.WindowEnd) {
				break
			}

			slot := &domain.InterviewSlot{
				ID:        newID(),
				RoomID:    roomID,
				StartTime: cursor,
				EndTime:   end,
			}
			if err := uc.slotRepo.Create(txCtx, slot); err != nil {
				return err
			}
			generated = append(generated, slot.ID)
		}
		return nil
	})
	if txErr != nil {
		return nil, apperror.Internal(txErr)
	}
	return generated, nil
}

// ListSlots retrieves all slots of a room, time-ordered
func (uc *scheduleUsecase) ListSlots(ctx context.Context, roomID string) ([]domain.InterviewSlot, error) {
	if _, err := uc.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Interview room not found")
		}
		return nil, apperror.Internal(err)
	}

	slots, err := uc.slotRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if slots == nil {
		slots = []domain.InterviewSlot{}
	}
	return slots, nil
}

// DeleteSlot removes a single unbooked slot
func (uc *scheduleUsecase) DeleteSlot(ctx context.Context, slotID string) error {
	slot, err := uc.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Interview slot not found")
		}
		return apperror.Internal(err)
	}
	if slot.Booked {
		return apperror.Conflict("Slot is booked and cannot be deleted")
	}

	if err := uc.slotRepo.Delete(ctx, slotID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
