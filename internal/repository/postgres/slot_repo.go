package postgres

import (
	"context"
	"errors"

	"lab-recruitment-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type slotRepo struct {
	db *pgxpool.Pool
}

// NewSlotRepository creates a new interview slot repository
func NewSlotRepository(db *pgxpool.Pool) domain.SlotRepository {
	return &slotRepo{db: db}
}

// Create inserts a new unbooked slot
func (r *slotRepo) Create(ctx context.Context, slot *domain.InterviewSlot) error {
	query := `
		INSERT INTO interview_slots (slot_id, room_id, start_time, end_time, booked, booked_interview_id)
		VALUES ($1, $2, $3, $4, FALSE, NULL)`

	_, err := querier(ctx, r.db).Exec(ctx, query,
		slot.ID, slot.RoomID, slot.StartTime, slot.EndTime)
	return err
}

// GetByID retrieves a slot by ID
func (r *slotRepo) GetByID(ctx context.Context, id string) (*domain.InterviewSlot, error) {
	query := `
		SELECT slot_id, room_id, start_time, end_time, booked, booked_interview_id
		FROM interview_slots WHERE slot_id = $1`

	var slot domain.InterviewSlot
	err := querier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&slot.ID, &slot.RoomID, &slot.StartTime, &slot.EndTime, &slot.Booked, &slot.InterviewID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

// GetByInterviewID retrieves the slot linked to an interview. Returns
// domain.ErrNotFound when no slot references the interview, which is a
// valid degraded state for the cancellation flow.
func (r *slotRepo) GetByInterviewID(ctx context.Context, interviewID string) (*domain.InterviewSlot, error) {
	query := `
		SELECT slot_id, room_id, start_time, end_time, booked, booked_interview_id
		FROM interview_slots WHERE booked_interview_id = $1`

	var slot domain.InterviewSlot
	err := querier(ctx, r.db).QueryRow(ctx, query, interviewID).Scan(
		&slot.ID, &slot.RoomID, &slot.StartTime, &slot.EndTime, &slot.Booked, &slot.InterviewID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

// ListByRoom retrieves all slots of a room ordered by start time
func (r *slotRepo) ListByRoom(ctx context.Context, roomID string) ([]domain.InterviewSlot, error) {
	query := `
		SELECT slot_id, room_id, start_time, end_time, booked, booked_interview_id
		FROM interview_slots
		WHERE room_id = $1
		ORDER BY start_time ASC`

	rows, err := querier(ctx, r.db).Query(ctx, query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []domain.InterviewSlot
	for rows.Next() {
		var slot domain.InterviewSlot
		if err := rows.Scan(
			&slot.ID, &slot.RoomID, &slot.StartTime, &slot.EndTime, &slot.Booked, &slot.InterviewID,
		); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// ListAvailableByRooms retrieves all unbooked slots across the given rooms,
// joined with room name and location, ordered by start time
func (r *slotRepo) ListAvailableByRooms(ctx context.Context, roomIDs []string) ([]domain.AvailableSlot, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT s.slot_id, s.start_time, s.end_time, rm.room_name, rm.location
		FROM interview_slots s
		JOIN interview_rooms rm ON s.room_id = rm.room_id
		WHERE s.room_id = ANY($1) AND s.booked = FALSE
		ORDER BY s.start_time ASC`

	rows, err := querier(ctx, r.db).Query(ctx, query, pq.Array(roomIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []domain.AvailableSlot
	for rows.Next() {
		var slot domain.AvailableSlot
		if err := rows.Scan(
			&slot.SlotID, &slot.StartTime, &slot.EndTime, &slot.RoomName, &slot.Location,
		); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// Claim performs the atomic conditional update that serializes concurrent
// bookings of the same slot. Exactly one caller observes claimed = true;
// everyone else sees false and must re-query availability.
func (r *slotRepo) Claim(ctx context.Context, id string) (bool, error) {
	query := `UPDATE interview_slots SET booked = TRUE WHERE slot_id = $1 AND booked = FALSE`

	result, err := querier(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() == 1, nil
}

// LinkInterview records the interview created for a claimed slot
func (r *slotRepo) LinkInterview(ctx context.Context, id, interviewID string) error {
	query := `UPDATE interview_slots SET booked_interview_id = $2 WHERE slot_id = $1`

	result, err := querier(ctx, r.db).Exec(ctx, query, id, interviewID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Release reverts a slot to unbooked and clears the interview link
func (r *slotRepo) Release(ctx context.Context, id string) error {
	query := `UPDATE interview_slots SET booked = FALSE, booked_interview_id = NULL WHERE slot_id = $1`

	result, err := querier(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a single slot
func (r *slotRepo) Delete(ctx context.Context, id string) error {
	result, err := querier(ctx, r.db).Exec(ctx, `DELETE FROM interview_slots WHERE slot_id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteUnbookedByRoom removes all free slots of a room (room deletion path)
func (r *slotRepo) DeleteUnbookedByRoom(ctx context.Context, roomID string) error {
	_, err := querier(ctx, r.db).Exec(ctx,
		`DELETE FROM interview_slots WHERE room_id = $1 AND booked = FALSE`, roomID)
	return err
}

// HasBookedByRoom reports whether any slot of the room is currently booked
func (r *slotRepo) HasBookedByRoom(ctx context.Context, roomID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM interview_slots WHERE room_id = $1 AND booked = TRUE)`
	var exists bool
	err := querier(ctx, r.db).QueryRow(ctx, query, roomID).Scan(&exists)
	return exists, err
}
