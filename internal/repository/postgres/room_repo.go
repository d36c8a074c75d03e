package postgres

import (
	"context"
	"errors"

	"lab-recruitment-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type roomRepo struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a new interview room repository
func NewRoomRepository(db *pgxpool.Pool) domain.RoomRepository {
	return &roomRepo{db: db}
}

// Create inserts a new interview room
func (r *roomRepo) Create(ctx context.Context, room *domain.InterviewRoom) error {
	query := `
		INSERT INTO interview_rooms (room_id, recruit_id, room_name, location, applicable_to_choice)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := querier(ctx, r.db).Exec(ctx, query,
		room.ID, room.RecruitID, room.Name, room.Location, room.Choice)
	return err
}

// GetByID retrieves a room by ID
func (r *roomRepo) GetByID(ctx context.Context, id string) (*domain.InterviewRoom, error) {
	query := `
		SELECT room_id, recruit_id, room_name, location, applicable_to_choice
		FROM interview_rooms WHERE room_id = $1`

	var room domain.InterviewRoom
	err := querier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&room.ID, &room.RecruitID, &room.Name, &room.Location, &room.Choice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// ListByRecruit retrieves all rooms of a recruitment cycle
func (r *roomRepo) ListByRecruit(ctx context.Context, recruitID string) ([]domain.InterviewRoom, error) {
	query := `
		SELECT room_id, recruit_id, room_name, location, applicable_to_choice
		FROM interview_rooms WHERE recruit_id = $1
		ORDER BY room_name ASC`

	return r.list(ctx, query, recruitID)
}

// ListByRecruitAndChoice retrieves the rooms serving one applicant choice
func (r *roomRepo) ListByRecruitAndChoice(ctx context.Context, recruitID, choice string) ([]domain.InterviewRoom, error) {
	query := `
		SELECT room_id, recruit_id, room_name, location, applicable_to_choice
		FROM interview_rooms WHERE recruit_id = $1 AND applicable_to_choice = $2
		ORDER BY room_name ASC`

	return r.list(ctx, query, recruitID, choice)
}

func (r *roomRepo) list(ctx context.Context, query string, args ...any) ([]domain.InterviewRoom, error) {
	rows, err := querier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.InterviewRoom
	for rows.Next() {
		var room domain.InterviewRoom
		if err := rows.Scan(
			&room.ID, &room.RecruitID, &room.Name, &room.Location, &room.Choice,
		); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// Update modifies a room's name, location and served choice
func (r *roomRepo) Update(ctx context.Context, room *domain.InterviewRoom) error {
	query := `
		UPDATE interview_rooms
		SET room_name = $2, location = $3, applicable_to_choice = $4
		WHERE room_id = $1`

	result, err := querier(ctx, r.db).Exec(ctx, query,
		room.ID, room.Name, room.Location, room.Choice)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a room
func (r *roomRepo) Delete(ctx context.Context, id string) error {
	result, err := querier(ctx, r.db).Exec(ctx, `DELETE FROM interview_rooms WHERE room_id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
