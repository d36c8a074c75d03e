package postgres

import (
	"context"
	"errors"

	"lab-recruitment-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recruitRepo struct {
	db *pgxpool.Pool
}

// NewRecruitRepository creates a new recruitment cycle repository
func NewRecruitRepository(db *pgxpool.Pool) domain.RecruitRepository {
	return &recruitRepo{db: db}
}

// Create inserts a new recruitment cycle
func (r *recruitRepo) Create(ctx context.Context, recruit *domain.Recruit) error {
	query := `
		INSERT INTO recruits (recruit_id, name, description, is_active, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier(ctx, r.db).Exec(ctx, query,
		recruit.ID, recruit.Name, recruit.Description, recruit.Active,
		recruit.StartTime, recruit.EndTime)
	return err
}

// GetByID retrieves a recruitment cycle by ID
func (r *recruitRepo) GetByID(ctx context.Context, id string) (*domain.Recruit, error) {
	query := `
		SELECT recruit_id, name, description, is_active, start_time, end_time
		FROM recruits WHERE recruit_id = $1`

	var recruit domain.Recruit
	err := querier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&recruit.ID, &recruit.Name, &recruit.Description, &recruit.Active,
		&recruit.StartTime, &recruit.EndTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &recruit, nil
}

// List retrieves all recruitment cycles, newest first
func (r *recruitRepo) List(ctx context.Context) ([]domain.Recruit, error) {
	query := `
		SELECT recruit_id, name, description, is_active, start_time, end_time
		FROM recruits
		ORDER BY start_time DESC`

	rows, err := querier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recruits []domain.Recruit
	for rows.Next() {
		var recruit domain.Recruit
		if err := rows.Scan(
			&recruit.ID, &recruit.Name, &recruit.Description, &recruit.Active,
			&recruit.StartTime, &recruit.EndTime,
		); err != nil {
			return nil, err
		}
		recruits = append(recruits, recruit)
	}
	return recruits, rows.Err()
}

// Update modifies a recruitment cycle
func (r *recruitRepo) Update(ctx context.Context, recruit *domain.Recruit) error {
	query := `
		UPDATE recruits
		SET name = $2, description = $3, is_active = $4, start_time = $5, end_time = $6
		WHERE recruit_id = $1`

	result, err := querier(ctx, r.db).Exec(ctx, query,
		recruit.ID, recruit.Name, recruit.Description, recruit.Active,
		recruit.StartTime, recruit.EndTime)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetSettings retrieves the booking window settings of a cycle
func (r *recruitRepo) GetSettings(ctx context.Context, recruitID string) (*domain.RecruitSettings, error) {
	query := `
		SELECT recruit_id, book_start_time, book_end_time
		FROM recruit_interview_settings WHERE recruit_id = $1`

	var settings domain.RecruitSettings
	err := querier(ctx, r.db).QueryRow(ctx, query, recruitID).Scan(
		&settings.RecruitID, &settings.BookStartTime, &settings.BookEndTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// UpsertSettings creates or replaces the booking window of a cycle
func (r *recruitRepo) UpsertSettings(ctx context.Context, settings *domain.RecruitSettings) error {
	query := `
		INSERT INTO recruit_interview_settings (recruit_id, book_start_time, book_end_time)
		VALUES ($1, $2, $3)
		ON CONFLICT (recruit_id) DO UPDATE
		SET book_start_time = EXCLUDED.book_start_time, book_end_time = EXCLUDED.book_end_time`

	_, err := querier(ctx, r.db).Exec(ctx, query,
		settings.RecruitID, settings.BookStartTime, settings.BookEndTime)
	return err
}
