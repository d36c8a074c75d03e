package postgres

import (
	"context"
	"errors"

	"lab-recruitment-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new resume submission repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// GetByID retrieves a submission by ID
func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `
		SELECT submit_id, uid, recruit_id, first_choice, status, submit_time
		FROM applications WHERE submit_id = $1`

	var app domain.Application
	err := querier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&app.ID, &app.UID, &app.RecruitID, &app.FirstChoice, &app.Status, &app.SubmitTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	app.StatusName = app.Status.Name()
	return &app, nil
}

// GetByUserAndRecruit retrieves a user's submission to a cycle
func (r *applicationRepo) GetByUserAndRecruit(ctx context.Context, uid, recruitID string) (*domain.Application, error) {
	query := `
		SELECT submit_id, uid, recruit_id, first_choice, status, submit_time
		FROM applications WHERE uid = $1 AND recruit_id = $2`

	var app domain.Application
	err := querier(ctx, r.db).QueryRow(ctx, query, uid, recruitID).Scan(
		&app.ID, &app.UID, &app.RecruitID, &app.FirstChoice, &app.Status, &app.SubmitTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	app.StatusName = app.Status.Name()
	return &app, nil
}

// ListByRecruit retrieves all submissions of a cycle with applicant names joined
func (r *applicationRepo) ListByRecruit(ctx context.Context, recruitID string) ([]domain.Application, error) {
	query := `
		SELECT a.submit_id, a.uid, a.recruit_id, a.first_choice, a.status, a.submit_time,
			u.email as applicant_name
		FROM applications a
		LEFT JOIN users u ON a.uid = u.uid
		WHERE a.recruit_id = $1
		ORDER BY a.submit_time DESC`

	rows, err := querier(ctx, r.db).Query(ctx, query, recruitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.UID, &app.RecruitID, &app.FirstChoice, &app.Status, &app.SubmitTime,
			&app.ApplicantName,
		); err != nil {
			return nil, err
		}
		app.StatusName = app.Status.Name()
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// UpdateStatus sets the status of a submission
func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $2 WHERE submit_id = $1`

	result, err := querier(ctx, r.db).Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
