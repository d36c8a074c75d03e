package postgres

import (
	"context"
	"errors"
	"time"

	"lab-recruitment-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepo{db: db}
}

// Create inserts a new interview record
func (r *interviewRepo) Create(ctx context.Context, interview *domain.Interview) error {
	query := `
		INSERT INTO interviews (interview_id, submit_id, interviewee_uid, interview_time, location, notes)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier(ctx, r.db).Exec(ctx, query,
		interview.ID, interview.ApplicationID, interview.UID,
		interview.Time, interview.Location, interview.Notes)
	return err
}

// GetByID retrieves an interview by ID
func (r *interviewRepo) GetByID(ctx context.Context, id string) (*domain.Interview, error) {
	query := `
		SELECT interview_id, submit_id, interviewee_uid, interview_time, location, notes
		FROM interviews WHERE interview_id = $1`

	var interview domain.Interview
	err := querier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&interview.ID, &interview.ApplicationID, &interview.UID,
		&interview.Time, &interview.Location, &interview.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &interview, nil
}

// Delete removes an interview record
func (r *interviewRepo) Delete(ctx context.Context, id string) error {
	result, err := querier(ctx, r.db).Exec(ctx, `DELETE FROM interviews WHERE interview_id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update patches the reschedulable fields of an interview
func (r *interviewRepo) Update(ctx context.Context, id string, update domain.InterviewUpdate) error {
	query := `
		UPDATE interviews SET
			interview_time = COALESCE($2, interview_time),
			location = COALESCE($3, location),
			notes = COALESCE($4, notes)
		WHERE interview_id = $1`

	result, err := querier(ctx, r.db).Exec(ctx, query, id, update.Time, update.Location, update.Notes)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByRecruit retrieves all interviews of a cycle for the admin overview,
// joined with applicant, room and review data
func (r *interviewRepo) ListByRecruit(ctx context.Context, recruitID string) ([]domain.InterviewDetail, error) {
	query := `
		SELECT
			i.interview_id, i.submit_id, i.interviewee_uid, i.interview_time, i.location, i.notes,
			u.email as applicant_name,
			rm.room_id, rm.room_name,
			a.first_choice,
			rv.passed, rv.score, rv.comments, rv.reviewer_uid, rv.review_time
		FROM interviews i
		JOIN applications a ON i.submit_id = a.submit_id
		LEFT JOIN users u ON i.interviewee_uid = u.uid
		LEFT JOIN interview_slots s ON i.interview_id = s.booked_interview_id
		LEFT JOIN interview_rooms rm ON s.room_id = rm.room_id
		LEFT JOIN interview_reviews rv ON i.interview_id = rv.interview_id
		WHERE a.recruit_id = $1
		ORDER BY i.interview_time DESC`

	rows, err := querier(ctx, r.db).Query(ctx, query, recruitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.InterviewDetail
	for rows.Next() {
		var d domain.InterviewDetail
		if err := rows.Scan(
			&d.ID, &d.ApplicationID, &d.UID, &d.Time, &d.Location, &d.Notes,
			&d.ApplicantName,
			&d.RoomID, &d.RoomName,
			&d.FirstChoice,
			&d.ResultPassed, &d.Score, &d.Feedback, &d.ReviewerUID, &d.ReviewTime,
		); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// ListByUser retrieves an applicant's booked interviews within a cycle
func (r *interviewRepo) ListByUser(ctx context.Context, uid, recruitID string) ([]domain.MyBooking, error) {
	query := `
		SELECT i.interview_id, i.submit_id, i.interview_time, i.location, a.first_choice
		FROM interviews i
		JOIN applications a ON i.submit_id = a.submit_id
		WHERE i.interviewee_uid = $1 AND a.recruit_id = $2
		ORDER BY i.interview_time ASC`

	rows, err := querier(ctx, r.db).Query(ctx, query, uid, recruitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.MyBooking
	for rows.Next() {
		var b domain.MyBooking
		if err := rows.Scan(
			&b.InterviewID, &b.ApplicationID, &b.Time, &b.Location, &b.Choice,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// CreateReview records an interview result
func (r *interviewRepo) CreateReview(ctx context.Context, review *domain.InterviewReview) error {
	query := `
		INSERT INTO interview_reviews (review_id, interview_id, reviewer_uid, passed, score, comments, review_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if review.ReviewTime.IsZero() {
		review.ReviewTime = time.Now()
	}

	_, err := querier(ctx, r.db).Exec(ctx, query,
		review.ID, review.InterviewID, review.ReviewerUID,
		review.Passed, review.Score, review.Comments, review.ReviewTime)
	return err
}
