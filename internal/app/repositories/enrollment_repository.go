package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoangle/english-center/internal/app/models"
	"github.com/hoangle/english-center/internal/db"
)

// UniqueActiveEnrollment is the partial unique index guarding the
// one-active-enrollment-per-(student, classroom) invariant.
const UniqueActiveEnrollment = "enrollments_one_active_per_classroom"

// EnrollmentRepository handles database operations for enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
	}
}

// Create inserts an active enrollment. A unique violation on
// UniqueActiveEnrollment means the student is already enrolled.
func (r *EnrollmentRepository) Create(ctx context.Context, q db.Querier, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, classroom_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, enrolled_at
	`

	err := q.QueryRow(ctx, query,
		enrollment.StudentID, enrollment.ClassroomID, enrollment.Status,
	).Scan(&enrollment.ID, &enrollment.EnrolledAt)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves an enrollment by ID. Returns nil when missing.
func (r *EnrollmentRepository) GetByID(ctx context.Context, q db.Querier, id int64) (*models.Enrollment, error) {
	query := `
		SELECT id, student_id, classroom_id, status, enrolled_at
		FROM enrollments
		WHERE id = $1
	`

	var enrollment models.Enrollment
	err := q.QueryRow(ctx, query, id).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.ClassroomID,
		&enrollment.Status,
		&enrollment.EnrolledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving enrollment: %w", err)
	}

	return &enrollment, nil
}

// MarkCancelled flips an active enrollment to cancelled and reports whether
// a row actually changed. A second cancellation matches no row.
func (r *EnrollmentRepository) MarkCancelled(ctx context.Context, q db.Querier, id int64) (classroomID int64, cancelled bool, err error) {
	query := `
		UPDATE enrollments
		SET status = 'cancelled'
		WHERE id = $1 AND status = 'active'
		RETURNING classroom_id
	`

	err = q.QueryRow(ctx, query, id).Scan(&classroomID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error cancelling enrollment: %w", err)
	}

	return classroomID, true, nil
}

// ListForClassroom retrieves a classroom's enrollments with student names.
func (r *EnrollmentRepository) ListForClassroom(ctx context.Context, classroomID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.classroom_id, e.status, e.enrolled_at, st.name
		FROM enrollments e
		JOIN students st ON st.id = e.student_id
		WHERE e.classroom_id = $1
		ORDER BY e.enrolled_at, e.id
	`

	rows, err := r.db.Query(ctx, query, classroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		var studentName string
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.ClassroomID,
			&enrollment.Status,
			&enrollment.EnrolledAt,
			&studentName,
		); err != nil {
			return nil, err
		}
		enrollment.Student = &models.Student{ID: enrollment.StudentID, Name: studentName}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// ListForStudent retrieves all of a student's enrollments.
func (r *EnrollmentRepository) ListForStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	query := `
		SELECT id, student_id, classroom_id, status, enrolled_at
		FROM enrollments
		WHERE student_id = $1
		ORDER BY enrolled_at, id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		var enrollment models.Enrollment
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.ClassroomID,
			&enrollment.Status,
			&enrollment.EnrolledAt,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, &enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}
