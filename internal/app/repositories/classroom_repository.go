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

// ClassroomRepository handles database operations for classrooms
type ClassroomRepository struct {
	db *pgxpool.Pool
}

// NewClassroomRepository creates a new classroom repository
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{
		db: db,
	}
}

// Create creates a new classroom
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	query := `
		INSERT INTO classrooms (name, course_level, teacher_id, room_id, max_students, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, current_students
	`

	err := r.db.QueryRow(ctx, query,
		classroom.Name,
		classroom.CourseLevel,
		classroom.TeacherID,
		classroom.RoomID,
		classroom.MaxStudents,
		classroom.Status,
	).Scan(&classroom.ID, &classroom.CurrentStudents)
	if err != nil {
		return fmt.Errorf("error creating classroom: %w", err)
	}

	return nil
}

// GetByID retrieves a classroom by ID. Returns nil when missing.
func (r *ClassroomRepository) GetByID(ctx context.Context, q db.Querier, id int64) (*models.Classroom, error) {
	query := `
		SELECT id, name, course_level, teacher_id, room_id, max_students, current_students, status
		FROM classrooms
		WHERE id = $1
	`

	var classroom models.Classroom
	err := q.QueryRow(ctx, query, id).Scan(
		&classroom.ID,
		&classroom.Name,
		&classroom.CourseLevel,
		&classroom.TeacherID,
		&classroom.RoomID,
		&classroom.MaxStudents,
		&classroom.CurrentStudents,
		&classroom.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving classroom: %w", err)
	}

	return &classroom, nil
}

// GetAll retrieves classrooms, optionally filtered by teacher and status.
func (r *ClassroomRepository) GetAll(ctx context.Context, teacherID int64, status models.ClassStatus) ([]*models.Classroom, error) {
	query := `
		SELECT id, name, course_level, teacher_id, room_id, max_students, current_students, status
		FROM classrooms
		WHERE ($1 = 0 OR teacher_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, teacherID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classrooms []*models.Classroom
	for rows.Next() {
		var classroom models.Classroom
		if err := rows.Scan(
			&classroom.ID,
			&classroom.Name,
			&classroom.CourseLevel,
			&classroom.TeacherID,
			&classroom.RoomID,
			&classroom.MaxStudents,
			&classroom.CurrentStudents,
			&classroom.Status,
		); err != nil {
			return nil, err
		}
		classrooms = append(classrooms, &classroom)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return classrooms, nil
}

// Update rewrites the mutable classroom fields.
func (r *ClassroomRepository) Update(ctx context.Context, classroom *models.Classroom) error {
	query := `
		UPDATE classrooms
		SET name = $1, course_level = $2, teacher_id = $3, room_id = $4, max_students = $5, status = $6
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		classroom.Name,
		classroom.CourseLevel,
		classroom.TeacherID,
		classroom.RoomID,
		classroom.MaxStudents,
		classroom.Status,
		classroom.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating classroom: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a classroom; its schedules go with it (FK cascade).
func (r *ClassroomRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM classrooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting classroom: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// HasActiveEnrollments reports whether any student is still actively
// enrolled in the classroom.
func (r *ClassroomRepository) HasActiveEnrollments(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM enrollments WHERE classroom_id = $1 AND status = 'active')`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking classroom enrollments: %w", err)
	}

	return exists, nil
}

// ReserveSeat increments current_students, but only while the classroom is
// active and under its limit. The guard lives in the WHERE clause so two
// racing enrollments can never both take the last seat.
func (r *ClassroomRepository) ReserveSeat(ctx context.Context, q db.Querier, id int64) (bool, error) {
	cmdTag, err := q.Exec(ctx, `
		UPDATE classrooms
		SET current_students = current_students + 1
		WHERE id = $1 AND status = 'active' AND current_students < max_students`,
		id)
	if err != nil {
		return false, fmt.Errorf("error reserving classroom seat: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// ReleaseSeat decrements current_students after a cancellation.
func (r *ClassroomRepository) ReleaseSeat(ctx context.Context, q db.Querier, id int64) error {
	_, err := q.Exec(ctx, `
		UPDATE classrooms
		SET current_students = current_students - 1
		WHERE id = $1 AND current_students > 0`,
		id)
	if err != nil {
		return fmt.Errorf("error releasing classroom seat: %w", err)
	}

	return nil
}
