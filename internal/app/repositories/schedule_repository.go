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

// Advisory lock namespaces for serializing conflict check + commit.
const (
	lockClassTeacher = 1
	lockClassRoom    = 2
)

const scheduleColumns = `
	s.id, s.classroom_id, s.weekday, s.start_minute, s.end_minute,
	c.teacher_id, c.room_id, c.name, c.status`

// ScheduleRepository handles database operations for recurring weekly slots.
type ScheduleRepository struct {
	db *pgxpool.Pool
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
	}
}

func scanSchedule(row pgx.Row) (*models.Schedule, error) {
	var s models.Schedule
	err := row.Scan(
		&s.ID,
		&s.ClassroomID,
		&s.Weekday,
		&s.StartMinute,
		&s.EndMinute,
		&s.TeacherID,
		&s.RoomID,
		&s.ClassroomName,
		&s.ClassroomStatus,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func collectSchedules(rows pgx.Rows) ([]*models.Schedule, error) {
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// GetByID retrieves a schedule with its owning classroom's teacher and room.
func (r *ScheduleRepository) GetByID(ctx context.Context, q db.Querier, id int64) (*models.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules s
		JOIN classrooms c ON c.id = s.classroom_id
		WHERE s.id = $1
	`

	schedule, err := scanSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving schedule: %w", err)
	}

	return schedule, nil
}

// Create inserts a schedule row and returns its id.
func (r *ScheduleRepository) Create(ctx context.Context, q db.Querier, schedule *models.Schedule) error {
	query := `
		INSERT INTO schedules (classroom_id, weekday, start_minute, end_minute)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		schedule.ClassroomID, schedule.Weekday, schedule.StartMinute, schedule.EndMinute,
	).Scan(&schedule.ID)
	if err != nil {
		return fmt.Errorf("error creating schedule: %w", err)
	}

	return nil
}

// Update rewrites a schedule's weekday and time range.
func (r *ScheduleRepository) Update(ctx context.Context, q db.Querier, schedule *models.Schedule) error {
	query := `
		UPDATE schedules
		SET weekday = $1, start_minute = $2, end_minute = $3
		WHERE id = $4
	`

	cmdTag, err := q.Exec(ctx, query,
		schedule.Weekday, schedule.StartMinute, schedule.EndMinute, schedule.ID)
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// Delete removes a schedule row. Returns false when the row was already
// gone, which callers treat as a benign outcome.
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting schedule: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// ListForClassroom retrieves all schedules owned by a classroom.
func (r *ScheduleRepository) ListForClassroom(ctx context.Context, classroomID int64) ([]*models.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules s
		JOIN classrooms c ON c.id = s.classroom_id
		WHERE s.classroom_id = $1
		ORDER BY s.weekday, s.start_minute
	`

	rows, err := r.db.Query(ctx, query, classroomID)
	if err != nil {
		return nil, err
	}

	return collectSchedules(rows)
}

// ListForTeacher retrieves all schedules taught by a teacher, regardless of
// classroom status (historical timetables include finished classes).
func (r *ScheduleRepository) ListForTeacher(ctx context.Context, teacherID int64) ([]*models.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules s
		JOIN classrooms c ON c.id = s.classroom_id
		WHERE c.teacher_id = $1
		ORDER BY s.weekday, s.start_minute
	`

	rows, err := r.db.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}

	return collectSchedules(rows)
}

// ListForRoom retrieves all schedules hosted in a room.
func (r *ScheduleRepository) ListForRoom(ctx context.Context, roomID int64) ([]*models.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules s
		JOIN classrooms c ON c.id = s.classroom_id
		WHERE c.room_id = $1
		ORDER BY s.weekday, s.start_minute
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, err
	}

	return collectSchedules(rows)
}

// ListForStudent retrieves the schedules of all classrooms a student is
// actively enrolled in.
func (r *ScheduleRepository) ListForStudent(ctx context.Context, studentID int64) ([]*models.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules s
		JOIN classrooms c ON c.id = s.classroom_id
		JOIN enrollments e ON e.classroom_id = c.id
		WHERE e.student_id = $1 AND e.status = 'active'
		ORDER BY s.weekday, s.start_minute
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}

	return collectSchedules(rows)
}

// ListAll retrieves every schedule, for the staff-wide timetable.
func (r *ScheduleRepository) ListAll(ctx context.Context) ([]*models.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules s
		JOIN classrooms c ON c.id = s.classroom_id
		ORDER BY s.weekday, s.start_minute
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return collectSchedules(rows)
}

// ActiveForTeacher retrieves the conflict-relevant schedules of a teacher:
// only slots owned by active classrooms participate in conflict checks.
// The teacher-indexed join keeps this O(schedules for that teacher).
func (r *ScheduleRepository) ActiveForTeacher(ctx context.Context, q db.Querier, teacherID int64) ([]*models.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules s
		JOIN classrooms c ON c.id = s.classroom_id
		WHERE c.teacher_id = $1 AND c.status = 'active'
	`

	rows, err := q.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}

	return collectSchedules(rows)
}

// ActiveForRoom retrieves the conflict-relevant schedules hosted in a room.
func (r *ScheduleRepository) ActiveForRoom(ctx context.Context, q db.Querier, roomID int64) ([]*models.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules s
		JOIN classrooms c ON c.id = s.classroom_id
		WHERE c.room_id = $1 AND c.status = 'active'
	`

	rows, err := q.Query(ctx, query, roomID)
	if err != nil {
		return nil, err
	}

	return collectSchedules(rows)
}

// LockResources serializes concurrent conflict checks for the same teacher
// or room. Two transactions booking the same resource queue here, so the
// second one sees the first one's committed row and cannot double-book.
func (r *ScheduleRepository) LockResources(ctx context.Context, q db.Querier, teacherID, roomID int64) error {
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, lockClassTeacher, int32(teacherID)); err != nil {
		return fmt.Errorf("error locking teacher for scheduling: %w", err)
	}
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, lockClassRoom, int32(roomID)); err != nil {
		return fmt.Errorf("error locking room for scheduling: %w", err)
	}
	return nil
}
