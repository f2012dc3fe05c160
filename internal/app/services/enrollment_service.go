package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hoangle/english-center/internal/app/models"
	"github.com/hoangle/english-center/internal/app/repositories"
	"github.com/hoangle/english-center/internal/db"
	"github.com/hoangle/english-center/internal/pkg/apperrors"
	"github.com/hoangle/english-center/internal/pkg/dberrors"
)

// EnrollmentService admits students into classrooms while keeping
// current_students within max_students. The seat reservation and the
// enrollment row are written in one transaction: no observer ever sees an
// incremented count without the matching enrollment, or vice versa.
type EnrollmentService struct {
	database       *db.PostgresDB
	enrollmentRepo *repositories.EnrollmentRepository
	classroomRepo  *repositories.ClassroomRepository
	studentRepo    *repositories.StudentRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(
	database *db.PostgresDB,
	enrollmentRepo *repositories.EnrollmentRepository,
	classroomRepo *repositories.ClassroomRepository,
	studentRepo *repositories.StudentRepository,
) *EnrollmentService {
	return &EnrollmentService{
		database:       database,
		enrollmentRepo: enrollmentRepo,
		classroomRepo:  classroomRepo,
		studentRepo:    studentRepo,
	}
}

// CanEnroll reports whether the classroom accepts another student: it must
// be active and under its enrollment limit.
func (s *EnrollmentService) CanEnroll(ctx context.Context, classroomID int64) (bool, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, s.database.Pool, classroomID)
	if err != nil {
		return false, fmt.Errorf("error resolving classroom: %w", err)
	}
	if classroom == nil {
		return false, apperrors.ErrClassroomNotFound
	}

	return classroom.CanEnroll(), nil
}

// Enroll assigns a student to a classroom. Fails with
// ErrDuplicateEnrollment when the student already holds an active
// enrollment there, ErrCapacityExceeded when the class is full, and
// ErrClassroomNotActive when the class no longer accepts students.
func (s *EnrollmentService) Enroll(ctx context.Context, classroomID, studentID int64) (*models.Enrollment, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error resolving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	enrollment := &models.Enrollment{
		StudentID:   studentID,
		ClassroomID: classroomID,
		Status:      models.EnrollmentActive,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		classroom, err := s.classroomRepo.GetByID(ctx, tx, classroomID)
		if err != nil {
			return fmt.Errorf("error resolving classroom: %w", err)
		}
		if classroom == nil {
			return apperrors.ErrClassroomNotFound
		}
		if classroom.Status != models.ClassActive {
			return apperrors.ErrClassroomNotActive
		}

		// The guarded update is the capacity gate: it only succeeds while
		// current_students < max_students, so a concurrent enroll cannot
		// slip past the check.
		reserved, err := s.classroomRepo.ReserveSeat(ctx, tx, classroomID)
		if err != nil {
			return err
		}
		if !reserved {
			return apperrors.ErrCapacityExceeded
		}

		if err := s.enrollmentRepo.Create(ctx, tx, enrollment); err != nil {
			if dberrors.IsDuplicateConstraintError(err, repositories.UniqueActiveEnrollment) {
				return apperrors.ErrDuplicateEnrollment
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

// Cancel revokes an active enrollment and frees its seat. Cancelling an
// enrollment that is missing or already cancelled fails with
// ErrEnrollmentNotFound; the seat count is never decremented twice.
func (s *EnrollmentService) Cancel(ctx context.Context, enrollmentID int64) error {
	return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		classroomID, cancelled, err := s.enrollmentRepo.MarkCancelled(ctx, tx, enrollmentID)
		if err != nil {
			return err
		}
		if !cancelled {
			return apperrors.ErrEnrollmentNotFound
		}

		return s.classroomRepo.ReleaseSeat(ctx, tx, classroomID)
	})
}

// EnrollOutcome is the per-student result of a bulk assignment.
type EnrollOutcome struct {
	StudentID  int64
	Enrollment *models.Enrollment
	Err        error
}

// EnrollMany assigns several students to a classroom. Each student is
// attempted independently; a full class or a duplicate fails that student
// only, never the whole batch.
func (s *EnrollmentService) EnrollMany(ctx context.Context, classroomID int64, studentIDs []int64) ([]EnrollOutcome, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, s.database.Pool, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error resolving classroom: %w", err)
	}
	if classroom == nil {
		return nil, apperrors.ErrClassroomNotFound
	}

	outcomes := make([]EnrollOutcome, 0, len(studentIDs))
	for _, studentID := range studentIDs {
		enrollment, err := s.Enroll(ctx, classroomID, studentID)
		outcome := EnrollOutcome{StudentID: studentID, Enrollment: enrollment, Err: err}
		if err != nil && !isEnrollRejection(err) {
			// Infrastructure failure, not a scheduling fact: stop the batch.
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}

// isEnrollRejection separates per-student business rejections from
// infrastructure errors.
func isEnrollRejection(err error) bool {
	return errors.Is(err, apperrors.ErrCapacityExceeded) ||
		errors.Is(err, apperrors.ErrDuplicateEnrollment) ||
		errors.Is(err, apperrors.ErrClassroomNotActive) ||
		errors.Is(err, apperrors.ErrStudentNotFound)
}

// ListForClassroom retrieves a classroom's enrollments.
func (s *EnrollmentService) ListForClassroom(ctx context.Context, classroomID int64) ([]*models.Enrollment, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, s.database.Pool, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error resolving classroom: %w", err)
	}
	if classroom == nil {
		return nil, apperrors.ErrClassroomNotFound
	}

	return s.enrollmentRepo.ListForClassroom(ctx, classroomID)
}

// ListForStudent retrieves a student's enrollments.
func (s *EnrollmentService) ListForStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	return s.enrollmentRepo.ListForStudent(ctx, studentID)
}
