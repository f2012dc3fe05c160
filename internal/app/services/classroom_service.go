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
)

// ClassroomService handles classroom lifecycle operations. The room
// capacity check (room capacity >= max_students) runs whenever a classroom
// is created, or re-pointed at a room, or has its limit raised.
type ClassroomService struct {
	database      *db.PostgresDB
	classroomRepo *repositories.ClassroomRepository
	teacherRepo   *repositories.TeacherRepository
	roomRepo      *repositories.RoomRepository
}

// NewClassroomService creates a new classroom service instance
func NewClassroomService(
	database *db.PostgresDB,
	classroomRepo *repositories.ClassroomRepository,
	teacherRepo *repositories.TeacherRepository,
	roomRepo *repositories.RoomRepository,
) *ClassroomService {
	return &ClassroomService{
		database:      database,
		classroomRepo: classroomRepo,
		teacherRepo:   teacherRepo,
		roomRepo:      roomRepo,
	}
}

// validateReferences checks that the classroom's teacher and room exist and
// that the room can physically hold the class.
func (s *ClassroomService) validateReferences(ctx context.Context, classroom *models.Classroom) error {
	teacher, err := s.teacherRepo.GetByID(ctx, classroom.TeacherID)
	if err != nil {
		return fmt.Errorf("error checking teacher: %w", err)
	}
	if teacher == nil {
		return apperrors.ErrTeacherNotFound
	}

	room, err := s.roomRepo.GetByID(ctx, classroom.RoomID)
	if err != nil {
		return fmt.Errorf("error checking room: %w", err)
	}
	if room == nil {
		return apperrors.ErrRoomNotFound
	}

	if room.Capacity < classroom.MaxStudents {
		return apperrors.ErrRoomTooSmall
	}

	return nil
}

// CreateClassroom creates a new classroom in active status.
func (s *ClassroomService) CreateClassroom(ctx context.Context, classroom *models.Classroom) error {
	if classroom.MaxStudents <= 0 {
		return fmt.Errorf("%w: max students must be positive", apperrors.ErrValidationFailed)
	}

	if classroom.Status == "" {
		classroom.Status = models.ClassActive
	}

	if err := s.validateReferences(ctx, classroom); err != nil {
		return err
	}

	return s.classroomRepo.Create(ctx, classroom)
}

// GetClassroom retrieves a classroom with its teacher and room attached.
func (s *ClassroomService) GetClassroom(ctx context.Context, id int64) (*models.Classroom, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, s.database.Pool, id)
	if err != nil {
		return nil, err
	}
	if classroom == nil {
		return nil, apperrors.ErrClassroomNotFound
	}

	if teacher, err := s.teacherRepo.GetByID(ctx, classroom.TeacherID); err == nil && teacher != nil {
		classroom.Teacher = teacher
	}
	if room, err := s.roomRepo.GetByID(ctx, classroom.RoomID); err == nil && room != nil {
		classroom.Room = room
	}

	return classroom, nil
}

// ListClassrooms retrieves classrooms, optionally filtered by teacher and status.
func (s *ClassroomService) ListClassrooms(ctx context.Context, teacherID int64, status models.ClassStatus) ([]*models.Classroom, error) {
	return s.classroomRepo.GetAll(ctx, teacherID, status)
}

// ClassroomPatch carries the optional fields of a classroom update.
type ClassroomPatch struct {
	Name        *string
	CourseLevel *string
	TeacherID   *int64
	RoomID      *int64
	MaxStudents *int
	Status      *models.ClassStatus
}

// UpdateClassroom applies a partial update. Changing the room or raising
// max_students re-runs the room capacity check.
func (s *ClassroomService) UpdateClassroom(ctx context.Context, id int64, patch ClassroomPatch) (*models.Classroom, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, s.database.Pool, id)
	if err != nil {
		return nil, err
	}
	if classroom == nil {
		return nil, apperrors.ErrClassroomNotFound
	}

	if patch.Name != nil {
		classroom.Name = *patch.Name
	}
	if patch.CourseLevel != nil {
		classroom.CourseLevel = *patch.CourseLevel
	}
	if patch.TeacherID != nil {
		classroom.TeacherID = *patch.TeacherID
	}
	if patch.RoomID != nil {
		classroom.RoomID = *patch.RoomID
	}
	if patch.MaxStudents != nil {
		if *patch.MaxStudents < classroom.CurrentStudents {
			return nil, fmt.Errorf("%w: %d students already enrolled", apperrors.ErrValidationFailed, classroom.CurrentStudents)
		}
		classroom.MaxStudents = *patch.MaxStudents
	}
	if patch.Status != nil {
		classroom.Status = *patch.Status
	}

	if err := s.validateReferences(ctx, classroom); err != nil {
		return nil, err
	}

	if err := s.classroomRepo.Update(ctx, classroom); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassroomNotFound
		}
		return nil, err
	}

	return classroom, nil
}

// DeleteClassroom removes a classroom and, through the store, its
// schedules. Classrooms with active enrollments must be emptied first.
func (s *ClassroomService) DeleteClassroom(ctx context.Context, id int64) error {
	hasStudents, err := s.classroomRepo.HasActiveEnrollments(ctx, id)
	if err != nil {
		return err
	}
	if hasStudents {
		return apperrors.ErrClassroomHasStudents
	}

	if err := s.classroomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrClassroomNotFound
		}
		return err
	}

	return nil
}
