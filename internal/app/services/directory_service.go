package services

import (
	"context"
	"fmt"

	"github.com/hoangle/english-center/internal/app/models"
	"github.com/hoangle/english-center/internal/app/repositories"
	"github.com/hoangle/english-center/internal/pkg/apperrors"
	"github.com/hoangle/english-center/internal/pkg/helpers"
)

// DirectoryService manages the teacher and student identities that
// classrooms and enrollments reference. Full people profiles live outside
// this service.
type DirectoryService struct {
	teacherRepo *repositories.TeacherRepository
	studentRepo *repositories.StudentRepository
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(teacherRepo *repositories.TeacherRepository, studentRepo *repositories.StudentRepository) *DirectoryService {
	return &DirectoryService{
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
	}
}

// CreateTeacher registers a teacher identity.
func (s *DirectoryService) CreateTeacher(ctx context.Context, name string) (*models.Teacher, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}

	teacher := &models.Teacher{Name: name}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	return teacher, nil
}

// GetTeacher retrieves a teacher by ID.
func (s *DirectoryService) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperrors.ErrTeacherNotFound
	}

	return teacher, nil
}

// ListTeachers retrieves all teachers.
func (s *DirectoryService) ListTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}

// CreateStudent registers a student identity.
func (s *DirectoryService) CreateStudent(ctx context.Context, name string) (*models.Student, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidationFailed)
	}

	student := &models.Student{Name: name}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudent retrieves a student by ID.
func (s *DirectoryService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}

	return student, nil
}

// ListStudents retrieves one page of students with the total count.
func (s *DirectoryService) ListStudents(ctx context.Context, page, size int) ([]*models.Student, int64, error) {
	total, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	students, err := s.studentRepo.GetPage(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return students, total, nil
}
