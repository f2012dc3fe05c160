package services

import (
	"context"
	"time"

	"github.com/hoangle/english-center/internal/app/models"
)

// TimetableFilter narrows the weekly view to one teacher, classroom, or
// student. Zero values mean no filtering on that axis.
type TimetableFilter struct {
	TeacherID   int64
	ClassroomID int64
	StudentID   int64
}

// TimetableService builds weekly grids from the schedule store. Grids are
// derived on every call and never cached or persisted.
type TimetableService struct {
	scheduleService *ScheduleService
}

// NewTimetableService creates a new timetable service instance
func NewTimetableService(scheduleService *ScheduleService) *TimetableService {
	return &TimetableService{
		scheduleService: scheduleService,
	}
}

// WeekView projects the schedules selected by filter onto the week
// containing weekReference. Filters are applied in teacher, classroom,
// student order; the first non-zero one wins.
func (s *TimetableService) WeekView(ctx context.Context, weekReference time.Time, filter TimetableFilter) (*models.TimetableGrid, error) {
	var (
		schedules []*models.Schedule
		err       error
	)

	switch {
	case filter.TeacherID != 0:
		schedules, err = s.scheduleService.ListForTeacher(ctx, filter.TeacherID)
	case filter.ClassroomID != 0:
		schedules, err = s.scheduleService.ListForClassroom(ctx, filter.ClassroomID)
	case filter.StudentID != 0:
		schedules, err = s.scheduleService.ListForStudent(ctx, filter.StudentID)
	default:
		schedules, err = s.scheduleService.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return ProjectWeek(schedules, weekReference), nil
}
