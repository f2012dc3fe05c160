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
	"github.com/hoangle/english-center/internal/pkg/timeslot"
)

// ScheduleService owns the recurring weekly slots of all classrooms. Every
// mutation runs its conflict check and its write in one transaction, under
// advisory locks on the teacher and room, so two concurrent bookings for
// the same resource cannot both pass the check.
type ScheduleService struct {
	database      *db.PostgresDB
	scheduleRepo  *repositories.ScheduleRepository
	classroomRepo *repositories.ClassroomRepository
	teacherRepo   *repositories.TeacherRepository
	roomRepo      *repositories.RoomRepository
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(database *db.PostgresDB, scheduleRepo *repositories.ScheduleRepository, classroomRepo *repositories.ClassroomRepository, teacherRepo *repositories.TeacherRepository, roomRepo *repositories.RoomRepository) *ScheduleService {
	return &ScheduleService{
		database:      database,
		scheduleRepo:  scheduleRepo,
		classroomRepo: classroomRepo,
		teacherRepo:   teacherRepo,
		roomRepo:      roomRepo,
	}
}

// parseSlot builds a validated slot from wire-format weekday and clock strings.
func parseSlot(weekday, startTime, endTime string) (timeslot.Slot, error) {
	day, err := timeslot.ParseWeekday(weekday)
	if err != nil {
		return timeslot.Slot{}, err
	}

	start, err := timeslot.ParseClock(startTime)
	if err != nil {
		return timeslot.Slot{}, err
	}

	end, err := timeslot.ParseClock(endTime)
	if err != nil {
		return timeslot.Slot{}, err
	}

	return timeslot.New(day, start, end)
}

// AddSchedule attaches a recurring slot to a classroom. Fails with
// ErrInvalidTimeRange on a malformed interval and with a
// *ScheduleConflictError naming the double-booked resource on collision.
func (s *ScheduleService) AddSchedule(ctx context.Context, classroomID int64, weekday, startTime, endTime string) (*models.Schedule, error) {
	slot, err := parseSlot(weekday, startTime, endTime)
	if err != nil {
		return nil, err
	}

	classroom, err := s.classroomRepo.GetByID(ctx, s.database.Pool, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error resolving classroom: %w", err)
	}
	if classroom == nil {
		return nil, apperrors.ErrClassroomNotFound
	}

	schedule := &models.Schedule{
		ClassroomID:     classroomID,
		Weekday:         slot.Weekday,
		StartMinute:     slot.Start,
		EndMinute:       slot.End,
		TeacherID:       classroom.TeacherID,
		RoomID:          classroom.RoomID,
		ClassroomName:   classroom.Name,
		ClassroomStatus: classroom.Status,
	}

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		cand := Candidate{TeacherID: classroom.TeacherID, RoomID: classroom.RoomID, Slot: slot}
		if err := s.checkConflicts(ctx, tx, cand, 0); err != nil {
			return err
		}
		return s.scheduleRepo.Create(ctx, tx, schedule)
	})
	if err != nil {
		return nil, err
	}

	return schedule, nil
}

// UpdateSchedule moves an existing slot. The schedule under edit is
// excluded from the comparison set, so shifting only its own end time can
// never conflict with itself.
func (s *ScheduleService) UpdateSchedule(ctx context.Context, scheduleID int64, weekday, startTime, endTime string) (*models.Schedule, error) {
	slot, err := parseSlot(weekday, startTime, endTime)
	if err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, s.database.Pool, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("error resolving schedule: %w", err)
	}
	if schedule == nil {
		return nil, apperrors.ErrScheduleNotFound
	}

	schedule.Weekday = slot.Weekday
	schedule.StartMinute = slot.Start
	schedule.EndMinute = slot.End

	err = s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		cand := Candidate{TeacherID: schedule.TeacherID, RoomID: schedule.RoomID, Slot: slot}
		if err := s.checkConflicts(ctx, tx, cand, scheduleID); err != nil {
			return err
		}
		if err := s.scheduleRepo.Update(ctx, tx, schedule); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrScheduleNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return schedule, nil
}

// checkConflicts serializes on the candidate's teacher and room, then runs
// the detector over their active schedules.
func (s *ScheduleService) checkConflicts(ctx context.Context, tx pgx.Tx, cand Candidate, excludeID int64) error {
	if err := s.scheduleRepo.LockResources(ctx, tx, cand.TeacherID, cand.RoomID); err != nil {
		return err
	}

	teacherSchedules, err := s.scheduleRepo.ActiveForTeacher(ctx, tx, cand.TeacherID)
	if err != nil {
		return fmt.Errorf("error loading teacher schedules: %w", err)
	}

	roomSchedules, err := s.scheduleRepo.ActiveForRoom(ctx, tx, cand.RoomID)
	if err != nil {
		return fmt.Errorf("error loading room schedules: %w", err)
	}

	if conflict := FindConflict(cand, teacherSchedules, roomSchedules, excludeID); conflict != nil {
		return conflict
	}

	return nil
}

// RemoveSchedule deletes a slot. A missing schedule is a benign outcome
// (a concurrent delete already won); found reports whether a row went away.
func (s *ScheduleService) RemoveSchedule(ctx context.Context, scheduleID int64) (found bool, err error) {
	return s.scheduleRepo.Delete(ctx, scheduleID)
}

// ListForClassroom retrieves a classroom's schedules.
func (s *ScheduleService) ListForClassroom(ctx context.Context, classroomID int64) ([]*models.Schedule, error) {
	classroom, err := s.classroomRepo.GetByID(ctx, s.database.Pool, classroomID)
	if err != nil {
		return nil, fmt.Errorf("error resolving classroom: %w", err)
	}
	if classroom == nil {
		return nil, apperrors.ErrClassroomNotFound
	}

	return s.scheduleRepo.ListForClassroom(ctx, classroomID)
}

// ListForTeacher retrieves all schedules taught by a teacher.
func (s *ScheduleService) ListForTeacher(ctx context.Context, teacherID int64) ([]*models.Schedule, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error resolving teacher: %w", err)
	}
	if teacher == nil {
		return nil, apperrors.ErrTeacherNotFound
	}

	return s.scheduleRepo.ListForTeacher(ctx, teacherID)
}

// ListForRoom retrieves all schedules hosted in a room.
func (s *ScheduleService) ListForRoom(ctx context.Context, roomID int64) ([]*models.Schedule, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("error resolving room: %w", err)
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	return s.scheduleRepo.ListForRoom(ctx, roomID)
}

// ListForStudent retrieves the schedules behind a student's timetable.
func (s *ScheduleService) ListForStudent(ctx context.Context, studentID int64) ([]*models.Schedule, error) {
	return s.scheduleRepo.ListForStudent(ctx, studentID)
}

// ListAll retrieves every schedule for the staff-wide timetable.
func (s *ScheduleService) ListAll(ctx context.Context) ([]*models.Schedule, error) {
	return s.scheduleRepo.ListAll(ctx)
}
