package services

import (
	"github.com/hoangle/english-center/internal/app/models"
	"github.com/hoangle/english-center/internal/pkg/apperrors"
	"github.com/hoangle/english-center/internal/pkg/timeslot"
)

// Candidate is a slot about to be booked: the resources it would occupy
// plus the weekday time range.
type Candidate struct {
	TeacherID int64
	RoomID    int64
	Slot      timeslot.Slot
}

// FindConflict checks a candidate slot against the existing schedules of
// its teacher and its room, in that order, and returns the first collision
// found. excludeID removes the schedule being edited from the comparison
// set, so shifting a slot's own end time never collides with itself.
// Schedules of non-active classrooms never conflict; they are kept for
// history only. Returns nil when the slot is free.
func FindConflict(cand Candidate, teacherSchedules, roomSchedules []*models.Schedule, excludeID int64) *apperrors.ScheduleConflictError {
	if conflict := scanForOverlap(cand.Slot, teacherSchedules, excludeID); conflict != nil {
		conflict.Kind = apperrors.ConflictTeacher
		return conflict
	}

	if conflict := scanForOverlap(cand.Slot, roomSchedules, excludeID); conflict != nil {
		conflict.Kind = apperrors.ConflictRoom
		return conflict
	}

	return nil
}

// scanForOverlap is linear in the schedules of one resource; callers fetch
// per-teacher and per-room lists, never the whole table.
func scanForOverlap(slot timeslot.Slot, schedules []*models.Schedule, excludeID int64) *apperrors.ScheduleConflictError {
	for _, s := range schedules {
		if s.ID == excludeID {
			continue
		}
		if s.ClassroomStatus != "" && s.ClassroomStatus != models.ClassActive {
			continue
		}
		if slot.Overlaps(s.Slot()) {
			return &apperrors.ScheduleConflictError{
				ScheduleID:  s.ID,
				ClassroomID: s.ClassroomID,
			}
		}
	}
	return nil
}
