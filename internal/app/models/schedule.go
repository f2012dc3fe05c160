package models

import "github.com/hoangle/english-center/internal/pkg/timeslot"

// Schedule is one recurring weekly slot owned by a classroom. A classroom
// may own several (e.g. Mon/Wed/Fri). Times are minute-of-day values.
type Schedule struct {
	ID          int64            `json:"id" db:"id"`
	ClassroomID int64            `json:"classroomId" db:"classroom_id"`
	Weekday     timeslot.Weekday `json:"weekday" db:"weekday"`
	StartMinute int              `json:"startMinute" db:"start_minute"`
	EndMinute   int              `json:"endMinute" db:"end_minute"`

	// Denormalized from the owning classroom for conflict checks and
	// timetable rendering; not updatable through this row.
	TeacherID       int64       `json:"teacherId,omitempty" db:"teacher_id"`
	RoomID          int64       `json:"roomId,omitempty" db:"room_id"`
	ClassroomName   string      `json:"classroomName,omitempty" db:"classroom_name"`
	ClassroomStatus ClassStatus `json:"classroomStatus,omitempty" db:"classroom_status"`
}

// Slot returns the schedule's weekday time slot.
func (s *Schedule) Slot() timeslot.Slot {
	return timeslot.Slot{Weekday: s.Weekday, Start: s.StartMinute, End: s.EndMinute}
}
