package models

import (
	"time"

	"github.com/hoangle/english-center/internal/pkg/timeslot"
)

// SlotBucket is one fixed display slot of the weekly timetable grid.
type SlotBucket struct {
	Start int `json:"startMinute"`
	End   int `json:"endMinute"`
}

// DisplayBuckets are the 90-minute slots every timetable view renders,
// 07:00 through 22:00. Lessons are assumed to align 1:1 with these slots.
var DisplayBuckets = []SlotBucket{
	{Start: 7 * 60, End: 8*60 + 30},
	{Start: 8*60 + 30, End: 10 * 60},
	{Start: 10 * 60, End: 11*60 + 30},
	{Start: 11*60 + 30, End: 13 * 60},
	{Start: 13 * 60, End: 14*60 + 30},
	{Start: 14*60 + 30, End: 16 * 60},
	{Start: 16 * 60, End: 17*60 + 30},
	{Start: 17*60 + 30, End: 19 * 60},
	{Start: 19 * 60, End: 20*60 + 30},
	{Start: 20*60 + 30, End: 22 * 60},
}

// TimetableEntry is one schedule rendered into a grid cell. Canonical marks
// the cell whose start matches the schedule's start; a lesson spilling into
// later buckets appears there too, but is only counted once.
type TimetableEntry struct {
	ScheduleID    int64            `json:"scheduleId"`
	ClassroomID   int64            `json:"classroomId"`
	ClassroomName string           `json:"classroomName,omitempty"`
	TeacherID     int64            `json:"teacherId"`
	RoomID        int64            `json:"roomId"`
	Weekday       timeslot.Weekday `json:"weekday"`
	StartMinute   int              `json:"startMinute"`
	EndMinute     int              `json:"endMinute"`
	Canonical     bool             `json:"canonical"`
}

// TimetableCell is one (day, bucket) position of the grid.
type TimetableCell struct {
	Bucket  SlotBucket       `json:"bucket"`
	Entries []TimetableEntry `json:"entries,omitempty"`
}

// TimetableDay is one calendar day of the projected week.
type TimetableDay struct {
	Date    time.Time        `json:"date"`
	Weekday timeslot.Weekday `json:"weekday"`
	Cells   []TimetableCell  `json:"cells"`
}

// TimetableGrid is the materialized weekly view of a set of recurring
// schedules. It is recomputed on every read and never persisted.
type TimetableGrid struct {
	WeekStart time.Time      `json:"weekStart"`
	Days      []TimetableDay `json:"days"`
}
