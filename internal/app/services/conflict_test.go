package services

import (
	"testing"

	"github.com/hoangle/english-center/internal/app/models"
	"github.com/hoangle/english-center/internal/pkg/apperrors"
	"github.com/hoangle/english-center/internal/pkg/timeslot"
)

func mustSlot(t *testing.T, weekday timeslot.Weekday, start, end int) timeslot.Slot {
	t.Helper()
	slot, err := timeslot.New(weekday, start, end)
	if err != nil {
		t.Fatalf("building slot: %v", err)
	}
	return slot
}

func schedule(id, classroomID int64, weekday timeslot.Weekday, start, end int) *models.Schedule {
	return &models.Schedule{
		ID:              id,
		ClassroomID:     classroomID,
		Weekday:         weekday,
		StartMinute:     start,
		EndMinute:       end,
		ClassroomStatus: models.ClassActive,
	}
}

func TestFindConflict_TeacherDoubleBooked(t *testing.T) {
	existing := schedule(12, 3, timeslot.Monday, 8*60, 9*60)
	cand := Candidate{
		TeacherID: 7,
		RoomID:    2,
		Slot:      mustSlot(t, timeslot.Monday, 8*60+30, 9*60+30),
	}

	conflict := FindConflict(cand, []*models.Schedule{existing}, nil, 0)

	if conflict == nil {
		t.Fatal("expected a teacher conflict, got nil")
	}
	if conflict.Kind != apperrors.ConflictTeacher {
		t.Errorf("expected teacher conflict kind, got %s", conflict.Kind)
	}
	if conflict.ScheduleID != 12 {
		t.Errorf("expected colliding schedule 12, got %d", conflict.ScheduleID)
	}
	if conflict.ClassroomID != 3 {
		t.Errorf("expected colliding classroom 3, got %d", conflict.ClassroomID)
	}
}

func TestFindConflict_RoomDoubleBooked(t *testing.T) {
	existing := schedule(20, 5, timeslot.Tuesday, 14*60, 16*60)
	cand := Candidate{
		TeacherID: 7,
		RoomID:    2,
		Slot:      mustSlot(t, timeslot.Tuesday, 15*60, 17*60),
	}

	conflict := FindConflict(cand, nil, []*models.Schedule{existing}, 0)

	if conflict == nil {
		t.Fatal("expected a room conflict, got nil")
	}
	if conflict.Kind != apperrors.ConflictRoom {
		t.Errorf("expected room conflict kind, got %s", conflict.Kind)
	}
}

func TestFindConflict_TeacherReportedBeforeRoom(t *testing.T) {
	teacherHit := schedule(1, 10, timeslot.Monday, 8*60, 9*60)
	roomHit := schedule(2, 11, timeslot.Monday, 8*60, 9*60)
	cand := Candidate{
		TeacherID: 7,
		RoomID:    2,
		Slot:      mustSlot(t, timeslot.Monday, 8*60, 9*60),
	}

	conflict := FindConflict(cand, []*models.Schedule{teacherHit}, []*models.Schedule{roomHit}, 0)

	if conflict == nil {
		t.Fatal("expected a conflict, got nil")
	}
	if conflict.Kind != apperrors.ConflictTeacher {
		t.Errorf("teacher check must run first, got kind %s", conflict.Kind)
	}
	if conflict.ScheduleID != 1 {
		t.Errorf("expected schedule 1 reported, got %d", conflict.ScheduleID)
	}
}

func TestFindConflict_BackToBackSlotsAreFree(t *testing.T) {
	existing := schedule(12, 3, timeslot.Monday, 7*60, 8*60+30)
	cand := Candidate{
		TeacherID: 7,
		RoomID:    2,
		Slot:      mustSlot(t, timeslot.Monday, 8*60+30, 10*60),
	}

	if conflict := FindConflict(cand, []*models.Schedule{existing}, []*models.Schedule{existing}, 0); conflict != nil {
		t.Errorf("back to back slots must not conflict, got %+v", conflict)
	}
}

func TestFindConflict_ExcludesScheduleUnderEdit(t *testing.T) {
	existing := schedule(12, 3, timeslot.Monday, 8*60, 9*60)
	cand := Candidate{
		TeacherID: 7,
		RoomID:    2,
		Slot:      mustSlot(t, timeslot.Monday, 8*60, 9*60+30),
	}

	if conflict := FindConflict(cand, []*models.Schedule{existing}, []*models.Schedule{existing}, 12); conflict != nil {
		t.Errorf("a schedule must not conflict with itself during update, got %+v", conflict)
	}
}

func TestFindConflict_IgnoresInactiveClassrooms(t *testing.T) {
	cancelled := schedule(12, 3, timeslot.Monday, 8*60, 9*60)
	cancelled.ClassroomStatus = models.ClassCancelled
	cand := Candidate{
		TeacherID: 7,
		RoomID:    2,
		Slot:      mustSlot(t, timeslot.Monday, 8*60, 9*60),
	}

	if conflict := FindConflict(cand, []*models.Schedule{cancelled}, nil, 0); conflict != nil {
		t.Errorf("schedules of non-active classrooms must not conflict, got %+v", conflict)
	}
}

func TestFindConflict_DifferentWeekdaysAreFree(t *testing.T) {
	existing := schedule(12, 3, timeslot.Monday, 8*60, 9*60)
	cand := Candidate{
		TeacherID: 7,
		RoomID:    2,
		Slot:      mustSlot(t, timeslot.Thursday, 8*60, 9*60),
	}

	if conflict := FindConflict(cand, []*models.Schedule{existing}, []*models.Schedule{existing}, 0); conflict != nil {
		t.Errorf("same time on another weekday must not conflict, got %+v", conflict)
	}
}
