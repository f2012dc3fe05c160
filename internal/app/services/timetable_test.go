package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/hoangle/english-center/internal/app/models"
	"github.com/hoangle/english-center/internal/pkg/timeslot"
)

func TestProjectWeek_GridShape(t *testing.T) {
	grid := ProjectWeek(nil, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC))

	if len(grid.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(grid.Days))
	}
	if grid.Days[0].Weekday != timeslot.Monday {
		t.Errorf("week must start on monday, got %s", grid.Days[0].Weekday)
	}
	for _, day := range grid.Days {
		if len(day.Cells) != len(models.DisplayBuckets) {
			t.Errorf("day %s has %d cells, want %d", day.Weekday, len(day.Cells), len(models.DisplayBuckets))
		}
	}
}

func TestProjectWeek_WeekStartsOnMonday(t *testing.T) {
	// 2026-03-04 is a Wednesday; its week starts Monday 2026-03-02.
	grid := ProjectWeek(nil, time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC))

	want := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	if !grid.WeekStart.Equal(want) {
		t.Errorf("WeekStart = %v, want %v", grid.WeekStart, want)
	}
	if !grid.Days[6].Date.Equal(want.AddDate(0, 0, 6)) {
		t.Errorf("last day = %v, want %v", grid.Days[6].Date, want.AddDate(0, 0, 6))
	}

	// A Monday reference keeps its own week.
	monday := ProjectWeek(nil, want)
	if !monday.WeekStart.Equal(want) {
		t.Errorf("Monday reference moved to %v", monday.WeekStart)
	}
}

func TestProjectWeek_PlacesScheduleInMatchingBucket(t *testing.T) {
	schedules := []*models.Schedule{
		schedule(12, 3, timeslot.Monday, 8*60+30, 10*60),
	}

	grid := ProjectWeek(schedules, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))

	monday := grid.Days[0]
	for _, cell := range monday.Cells {
		inBucket := cell.Bucket.Start == 8*60+30
		if inBucket {
			if len(cell.Entries) != 1 {
				t.Fatalf("expected 1 entry in 08:30 bucket, got %d", len(cell.Entries))
			}
			entry := cell.Entries[0]
			if entry.ScheduleID != 12 || !entry.Canonical {
				t.Errorf("unexpected entry %+v", entry)
			}
		} else if len(cell.Entries) != 0 {
			t.Errorf("bucket starting %d unexpectedly holds entries", cell.Bucket.Start)
		}
	}

	// Nothing leaks onto other days.
	for _, day := range grid.Days[1:] {
		for _, cell := range day.Cells {
			if len(cell.Entries) != 0 {
				t.Errorf("day %s unexpectedly holds entries", day.Weekday)
			}
		}
	}
}

func TestProjectWeek_LongLessonSpansBucketsWithOneCanonical(t *testing.T) {
	schedules := []*models.Schedule{
		schedule(12, 3, timeslot.Friday, 8*60+30, 11*60+30),
	}

	grid := ProjectWeek(schedules, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))

	friday := grid.Days[4]
	canonical := 0
	occupied := 0
	for _, cell := range friday.Cells {
		if len(cell.Entries) == 0 {
			continue
		}
		occupied++
		if cell.Entries[0].Canonical {
			canonical++
			if cell.Bucket.Start != 8*60+30 {
				t.Errorf("canonical bucket starts at %d, want %d", cell.Bucket.Start, 8*60+30)
			}
		}
	}

	if occupied != 2 {
		t.Errorf("a 08:30-11:30 lesson should fill 2 buckets, filled %d", occupied)
	}
	if canonical != 1 {
		t.Errorf("exactly one bucket must be canonical, got %d", canonical)
	}
}

func TestProjectWeek_IsDeterministic(t *testing.T) {
	schedules := []*models.Schedule{
		schedule(12, 3, timeslot.Monday, 8*60+30, 10*60),
		schedule(13, 4, timeslot.Wednesday, 19*60, 20*60+30),
	}
	ref := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)

	first := ProjectWeek(schedules, ref)
	second := ProjectWeek(schedules, ref)

	if !reflect.DeepEqual(first, second) {
		t.Error("projection of the same inputs produced different grids")
	}
}
