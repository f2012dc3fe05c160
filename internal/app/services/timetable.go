package services

import (
	"time"

	"github.com/hoangle/english-center/internal/app/models"
	"github.com/hoangle/english-center/internal/pkg/helpers"
	"github.com/hoangle/english-center/internal/pkg/timeslot"
)

// ProjectWeek materializes recurring schedules onto the week containing
// weekReference (Monday start). Each schedule lands in every display bucket
// it overlaps; the bucket whose start matches the schedule's start is the
// canonical one, since lessons are assumed to align 1:1 with display slots.
// The projection is pure: same schedules and week in, same grid out. It is
// recomputed on every read and never persisted.
func ProjectWeek(schedules []*models.Schedule, weekReference time.Time) *models.TimetableGrid {
	weekStart := helpers.WeekStart(weekReference)

	grid := &models.TimetableGrid{
		WeekStart: weekStart,
		Days:      make([]models.TimetableDay, 0, len(timeslot.Weekdays)),
	}

	for i, weekday := range timeslot.Weekdays {
		day := models.TimetableDay{
			Date:    weekStart.AddDate(0, 0, i),
			Weekday: weekday,
			Cells:   make([]models.TimetableCell, 0, len(models.DisplayBuckets)),
		}

		for _, bucket := range models.DisplayBuckets {
			cell := models.TimetableCell{Bucket: bucket}

			for _, s := range schedules {
				if s.Weekday != weekday {
					continue
				}
				if s.StartMinute >= bucket.End || s.EndMinute <= bucket.Start {
					continue
				}
				cell.Entries = append(cell.Entries, models.TimetableEntry{
					ScheduleID:    s.ID,
					ClassroomID:   s.ClassroomID,
					ClassroomName: s.ClassroomName,
					TeacherID:     s.TeacherID,
					RoomID:        s.RoomID,
					Weekday:       s.Weekday,
					StartMinute:   s.StartMinute,
					EndMinute:     s.EndMinute,
					Canonical:     s.StartMinute == bucket.Start,
				})
			}

			day.Cells = append(day.Cells, cell)
		}

		grid.Days = append(grid.Days, day)
	}

	return grid
}
