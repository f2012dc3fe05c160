package dto

import (
	"github.com/hoangle/english-center/internal/app/models"
	"github.com/hoangle/english-center/internal/pkg/timeslot"
)

// CreateScheduleRequest adds a recurring weekly slot to a classroom.
type CreateScheduleRequest struct {
	Weekday   string `json:"weekday" binding:"required,weekday" example:"monday"`
	StartTime string `json:"startTime" binding:"required,clocktime" example:"08:30"`
	EndTime   string `json:"endTime" binding:"required,clocktime" example:"10:00"`
}

// UpdateScheduleRequest moves an existing slot to a new weekday/time.
type UpdateScheduleRequest struct {
	Weekday   string `json:"weekday" binding:"required,weekday" example:"wednesday"`
	StartTime string `json:"startTime" binding:"required,clocktime" example:"14:30"`
	EndTime   string `json:"endTime" binding:"required,clocktime" example:"16:00"`
}

// ScheduleResponse renders a schedule row with wall-clock times.
type ScheduleResponse struct {
	ID            int64  `json:"id" example:"12"`
	ClassroomID   int64  `json:"classroomId" example:"3"`
	ClassroomName string `json:"classroomName,omitempty" example:"IELTS Foundation A"`
	TeacherID     int64  `json:"teacherId" example:"7"`
	RoomID        int64  `json:"roomId" example:"2"`
	Weekday       string `json:"weekday" example:"monday"`
	StartTime     string `json:"startTime" example:"08:30"`
	EndTime       string `json:"endTime" example:"10:00"`
}

// FromSchedule converts a models.Schedule to a ScheduleResponse
func FromSchedule(s *models.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:            s.ID,
		ClassroomID:   s.ClassroomID,
		ClassroomName: s.ClassroomName,
		TeacherID:     s.TeacherID,
		RoomID:        s.RoomID,
		Weekday:       string(s.Weekday),
		StartTime:     timeslot.FormatClock(s.StartMinute),
		EndTime:       timeslot.FormatClock(s.EndMinute),
	}
}

// FromSchedules converts a slice of schedules
func FromSchedules(schedules []*models.Schedule) []ScheduleResponse {
	responses := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		responses = append(responses, FromSchedule(s))
	}
	return responses
}
