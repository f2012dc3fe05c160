package models

import "time"

// Enrollment assigns a student to a classroom. A student holds at most one
// active enrollment per classroom.
type Enrollment struct {
	ID          int64            `json:"id" db:"id"`
	StudentID   int64            `json:"studentId" db:"student_id"`
	ClassroomID int64            `json:"classroomId" db:"classroom_id"`
	Status      EnrollmentStatus `json:"status" db:"status"`
	EnrolledAt  time.Time        `json:"enrolledAt" db:"enrolled_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
}
