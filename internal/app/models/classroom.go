package models

// Classroom is a scheduled class instance of a course: a teacher and a room
// plus the enrollment limits the capacity manager enforces.
type Classroom struct {
	ID              int64       `json:"id" db:"id"`
	Name            string      `json:"name" db:"name"`
	CourseLevel     string      `json:"courseLevel" db:"course_level"`
	TeacherID       int64       `json:"teacherId" db:"teacher_id"`
	RoomID          int64       `json:"roomId" db:"room_id"`
	MaxStudents     int         `json:"maxStudents" db:"max_students"`
	CurrentStudents int         `json:"currentStudents" db:"current_students"`
	Status          ClassStatus `json:"status" db:"status"`

	// Relations (populated when needed)
	Teacher *Teacher `json:"teacher,omitempty"`
	Room    *Room    `json:"room,omitempty"`
}

// CanEnroll reports whether the classroom accepts another active enrollment.
func (c *Classroom) CanEnroll() bool {
	return c.Status == ClassActive && c.CurrentStudents < c.MaxStudents
}
