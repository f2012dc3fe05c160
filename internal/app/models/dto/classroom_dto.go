package dto

// CreateClassroomRequest creates a class instance of a course.
type CreateClassroomRequest struct {
	Name        string `json:"name" binding:"required" example:"IELTS Foundation A"`
	CourseLevel string `json:"courseLevel" binding:"required" example:"B1"`
	TeacherID   int64  `json:"teacherId" binding:"required" example:"7"`
	RoomID      int64  `json:"roomId" binding:"required" example:"2"`
	MaxStudents int    `json:"maxStudents" binding:"required,gt=0" example:"20"`
}

// UpdateClassroomRequest updates classroom fields; nil fields are left as-is.
type UpdateClassroomRequest struct {
	Name        *string `json:"name,omitempty"`
	CourseLevel *string `json:"courseLevel,omitempty"`
	TeacherID   *int64  `json:"teacherId,omitempty"`
	RoomID      *int64  `json:"roomId,omitempty"`
	MaxStudents *int    `json:"maxStudents,omitempty" binding:"omitempty,gt=0"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive completed cancelled"`
}
