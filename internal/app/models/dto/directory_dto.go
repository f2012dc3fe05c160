package dto

// CreateRoomRequest registers a physical room.
type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required" example:"Room 201"`
	Capacity int    `json:"capacity" binding:"required,gt=0" example:"25"`
	Status   string `json:"status" binding:"omitempty,oneof=available occupied maintenance" example:"available"`
}

// UpdateRoomRequest updates room fields; nil fields are left as-is.
type UpdateRoomRequest struct {
	Name     *string `json:"name,omitempty"`
	Capacity *int    `json:"capacity,omitempty" binding:"omitempty,gt=0"`
	Status   *string `json:"status,omitempty" binding:"omitempty,oneof=available occupied maintenance"`
}

// CreateTeacherRequest registers a teacher identity.
type CreateTeacherRequest struct {
	Name string `json:"name" binding:"required" example:"Nguyen Thi Mai"`
}

// CreateStudentRequest registers a student identity.
type CreateStudentRequest struct {
	Name string `json:"name" binding:"required" example:"Tran Van An"`
}
