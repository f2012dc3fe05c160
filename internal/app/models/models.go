package models

// RoleType defines the portal role carried in access tokens.
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStaff   RoleType = "STAFF"
	RoleTeacher RoleType = "TEACHER"
	RoleStudent RoleType = "STUDENT"
)

// ClassStatus is the lifecycle state of a classroom.
type ClassStatus string

const (
	ClassActive    ClassStatus = "active"
	ClassInactive  ClassStatus = "inactive"
	ClassCompleted ClassStatus = "completed"
	ClassCancelled ClassStatus = "cancelled"
)

// RoomStatus is the availability state of a physical room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// EnrollmentStatus is the state of a student-to-classroom assignment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCompleted EnrollmentStatus = "completed"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
)
