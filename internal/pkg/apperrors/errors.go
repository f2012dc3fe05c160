package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrInvalidFormat = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Scheduling errors
var (
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
	ErrScheduleConflict  = errors.New("schedule conflict")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrRoomNotFound      = errors.New("room not found")
	ErrTeacherNotFound   = errors.New("teacher not found")
)

// Enrollment errors
var (
	ErrCapacityExceeded     = errors.New("classroom is at full capacity")
	ErrDuplicateEnrollment  = errors.New("student already has an active enrollment in this classroom")
	ErrEnrollmentNotFound   = errors.New("enrollment not found")
	ErrClassroomNotActive   = errors.New("classroom is not active")
	ErrStudentNotFound      = errors.New("student not found")
	ErrRoomTooSmall         = errors.New("room capacity is smaller than the classroom student limit")
	ErrClassroomHasStudents = errors.New("classroom has active enrollments and cannot be deleted")
)

// ConflictKind identifies which resource a schedule collision belongs to.
type ConflictKind string

const (
	ConflictTeacher ConflictKind = "teacher"
	ConflictRoom    ConflictKind = "room"
)

// ScheduleConflictError reports the first collision found for a candidate
// slot, so callers can tell the user which resource is double-booked.
type ScheduleConflictError struct {
	Kind        ConflictKind
	ScheduleID  int64
	ClassroomID int64
}

// Error implements error interface
func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("%s is already booked by schedule %d (classroom %d)", e.Kind, e.ScheduleID, e.ClassroomID)
}

// Unwrap implements errors.Unwrap interface
func (e *ScheduleConflictError) Unwrap() error {
	return ErrScheduleConflict
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
