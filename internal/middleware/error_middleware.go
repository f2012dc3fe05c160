package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hoangle/english-center/internal/app/models/dto"
	"github.com/hoangle/english-center/internal/pkg/apperrors"
	"github.com/hoangle/english-center/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Business
// rejections carry their own codes; anything unrecognized is a 500 and gets
// logged with its cause.
func HandleAPIError(c *gin.Context, err error) {
	var conflict *apperrors.ScheduleConflictError
	if errors.As(err, &conflict) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeScheduleConflict, "Schedule conflict")
		errorDetail = errorDetail.WithDetails(gin.H{
			"kind":        string(conflict.Kind),
			"scheduleId":  conflict.ScheduleID,
			"classroomId": conflict.ClassroomID,
		})
		c.JSON(409, dto.APIResponse{Error: errorDetail})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidTimeRange):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidTimeRange, "Invalid time range"),
		})
	case errors.Is(err, apperrors.ErrScheduleConflict):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeScheduleConflict, "Schedule conflict"),
		})
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeCapacityExceeded, "Classroom is at full capacity"),
		})
	case errors.Is(err, apperrors.ErrDuplicateEnrollment):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeDuplicateEnrollment, "Student already enrolled in this classroom"),
		})
	case errors.Is(err, apperrors.ErrClassroomNotActive):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Classroom is not accepting enrollments"),
		})
	case errors.Is(err, apperrors.ErrClassroomHasStudents):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Classroom still has active enrollments"),
		})
	case errors.Is(err, apperrors.ErrRoomTooSmall):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Room capacity is below the classroom's enrollment limit"),
		})
	case errors.Is(err, apperrors.ErrClassroomNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Classroom not found"),
		})
	case errors.Is(err, apperrors.ErrScheduleNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Schedule not found"),
		})
	case errors.Is(err, apperrors.ErrEnrollmentNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Enrollment not found"),
		})
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Teacher not found"),
		})
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found"),
		})
	case errors.Is(err, apperrors.ErrRoomNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Room not found"),
		})
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"),
		})
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
