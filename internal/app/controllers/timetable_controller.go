package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoangle/english-center/internal/app/models/dto"
	"github.com/hoangle/english-center/internal/app/services"
	"github.com/hoangle/english-center/internal/middleware"
)

// TimetableController serves the derived weekly grid views
type TimetableController struct {
	timetableService *services.TimetableService
}

// NewTimetableController creates a new TimetableController
func NewTimetableController(timetableService *services.TimetableService) *TimetableController {
	return &TimetableController{
		timetableService: timetableService,
	}
}

// GetTimetable renders the weekly grid
// @Summary Get the weekly timetable
// @Description Projects recurring schedules onto the week containing the given date. At most one of teacherId, classroomId, studentId may be set; none means the full center-wide view.
// @Tags timetable
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param week query string false "Any date inside the wanted week (YYYY-MM-DD, defaults to today)"
// @Param teacherId query int false "Restrict to one teacher's lessons"
// @Param classroomId query int false "Restrict to one classroom's lessons"
// @Param studentId query int false "Restrict to one student's lessons"
// @Success 200 {object} dto.APIResponse{data=models.TimetableGrid} "Timetable retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Filtered resource not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetable [get]
func (c *TimetableController) GetTimetable(ctx *gin.Context) {
	weekReference := time.Now()
	if weekStr := ctx.Query("week"); weekStr != "" {
		parsed, err := time.Parse("2006-01-02", weekStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid week date")
			errorDetail = errorDetail.WithDetails("Week must be a date in YYYY-MM-DD format")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		weekReference = parsed
	}

	var filter services.TimetableFilter
	filterCount := 0
	for _, axis := range []struct {
		param  string
		target *int64
	}{
		{"teacherId", &filter.TeacherID},
		{"classroomId", &filter.ClassroomID},
		{"studentId", &filter.StudentID},
	} {
		idStr := ctx.Query(axis.param)
		if idStr == "" {
			continue
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+axis.param)
			errorDetail = errorDetail.WithDetails(axis.param + " must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		*axis.target = id
		filterCount++
	}

	if filterCount > 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Conflicting timetable filters")
		errorDetail = errorDetail.WithDetails("At most one of teacherId, classroomId, studentId may be set")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grid, err := c.timetableService.WeekView(ctx, weekReference, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grid,
		Timestamp: time.Now(),
	})
}
