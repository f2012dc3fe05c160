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

// ScheduleController handles schedule-related operations
type ScheduleController struct {
	scheduleService *services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService *services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// CreateSchedule attaches a recurring weekly slot to a classroom
// @Summary Add a schedule to a classroom
// @Description Adds a recurring weekly slot after checking the teacher and room are free
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Param request body dto.CreateScheduleRequest true "Slot information"
// @Success 201 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid time range or request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 409 {object} dto.ErrorResponse "Teacher or room already booked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id}/schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	classroomID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroom ID")
		errorDetail = errorDetail.WithDetails("Classroom ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	schedule, err := c.scheduleService.AddSchedule(ctx, classroomID, req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromSchedule(schedule),
		Timestamp: time.Now(),
	})
}

// ListClassroomSchedules retrieves a classroom's schedules
// @Summary List a classroom's schedules
// @Description Retrieves the recurring weekly slots of a classroom
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ScheduleResponse} "Schedules retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid classroom ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id}/schedules [get]
func (c *ScheduleController) ListClassroomSchedules(ctx *gin.Context) {
	classroomID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroom ID")
		errorDetail = errorDetail.WithDetails("Classroom ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	schedules, err := c.scheduleService.ListForClassroom(ctx, classroomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromSchedules(schedules),
		Timestamp: time.Now(),
	})
}

// ListTeacherSchedules retrieves a teacher's schedules
// @Summary List a teacher's schedules
// @Description Retrieves every recurring slot taught by a teacher across classrooms
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ScheduleResponse} "Schedules retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid teacher ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{id}/schedules [get]
func (c *ScheduleController) ListTeacherSchedules(ctx *gin.Context) {
	teacherID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher ID")
		errorDetail = errorDetail.WithDetails("Teacher ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	schedules, err := c.scheduleService.ListForTeacher(ctx, teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromSchedules(schedules),
		Timestamp: time.Now(),
	})
}

// ListRoomSchedules retrieves a room's schedules
// @Summary List a room's schedules
// @Description Retrieves every recurring slot hosted in a room across classrooms
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ScheduleResponse} "Schedules retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id}/schedules [get]
func (c *ScheduleController) ListRoomSchedules(ctx *gin.Context) {
	roomID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid room ID")
		errorDetail = errorDetail.WithDetails("Room ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	schedules, err := c.scheduleService.ListForRoom(ctx, roomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromSchedules(schedules),
		Timestamp: time.Now(),
	})
}

// UpdateSchedule moves an existing slot
// @Summary Update a schedule
// @Description Moves a slot to a new weekday/time after re-checking conflicts
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param request body dto.UpdateScheduleRequest true "New slot information"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid time range or request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 409 {object} dto.ErrorResponse "Teacher or room already booked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	scheduleID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule ID")
		errorDetail = errorDetail.WithDetails("Schedule ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	schedule, err := c.scheduleService.UpdateSchedule(ctx, scheduleID, req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromSchedule(schedule),
		Timestamp: time.Now(),
	})
}

// DeleteSchedule removes a slot
// @Summary Delete a schedule
// @Description Removes a recurring slot; deleting an already removed slot succeeds
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse "Schedule deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	scheduleID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule ID")
		errorDetail = errorDetail.WithDetails("Schedule ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	found, err := c.scheduleService.RemoveSchedule(ctx, scheduleID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"deleted": found},
		Timestamp: time.Now(),
	})
}
