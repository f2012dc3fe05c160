package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hoangle/english-center/internal/app/models"
	"github.com/hoangle/english-center/internal/app/models/dto"
	"github.com/hoangle/english-center/internal/app/services"
	"github.com/hoangle/english-center/internal/middleware"
)

// ClassroomController handles classroom-related operations
type ClassroomController struct {
	classroomService *services.ClassroomService
}

// NewClassroomController creates a new ClassroomController
func NewClassroomController(classroomService *services.ClassroomService) *ClassroomController {
	return &ClassroomController{
		classroomService: classroomService,
	}
}

// CreateClassroom handles classroom creation
// @Summary Create a new classroom
// @Description Creates a class instance of a course, bound to a teacher and room
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassroomRequest true "Classroom information"
// @Success 201 {object} dto.APIResponse{data=models.Classroom} "Classroom created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or room too small"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Teacher or room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms [post]
func (c *ClassroomController) CreateClassroom(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroom data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	classroom := &models.Classroom{
		Name:        req.Name,
		CourseLevel: req.CourseLevel,
		TeacherID:   req.TeacherID,
		RoomID:      req.RoomID,
		MaxStudents: req.MaxStudents,
	}

	if err := c.classroomService.CreateClassroom(ctx, classroom); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      classroom,
		Timestamp: time.Now(),
	})
}

// GetClassroomByID retrieves a classroom by ID
// @Summary Get classroom by ID
// @Description Retrieves a classroom with its teacher and room
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=models.Classroom} "Classroom retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid classroom ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id} [get]
func (c *ClassroomController) GetClassroomByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroom ID")
		errorDetail = errorDetail.WithDetails("Classroom ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	classroom, err := c.classroomService.GetClassroom(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classroom,
		Timestamp: time.Now(),
	})
}

// GetAllClassrooms retrieves all classrooms
// @Summary Get all classrooms
// @Description Retrieves classrooms, optionally filtered by teacher and status
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teacherId query int false "Filter by teacher ID"
// @Param status query string false "Filter by status (active, inactive, completed, cancelled)"
// @Success 200 {object} dto.APIResponse{data=[]models.Classroom} "Classrooms retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms [get]
func (c *ClassroomController) GetAllClassrooms(ctx *gin.Context) {
	var teacherID int64
	if idStr := ctx.Query("teacherId"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid teacher ID")
			errorDetail = errorDetail.WithDetails("Teacher ID must be a valid number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		teacherID = id
	}

	classrooms, err := c.classroomService.ListClassrooms(ctx, teacherID, models.ClassStatus(ctx.Query("status")))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classrooms,
		Timestamp: time.Now(),
	})
}

// UpdateClassroom handles classroom updates
// @Summary Update a classroom
// @Description Applies a partial update; room and enrollment limit changes are re-validated
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Param request body dto.UpdateClassroomRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Classroom} "Classroom updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or room too small"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Classroom, teacher or room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id} [put]
func (c *ClassroomController) UpdateClassroom(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroom ID")
		errorDetail = errorDetail.WithDetails("Classroom ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroom data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	patch := services.ClassroomPatch{
		Name:        req.Name,
		CourseLevel: req.CourseLevel,
		TeacherID:   req.TeacherID,
		RoomID:      req.RoomID,
		MaxStudents: req.MaxStudents,
	}
	if req.Status != nil {
		status := models.ClassStatus(*req.Status)
		patch.Status = &status
	}

	classroom, err := c.classroomService.UpdateClassroom(ctx, id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classroom,
		Timestamp: time.Now(),
	})
}

// DeleteClassroom handles classroom deletion
// @Summary Delete a classroom
// @Description Removes a classroom and its schedules; classrooms with active enrollments are refused
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.APIResponse "Classroom deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid classroom ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - User does not have permission"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 409 {object} dto.ErrorResponse "Classroom still has active enrollments"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classrooms/{id} [delete]
func (c *ClassroomController) DeleteClassroom(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroom ID")
		errorDetail = errorDetail.WithDetails("Classroom ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.classroomService.DeleteClassroom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"deleted": true},
		Timestamp: time.Now(),
	})
}
