package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hoangle/english-center/internal/app/controllers"
	"github.com/hoangle/english-center/internal/app/models"
	"github.com/hoangle/english-center/internal/middleware"
)

// SetupRouter configures all application routes. Reads are open to any
// authenticated user; writes require the ADMIN or STAFF role.
func SetupRouter(
	router *gin.Engine,
	classroomController *controllers.ClassroomController,
	scheduleController *controllers.ScheduleController,
	enrollmentController *controllers.EnrollmentController,
	timetableController *controllers.TimetableController,
	roomController *controllers.RoomController,
	directoryController *controllers.DirectoryController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.JWTAuth())

	staffOnly := authMiddleware.RoleRequired(string(models.RoleAdmin), string(models.RoleStaff))

	classrooms := v1.Group("/classrooms")
	{
		classrooms.GET("", classroomController.GetAllClassrooms)
		classrooms.GET("/:id", classroomController.GetClassroomByID)
		classrooms.GET("/:id/schedules", scheduleController.ListClassroomSchedules)
		classrooms.GET("/:id/enrollments", enrollmentController.ListClassroomEnrollments)

		classroomsProtected := classrooms.Group("")
		classroomsProtected.Use(staffOnly)
		{
			classroomsProtected.POST("", classroomController.CreateClassroom)
			classroomsProtected.PUT("/:id", classroomController.UpdateClassroom)
			classroomsProtected.DELETE("/:id", classroomController.DeleteClassroom)
			classroomsProtected.POST("/:id/schedules", scheduleController.CreateSchedule)
			classroomsProtected.POST("/:id/enrollments", enrollmentController.EnrollStudent)
			classroomsProtected.POST("/:id/enrollments/bulk", enrollmentController.BulkEnrollStudents)
		}
	}

	schedules := v1.Group("/schedules")
	schedules.Use(staffOnly)
	{
		schedules.PUT("/:id", scheduleController.UpdateSchedule)
		schedules.DELETE("/:id", scheduleController.DeleteSchedule)
	}

	enrollments := v1.Group("/enrollments")
	enrollments.Use(staffOnly)
	{
		enrollments.DELETE("/:id", enrollmentController.CancelEnrollment)
	}

	v1.GET("/timetable", timetableController.GetTimetable)

	rooms := v1.Group("/rooms")
	{
		rooms.GET("", roomController.GetAllRooms)
		rooms.GET("/:id", roomController.GetRoomByID)
		rooms.GET("/:id/schedules", scheduleController.ListRoomSchedules)

		roomsProtected := rooms.Group("")
		roomsProtected.Use(staffOnly)
		{
			roomsProtected.POST("", roomController.CreateRoom)
			roomsProtected.PUT("/:id", roomController.UpdateRoom)
			roomsProtected.DELETE("/:id", roomController.DeleteRoom)
		}
	}

	teachers := v1.Group("/teachers")
	{
		teachers.GET("", directoryController.GetAllTeachers)
		teachers.GET("/:id", directoryController.GetTeacherByID)
		teachers.GET("/:id/schedules", scheduleController.ListTeacherSchedules)

		teachersProtected := teachers.Group("")
		teachersProtected.Use(staffOnly)
		{
			teachersProtected.POST("", directoryController.CreateTeacher)
		}
	}

	students := v1.Group("/students")
	{
		students.GET("", directoryController.GetAllStudents)
		students.GET("/:id", directoryController.GetStudentByID)
		students.GET("/:id/enrollments", directoryController.GetStudentEnrollments)

		studentsProtected := students.Group("")
		studentsProtected.Use(staffOnly)
		{
			studentsProtected.POST("", directoryController.CreateStudent)
		}
	}
}
