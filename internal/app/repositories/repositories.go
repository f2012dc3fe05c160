package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	TeacherRepository    *TeacherRepository
	StudentRepository    *StudentRepository
	RoomRepository       *RoomRepository
	ClassroomRepository  *ClassroomRepository
	ScheduleRepository   *ScheduleRepository
	EnrollmentRepository *EnrollmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		TeacherRepository:    NewTeacherRepository(db),
		StudentRepository:    NewStudentRepository(db),
		RoomRepository:       NewRoomRepository(db),
		ClassroomRepository:  NewClassroomRepository(db),
		ScheduleRepository:   NewScheduleRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
	}
}
