package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/hoangle/english-center/internal/app/models"
	appRepos "github.com/hoangle/english-center/internal/app/repositories"
)

// CreateDefaultData seeds a small directory and room inventory so a fresh
// install has something to schedule against. It only runs on empty tables.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	teacherRepo := appRepos.NewTeacherRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)
	roomRepo := appRepos.NewRoomRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (teachers, students, rooms)...")
	var finalErr error

	teachers, err := teacherRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(teachers) == 0 {
		for _, name := range []string{"Nguyen Thi Mai", "Tran Quoc Bao"} {
			if err := teacherRepo.Create(ctx, &appModels.Teacher{Name: name}); err != nil {
				lgr.Error().Err(err).Str("teacher", name).Msg("Error creating default teacher")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	students, err := studentRepo.GetAll(ctx)
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if len(students) == 0 {
		for _, name := range []string{"Tran Van An", "Le Thi Hoa", "Pham Minh Duc"} {
			if err := studentRepo.Create(ctx, &appModels.Student{Name: name}); err != nil {
				lgr.Error().Err(err).Str("student", name).Msg("Error creating default student")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	rooms, err := roomRepo.GetAll(ctx)
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if len(rooms) == 0 {
		defaults := []appModels.Room{
			{Name: "Room 101", Capacity: 20, Status: appModels.RoomAvailable},
			{Name: "Room 102", Capacity: 15, Status: appModels.RoomAvailable},
			{Name: "Room 201", Capacity: 30, Status: appModels.RoomAvailable},
		}
		for i := range defaults {
			if err := roomRepo.Create(ctx, &defaults[i]); err != nil {
				lgr.Error().Err(err).Str("room", defaults[i].Name).Msg("Error creating default room")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
