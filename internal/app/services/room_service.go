package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hoangle/english-center/internal/app/models"
	"github.com/hoangle/english-center/internal/app/repositories"
	"github.com/hoangle/english-center/internal/pkg/apperrors"
)

// RoomService manages the physical rooms classes are hosted in.
type RoomService struct {
	roomRepo *repositories.RoomRepository
}

// NewRoomService creates a new room service instance
func NewRoomService(roomRepo *repositories.RoomRepository) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
	}
}

// CreateRoom registers a room. Status defaults to available.
func (s *RoomService) CreateRoom(ctx context.Context, room *models.Room) error {
	if room.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", apperrors.ErrValidationFailed)
	}

	if room.Status == "" {
		room.Status = models.RoomAvailable
	}

	return s.roomRepo.Create(ctx, room)
}

// GetRoom retrieves a room by ID.
func (s *RoomService) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	return room, nil
}

// ListRooms retrieves all rooms.
func (s *RoomService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.roomRepo.GetAll(ctx)
}

// RoomPatch carries the optional fields of a room update.
type RoomPatch struct {
	Name     *string
	Capacity *int
	Status   *models.RoomStatus
}

// UpdateRoom applies a partial update. Capacity cannot drop below the
// enrollment limit of any classroom already hosted in the room.
func (s *RoomService) UpdateRoom(ctx context.Context, id int64, patch RoomPatch) (*models.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.ErrRoomNotFound
	}

	if patch.Name != nil {
		room.Name = *patch.Name
	}
	if patch.Capacity != nil {
		largest, err := s.roomRepo.LargestClassroomLimit(ctx, id)
		if err != nil {
			return nil, err
		}
		if *patch.Capacity < largest {
			return nil, apperrors.ErrRoomTooSmall
		}
		room.Capacity = *patch.Capacity
	}
	if patch.Status != nil {
		room.Status = *patch.Status
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, err
	}

	return room, nil
}

// DeleteRoom removes a room. Rooms still hosting classrooms cannot be deleted.
func (s *RoomService) DeleteRoom(ctx context.Context, id int64) error {
	inUse, err := s.roomRepo.HasClassrooms(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return apperrors.NewConflictError("room still hosts classrooms")
	}

	if err := s.roomRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrRoomNotFound
		}
		return err
	}

	return nil
}
