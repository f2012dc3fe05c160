package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hoangle/english-center/internal/app/models"
)

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db *pgxpool.Pool
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{
		db: db,
	}
}

// Create creates a new room
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	query := `
		INSERT INTO rooms (name, capacity, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, room.Name, room.Capacity, room.Status).Scan(&room.ID)
	if err != nil {
		return fmt.Errorf("error creating room: %w", err)
	}

	return nil
}

// GetByID retrieves a room by ID. Returns nil when missing.
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	query := `
		SELECT id, name, capacity, status
		FROM rooms
		WHERE id = $1
	`

	var room models.Room
	err := r.db.QueryRow(ctx, query, id).Scan(&room.ID, &room.Name, &room.Capacity, &room.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving room: %w", err)
	}

	return &room, nil
}

// GetAll retrieves all rooms
func (r *RoomRepository) GetAll(ctx context.Context) ([]*models.Room, error) {
	query := `
		SELECT id, name, capacity, status
		FROM rooms
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		var room models.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.Status); err != nil {
			return nil, err
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// Update rewrites a room's fields.
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	query := `
		UPDATE rooms
		SET name = $1, capacity = $2, status = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query, room.Name, room.Capacity, room.Status, room.ID)
	if err != nil {
		return fmt.Errorf("error updating room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// LargestClassroomLimit returns the highest max_students among classrooms
// hosted in the room, or 0 when none reference it. Used when shrinking a
// room's capacity.
func (r *RoomRepository) LargestClassroomLimit(ctx context.Context, id int64) (int, error) {
	var limit int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(MAX(max_students), 0) FROM classrooms WHERE room_id = $1`,
		id).Scan(&limit)
	if err != nil {
		return 0, fmt.Errorf("error checking room classroom limits: %w", err)
	}

	return limit, nil
}

// HasClassrooms reports whether any classroom still references the room.
func (r *RoomRepository) HasClassrooms(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM classrooms WHERE room_id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking room usage: %w", err)
	}

	return exists, nil
}

// Delete removes a room
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
