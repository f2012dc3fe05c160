package models

// Room represents a physical classroom with a seat capacity.
type Room struct {
	ID       int64      `json:"id" db:"id"`
	Name     string     `json:"name" db:"name"`
	Capacity int        `json:"capacity" db:"capacity"`
	Status   RoomStatus `json:"status" db:"status"`
}
