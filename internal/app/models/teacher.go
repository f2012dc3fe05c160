package models

// Teacher is the scheduling-side identity of a teacher. The full profile
// (contact details, qualifications) belongs to the directory service.
type Teacher struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
