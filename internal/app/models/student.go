package models

// Student is the enrollment-side identity of a student.
type Student struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
