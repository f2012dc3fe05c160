package dto

// EnrollRequest assigns one student to a classroom.
type EnrollRequest struct {
	StudentID int64 `json:"studentId" binding:"required" example:"42"`
}

// BulkEnrollRequest assigns several students at once. Each student is
// attempted independently; the batch never aborts on the first failure.
type BulkEnrollRequest struct {
	StudentIDs []int64 `json:"studentIds" binding:"required,min=1"`
}

// BulkEnrollItem is the per-student outcome of a bulk assignment.
type BulkEnrollItem struct {
	StudentID    int64  `json:"studentId" example:"42"`
	EnrollmentID int64  `json:"enrollmentId,omitempty" example:"101"`
	Enrolled     bool   `json:"enrolled" example:"true"`
	Error        string `json:"error,omitempty" example:"classroom is at full capacity"`
}

// BulkEnrollResponse summarizes a bulk assignment.
type BulkEnrollResponse struct {
	Enrolled int              `json:"enrolled" example:"3"`
	Failed   int              `json:"failed" example:"1"`
	Results  []BulkEnrollItem `json:"results"`
}
