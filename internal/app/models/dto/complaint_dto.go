package dto

// ComplaintRequest represents a complaint submission. StudentID is
// optional so the public form can submit anonymously.
type ComplaintRequest struct {
	StudentID *int64 `json:"studentId"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// UpdateComplaintStatusRequest moves a complaint through its workflow.
// Status must be one of Pending, In Progress, Resolved.
type UpdateComplaintStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
