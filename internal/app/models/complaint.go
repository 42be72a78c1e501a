package models

import "time"

// Complaint is a grievance ticket. StudentID is nullable: anonymous
// submissions are allowed, and deleting a student keeps the complaint
// but clears the reference.
type Complaint struct {
	ID        int64           `json:"id" db:"id"`
	StudentID *int64          `json:"studentId" db:"student_id"`
	Name      string          `json:"name" db:"name"`
	Email     string          `json:"email" db:"email"`
	Subject   string          `json:"subject" db:"subject"`
	Message   string          `json:"message" db:"message"`
	Status    ComplaintStatus `json:"status" db:"status"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}
