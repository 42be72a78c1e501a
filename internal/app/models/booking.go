package models

import "time"

// Booking records which meals a student booked for one calendar date.
// (StudentID, Date) is the natural key; exactly one row exists per pair.
type Booking struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	Date      time.Time `json:"date" db:"date"`
	Meals     []string  `json:"meals" db:"meals"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Student   *Student  `json:"student,omitempty"` // populated on daily listings, no db tag
}
