package dto

// UpsertBookingRequest creates or overwrites a student's booking for one
// calendar date. Meals must be a subset of {Breakfast, Lunch, Dinner};
// an empty list clears the booking's meals.
type UpsertBookingRequest struct {
	StudentID int64    `json:"studentId" binding:"required,min=1"`
	Date      string   `json:"date" binding:"required"`
	Meals     []string `json:"meals"`
}

// BookingResponse is the wire shape of a booking row. Student is
// populated on daily listings.
type BookingResponse struct {
	ID        int64            `json:"id"`
	StudentID int64            `json:"studentId"`
	Date      string           `json:"date" example:"2024-05-01"`
	Meals     []string         `json:"meals"`
	CreatedAt string           `json:"createdAt"`
	Student   *StudentResponse `json:"student,omitempty"`
}
