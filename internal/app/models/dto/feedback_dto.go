package dto

// FeedbackRequest represents a dining feedback submission. Rating is the
// 1-5 star value the dashboard buckets into a distribution.
type FeedbackRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback" binding:"required"`
}
