package dto

// UpsertMenuRequest creates or overwrites the menu for one calendar date.
// Date accepts "2006-01-02" or a full RFC 3339 timestamp; the time-of-day
// component is discarded.
type UpsertMenuRequest struct {
	Date      string `json:"date" binding:"required"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// MenuResponse is the wire shape of a menu row.
type MenuResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date" example:"2024-05-01"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}
