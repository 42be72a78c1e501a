package models

import "time"

// MenuDefaultItem is stored for meals the admin left blank.
const MenuDefaultItem = "Not available"

// Menu is the meal plan for one calendar date. Date is the natural key;
// exactly one row exists per date.
type Menu struct {
	ID        int64     `json:"id" db:"id"`
	Date      time.Time `json:"date" db:"date"`
	Breakfast string    `json:"breakfast" db:"breakfast"`
	Lunch     string    `json:"lunch" db:"lunch"`
	Dinner    string    `json:"dinner" db:"dinner"`
}
