package models

// Role defines the account role type.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)

// MealType identifies one of the three daily meals.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
)

// AllMeals lists every valid meal type.
var AllMeals = []MealType{MealBreakfast, MealLunch, MealDinner}

// IsValidMeal reports whether s names a known meal type.
func IsValidMeal(s string) bool {
	switch MealType(s) {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// ComplaintStatus is the closed set of complaint workflow states.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
)

// AllComplaintStatuses lists every valid complaint status.
var AllComplaintStatuses = []ComplaintStatus{StatusPending, StatusInProgress, StatusResolved}

// IsValidComplaintStatus reports whether s names a known status.
func IsValidComplaintStatus(s string) bool {
	switch ComplaintStatus(s) {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}
