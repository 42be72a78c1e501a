package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances.
type Repositories struct {
	StudentRepository   *StudentRepository
	ContactRepository   *ContactRepository
	FeedbackRepository  *FeedbackRepository
	MenuRepository      *MenuRepository
	BookingRepository   *BookingRepository
	ComplaintRepository *ComplaintRepository
}

// NewRepositories initializes all repositories.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:   NewStudentRepository(db),
		ContactRepository:   NewContactRepository(db),
		FeedbackRepository:  NewFeedbackRepository(db),
		MenuRepository:      NewMenuRepository(db),
		BookingRepository:   NewBookingRepository(db),
		ComplaintRepository: NewComplaintRepository(db),
	}
}
