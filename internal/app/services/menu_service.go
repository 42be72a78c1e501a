package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/messmate/messmate/internal/app/models"
	"github.com/messmate/messmate/internal/app/models/dto"
	"github.com/messmate/messmate/internal/pkg/apperrors"
	"github.com/messmate/messmate/internal/pkg/helpers"
)

type menuStore interface {
	Upsert(ctx context.Context, menu *models.Menu) (*models.Menu, error)
	GetByDate(ctx context.Context, date time.Time) (*models.Menu, error)
}

// MenuService defines daily menu operations.
type MenuService interface {
	Upsert(ctx context.Context, req *dto.UpsertMenuRequest) (*models.Menu, error)
	GetByDate(ctx context.Context, date string) (*models.Menu, error)
}

type menuServiceImpl struct {
	menus menuStore
}

// NewMenuService creates a new menu service instance.
func NewMenuService(menus menuStore) MenuService {
	return &menuServiceImpl{menus: menus}
}

// Upsert creates or overwrites the menu for the request's calendar date.
// The date is normalized to day granularity first, so submissions whose
// timestamps differ only in time-of-day land on the same row. Meals left
// blank are stored as "Not available".
func (s *menuServiceImpl) Upsert(ctx context.Context, req *dto.UpsertMenuRequest) (*models.Menu, error) {
	date, err := helpers.DateOnly(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}

	menu := &models.Menu{
		Date:      date,
		Breakfast: defaultItem(req.Breakfast),
		Lunch:     defaultItem(req.Lunch),
		Dinner:    defaultItem(req.Dinner),
	}

	result, err := s.menus.Upsert(ctx, menu)
	if err != nil {
		return nil, fmt.Errorf("error upserting menu: %w", err)
	}
	return result, nil
}

// GetByDate returns the menu for a date, normalized the same way as
// writes so any time-of-day component is ignored.
func (s *menuServiceImpl) GetByDate(ctx context.Context, date string) (*models.Menu, error) {
	day, err := helpers.DateOnly(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidDate, err)
	}

	menu, err := s.menus.GetByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	return menu, nil
}

func defaultItem(item string) string {
	if strings.TrimSpace(item) == "" {
		return models.MenuDefaultItem
	}
	return item
}
