package service

import (
	"context"

	"babylist/internal/babylist/models"
	dErrors "babylist/pkg/domain-errors"
)

// Availability checks whether quantity units of a line can still be bought.
// It returns nil, nil when the list does not exist.
func (s *Service) Availability(ctx context.Context, listID string, lineID int64, quantity int) (*models.Availability, error) {
	if quantity < 1 {
		return nil, dErrors.New(dErrors.CodeValidation, "quantity must be positive")
	}
	reg, err := s.Find(ctx, listID)
	if err != nil || reg == nil {
		return nil, err
	}
	return &models.Availability{
		LineID:        lineID,
		Quantity:      quantity,
		Available:     reg.IsProductAvailable(lineID, quantity),
		MinimumAmount: reg.HasMinimumAmount(lineID, quantity),
	}, nil
}

// Options returns the static selector data shared by every list view.
func (s *Service) Options() models.Options {
	return models.Options{
		OrderOptions: models.OrderOptions(),
		PriceRanges:  models.PriceBands(),
		Filters:      models.FilterKeys(),
	}
}
