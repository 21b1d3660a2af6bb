package catalog

import (
	"context"
	"fmt"
	"time"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/models"
	"car-auction/internal/repository"
	"car-auction/utils"
)

// Listings are immutable after creation aside from status, so the only
// mutation the catalog supports besides Create is Remove.
type Service struct {
	store repository.AuctionStore
}

// NewService creates a new catalog service instance
func NewService(store repository.AuctionStore) *Service {
	return &Service{store: store}
}

// Create validates a spec and lists a new car for its owner
func (s *Service) Create(ctx context.Context, spec models.CarSpec, ownerWallet string) (models.Car, error) {
	if err := validateSpec(spec, ownerWallet); err != nil {
		return models.Car{}, err
	}

	car := models.Car{
		CarID:         utils.GenerateID(),
		Make:          spec.Make,
		Model:         spec.Model,
		Year:          spec.Year,
		StartingPrice: spec.StartingPrice,
		OwnerWallet:   ownerWallet,
		Status:        models.CarStatusOpen,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.CreateCar(ctx, car); err != nil {
		return models.Car{}, fmt.Errorf("catalog: failed to create car %s %s: %w", spec.Make, spec.Model, err)
	}

	utils.Info("catalog: car listed", map[string]any{
		"car_id":         car.CarID,
		"make":           car.Make,
		"model":          car.Model,
		"starting_price": car.StartingPrice,
	})
	return car, nil
}

func validateSpec(spec models.CarSpec, ownerWallet string) error {
	if spec.Make == "" || spec.Model == "" {
		return fmt.Errorf("catalog: %w - missing make or model", auctionerrors.ErrInvalidSpec)
	}
	if spec.StartingPrice <= 0 {
		return fmt.Errorf("catalog: %w - starting price must be positive", auctionerrors.ErrInvalidSpec)
	}
	if spec.Year < 1900 || spec.Year > time.Now().Year()+1 {
		return fmt.Errorf("catalog: %w - implausible year %d", auctionerrors.ErrInvalidSpec, spec.Year)
	}
	if ownerWallet == "" {
		return fmt.Errorf("catalog: %w - missing owner wallet", auctionerrors.ErrInvalidSpec)
	}
	return nil
}

// ListOpen returns the cars currently open for bidding
func (s *Service) ListOpen(ctx context.Context) ([]models.Car, error) {
	cars, err := s.store.ListCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to list cars: %w", err)
	}

	open := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if car.Status == models.CarStatusOpen {
			open = append(open, car)
		}
	}
	return open, nil
}

// List returns every car regardless of status, for administrative use
func (s *Service) List(ctx context.Context) ([]models.Car, error) {
	cars, err := s.store.ListCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to list cars: %w", err)
	}
	return cars, nil
}

// Get returns a single car by id
func (s *Service) Get(ctx context.Context, carID string) (models.Car, error) {
	if carID == "" {
		return models.Car{}, fmt.Errorf("catalog: %w - empty car ID", auctionerrors.ErrInvalidSpec)
	}
	car, err := s.store.GetCar(ctx, carID)
	if err != nil {
		return models.Car{}, fmt.Errorf("catalog: failed to get car %s: %w", carID, err)
	}
	return car, nil
}

// Remove delists a car. Called exclusively by the settlement workflow once
// delivery is confirmed.
func (s *Service) Remove(ctx context.Context, carID string) error {
	if carID == "" {
		return fmt.Errorf("catalog: %w - empty car ID", auctionerrors.ErrInvalidSpec)
	}
	if err := s.store.DeleteCar(ctx, carID); err != nil {
		return fmt.Errorf("catalog: failed to remove car %s: %w", carID, err)
	}
	utils.Info("catalog: car removed", map[string]any{"car_id": carID})
	return nil
}
