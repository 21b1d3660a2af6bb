package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/models"
	"car-auction/internal/repository"
	"car-auction/utils"
)

// Service holds the bid records for the auction and decides the current
// winner for each car.
type Service struct {
	store repository.AuctionStore
}

// NewService creates a new ledger service instance
func NewService(store repository.AuctionStore) *Service {
	return &Service{store: store}
}

// PlaceBid validates and records a client's bid on a car.
//
// A bid only has to beat the car's starting price, not the current highest
// bid; lower bids are accepted and simply lose.
func (s *Service) PlaceBid(ctx context.Context, clientID, carID string, amount float64) (models.Bid, error) {
	if clientID == "" || carID == "" {
		return models.Bid{}, fmt.Errorf("ledger: %w - missing clientID or carID", auctionerrors.ErrInvalidBid)
	}

	car, err := s.store.GetCar(ctx, carID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to resolve car %s: %w", carID, err)
	}
	if car.Status != models.CarStatusOpen {
		return models.Bid{}, fmt.Errorf("ledger: car %s is not open for bidding: %w", carID, auctionerrors.ErrNotFound)
	}
	if amount <= car.StartingPrice {
		return models.Bid{}, fmt.Errorf("ledger: %w - starting price is %.2f", auctionerrors.ErrInvalidAmount, car.StartingPrice)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		ClientID:  clientID,
		CarID:     carID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.RecordBidForCar(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to record bid on car %s by client %s: %w", carID, clientID, err)
	}

	return bid, nil
}

// BidsForCar returns all bids for a specific car
func (s *Service) BidsForCar(ctx context.Context, carID string) ([]models.Bid, error) {
	if carID == "" {
		return nil, fmt.Errorf("ledger: %w - empty car ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.store.GetBidsByCar(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to get bids for car %s: %w", carID, err)
	}
	return bids, nil
}

// BidsForClient returns all bids a client has placed
func (s *Service) BidsForClient(ctx context.Context, clientID string) ([]models.Bid, error) {
	if clientID == "" {
		return nil, fmt.Errorf("ledger: %w - empty client ID", auctionerrors.ErrInvalidBid)
	}

	bids, err := s.store.GetBidsByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to get bids for client %s: %w", clientID, err)
	}
	return bids, nil
}

// HighestBid returns the current winning bid for a car. The store recomputes
// it from recorded bids on every call; ties go to the earliest bid.
func (s *Service) HighestBid(ctx context.Context, carID string) (models.Bid, error) {
	if carID == "" {
		return models.Bid{}, fmt.Errorf("ledger: %w - empty car ID", auctionerrors.ErrInvalidBid)
	}

	bid, err := s.store.GetWinningBid(ctx, carID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to get winning bid for car %s: %w", carID, err)
	}
	return bid, nil
}

// RemoveBid deletes a bid record after settlement. An already-removed bid is
// a no-op: settlement must proceed even when the record is gone.
func (s *Service) RemoveBid(ctx context.Context, bidID string) error {
	if bidID == "" {
		return fmt.Errorf("ledger: %w - empty bid ID", auctionerrors.ErrInvalidBid)
	}

	if err := s.store.DeleteBid(ctx, bidID); err != nil {
		if errors.Is(err, auctionerrors.ErrNotFound) {
			utils.Warn("ledger: bid already removed", map[string]any{"bid_id": bidID})
			return nil
		}
		return fmt.Errorf("ledger: failed to remove bid %s: %w", bidID, err)
	}
	return nil
}
