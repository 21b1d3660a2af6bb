package projection

import (
	"context"
	"errors"
	"fmt"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/catalog"
	"car-auction/internal/ledger"
	"car-auction/internal/models"
	"car-auction/internal/repository"
)

// Caps on snapshot size. The snapshot feeds a text-generation prompt, so it
// must stay bounded no matter how large the catalog grows.
const (
	MaxCars = 10
	MaxBids = 10
)

// Snapshot is a bounded read-only view of the auction for one client.
type Snapshot struct {
	Cars   []models.Car   `json:"cars"`
	Bids   []models.Bid   `json:"bids"`
	Client *models.Client `json:"client,omitempty"`
}

// Service assembles snapshots. Pure reads, no mutation.
type Service struct {
	catalog *catalog.Service
	ledger  *ledger.Service
	store   repository.AuctionStore
}

// NewService creates a new projection service instance
func NewService(cat *catalog.Service, led *ledger.Service, store repository.AuctionStore) *Service {
	return &Service{catalog: cat, ledger: led, store: store}
}

// Snapshot returns the open cars and, when a client is identified, that
// client's record and bids. Both sequences are capped.
func (s *Service) Snapshot(ctx context.Context, clientID string) (Snapshot, error) {
	cars, err := s.catalog.ListOpen(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("projection: failed to list cars: %w", err)
	}
	if len(cars) > MaxCars {
		cars = cars[:MaxCars]
	}

	snap := Snapshot{Cars: cars, Bids: []models.Bid{}}
	if clientID == "" {
		return snap, nil
	}

	client, err := s.store.GetClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNotFound) {
			return snap, nil
		}
		return Snapshot{}, fmt.Errorf("projection: failed to resolve client %s: %w", clientID, err)
	}
	snap.Client = &client

	bids, err := s.ledger.BidsForClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrClientNoBids) {
			return snap, nil
		}
		return Snapshot{}, fmt.Errorf("projection: failed to list bids for client %s: %w", clientID, err)
	}
	if len(bids) > MaxBids {
		bids = bids[:MaxBids]
	}
	snap.Bids = bids

	return snap, nil
}
