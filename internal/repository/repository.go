package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
)

// AuctionStore defines the persistence interface for the auction system.
// The authoritative implementation is the remote REST backend; MemoryStore
// backs development and tests.
type AuctionStore interface {
	// Clients. Wallet address is a unique key.
	CreateClient(ctx context.Context, client model.Client) error
	GetClientByWallet(ctx context.Context, wallet string) (model.Client, error)
	GetClient(ctx context.Context, clientID string) (model.Client, error)
	FlagPenalty(ctx context.Context, clientID string) error

	// Cars.
	CreateCar(ctx context.Context, car model.Car) error
	GetCar(ctx context.Context, carID string) (model.Car, error)
	ListCars(ctx context.Context) ([]model.Car, error)
	DeleteCar(ctx context.Context, carID string) error

	// Bids.
	RecordBidForCar(ctx context.Context, bid model.Bid) error
	GetBidsByCar(ctx context.Context, carID string) ([]model.Bid, error)
	GetBidsByClient(ctx context.Context, clientID string) ([]model.Bid, error)
	GetWinningBid(ctx context.Context, carID string) (model.Bid, error)
	DeleteBid(ctx context.Context, bidID string) error

	// Payments.
	RecordPayment(ctx context.Context, payment model.PaymentRecord) error
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore
type MemoryStore struct {
	mu             sync.RWMutex
	clients        map[string]model.Client // key: clientID
	walletIndex    map[string]string       // key: wallet -> clientID
	cars           map[string]model.Car    // key: carID
	bids           map[string][]model.Bid  // key: carID -> bids
	bidIndex       map[string]string       // key: bidID -> carID
	payments       []model.PaymentRecord
	carInsertOrder []string
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clients:     make(map[string]model.Client),
		walletIndex: make(map[string]string),
		cars:        make(map[string]model.Car),
		bids:        make(map[string][]model.Bid),
		bidIndex:    make(map[string]string),
	}
}

// CreateClient stores a new client. Wallet uniqueness is enforced here, which
// is what makes Resolve idempotent per wallet.
func (s *MemoryStore) CreateClient(_ context.Context, client model.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.walletIndex[client.Wallet]; ok {
		return fmt.Errorf("create client for wallet %s: %w", client.Wallet, auctionerrors.ErrDuplicateWallet)
	}

	s.clients[client.ClientID] = client
	s.walletIndex[client.Wallet] = client.ClientID
	return nil
}

// GetClientByWallet returns the client registered under a wallet address
func (s *MemoryStore) GetClientByWallet(_ context.Context, wallet string) (model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.walletIndex[wallet]
	if !ok {
		return model.Client{}, fmt.Errorf("get client for wallet %s: %w", wallet, auctionerrors.ErrNotFound)
	}
	return s.clients[id], nil
}

// GetClient returns a client by id
func (s *MemoryStore) GetClient(_ context.Context, clientID string) (model.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[clientID]
	if !ok {
		return model.Client{}, fmt.Errorf("get client %s: %w", clientID, auctionerrors.ErrNotFound)
	}
	return client, nil
}

// FlagPenalty marks a client as penalized after a failed delivery
func (s *MemoryStore) FlagPenalty(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[clientID]
	if !ok {
		return fmt.Errorf("flag penalty for client %s: %w", clientID, auctionerrors.ErrNotFound)
	}
	client.Penalized = true
	s.clients[clientID] = client
	return nil
}

// CreateCar stores a new car listing
func (s *MemoryStore) CreateCar(_ context.Context, car model.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[car.CarID]; ok {
		return fmt.Errorf("create car %s: id already exists", car.CarID)
	}
	s.cars[car.CarID] = car
	s.carInsertOrder = append(s.carInsertOrder, car.CarID)
	return nil
}

// GetCar returns a car by id
func (s *MemoryStore) GetCar(_ context.Context, carID string) (model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	car, ok := s.cars[carID]
	if !ok {
		return model.Car{}, fmt.Errorf("get car %s: %w", carID, auctionerrors.ErrNotFound)
	}
	return car, nil
}

// ListCars returns every stored car in insertion order
func (s *MemoryStore) ListCars(_ context.Context) ([]model.Car, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cars := make([]model.Car, 0, len(s.carInsertOrder))
	for _, id := range s.carInsertOrder {
		if car, ok := s.cars[id]; ok {
			cars = append(cars, car)
		}
	}
	return cars, nil
}

// DeleteCar removes a car listing
func (s *MemoryStore) DeleteCar(_ context.Context, carID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[carID]; !ok {
		return fmt.Errorf("delete car %s: %w", carID, auctionerrors.ErrNotFound)
	}
	delete(s.cars, carID)
	for i, id := range s.carInsertOrder {
		if id == carID {
			s.carInsertOrder = append(s.carInsertOrder[:i], s.carInsertOrder[i+1:]...)
			break
		}
	}
	return nil
}

// RecordBidForCar records a client's bid on a car
func (s *MemoryStore) RecordBidForCar(_ context.Context, bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cars[bid.CarID]; !ok {
		return fmt.Errorf("record bid for car %s: %w", bid.CarID, auctionerrors.ErrNotFound)
	}

	s.bids[bid.CarID] = append(s.bids[bid.CarID], bid)
	s.bidIndex[bid.BidID] = bid.CarID
	return nil
}

// GetBidsByCar returns all bids for a car
func (s *MemoryStore) GetBidsByCar(_ context.Context, carID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids, ok := s.bids[carID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for car %s: %w", carID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetBidsByClient returns all bids a client has placed, newest first
func (s *MemoryStore) GetBidsByClient(_ context.Context, clientID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bids []model.Bid
	for _, carBids := range s.bids {
		for _, b := range carBids {
			if b.ClientID == clientID {
				bids = append(bids, b)
			}
		}
	}
	if len(bids) == 0 {
		return nil, fmt.Errorf("get bids for client %s: %w", clientID, auctionerrors.ErrClientNoBids)
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].CreatedAt.After(bids[j].CreatedAt) })
	return bids, nil
}

// GetWinningBid returns the highest bid for a car. Ties are broken by the
// earliest CreatedAt so the winner is deterministic.
func (s *MemoryStore) GetWinningBid(_ context.Context, carID string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids, ok := s.bids[carID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for car %s: %w", carID, auctionerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}

// DeleteBid removes a bid record
func (s *MemoryStore) DeleteBid(_ context.Context, bidID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	carID, ok := s.bidIndex[bidID]
	if !ok {
		return fmt.Errorf("delete bid %s: %w", bidID, auctionerrors.ErrNotFound)
	}

	bids := s.bids[carID]
	for i, b := range bids {
		if b.BidID == bidID {
			s.bids[carID] = append(bids[:i], bids[i+1:]...)
			break
		}
	}
	delete(s.bidIndex, bidID)
	return nil
}

// RecordPayment appends a completed-purchase record
func (s *MemoryStore) RecordPayment(_ context.Context, payment model.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments = append(s.payments, payment)
	return nil
}

// Payments returns recorded payments. This method is intended for tests only.
func (s *MemoryStore) Payments() []model.PaymentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.PaymentRecord(nil), s.payments...)
}
