package settlement

import (
	"context"
	"fmt"
	"sync"
	"time"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/catalog"
	"car-auction/internal/ledger"
	"car-auction/internal/models"
	"car-auction/internal/payments"
	"car-auction/internal/repository"
	"car-auction/utils"
)

// State is a settlement's position in the escrow workflow.
type State string

const (
	StateInitiated       State = "initiated"
	StateAwaitingPayment State = "awaiting_payment"
	// StatePaymentPending marks an escrow transfer in flight. The transition
	// is claimed under the manager lock, so a concurrent confirmation cannot
	// charge the buyer twice.
	StatePaymentPending   State = "payment_pending"
	StatePaymentHeld      State = "payment_held"
	StateAwaitingFeedback State = "awaiting_feedback"
	// StateResolving marks delivery feedback being applied, claimed the same
	// way as StatePaymentPending.
	StateResolving State = "resolving"
	StateCompleted State = "completed"
	StateRefunded  State = "refunded"
)

// Settlement carries a winning bid through payment hold and delivery
// confirmation. It is ephemeral: never persisted, discarded on abandon.
type Settlement struct {
	ID         string                `json:"settlement_id"`
	State      State                 `json:"state"`
	Car        models.Car            `json:"car"`
	WinningBid models.Bid            `json:"winning_bid"`
	Buyer      models.Client         `json:"buyer"`
	Method     models.PaymentMethod  `json:"payment_method"`
	Services   models.ServiceOptions `json:"services"`
	Quote      Quote                 `json:"quote"`
	PaymentRef string                `json:"payment_reference,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

// Manager drives settlements through the state machine. Active settlements
// live in memory only; terminal transitions and abandons evict them.
type Manager struct {
	catalog      *catalog.Service
	ledger       *ledger.Service
	store        repository.AuctionStore
	gateway      payments.Gateway
	escrowWallet string

	mu     sync.Mutex
	active map[string]*Settlement
}

// NewManager creates a new settlement manager instance
func NewManager(cat *catalog.Service, led *ledger.Service, store repository.AuctionStore, gateway payments.Gateway, escrowWallet string) *Manager {
	return &Manager{
		catalog:      cat,
		ledger:       led,
		store:        store,
		gateway:      gateway,
		escrowWallet: escrowWallet,
		active:       make(map[string]*Settlement),
	}
}

// Initiate starts a settlement for the current highest bidder on a car and
// computes the quote. The highest bid is re-read here rather than trusted
// from the caller: a client who was outbid since their last refresh gets
// ErrNotAuthorized.
func (m *Manager) Initiate(ctx context.Context, clientID, carID string, method models.PaymentMethod, services models.ServiceOptions) (Settlement, error) {
	if clientID == "" || carID == "" {
		return Settlement{}, fmt.Errorf("settlement: %w - missing clientID or carID", auctionerrors.ErrInvalidSpec)
	}
	if method != models.PaymentMethodToken && method != models.PaymentMethodDollars {
		return Settlement{}, fmt.Errorf("settlement: %w - unknown payment method %q", auctionerrors.ErrInvalidSpec, method)
	}

	car, err := m.catalog.Get(ctx, carID)
	if err != nil {
		return Settlement{}, fmt.Errorf("settlement: failed to resolve car %s: %w", carID, err)
	}

	highest, err := m.ledger.HighestBid(ctx, carID)
	if err != nil {
		return Settlement{}, fmt.Errorf("settlement: failed to read highest bid for car %s: %w", carID, err)
	}
	if highest.ClientID != clientID {
		return Settlement{}, fmt.Errorf("settlement: client %s: %w", clientID, auctionerrors.ErrNotAuthorized)
	}

	buyer, err := m.store.GetClient(ctx, clientID)
	if err != nil {
		return Settlement{}, fmt.Errorf("settlement: failed to resolve buyer %s: %w", clientID, err)
	}

	s := &Settlement{
		ID:         utils.GenerateID(),
		State:      StateAwaitingPayment,
		Car:        car,
		WinningBid: highest,
		Buyer:      buyer,
		Method:     method,
		Services:   services,
		Quote:      ComputeQuote(car.StartingPrice, method, services),
		CreatedAt:  time.Now().UTC(),
	}

	m.mu.Lock()
	m.active[s.ID] = s
	m.mu.Unlock()

	utils.Info("settlement: initiated", map[string]any{
		"settlement_id": s.ID,
		"car_id":        carID,
		"client_id":     clientID,
		"total":         s.Quote.Total.String(),
	})
	return *s, nil
}

// ConfirmPayment pays the quoted total into escrow. The transition is
// claimed under the lock before the external call, so a concurrent
// confirmation of the same settlement fails with ErrInvalidState instead of
// paying again. On success the settlement moves through payment_held to
// awaiting_feedback; on failure it drops back to initiated with no partial
// state.
func (m *Manager) ConfirmPayment(ctx context.Context, settlementID string) (Settlement, error) {
	s, err := m.claim(settlementID, StatePaymentPending, StateAwaitingPayment, StateInitiated)
	if err != nil {
		return Settlement{}, err
	}

	ref, err := m.gateway.Initiate(ctx)
	if err != nil {
		m.setState(s, StateInitiated)
		return Settlement{}, fmt.Errorf("settlement: failed to initiate payment: %v: %w", err, auctionerrors.ErrPaymentFailed)
	}

	total, _ := s.Quote.Total.Float64()
	if err := m.gateway.Pay(ctx, ref, m.escrowWallet, total); err != nil {
		m.setState(s, StateInitiated)
		return Settlement{}, fmt.Errorf("settlement: escrow payment rejected: %v: %w", err, auctionerrors.ErrPaymentFailed)
	}

	m.mu.Lock()
	s.PaymentRef = ref
	s.State = StatePaymentHeld
	// Funds held; nothing else is required before the buyer can give
	// delivery feedback.
	s.State = StateAwaitingFeedback
	snapshot := *s
	m.mu.Unlock()

	utils.Info("settlement: payment held in escrow", map[string]any{
		"settlement_id": s.ID,
		"reference":     ref,
		"total":         s.Quote.Total.String(),
	})
	return snapshot, nil
}

// ConfirmDelivery finishes a settlement after positive delivery feedback.
// Bid removal is best-effort; catalog removal is required - a sold car that
// stays listed would break the catalog invariant, so failure there aborts
// the transition.
func (m *Manager) ConfirmDelivery(ctx context.Context, settlementID string) (Settlement, error) {
	s, err := m.claim(settlementID, StateResolving, StateAwaitingFeedback)
	if err != nil {
		return Settlement{}, err
	}

	if err := m.ledger.RemoveBid(ctx, s.WinningBid.BidID); err != nil {
		utils.Warn("settlement: winning bid removal failed, continuing", map[string]any{
			"settlement_id": s.ID,
			"bid_id":        s.WinningBid.BidID,
			"error":         err.Error(),
		})
	}

	if err := m.catalog.Remove(ctx, s.Car.CarID); err != nil {
		m.setState(s, StateAwaitingFeedback)
		return Settlement{}, fmt.Errorf("settlement: failed to delist car %s, delivery not confirmed: %w", s.Car.CarID, err)
	}

	record := models.PaymentRecord{
		BuyerWallet: s.Buyer.Wallet,
		CarID:       s.Car.CarID,
		Proof: models.Proof{
			Action: "purchase-" + s.Car.CarID,
		},
	}
	if err := m.store.RecordPayment(ctx, record); err != nil {
		utils.Warn("settlement: payment record failed, continuing", map[string]any{
			"settlement_id": s.ID,
			"error":         err.Error(),
		})
	}

	snapshot := m.finish(s, StateCompleted)
	utils.Info("settlement: completed", map[string]any{
		"settlement_id":   s.ID,
		"car_id":          s.Car.CarID,
		"seller_proceeds": s.Quote.SellerProceeds.String(),
	})
	return snapshot, nil
}

// ReportProblem resolves a settlement after negative delivery feedback: the
// buyer gets a full refund and the seller's record is flagged. The car stays
// listed and open so another bidder can still buy it.
func (m *Manager) ReportProblem(ctx context.Context, settlementID string) (Settlement, error) {
	s, err := m.claim(settlementID, StateResolving, StateAwaitingFeedback)
	if err != nil {
		return Settlement{}, err
	}

	total, _ := s.Quote.Total.Float64()
	if err := m.gateway.Pay(ctx, s.PaymentRef, s.Buyer.Wallet, total); err != nil {
		utils.Warn("settlement: simulated refund transfer failed", map[string]any{
			"settlement_id": s.ID,
			"error":         err.Error(),
		})
	}

	if seller, err := m.store.GetClientByWallet(ctx, s.Car.OwnerWallet); err != nil {
		utils.Warn("settlement: could not resolve seller for penalty", map[string]any{
			"settlement_id": s.ID,
			"owner_wallet":  s.Car.OwnerWallet,
			"error":         err.Error(),
		})
	} else if err := m.store.FlagPenalty(ctx, seller.ClientID); err != nil {
		utils.Warn("settlement: seller penalty flag failed", map[string]any{
			"settlement_id": s.ID,
			"seller_id":     seller.ClientID,
			"error":         err.Error(),
		})
	}

	snapshot := m.finish(s, StateRefunded)
	utils.Info("settlement: refunded", map[string]any{
		"settlement_id": s.ID,
		"car_id":        s.Car.CarID,
		"buyer_id":      s.Buyer.ClientID,
	})
	return snapshot, nil
}

// Abandon discards an unfinished settlement, e.g. when the buyer closes the
// purchase flow. Only legal before funds are held; nothing before that point
// has an externally visible side effect.
func (m *Manager) Abandon(_ context.Context, settlementID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.active[settlementID]
	if !ok {
		return fmt.Errorf("settlement %s: %w", settlementID, auctionerrors.ErrNotFound)
	}
	if s.State != StateInitiated && s.State != StateAwaitingPayment {
		return fmt.Errorf("settlement %s in state %s cannot be abandoned: %w", s.ID, s.State, auctionerrors.ErrInvalidState)
	}
	delete(m.active, settlementID)
	return nil
}

// Get returns a snapshot of an active settlement
func (m *Manager) Get(settlementID string) (Settlement, error) {
	s, err := m.get(settlementID)
	if err != nil {
		return Settlement{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return *s, nil
}

// claim atomically verifies the settlement is in one of the allowed states
// and moves it to the transient next state. Only the request that wins the
// claim may drive the transition; everyone else sees ErrInvalidState.
func (m *Manager) claim(settlementID string, next State, allowed ...State) (*Settlement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.active[settlementID]
	if !ok {
		return nil, fmt.Errorf("settlement %s: %w", settlementID, auctionerrors.ErrNotFound)
	}
	for _, a := range allowed {
		if s.State == a {
			s.State = next
			return s, nil
		}
	}
	return nil, fmt.Errorf("settlement %s in state %s: %w", s.ID, s.State, auctionerrors.ErrInvalidState)
}

func (m *Manager) get(settlementID string) (*Settlement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.active[settlementID]
	if !ok {
		return nil, fmt.Errorf("settlement %s: %w", settlementID, auctionerrors.ErrNotFound)
	}
	return s, nil
}

func (m *Manager) setState(s *Settlement, state State) {
	m.mu.Lock()
	s.State = state
	m.mu.Unlock()
}

// finish moves a settlement to a terminal state and evicts it
func (m *Manager) finish(s *Settlement, state State) Settlement {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.State = state
	delete(m.active, s.ID)
	return *s
}
