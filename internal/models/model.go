package models

import "time"

// CarStatus tracks where a listing is in its lifecycle.
type CarStatus string

const (
	CarStatusOpen    CarStatus = "open"
	CarStatusSold    CarStatus = "sold"
	CarStatusRemoved CarStatus = "removed"
)

// PaymentMethod selects how a buyer settles a purchase.
type PaymentMethod string

const (
	// PaymentMethodToken pays with the wallet token. The paperwork surcharge
	// is waived for this method.
	PaymentMethodToken PaymentMethod = "token"
	// PaymentMethodDollars pays with fiat.
	PaymentMethodDollars PaymentMethod = "dollars"
)

// Client represents an identified participant, one per wallet address.
type Client struct {
	ClientID  string `json:"client_id"`
	Wallet    string `json:"wallet"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Penalized bool   `json:"penalized"`
}

// Car represents a listed vehicle up for auction.
type Car struct {
	CarID         string    `json:"car_id"`
	Make          string    `json:"make"`
	Model         string    `json:"model"`
	Year          int       `json:"year"`
	StartingPrice float64   `json:"starting_price"`
	OwnerWallet   string    `json:"owner_wallet"`
	Status        CarStatus `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// CarSpec is the caller-supplied portion of a new listing.
type CarSpec struct {
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	StartingPrice float64 `json:"starting_price"`
}

// Bid represents a client's bid on a car. Immutable once recorded; removed
// only as a settlement side effect.
type Bid struct {
	BidID     string    `json:"bid_id"`
	ClientID  string    `json:"client_id"`
	CarID     string    `json:"car_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// ServiceOptions are the optional extras a buyer can add at checkout.
type ServiceOptions struct {
	Paperwork  bool `json:"paperwork"`
	Delivery   bool `json:"delivery"`
	Inspection bool `json:"inspection"`
}

// Proof is the identity-verification evidence returned by the verifier.
type Proof struct {
	MerkleRoot     string `json:"merkle_root"`
	NullifierHash  string `json:"nullifier_hash"`
	Proof          string `json:"proof"`
	CredentialType string `json:"credential_type"`
	Action         string `json:"action"`
}

// PaymentRecord is the completed-purchase record sent to the backend.
type PaymentRecord struct {
	BuyerWallet string `json:"buyer_wallet"`
	CarID       string `json:"car_id"`
	Proof       Proof  `json:"proof"`
}
