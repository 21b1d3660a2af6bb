package helpers

import model "car-auction/internal/models"

// Request/Response DTOs

type ResolveClientRequest struct {
	Wallet string `json:"wallet" binding:"required"`
}

type CreateCarRequest struct {
	Make          string  `json:"make" binding:"required"`
	Model         string  `json:"model" binding:"required"`
	Year          int     `json:"year" binding:"required"`
	StartingPrice float64 `json:"starting_price" binding:"required,gt=0"`
	OwnerWallet   string  `json:"owner_wallet" binding:"required"`
}

type PlaceBidRequest struct {
	ClientID string  `json:"client_id" binding:"required"`
	CarID    string  `json:"car_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

type InitiateSettlementRequest struct {
	ClientID      string               `json:"client_id" binding:"required"`
	CarID         string               `json:"car_id" binding:"required"`
	PaymentMethod string               `json:"payment_method" binding:"required"`
	Services      model.ServiceOptions `json:"services"`
}

type FeedbackRequest struct {
	Delivered bool `json:"delivered"`
}

type ChatRequest struct {
	ClientID string        `json:"client_id"`
	Messages []ChatMessage `json:"messages" binding:"required,min=1"`
}

type ChatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	ClientID  string  `json:"client_id"`
	CarID     string  `json:"car_id"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

type CarImageResponse struct {
	CarID    string `json:"car_id"`
	ImageURL string `json:"image_url"`
}

type ChatResponse struct {
	Message string `json:"message"`
}
