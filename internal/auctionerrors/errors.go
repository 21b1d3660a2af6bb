package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrNoBids             = errors.New("no bids found for car")
	ErrClientNoBids       = errors.New("client has not placed any bids")
	ErrDuplicateWallet    = errors.New("client with this wallet already exists")
	ErrBackendUnavailable = errors.New("backend store unavailable")
)

// Business logic errors
var (
	ErrInvalidSpec   = errors.New("invalid car specification")
	ErrInvalidBid    = errors.New("invalid bid")
	ErrInvalidAmount = errors.New("bid amount must exceed the starting price")
	ErrNotAuthorized = errors.New("client is not the current highest bidder")
	ErrInvalidState  = errors.New("settlement is not in a valid state for this transition")
)

// External collaborator errors
var (
	ErrPaymentFailed      = errors.New("payment failed")
	ErrVerificationFailed = errors.New("identity verification failed")
)
