package handler

import (
	"fmt"
	"net/http"
	"time"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/ledger"
	"car-auction/internal/payments"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

type BidHandler struct {
	ledger   *ledger.Service
	verifier payments.Verifier
}

func NewBidHandler(ledgerSvc *ledger.Service, verifier payments.Verifier) *BidHandler {
	return &BidHandler{ledger: ledgerSvc, verifier: verifier}
}

// PlaceBidHandler handles POST /bids. The client's identity proof is
// verified before the bid is recorded.
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	action := "bid-" + req.CarID
	if _, err := h.verifier.Verify(c.Request.Context(), action, req.ClientID); err != nil {
		wrapped := fmt.Errorf("%v: %w", err, auctionerrors.ErrVerificationFailed)
		status, message := helpers.MapErrorToHTTP(wrapped)
		utils.JSONError(c, status, wrapped, message)
		utils.Warn("PlaceBidHandler: verification rejected", map[string]any{
			"client_id": req.ClientID,
			"car_id":    req.CarID,
			"error":     err.Error(),
		})
		return
	}

	bid, err := h.ledger.PlaceBid(c.Request.Context(), req.ClientID, req.CarID, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"client_id": req.ClientID,
			"car_id":    req.CarID,
			"error":     err.Error(),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		ClientID:  bid.ClientID,
		CarID:     bid.CarID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":    bid.BidID,
		"car_id":    bid.CarID,
		"client_id": bid.ClientID,
		"amount":    bid.Amount,
	})
}
