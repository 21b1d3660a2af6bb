package handler

import (
	"errors"
	"fmt"
	"net/http"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/identity"
	"car-auction/internal/ledger"
	model "car-auction/internal/models"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	resolver *identity.Resolver
	ledger   *ledger.Service
}

func NewClientHandler(resolver *identity.Resolver, ledgerSvc *ledger.Service) *ClientHandler {
	return &ClientHandler{resolver: resolver, ledger: ledgerSvc}
}

// ResolveHandler handles POST /clients/resolve
func (h *ClientHandler) ResolveHandler(c *gin.Context) {
	var req helpers.ResolveClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ResolveHandler", err)
		return
	}

	client, err := h.resolver.Resolve(c.Request.Context(), req.Wallet)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ResolveHandler: failed to resolve wallet", map[string]any{
			"wallet": req.Wallet,
			"error":  err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, client, "client resolved successfully")
	helpers.LogSuccess("ResolveHandler", "client resolved successfully", map[string]any{
		"client_id": client.ClientID,
		"wallet":    client.Wallet,
	})
}

// GetBidsByClientHandler handles GET /clients/:client_id/bids
func (h *ClientHandler) GetBidsByClientHandler(c *gin.Context) {
	clientID := c.Param("client_id")
	bids, err := h.ledger.BidsForClient(c.Request.Context(), clientID)
	if err != nil && !errors.Is(err, auctionerrors.ErrClientNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByClientHandler: error retrieving bids", map[string]any{"client_id": clientID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByClientHandler", "bids retrieved successfully", map[string]any{
		"client_id": clientID,
		"count":     len(bids),
	})
}
