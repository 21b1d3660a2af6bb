package handler

import (
	"fmt"
	"net/http"

	model "car-auction/internal/models"
	"car-auction/internal/settlement"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

type SettlementHandler struct {
	manager *settlement.Manager
}

func NewSettlementHandler(manager *settlement.Manager) *SettlementHandler {
	return &SettlementHandler{manager: manager}
}

// InitiateHandler handles POST /settlements
func (h *SettlementHandler) InitiateHandler(c *gin.Context) {
	var req helpers.InitiateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "InitiateHandler", err)
		return
	}

	s, err := h.manager.Initiate(
		c.Request.Context(),
		req.ClientID,
		req.CarID,
		model.PaymentMethod(req.PaymentMethod),
		req.Services,
	)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("InitiateHandler: settlement rejected", map[string]any{
			"client_id": req.ClientID,
			"car_id":    req.CarID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, s, "settlement initiated successfully")
	helpers.LogSuccess("InitiateHandler", "settlement initiated successfully", map[string]any{
		"settlement_id": s.ID,
		"car_id":        s.Car.CarID,
		"total":         s.Quote.Total.String(),
	})
}

// ConfirmPaymentHandler handles POST /settlements/:settlement_id/payment
func (h *SettlementHandler) ConfirmPaymentHandler(c *gin.Context) {
	settlementID := c.Param("settlement_id")

	s, err := h.manager.ConfirmPayment(c.Request.Context(), settlementID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ConfirmPaymentHandler: payment failed", map[string]any{
			"settlement_id": settlementID,
			"error":         err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, s, "payment held in escrow")
	helpers.LogSuccess("ConfirmPaymentHandler", "payment held in escrow", map[string]any{
		"settlement_id": s.ID,
		"reference":     s.PaymentRef,
	})
}

// FeedbackHandler handles POST /settlements/:settlement_id/feedback
func (h *SettlementHandler) FeedbackHandler(c *gin.Context) {
	settlementID := c.Param("settlement_id")

	var req helpers.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "FeedbackHandler", err)
		return
	}

	var (
		s   settlement.Settlement
		err error
	)
	if req.Delivered {
		s, err = h.manager.ConfirmDelivery(c.Request.Context(), settlementID)
	} else {
		s, err = h.manager.ReportProblem(c.Request.Context(), settlementID)
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("FeedbackHandler: settlement resolution failed", map[string]any{
			"settlement_id": settlementID,
			"delivered":     req.Delivered,
			"error":         err.Error(),
		})
		return
	}

	message := "settlement completed successfully"
	if s.State == settlement.StateRefunded {
		message = "refund processed and seller penalized"
	}

	utils.JSONResponse(c, http.StatusOK, s, message)
	helpers.LogSuccess("FeedbackHandler", message, map[string]any{
		"settlement_id": s.ID,
		"state":         string(s.State),
	})
}

// AbandonHandler handles DELETE /settlements/:settlement_id
func (h *SettlementHandler) AbandonHandler(c *gin.Context) {
	settlementID := c.Param("settlement_id")

	if err := h.manager.Abandon(c.Request.Context(), settlementID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "settlement abandoned")
	helpers.LogSuccess("AbandonHandler", "settlement abandoned", map[string]any{
		"settlement_id": settlementID,
	})
}
