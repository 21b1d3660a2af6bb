package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"car-auction/internal/auctionerrors"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrInvalidSpec):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrInvalidBid):
		return http.StatusBadRequest, "invalid bid details"
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "bid amount must exceed the starting price"
	case errors.Is(err, auctionerrors.ErrNotAuthorized):
		return http.StatusForbidden, "client is not the current highest bidder"
	case errors.Is(err, auctionerrors.ErrVerificationFailed):
		return http.StatusForbidden, "identity verification failed"
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, auctionerrors.ErrInvalidState):
		return http.StatusConflict, "settlement state does not allow this action"
	case errors.Is(err, auctionerrors.ErrPaymentFailed):
		return http.StatusBadGateway, "payment failed"
	case errors.Is(err, auctionerrors.ErrBackendUnavailable):
		return http.StatusServiceUnavailable, "backend store unavailable"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found for car"
	case errors.Is(err, auctionerrors.ErrClientNoBids):
		return http.StatusOK, "no bids found for client"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
