package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/catalog"
	"car-auction/internal/images"
	"car-auction/internal/ledger"
	model "car-auction/internal/models"
	"car-auction/services/auction/helpers"
	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	catalog *catalog.Service
	ledger  *ledger.Service
	images  *images.Picker
}

func NewCarHandler(catalogSvc *catalog.Service, ledgerSvc *ledger.Service, picker *images.Picker) *CarHandler {
	return &CarHandler{catalog: catalogSvc, ledger: ledgerSvc, images: picker}
}

// ListCarsHandler handles GET /cars. Open listings by default; ?all=true
// returns every car for administrative use.
func (h *CarHandler) ListCarsHandler(c *gin.Context) {
	var cars []model.Car
	var err error

	if c.Query("all") == "true" {
		cars, err = h.catalog.List(c.Request.Context())
	} else {
		cars, err = h.catalog.ListOpen(c.Request.Context())
	}
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListCarsHandler: failed to list cars", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, cars, "cars retrieved successfully")
	helpers.LogSuccess("ListCarsHandler", "cars retrieved successfully", map[string]any{"count": len(cars)})
}

// CreateCarHandler handles POST /cars
func (h *CarHandler) CreateCarHandler(c *gin.Context) {
	var req helpers.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCarHandler", err)
		return
	}

	spec := model.CarSpec{
		Make:          req.Make,
		Model:         req.Model,
		Year:          req.Year,
		StartingPrice: req.StartingPrice,
	}

	car, err := h.catalog.Create(c.Request.Context(), spec, req.OwnerWallet)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateCarHandler: failed to create car", map[string]any{
			"make":  req.Make,
			"model": req.Model,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, car, "car listed successfully")
	helpers.LogSuccess("CreateCarHandler", "car listed successfully", map[string]any{
		"car_id": car.CarID,
		"make":   car.Make,
		"model":  car.Model,
	})
}

// GetBidsByCarHandler handles GET /cars/:car_id/bids
func (h *CarHandler) GetBidsByCarHandler(c *gin.Context) {
	carID := c.Param("car_id")
	bids, err := h.ledger.BidsForCar(c.Request.Context(), carID)
	if err != nil && !errors.Is(err, auctionerrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByCarHandler: error retrieving bids", map[string]any{"car_id": carID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByCarHandler", "bids retrieved successfully", map[string]any{
		"car_id": carID,
		"count":  len(bids),
	})
}

// GetHighestBidHandler handles GET /cars/:car_id/highest
func (h *CarHandler) GetHighestBidHandler(c *gin.Context) {
	carID := c.Param("car_id")
	bid, err := h.ledger.HighestBid(c.Request.Context(), carID)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no highest bid found")
			utils.Info("GetHighestBidHandler: no bids for car", map[string]any{"car_id": carID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetHighestBidHandler: highest bid error", map[string]any{"car_id": carID, "error": err.Error()})
		return
	}

	resp := helpers.BidResponse{
		BidID:     bid.BidID,
		ClientID:  bid.ClientID,
		CarID:     bid.CarID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}

	utils.JSONResponse(c, http.StatusOK, resp, "highest bid retrieved successfully")
	helpers.LogSuccess("GetHighestBidHandler", "highest bid retrieved successfully", map[string]any{
		"bid_id": bid.BidID,
		"car_id": bid.CarID,
		"amount": bid.Amount,
	})
}

// GetCarImageHandler handles GET /cars/:car_id/image
func (h *CarHandler) GetCarImageHandler(c *gin.Context) {
	carID := c.Param("car_id")
	car, err := h.catalog.Get(c.Request.Context(), carID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	resp := helpers.CarImageResponse{
		CarID:    carID,
		ImageURL: h.images.ImageForCar(carID, car.Make),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "car image resolved successfully")
}
