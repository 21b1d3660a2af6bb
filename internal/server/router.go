package server

import (
	handler "car-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Clients     *handler.ClientHandler
	Cars        *handler.CarHandler
	Bids        *handler.BidHandler
	Settlements *handler.SettlementHandler
	Assistant   *handler.AssistantHandler
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(h Handlers) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	clients := router.Group("/clients")
	{
		clients.POST("/resolve", h.Clients.ResolveHandler)
		clients.GET("/:client_id/bids", h.Clients.GetBidsByClientHandler)
	}

	cars := router.Group("/cars")
	{
		cars.GET("", h.Cars.ListCarsHandler)
		cars.POST("", h.Cars.CreateCarHandler)
		cars.GET("/:car_id/bids", h.Cars.GetBidsByCarHandler)
		cars.GET("/:car_id/highest", h.Cars.GetHighestBidHandler)
		cars.GET("/:car_id/image", h.Cars.GetCarImageHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", h.Bids.PlaceBidHandler)
	}

	settlements := router.Group("/settlements")
	{
		settlements.POST("", h.Settlements.InitiateHandler)
		settlements.POST("/:settlement_id/payment", h.Settlements.ConfirmPaymentHandler)
		settlements.POST("/:settlement_id/feedback", h.Settlements.FeedbackHandler)
		settlements.DELETE("/:settlement_id", h.Settlements.AbandonHandler)
	}

	router.GET("/context", h.Assistant.SnapshotHandler)
	router.POST("/chat", h.Assistant.ChatHandler)

	return router
}
