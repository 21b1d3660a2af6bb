package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"car-auction/internal/cache"
	"car-auction/internal/catalog"
	"car-auction/internal/identity"
	"car-auction/internal/images"
	"car-auction/internal/ledger"
	model "car-auction/internal/models"
	"car-auction/internal/payments"
	"car-auction/internal/projection"
	"car-auction/internal/repository"
	"car-auction/internal/server"
	"car-auction/internal/settlement"
	handler "car-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router over an in-memory store for
// integration testing. The chat assistant is left unconfigured.
func SetupTestRouter() (*gin.Engine, *repository.MemoryStore) {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	resolver := identity.NewResolver(store)
	catalogSvc := catalog.NewService(store)
	ledgerSvc := ledger.NewService(store)
	projectionSvc := projection.NewService(catalogSvc, ledgerSvc, store)
	manager := settlement.NewManager(catalogSvc, ledgerSvc, store, payments.SimulatedGateway{}, "0xescrow")
	picker := images.NewPicker(cache.NewMemoryCache())

	router := server.SetupRouter(server.Handlers{
		Clients:     handler.NewClientHandler(resolver, ledgerSvc),
		Cars:        handler.NewCarHandler(catalogSvc, ledgerSvc, picker),
		Bids:        handler.NewBidHandler(ledgerSvc, payments.SimulatedVerifier{}),
		Settlements: handler.NewSettlementHandler(manager),
		Assistant:   handler.NewAssistantHandler(nil, projectionSvc),
	})
	return router, store
}

// SetupTestRouterWithCars initializes the router and seeds the store with cars.
func SetupTestRouterWithCars(t *testing.T, cars ...model.Car) (*gin.Engine, *repository.MemoryStore) {
	router, store := SetupTestRouter()
	for _, car := range cars {
		if err := store.CreateCar(context.Background(), car); err != nil {
			t.Fatalf("failed to seed car %s: %v", car.CarID, err)
		}
	}
	return router, store
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

func openCar(carID, carMake, carModel string, startingPrice float64, ownerWallet string) model.Car {
	return model.Car{
		CarID:         carID,
		Make:          carMake,
		Model:         carModel,
		Year:          2020,
		StartingPrice: startingPrice,
		OwnerWallet:   ownerWallet,
		Status:        model.CarStatusOpen,
	}
}
