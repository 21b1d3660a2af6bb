package main

import (
	"context"
	"fmt"
	"os"

	"car-auction/internal/assistant"
	"car-auction/internal/cache"
	"car-auction/internal/catalog"
	"car-auction/internal/config"
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
	"car-auction/utils"
)

func main() {
	cfg := config.LoadConfig()

	store := buildStore(cfg)

	resolver := identity.NewResolver(store)
	catalogSvc := catalog.NewService(store)
	ledgerSvc := ledger.NewService(store)
	projectionSvc := projection.NewService(catalogSvc, ledgerSvc, store)

	gateway := payments.SimulatedGateway{}
	verifier := payments.SimulatedVerifier{}
	manager := settlement.NewManager(catalogSvc, ledgerSvc, store, gateway, cfg.EscrowWallet)

	picker := images.NewPicker(cache.NewMemoryCache())

	asst := buildAssistant(cfg, projectionSvc)

	router := server.SetupRouter(server.Handlers{
		Clients:     handler.NewClientHandler(resolver, ledgerSvc),
		Cars:        handler.NewCarHandler(catalogSvc, ledgerSvc, picker),
		Bids:        handler.NewBidHandler(ledgerSvc, verifier),
		Settlements: handler.NewSettlementHandler(manager),
		Assistant:   handler.NewAssistantHandler(asst, projectionSvc),
	})

	addr := ":" + cfg.ServerPort
	fmt.Printf("Starting car auction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildStore selects the REST backend when configured, otherwise an
// in-memory store seeded with sample listings for development.
func buildStore(cfg *config.AppConfig) repository.AuctionStore {
	if cfg.BackendAPIURL != "" {
		utils.Info("using REST backend store", map[string]any{"base_url": cfg.BackendAPIURL})
		return repository.NewRESTStore(cfg.BackendAPIURL)
	}

	utils.Info("no backend configured, using in-memory store with seed data", nil)
	store := repository.NewMemoryStore()
	seedCars(store)
	return store
}

// seedCars adds sample listings to the in-memory store
func seedCars(store *repository.MemoryStore) {
	ctx := context.Background()
	specs := []model.CarSpec{
		{Make: "Toyota", Model: "Corolla", Year: 2019, StartingPrice: 12000},
		{Make: "Ford", Model: "Mustang", Year: 2021, StartingPrice: 35000},
		{Make: "BMW", Model: "X3", Year: 2020, StartingPrice: 28000},
	}

	catalogSvc := catalog.NewService(store)
	for _, spec := range specs {
		if _, err := catalogSvc.Create(ctx, spec, identity.GenerateWallet()); err != nil {
			utils.Warn("failed to seed car", map[string]any{"make": spec.Make, "error": err.Error()})
		}
	}
}

// buildAssistant wires the chat assistant when a completion API key is
// configured; otherwise the chat endpoint stays disabled.
func buildAssistant(cfg *config.AppConfig, proj *projection.Service) *assistant.Assistant {
	if cfg.GenAIAPIKey == "" {
		utils.Warn("GENAI_API_KEY not set, chat assistant disabled", nil)
		return nil
	}

	completer, err := assistant.NewGenAIClient(context.Background(), cfg.GenAIAPIKey, cfg.GenAIModel)
	if err != nil {
		utils.Error("failed to create completion client, chat assistant disabled", map[string]any{"error": err.Error()})
		return nil
	}
	return assistant.NewAssistant(completer, proj)
}
