package identity

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/models"
	"car-auction/internal/repository"
	"car-auction/utils"
)

// Display names assigned to clients created on first wallet resolution.
var (
	givenNames = []string{
		"Juan", "María", "Pedro", "Ana", "Luis", "Sofía", "Carlos", "Laura",
		"Miguel", "Carmen", "José", "Isabel", "Antonio", "Elena", "Francisco",
		"Patricia", "Manuel", "Rosa", "Javier", "Lucía",
	}
	surnames = []string{
		"García", "Rodríguez", "López", "Martínez", "González", "Pérez",
		"Sánchez", "Fernández", "Gómez", "Martín", "Jiménez", "Ruiz",
		"Hernández", "Díaz", "Moreno", "Álvarez", "Romero", "Alonso",
		"Gutiérrez", "Navarro",
	}
)

// Resolver maps wallet addresses to client records, creating a record on
// first resolution. Absence never surfaces as an error.
type Resolver struct {
	store repository.AuctionStore
}

// NewResolver creates a new Resolver instance
func NewResolver(store repository.AuctionStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the client registered for a wallet, creating one when none
// exists. Repeated resolution of the same wallet yields the same client.
func (r *Resolver) Resolve(ctx context.Context, wallet string) (models.Client, error) {
	if wallet == "" {
		return models.Client{}, fmt.Errorf("resolver: %w - empty wallet address", auctionerrors.ErrInvalidSpec)
	}

	client, err := r.store.GetClientByWallet(ctx, wallet)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, auctionerrors.ErrNotFound) {
		return models.Client{}, fmt.Errorf("resolver: failed to look up wallet %s: %w", wallet, err)
	}

	client = models.Client{
		ClientID: utils.GenerateID(),
		Wallet:   wallet,
		Name:     GenerateName(),
		Email:    placeholderEmail(wallet),
	}

	if err := r.store.CreateClient(ctx, client); err != nil {
		// A concurrent first resolution may have won the race; the wallet
		// uniqueness constraint means the existing record is the answer.
		if errors.Is(err, auctionerrors.ErrDuplicateWallet) {
			return r.store.GetClientByWallet(ctx, wallet)
		}
		return models.Client{}, fmt.Errorf("resolver: failed to create client for wallet %s: %w", wallet, err)
	}

	utils.Info("resolver: created client on first wallet resolution", map[string]any{
		"client_id": client.ClientID,
		"wallet":    wallet,
	})
	return client, nil
}

// GenerateWallet returns a random wallet address for guest sign-in:
// "0x" followed by 40 hex characters.
func GenerateWallet() string {
	return "0x" + utils.RandomHex(40)
}

// GenerateName returns a random display name for a newly created client
func GenerateName() string {
	return givenNames[rand.Intn(len(givenNames))] + " " + surnames[rand.Intn(len(surnames))]
}

func placeholderEmail(wallet string) string {
	prefix := wallet
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("usuario-%s@ejemplo.com", prefix)
}
