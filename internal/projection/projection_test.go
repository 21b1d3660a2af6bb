package projection

import (
	"context"
	"fmt"
	"testing"

	"car-auction/internal/catalog"
	"car-auction/internal/ledger"
	"car-auction/internal/models"
	"car-auction/internal/repository"

	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *repository.MemoryStore, *catalog.Service, *ledger.Service) {
	t.Helper()
	store := repository.NewMemoryStore()
	catalogSvc := catalog.NewService(store)
	ledgerSvc := ledger.NewService(store)
	return NewService(catalogSvc, ledgerSvc, store), store, catalogSvc, ledgerSvc
}

func TestService_Snapshot_AnonymousClient(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, catalogSvc, _ := newService(t)
	_, err := catalogSvc.Create(ctx, models.CarSpec{Make: "Toyota", Model: "Corolla", Year: 2020, StartingPrice: 12000}, "0xa")
	require.NoError(t, err)

	snap, err := svc.Snapshot(ctx, "")
	require.NoError(t, err)
	require.Len(t, snap.Cars, 1)
	require.Nil(t, snap.Client)
	require.Empty(t, snap.Bids)
}

func TestService_Snapshot_UnknownClientIsTolerated(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newService(t)
	snap, err := svc.Snapshot(context.Background(), "nobody")
	require.NoError(t, err)
	require.Nil(t, snap.Client)
	require.Empty(t, snap.Bids)
}

func TestService_Snapshot_KnownClientWithBids(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, store, catalogSvc, ledgerSvc := newService(t)
	require.NoError(t, store.CreateClient(ctx, models.Client{ClientID: "c1", Wallet: "0xbuyer", Name: "Ana"}))

	car, err := catalogSvc.Create(ctx, models.CarSpec{Make: "Ford", Model: "Mustang", Year: 2021, StartingPrice: 35000}, "0xa")
	require.NoError(t, err)
	_, err = ledgerSvc.PlaceBid(ctx, "c1", car.CarID, 36000)
	require.NoError(t, err)

	snap, err := svc.Snapshot(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, snap.Client)
	require.Equal(t, "c1", snap.Client.ClientID)
	require.Len(t, snap.Bids, 1)
	require.Equal(t, car.CarID, snap.Bids[0].CarID)
}

func TestService_Snapshot_Caps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, store, catalogSvc, ledgerSvc := newService(t)
	require.NoError(t, store.CreateClient(ctx, models.Client{ClientID: "c1", Wallet: "0xbuyer"}))

	for i := 0; i < MaxCars+5; i++ {
		car, err := catalogSvc.Create(ctx, models.CarSpec{
			Make: "Toyota", Model: fmt.Sprintf("Model %d", i), Year: 2020, StartingPrice: 1000,
		}, "0xa")
		require.NoError(t, err)
		_, err = ledgerSvc.PlaceBid(ctx, "c1", car.CarID, 1100)
		require.NoError(t, err)
	}

	snap, err := svc.Snapshot(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, snap.Cars, MaxCars)
	require.Len(t, snap.Bids, MaxBids)
}
