package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"car-auction/internal/auctionerrors"
	"car-auction/internal/models"
	"car-auction/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func openCar(carID string, startingPrice float64) models.Car {
	return models.Car{
		CarID:         carID,
		Make:          "Toyota",
		Model:         "Corolla",
		Year:          2020,
		StartingPrice: startingPrice,
		OwnerWallet:   "0xseller",
		Status:        models.CarStatusOpen,
	}
}

func TestService_PlaceBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		clientID   string
		carID      string
		amount     float64
		setupMocks func(store *repository.MockAuctionStore)
		wantErr    error
	}{
		{
			name:     "valid_bid",
			clientID: "c1",
			carID:    "car1",
			amount:   1100,
			setupMocks: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetCar(gomock.Any(), "car1").Return(openCar("car1", 1000), nil)
				store.EXPECT().RecordBidForCar(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:       "missing_client_id",
			clientID:   "",
			carID:      "car1",
			amount:     1100,
			setupMocks: func(store *repository.MockAuctionStore) {},
			wantErr:    auctionerrors.ErrInvalidBid,
		},
		{
			name:       "missing_car_id",
			clientID:   "c1",
			carID:      "",
			amount:     1100,
			setupMocks: func(store *repository.MockAuctionStore) {},
			wantErr:    auctionerrors.ErrInvalidBid,
		},
		{
			name:     "car_not_found",
			clientID: "c1",
			carID:    "carX",
			amount:   1100,
			setupMocks: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetCar(gomock.Any(), "carX").Return(models.Car{}, auctionerrors.ErrNotFound)
			},
			wantErr: auctionerrors.ErrNotFound,
		},
		{
			name:     "car_not_open",
			clientID: "c1",
			carID:    "car1",
			amount:   1100,
			setupMocks: func(store *repository.MockAuctionStore) {
				car := openCar("car1", 1000)
				car.Status = models.CarStatusSold
				store.EXPECT().GetCar(gomock.Any(), "car1").Return(car, nil)
			},
			wantErr: auctionerrors.ErrNotFound,
		},
		{
			name:     "amount_below_starting_price",
			clientID: "c1",
			carID:    "car1",
			amount:   900,
			setupMocks: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetCar(gomock.Any(), "car1").Return(openCar("car1", 1000), nil)
			},
			wantErr: auctionerrors.ErrInvalidAmount,
		},
		{
			name:     "amount_equal_starting_price",
			clientID: "c1",
			carID:    "car1",
			amount:   1000,
			setupMocks: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetCar(gomock.Any(), "car1").Return(openCar("car1", 1000), nil)
			},
			wantErr: auctionerrors.ErrInvalidAmount,
		},
		{
			name:     "store_failure",
			clientID: "c1",
			carID:    "car1",
			amount:   1100,
			setupMocks: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetCar(gomock.Any(), "car1").Return(openCar("car1", 1000), nil)
				store.EXPECT().RecordBidForCar(gomock.Any(), gomock.Any()).Return(auctionerrors.ErrBackendUnavailable)
			},
			wantErr: auctionerrors.ErrBackendUnavailable,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := repository.NewMockAuctionStore(ctrl)
			tc.setupMocks(store)

			svc := NewService(store)
			bid, err := svc.PlaceBid(context.Background(), tc.clientID, tc.carID, tc.amount)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, bid.BidID)
			require.Equal(t, tc.clientID, bid.ClientID)
			require.Equal(t, tc.carID, bid.CarID)
			require.Equal(t, tc.amount, bid.Amount)
			require.WithinDuration(t, time.Now().UTC(), bid.CreatedAt, time.Minute)
		})
	}
}

func TestService_HighestBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		carID      string
		setupMocks func(store *repository.MockAuctionStore)
		wantBidID  string
		wantErr    error
	}{
		{
			name:  "winner_found",
			carID: "car1",
			setupMocks: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetWinningBid(gomock.Any(), "car1").
					Return(models.Bid{BidID: "bid1", CarID: "car1", ClientID: "a", Amount: 1100}, nil)
			},
			wantBidID: "bid1",
		},
		{
			name:  "no_bids",
			carID: "car1",
			setupMocks: func(store *repository.MockAuctionStore) {
				store.EXPECT().GetWinningBid(gomock.Any(), "car1").Return(models.Bid{}, auctionerrors.ErrNoBids)
			},
			wantErr: auctionerrors.ErrNoBids,
		},
		{
			name:       "empty_car_id",
			carID:      "",
			setupMocks: func(store *repository.MockAuctionStore) {},
			wantErr:    auctionerrors.ErrInvalidBid,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := repository.NewMockAuctionStore(ctrl)
			tc.setupMocks(store)

			svc := NewService(store)
			bid, err := svc.HighestBid(context.Background(), tc.carID)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantBidID, bid.BidID)
		})
	}
}

func TestService_BidsForClient(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := repository.NewMockAuctionStore(ctrl)
	store.EXPECT().GetBidsByClient(gomock.Any(), "c1").
		Return([]models.Bid{{BidID: "bid1"}, {BidID: "bid2"}}, nil)

	svc := NewService(store)
	bids, err := svc.BidsForClient(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, bids, 2)

	_, err = svc.BidsForClient(context.Background(), "")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidBid)
}

func TestService_RemoveBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		bidID      string
		setupMocks func(store *repository.MockAuctionStore)
		wantErr    error
	}{
		{
			name:  "removed",
			bidID: "bid1",
			setupMocks: func(store *repository.MockAuctionStore) {
				store.EXPECT().DeleteBid(gomock.Any(), "bid1").Return(nil)
			},
		},
		{
			name:  "already_removed_is_noop",
			bidID: "bid1",
			setupMocks: func(store *repository.MockAuctionStore) {
				store.EXPECT().DeleteBid(gomock.Any(), "bid1").Return(auctionerrors.ErrNotFound)
			},
		},
		{
			name:  "store_failure",
			bidID: "bid1",
			setupMocks: func(store *repository.MockAuctionStore) {
				store.EXPECT().DeleteBid(gomock.Any(), "bid1").Return(errors.New("connection reset"))
			},
			wantErr: errors.New("ledger: failed to remove bid"),
		},
		{
			name:       "empty_bid_id",
			bidID:      "",
			setupMocks: func(store *repository.MockAuctionStore) {},
			wantErr:    auctionerrors.ErrInvalidBid,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := repository.NewMockAuctionStore(ctrl)
			tc.setupMocks(store)

			svc := NewService(store)
			err := svc.RemoveBid(context.Background(), tc.bidID)

			if tc.wantErr != nil {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
