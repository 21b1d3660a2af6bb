package settlement

import (
	"testing"

	"car-auction/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestComputeQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		startingPrice  float64
		method         models.PaymentMethod
		services       models.ServiceOptions
		wantPaperwork  string
		wantDelivery   string
		wantInspection string
		wantTotal      string
		wantCommission string
		wantProceeds   string
	}{
		{
			name:           "token_with_delivery_and_inspection",
			startingPrice:  1000,
			method:         models.PaymentMethodToken,
			services:       models.ServiceOptions{Delivery: true, Inspection: true},
			wantPaperwork:  "0",
			wantDelivery:   "4",
			wantInspection: "5",
			wantTotal:      "1009",
			wantCommission: "10",
			wantProceeds:   "990",
		},
		{
			name:           "dollars_with_all_services",
			startingPrice:  1000,
			method:         models.PaymentMethodDollars,
			services:       models.ServiceOptions{Paperwork: true, Delivery: true, Inspection: true},
			wantPaperwork:  "3",
			wantDelivery:   "4",
			wantInspection: "5",
			wantTotal:      "1012",
			wantCommission: "10",
			wantProceeds:   "990",
		},
		{
			name:           "paperwork_waived_for_token",
			startingPrice:  1000,
			method:         models.PaymentMethodToken,
			services:       models.ServiceOptions{Paperwork: true},
			wantPaperwork:  "0",
			wantDelivery:   "0",
			wantInspection: "0",
			wantTotal:      "1000",
			wantCommission: "10",
			wantProceeds:   "990",
		},
		{
			name:           "no_services",
			startingPrice:  35000,
			method:         models.PaymentMethodDollars,
			services:       models.ServiceOptions{},
			wantPaperwork:  "0",
			wantDelivery:   "0",
			wantInspection: "0",
			wantTotal:      "35000",
			wantCommission: "350",
			wantProceeds:   "34650",
		},
		{
			name:           "fractional_starting_price",
			startingPrice:  12500.50,
			method:         models.PaymentMethodDollars,
			services:       models.ServiceOptions{Delivery: true},
			wantPaperwork:  "0",
			wantDelivery:   "50.002",
			wantInspection: "0",
			wantTotal:      "12550.502",
			wantCommission: "125.005",
			wantProceeds:   "12375.495",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			q := ComputeQuote(tc.startingPrice, tc.method, tc.services)

			requireDecimalEqual(t, tc.wantPaperwork, q.PaperworkSurcharge)
			requireDecimalEqual(t, tc.wantDelivery, q.DeliverySurcharge)
			requireDecimalEqual(t, tc.wantInspection, q.InspectionSurcharge)
			requireDecimalEqual(t, tc.wantTotal, q.Total)
			requireDecimalEqual(t, tc.wantCommission, q.Commission)
			requireDecimalEqual(t, tc.wantProceeds, q.SellerProceeds)

			// The buyer's total is always base plus surcharges, never reduced
			// by commission; commission comes out of the seller's side.
			sum := q.BasePrice.Add(q.PaperworkSurcharge).Add(q.DeliverySurcharge).Add(q.InspectionSurcharge)
			require.True(t, q.Total.Equal(sum))
			require.True(t, q.SellerProceeds.Equal(q.BasePrice.Sub(q.Commission)))
		})
	}
}

func requireDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	expected, err := decimal.NewFromString(want)
	require.NoError(t, err)
	require.Truef(t, expected.Equal(got), "expected %s, got %s", want, got.String())
}
