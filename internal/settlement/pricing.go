package settlement

import (
	"github.com/shopspring/decimal"

	"car-auction/internal/models"
)

// Fee schedule, as fractions of the car's starting price.
var (
	commissionRate = decimal.NewFromFloat(0.01)  // platform commission, charged to the seller
	paperworkRate  = decimal.NewFromFloat(0.003) // waived when paying with the wallet token
	deliveryRate   = decimal.NewFromFloat(0.004)
	inspectionRate = decimal.NewFromFloat(0.005)
)

// Quote is the full cost breakdown for a purchase. The buyer pays Total; the
// seller receives SellerProceeds once delivery is confirmed.
type Quote struct {
	BasePrice           decimal.Decimal `json:"base_price"`
	PaperworkSurcharge  decimal.Decimal `json:"paperwork_surcharge"`
	DeliverySurcharge   decimal.Decimal `json:"delivery_surcharge"`
	InspectionSurcharge decimal.Decimal `json:"inspection_surcharge"`
	Total               decimal.Decimal `json:"total"`
	Commission          decimal.Decimal `json:"commission"`
	SellerProceeds      decimal.Decimal `json:"seller_proceeds"`
}

// ComputeQuote prices a purchase. Surcharges are percentages of the starting
// price per selected service; the paperwork surcharge is waived for the
// wallet-token payment method. Commission always comes out of the seller's
// side, never the buyer's.
func ComputeQuote(startingPrice float64, method models.PaymentMethod, services models.ServiceOptions) Quote {
	base := decimal.NewFromFloat(startingPrice)

	q := Quote{
		BasePrice:           base,
		PaperworkSurcharge:  decimal.Zero,
		DeliverySurcharge:   decimal.Zero,
		InspectionSurcharge: decimal.Zero,
	}

	if services.Paperwork && method != models.PaymentMethodToken {
		q.PaperworkSurcharge = base.Mul(paperworkRate)
	}
	if services.Delivery {
		q.DeliverySurcharge = base.Mul(deliveryRate)
	}
	if services.Inspection {
		q.InspectionSurcharge = base.Mul(inspectionRate)
	}

	q.Total = base.Add(q.PaperworkSurcharge).Add(q.DeliverySurcharge).Add(q.InspectionSurcharge)
	q.Commission = base.Mul(commissionRate)
	q.SellerProceeds = base.Sub(q.Commission)
	return q
}
