package services

import (
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Pricing policy. The engine owns these values; call sites must not restate them.
const (
	// BulkDiscountMargin is how far above the menu minimum the headcount
	// must be for the bulk discount to apply.
	BulkDiscountMargin = 5
)

var (
	// flatLocalFee is the delivery fee for local deliveries, and the base
	// fee for out-of-town ones.
	flatLocalFee = decimal.NewFromFloat(5.00)

	// perKmRate is charged per kilometre on top of the flat fee for
	// out-of-town deliveries.
	perKmRate = decimal.NewFromFloat(1.50)

	// bulkDiscountRate is the single discount tier. It is not cumulative
	// with anything; there are no other tiers.
	bulkDiscountRate = decimal.NewFromFloat(0.10)
)

// PricingEngine computes the price breakdown of an order from the menu
// snapshot and the resolved delivery distance.
//
// The engine is a pure function of its inputs: it never invents a distance.
// Locality and distance come from the geocoding collaborator; when that
// collaborator is unavailable the caller prices with isLocal true and
// distance zero, recording the fallback on the order.
//
// Example:
//
//	engine := services.NewPricingEngine()
//	pricing, err := engine.Price(kernel.MoneyFromFloat(45), 15, 10, 0, true)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pricing.Total()) // "612.50"
type PricingEngine struct{}

// NewPricingEngine creates a pricing engine with the standard fee schedule.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price computes the breakdown for one order.
//
// Rules:
//   - subtotal = pricePerPerson x headcount
//   - discount = 10% of subtotal iff headcount >= minPersons + BulkDiscountMargin
//   - deliveryFee = flat local fee, plus the per-kilometre rate times the
//     distance for out-of-town deliveries
//   - total = subtotal - discount + deliveryFee, rounded half-up to two
//     decimal places at the final step only
func (PricingEngine) Price(
	pricePerPerson kernel.Money,
	headcount, minPersons int,
	distanceKm float64,
	isLocal bool,
) (order.Pricing, error) {
	if err := pricePerPerson.Validate(); err != nil {
		return order.Pricing{}, err
	}
	if headcount < 1 {
		return order.Pricing{}, errs.NewValueIsInvalidErrorWithCause(
			"headcount",
			fmt.Errorf("%d is not greater than 0", headcount),
		)
	}
	if distanceKm < 0 {
		return order.Pricing{}, errs.NewValueIsInvalidErrorWithCause(
			"distanceKm",
			fmt.Errorf("%f is negative", distanceKm),
		)
	}

	subtotal := pricePerPerson.MulInt(headcount)

	discount := kernel.ZeroMoney()
	if headcount >= minPersons+BulkDiscountMargin {
		discount = subtotal.Mul(bulkDiscountRate)
	}

	fee := flatLocalFee
	if !isLocal {
		fee = fee.Add(perKmRate.Mul(decimal.NewFromFloat(distanceKm)))
	}
	deliveryFee := kernel.NewMoney(fee)

	total := subtotal.Sub(discount).Add(deliveryFee).RoundHalfUp()

	return order.NewPricing(subtotal, discount, deliveryFee, total)
}
