package order

import (
	"fmt"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
)

// Pricing is the price breakdown of an order, computed once at creation by
// the pricing engine and never hand-edited afterwards.
//
// Invariant: total equals subtotal minus discount plus delivery fee, rounded
// half-up to two decimal places at the final step. The constructor rejects
// breakdowns that violate the identity, so a stored Pricing is always
// internally consistent.
type Pricing struct {
	subtotal    kernel.Money
	discount    kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money
}

// NewPricing creates a validated price breakdown.
func NewPricing(subtotal, discount, deliveryFee, total kernel.Money) (Pricing, error) {
	for name, amount := range map[string]kernel.Money{
		"subtotal":    subtotal,
		"discount":    discount,
		"deliveryFee": deliveryFee,
		"total":       total,
	} {
		if err := amount.Validate(); err != nil {
			return Pricing{}, errs.NewValueIsInvalidErrorWithCause(name, err)
		}
	}

	expected := subtotal.Sub(discount).Add(deliveryFee).RoundHalfUp()
	if !total.IsEqual(expected) {
		return Pricing{}, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s does not match subtotal - discount + deliveryFee = %s", total, expected),
		)
	}

	return Pricing{
		subtotal:    subtotal,
		discount:    discount,
		deliveryFee: deliveryFee,
		total:       total,
	}, nil
}

// Subtotal returns the menu price times headcount.
func (p Pricing) Subtotal() kernel.Money {
	return p.subtotal
}

// Discount returns the bulk discount amount, zero below the threshold.
func (p Pricing) Discount() kernel.Money {
	return p.discount
}

// DeliveryFee returns the delivery fee.
func (p Pricing) DeliveryFee() kernel.Money {
	return p.deliveryFee
}

// Total returns the final price.
func (p Pricing) Total() kernel.Money {
	return p.total
}
