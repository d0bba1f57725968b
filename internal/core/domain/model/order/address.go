package order

import (
	"errors"

	"catering/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through the NewAddress constructor.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery destination of an order. The core does not parse
// or geocode it; locality and distance come from the geocoding collaborator.
type Address struct {
	street string
	city   string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated delivery address. Street and city are required.
func NewAddress(street, city string) (Address, error) {
	if street == "" {
		return Address{}, errors.New("street is required")
	}
	if city == "" {
		return Address{}, errors.New("city is required")
	}

	return Address{
		street: street,
		city:   city,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}
