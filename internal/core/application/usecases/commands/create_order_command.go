package commands

import (
	"errors"
	"time"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrStreetIsRequired     = errors.New("street is required")
	ErrCityIsRequired       = errors.New("city is required")
	ErrHeadcountIsInvalid   = errors.New("headcount must be greater than 0")
	ErrMinPersonsIsInvalid  = errors.New("menu minimum must be greater than 0")
	ErrDeliveryAtIsRequired = errors.New("delivery time is required")
	ErrPricePerPersonIsInvalid = errors.New(
		"price per person must not be negative",
	)
)

// CreateOrderCommand represents a request to place a new catering order.
// Carries the menu snapshot (id, per-person price, minimum party size) so
// pricing is computed against the menu as the customer saw it.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(
//	    orderID, customerID, menuID,
//	    15, 10, kernel.MoneyFromFloat(45),
//	    "12 Provence Lane", "Mimizan",
//	    deliveryAt, "no peanuts", true,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, geocoder, pricer, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	menuID          kernel.UUID
	headcount       int
	minPersons      int
	pricePerPerson  kernel.Money
	street          string
	city            string
	deliveryAt      time.Time
	specialRequests string
	cookingRequired bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new catering order.
// Validates identifiers, the menu snapshot, the delivery address, and the
// delivery time. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID, customerID, menuID kernel.UUID,
	headcount, minPersons int,
	pricePerPerson kernel.Money,
	street, city string,
	deliveryAt time.Time,
	specialRequests string,
	cookingRequired bool,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		specialRequests: specialRequests,
		cookingRequired: cookingRequired,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setMenuID(menuID),
		orderCommand.setHeadcount(headcount),
		orderCommand.setMinPersons(minPersons),
		orderCommand.setPricePerPerson(pricePerPerson),
		orderCommand.setStreet(street),
		orderCommand.setCity(city),
		orderCommand.setDeliveryAt(deliveryAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// MenuID returns the identifier of the selected menu.
func (c CreateOrderCommand) MenuID() kernel.UUID {
	return c.menuID
}

// Headcount returns the number of guests catered for.
func (c CreateOrderCommand) Headcount() int {
	return c.headcount
}

// MinPersons returns the menu's minimum party size.
func (c CreateOrderCommand) MinPersons() int {
	return c.minPersons
}

// PricePerPerson returns the menu's per-guest price.
func (c CreateOrderCommand) PricePerPerson() kernel.Money {
	return c.pricePerPerson
}

// Street returns the delivery street address.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// City returns the delivery city.
func (c CreateOrderCommand) City() string {
	return c.city
}

// DeliveryAt returns the requested delivery time.
func (c CreateOrderCommand) DeliveryAt() time.Time {
	return c.deliveryAt
}

// SpecialRequests returns free-text customer requests, possibly empty.
func (c CreateOrderCommand) SpecialRequests() string {
	return c.specialRequests
}

// CookingRequired reports whether the menu needs an on-site cooking stage.
func (c CreateOrderCommand) CookingRequired() bool {
	return c.cookingRequired
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}

	c.menuID = menuID
	return nil
}

func (c *CreateOrderCommand) setHeadcount(headcount int) error {
	if headcount <= 0 {
		return ErrHeadcountIsInvalid
	}

	c.headcount = headcount
	return nil
}

func (c *CreateOrderCommand) setMinPersons(minPersons int) error {
	if minPersons <= 0 {
		return ErrMinPersonsIsInvalid
	}

	c.minPersons = minPersons
	return nil
}

func (c *CreateOrderCommand) setPricePerPerson(pricePerPerson kernel.Money) error {
	if pricePerPerson.IsNegative() {
		return ErrPricePerPersonIsInvalid
	}

	c.pricePerPerson = pricePerPerson
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}

	c.street = street
	return nil
}

func (c *CreateOrderCommand) setCity(city string) error {
	if city == "" {
		return ErrCityIsRequired
	}

	c.city = city
	return nil
}

func (c *CreateOrderCommand) setDeliveryAt(deliveryAt time.Time) error {
	if deliveryAt.IsZero() {
		return ErrDeliveryAtIsRequired
	}

	c.deliveryAt = deliveryAt
	return nil
}
