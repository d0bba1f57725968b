// Package services contains stateless domain services for the fulfillment
// core: the pricing engine that computes an order's price breakdown from
// menu and distance inputs, and the kanban projector that derives the
// operational board from live orders.
//
// Both services are pure: they hold configuration only, never state, and
// produce no side effects.
package services
