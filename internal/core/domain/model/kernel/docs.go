// Package kernel contains shared value objects used across the domain model.
//
// The package includes:
//   - UUID: a validated identifier wrapping github.com/google/uuid
//   - Money: an exact decimal amount for prices, fees, and penalties
//
// All value objects are immutable and must be created through their
// constructor functions; zero values fail Validate.
package kernel
