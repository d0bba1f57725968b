// Package guard provides a defensive construction pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect whether the struct was created through its designated
// constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. The guard holds an internal flag that is only set when
// the object is created through a proper constructor; zero-value structs fail
// validation.
//
// Example usage:
//
//	var ErrMoneyNotConstructed = errors.New("Money must be created via NewMoney")
//
//	type Money struct {
//	    amount int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int) (Money, error) {
//	    if amount < 0 {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
// Returns nil for properly constructed objects, the provided validationError for
// zero-value objects, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
