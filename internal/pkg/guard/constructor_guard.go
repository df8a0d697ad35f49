// Package guard provides a constructor-enforcement helper for value objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so commands, queries and aggregates can insist on being built
// through their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through its designated
// constructor. The zero value is "not constructed" and fails Validate.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    payload order.Payload
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(p order.Payload) (PlaceOrderCommand, error) {
//	    return PlaceOrderCommand{payload: p, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its owner as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owner was built through its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
