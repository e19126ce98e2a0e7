// Package guard provides a defensive construction check for value objects,
// commands, and entities that must be created through their designated
// constructor functions. Embedding a ConstructorGuard lets Validate methods
// distinguish properly constructed instances from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether the enclosing object was created through
// its constructor. The zero value always fails validation.
//
// Example:
//
//	type Command struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCommand() Command {
//	    return Command{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c Command) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was constructed through its constructor,
// the provided validationError otherwise. A nil validationError falls back to
// ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
