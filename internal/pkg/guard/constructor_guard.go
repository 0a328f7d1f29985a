// Package guard holds ConstructorGuard, a marker embedded in value objects and
// commands so that a zero value can be told apart from one built by its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when no
// specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. Embed it in a struct and
// call Validate from the struct's own Validate method:
//
//	type RegionOverride struct {
//	    region string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (o RegionOverride) Validate() error {
//	    return o.guard.Validate(ErrRegionOverrideIsNotConstructed)
//	}
//
// The guard is a plain value, so copies stay valid and it is safe for concurrent use.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
