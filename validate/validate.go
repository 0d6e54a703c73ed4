// Package validate provides composable input validators for form
// widgets.
//
// A Validator answers two questions about a value: whether it is
// acceptable (Check) and, when supported, what the committed value
// should be (Convert). Widgets call Check on every input change to
// toggle their invalid marker and Convert once on submit to obtain the
// typed value.
//
// Checks and conversions must be pure functions of their input:
// validators are built once at form-definition time, may be shared
// between widgets, and are called repeatedly with the same value. A
// predicate or converter with side effects violates that contract.
//
// An invalid value is an ordinary outcome, reported as a false Check
// or a *ConversionError from Convert. Only misuse of the package
// itself (converting through a pure condition, chaining zero
// validators) surfaces as a distinct error.
package validate

import "errors"

// Validator checks a value and optionally converts it.
type Validator interface {
	// Check reports whether the value is acceptable.
	Check(value any) bool

	// Convert returns the committed form of the value. Validators
	// without a conversion return ErrConversionUnsupported; a failed
	// conversion returns a *ConversionError.
	Convert(value any) (any, error)
}

// Mode selects how a chain combines its children.
type Mode int

const (
	// All passes only if every child passes.
	All Mode = iota
	// Any passes if at least one child passes.
	Any
)

type conditionValidator struct {
	pred func(any) bool
}

// Condition returns a Validator backed by a boolean predicate. It has
// no conversion: Convert always returns ErrConversionUnsupported.
func Condition(pred func(value any) bool) Validator {
	return conditionValidator{pred: pred}
}

func (v conditionValidator) Check(value any) bool {
	return v.pred(value)
}

func (v conditionValidator) Convert(value any) (any, error) {
	return nil, ErrConversionUnsupported
}

type conversionValidator struct {
	conv func(any) (any, error)
}

// Conversion returns a Validator backed by a converting function.
// Check passes iff the conversion succeeds; Convert propagates the
// converter's value and error unchanged.
func Conversion(conv func(value any) (any, error)) Validator {
	return conversionValidator{conv: conv}
}

func (v conversionValidator) Check(value any) bool {
	_, err := v.conv(value)
	return err == nil
}

func (v conversionValidator) Convert(value any) (any, error) {
	return v.conv(value)
}

type chainValidator struct {
	mode     Mode
	children []Validator
}

// Chain combines child validators under the given mode. Children are
// evaluated left to right and evaluation short-circuits: All stops at
// the first failing child, Any at the first passing one.
//
// Convert delegates to the first child that supports conversion; later
// children are never consulted. If no child supports conversion,
// Convert returns ErrConversionUnsupported.
//
// Chaining zero validators is a construction error (ErrNoValidators).
func Chain(mode Mode, children ...Validator) (Validator, error) {
	if len(children) == 0 {
		return nil, ErrNoValidators
	}
	return chainValidator{mode: mode, children: append([]Validator(nil), children...)}, nil
}

// MustChain is Chain but panics on a construction error. Intended for
// package-level rule definitions with a known non-empty child list.
func MustChain(mode Mode, children ...Validator) Validator {
	v, err := Chain(mode, children...)
	if err != nil {
		panic(err)
	}
	return v
}

func (v chainValidator) Check(value any) bool {
	for _, child := range v.children {
		ok := child.Check(value)
		if v.mode == All && !ok {
			return false
		}
		if v.mode == Any && ok {
			return true
		}
	}
	return v.mode == All
}

func (v chainValidator) Convert(value any) (any, error) {
	for _, child := range v.children {
		out, err := child.Convert(value)
		if errors.Is(err, ErrConversionUnsupported) {
			continue
		}
		return out, err
	}
	return nil, ErrConversionUnsupported
}
