package pack

import (
	"errors"
)

var (
	// ErrEmptyPack is returned when a fold needs at least one element and the pack has none.
	ErrEmptyPack = errors.New("empty pack")
	// ErrNoPlaceholder is returned when a fold is requested without a [Placeholder] operand or argument.
	ErrNoPlaceholder = errors.New("no placeholder operand")
	// ErrNotPack is returned by [Binary] and [Relate] when the operand opposite the placeholder is not a pack.
	ErrNotPack = errors.New("operand is not a pack")
	// ErrNotCallable is returned by call folds when the elements can not be called.
	ErrNotCallable = errors.New("elements are not callable")
	// ErrUnsupportedOp is returned by an [Algebra] that does not implement an operator.
	ErrUnsupportedOp = errors.New("unsupported operator")
	// ErrDivisionByZero is returned by the numeric algebras for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNegativeShift is returned by [Integers] for a negative shift count.
	ErrNegativeShift = errors.New("negative shift count")
)
