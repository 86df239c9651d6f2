package pack

import (
	"cmp"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Integers is the [Algebra] of Go integer types. TrueDiv truncates like Go's /,
// FloorDiv rounds towards negative infinity and Mod takes the sign of the divisor.
// Errors are returned for zero divisors and negative shift counts instead of panicking.
// MatMul is not supported.
type Integers[T constraints.Integer] struct{}

func (Integers[T]) Apply(op Op, x T, y T) (T, error) {
	switch op {
	case Add:
		return x + y, nil
	case Sub:
		return x - y, nil
	case Mul:
		return x * y, nil
	case TrueDiv:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	case FloorDiv:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		q := x / y
		if x%y != 0 && (x < 0) != (y < 0) {
			q--
		}
		return q, nil
	case Mod:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		r := x % y
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return r, nil
	case And:
		return x & y, nil
	case Or:
		return x | y, nil
	case Xor:
		return x ^ y, nil
	case LShift:
		if y < 0 {
			return 0, ErrNegativeShift
		}
		return x << y, nil
	case RShift:
		if y < 0 {
			return 0, ErrNegativeShift
		}
		return x >> y, nil
	}
	return 0, fmt.Errorf("%s on %T: %w", op, x, ErrUnsupportedOp)
}

func (Integers[T]) Compare(rel Rel, x T, y T) (bool, error) {
	if !rel.valid() {
		return false, fmt.Errorf("%s on %T: %w", rel, x, ErrUnsupportedOp)
	}
	return rel.holds(cmp.Compare(x, y)), nil
}

// Floats is the [Algebra] of Go floating point types. FloorDiv and Mod round towards
// negative infinity, zero divisors return [ErrDivisionByZero]. Bitwise operators,
// shifts and MatMul are not supported.
type Floats[T constraints.Float] struct{}

func (Floats[T]) Apply(op Op, x T, y T) (T, error) {
	switch op {
	case Add:
		return x + y, nil
	case Sub:
		return x - y, nil
	case Mul:
		return x * y, nil
	case TrueDiv:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	case FloorDiv:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return T(math.Floor(float64(x) / float64(y))), nil
	case Mod:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		r := T(math.Mod(float64(x), float64(y)))
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}
		return r, nil
	}
	return 0, fmt.Errorf("%s on %T: %w", op, x, ErrUnsupportedOp)
}

// Compare uses Go's operators, so every relation except != is false for NaN.
func (Floats[T]) Compare(rel Rel, x T, y T) (bool, error) {
	switch rel {
	case Less:
		return x < y, nil
	case LessEqual:
		return x <= y, nil
	case Greater:
		return x > y, nil
	case GreaterEqual:
		return x >= y, nil
	case Equal:
		return x == y, nil
	case NotEqual:
		return x != y, nil
	}
	return false, fmt.Errorf("%s on %T: %w", rel, x, ErrUnsupportedOp)
}
