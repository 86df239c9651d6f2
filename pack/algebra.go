package pack

import (
	"fmt"
)

// Algebra supplies the element operators a [Pack] folds with.
type Algebra[T any] interface {
	// Apply returns x op y.
	Apply(op Op, x T, y T) (T, error)
	// Compare reports whether x rel y holds.
	Compare(rel Rel, x T, y T) (bool, error)
}

// Caller is implemented by algebras whose elements can be called, see [Pack.Call].
type Caller[T any] interface {
	Call(fn T, args []any, kwargs map[string]any) (T, error)
}

// Operand is implemented by values that define their own operators.
type Operand[T any] interface {
	ApplyOp(op Op, y T) (T, error)
	CompareOp(rel Rel, y T) (bool, error)
}

// Callable is implemented by values that can be called with positional and keyword arguments.
type Callable[T any] interface {
	Call(args []any, kwargs map[string]any) (T, error)
}

// Methods is the [Algebra] of values implementing [Operand]. It also implements [Caller]
// for values implementing [Callable]; calling any other value returns [ErrNotCallable].
type Methods[T Operand[T]] struct{}

func (Methods[T]) Apply(op Op, x T, y T) (T, error) {
	return x.ApplyOp(op, y)
}

func (Methods[T]) Compare(rel Rel, x T, y T) (bool, error) {
	return x.CompareOp(rel, y)
}

func (Methods[T]) Call(fn T, args []any, kwargs map[string]any) (T, error) {
	c, ok := any(fn).(Callable[T])
	if !ok {
		var zero T
		return zero, fmt.Errorf("%T: %w", fn, ErrNotCallable)
	}
	return c.Call(args, kwargs)
}

// Funcs is an [Algebra] assembled from plain functions.
type Funcs[T any] struct {
	// Ops holds the implementation of each supported operator.
	Ops map[Op]func(x T, y T) (T, error)
	// Cmp returns a negative number when x < y, zero when x == y and a positive number when x > y.
	Cmp func(x T, y T) int
	// Invoke calls fn, see [Caller]. Nil means the elements are not callable.
	Invoke func(fn T, args []any, kwargs map[string]any) (T, error)
}

func (f Funcs[T]) Apply(op Op, x T, y T) (T, error) {
	fn, ok := f.Ops[op]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w", op, ErrUnsupportedOp)
	}
	return fn(x, y)
}

func (f Funcs[T]) Compare(rel Rel, x T, y T) (bool, error) {
	if f.Cmp == nil || !rel.valid() {
		return false, fmt.Errorf("%s: %w", rel, ErrUnsupportedOp)
	}
	return rel.holds(f.Cmp(x, y)), nil
}

func (f Funcs[T]) Call(fn T, args []any, kwargs map[string]any) (T, error) {
	if f.Invoke == nil {
		var zero T
		return zero, ErrNotCallable
	}
	return f.Invoke(fn, args, kwargs)
}

type unsupported[T any] struct{}

func (unsupported[T]) Apply(op Op, _ T, _ T) (T, error) {
	var zero T
	return zero, fmt.Errorf("%s: %w", op, ErrUnsupportedOp)
}

func (unsupported[T]) Compare(rel Rel, _ T, _ T) (bool, error) {
	return false, fmt.Errorf("%s: %w", rel, ErrUnsupportedOp)
}
