// Package lisplet provides a structural value for testing operator folds.
//
// A Lisplet removes the incidental mathematics from tests of operator application:
// every operator returns Lisplet{x, y}, so the shape of a result shows exactly which
// operands were combined and in which order. There is no division by zero, no
// commutativity and no trivial solution to hide an ordering mistake.
//
// Two Lisplets are equal when both slots are equal. Ordering compares the first slots,
// with an empty slot ordered before any value. Calling a Lisplet returns
// Lisplet{self, Invocation{args, kwargs}}.
package lisplet

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"go.gopad.dev/go-parameterpack/pack"
)

// ErrUnordered is returned when the first slots of two Lisplets can not be ordered.
var ErrUnordered = errors.New("lisplet: unordered values")

// Lisplet is a pair whose slots may be empty (nil).
type Lisplet struct {
	A any
	B any
}

// New returns a Lisplet holding up to two values.
func New(items ...any) Lisplet {
	var l Lisplet
	if len(items) > 0 {
		l.A = items[0]
	}
	if len(items) > 1 {
		l.B = items[1]
	}
	return l
}

// Kwarg is one keyword argument of an [Invocation].
type Kwarg struct {
	Name  string
	Value any
}

// Invocation records the arguments a Lisplet was called with. Kwargs are sorted by name.
type Invocation struct {
	Args   []any
	Kwargs []Kwarg
}

// Items returns the non-empty slots in order.
func (l Lisplet) Items() []any {
	var items []any
	for _, item := range []any{l.A, l.B} {
		if item != nil {
			items = append(items, item)
		}
	}
	return items
}

// Len returns the number of non-empty slots.
func (l Lisplet) Len() int {
	return len(l.Items())
}

// Equal reports whether both slots of l and o are equal.
func (l Lisplet) Equal(o Lisplet) bool {
	return reflect.DeepEqual(l, o)
}

func (l Lisplet) ApplyOp(_ pack.Op, y Lisplet) (Lisplet, error) {
	return Lisplet{A: l, B: y}, nil
}

func (l Lisplet) CompareOp(rel pack.Rel, y Lisplet) (bool, error) {
	switch rel {
	case pack.Equal:
		return l.Equal(y), nil
	case pack.NotEqual:
		return !l.Equal(y), nil
	}

	c, err := compare(l.A, y.A)
	if err != nil {
		return false, err
	}
	switch rel {
	case pack.Less:
		return c < 0, nil
	case pack.LessEqual:
		return c <= 0, nil
	case pack.Greater:
		return c > 0, nil
	case pack.GreaterEqual:
		return c >= 0, nil
	}
	return false, fmt.Errorf("lisplet: %s: %w", rel, pack.ErrUnsupportedOp)
}

func (l Lisplet) Call(args []any, kwargs map[string]any) (Lisplet, error) {
	inv := Invocation{Args: slices.Clone(args)}
	for name, value := range kwargs {
		inv.Kwargs = append(inv.Kwargs, Kwarg{Name: name, Value: value})
	}
	slices.SortFunc(inv.Kwargs, func(a, b Kwarg) int {
		return strings.Compare(a.Name, b.Name)
	})
	return Lisplet{A: l, B: inv}, nil
}

func (l Lisplet) String() string {
	items := make([]string, 0, 2)
	if l.A != nil || l.B != nil {
		items = append(items, fmt.Sprint(l.A))
	}
	if l.B != nil {
		items = append(items, fmt.Sprint(l.B))
	}
	return "Lisplet(" + strings.Join(items, ", ") + ")"
}

// compare orders a and b with nil before any value.
func compare(a any, b any) (int, error) {
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil:
		return -1, nil
	case b == nil:
		return 1, nil
	}

	switch x := a.(type) {
	case int:
		if y, ok := b.(int); ok {
			return cmp.Compare(x, y), nil
		}
	case string:
		if y, ok := b.(string); ok {
			return cmp.Compare(x, y), nil
		}
	case Lisplet:
		if y, ok := b.(Lisplet); ok {
			return compare(x.A, y.A)
		}
	}
	return 0, fmt.Errorf("%T and %T: %w", a, b, ErrUnordered)
}
