package pack

import (
	"fmt"
	"slices"
)

// Chain is a pending chained comparison x0 rel x1 rel x2 ... over the elements of a pack,
// optionally extended on the right with further operands. Nothing is compared until
// [Chain.Holds] or [Chain.Against] is called.
type Chain[T any] struct {
	operands []T
	rel      Rel
	alg      Algebra[T]
}

// Compare returns the chain x0 rel x1 rel ... rel xn. It is the Go spelling of `pack rel ...`.
func (p Pack[T]) Compare(rel Rel) Chain[T] {
	return Chain[T]{
		operands: p.items,
		rel:      rel,
		alg:      p.Algebra(),
	}
}

// CompareRight is the Go spelling of `... rel pack`. The pack stands on the right of the
// relation, so the chain compares its elements with the reflected relation:
// `... < pack` holds when the elements are strictly descending.
func (p Pack[T]) CompareRight(rel Rel) Chain[T] {
	return p.Compare(rel.Reflect())
}

// Rel returns the relation applied between neighbouring operands.
func (c Chain[T]) Rel() Rel {
	return c.rel
}

// Len returns the number of operands in the chain.
func (c Chain[T]) Len() int {
	return len(c.operands)
}

// Then returns the chain extended with v as its last operand.
// Comparing the result of `pack != ...` with `!= 2` is spelled c.Then(2).
func (c Chain[T]) Then(v T) Chain[T] {
	operands := make([]T, 0, len(c.operands)+1)
	operands = append(operands, c.operands...)
	return Chain[T]{
		operands: append(operands, v),
		rel:      c.rel,
		alg:      c.alg,
	}
}

// Holds evaluates the chain left to right and stops at the first pair that fails.
// A chain of fewer than two operands holds vacuously. Comparison errors are returned unchanged.
// The zero Chain compares with no algebra and fails with [ErrUnsupportedOp].
func (c Chain[T]) Holds() (bool, error) {
	alg := c.alg
	if alg == nil {
		alg = unsupported[T]{}
	}
	for i := 1; i < len(c.operands); i++ {
		ok, err := alg.Compare(c.rel, c.operands[i-1], c.operands[i])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Against is shorthand for c.Then(v).Holds().
func (c Chain[T]) Against(v T) (bool, error) {
	return c.Then(v).Holds()
}

// Operands returns a copy of the chain's operands in order.
func (c Chain[T]) Operands() []T {
	return slices.Clone(c.operands)
}

func (c Chain[T]) String() string {
	return fmt.Sprintf("Chain(%s %v)", c.rel, c.operands)
}

// Relate evaluates `lhs rel rhs` where one operand is the [Placeholder] and the other a [Pack].
func Relate[T any](rel Rel, lhs any, rhs any) (Chain[T], error) {
	switch {
	case IsPlaceholder(rhs):
		p, ok := lhs.(Pack[T])
		if !ok {
			return Chain[T]{}, fmt.Errorf("%T %s ...: %w", lhs, rel, ErrNotPack)
		}
		return p.Compare(rel), nil
	case IsPlaceholder(lhs):
		p, ok := rhs.(Pack[T])
		if !ok {
			return Chain[T]{}, fmt.Errorf("... %s %T: %w", rel, rhs, ErrNotPack)
		}
		return p.CompareRight(rel), nil
	}
	return Chain[T]{}, fmt.Errorf("%T %s %T: %w", lhs, rel, rhs, ErrNoPlaceholder)
}
