// Package pack implements parameter packs: fixed, ordered groups of values that
// fold a binary operator across their elements when the other operand is the [Placeholder].
//
// Go has no operator overloading, so the operand position of the placeholder is spelled
// by the method used:
//
//	p.Fold(pack.Add)           // p + ...   ((x0 + x1) + x2) + ...
//	p.FoldRight(pack.Add)      // ... + p   x0 + (x1 + (x2 + ...))
//	p.Compare(pack.Less)       // p < ...   x0 < x1 < x2 ...
//	p.CompareRight(pack.Less)  // ... < p   x0 > x1 > x2 ...
//	p.Call(a, pack.Ellipsis)   // p(a, ...) x0(a, x1)(a, x2) ...
//
// [Binary] and [Relate] accept the placeholder and the pack as plain operands instead.
package pack

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// New returns a pack holding a copy of items that folds with alg.
func New[T any](alg Algebra[T], items ...T) Pack[T] {
	return Pack[T]{
		items: slices.Clone(items),
		alg:   alg,
	}
}

// Of returns a pack of values that implement their own operators, see [Methods].
func Of[T Operand[T]](items ...T) Pack[T] {
	return New[T](Methods[T]{}, items...)
}

// Collect returns a pack holding the values yielded by seq.
func Collect[T any](alg Algebra[T], seq iter.Seq[T]) Pack[T] {
	return Pack[T]{
		items: slices.Collect(seq),
		alg:   alg,
	}
}

// Pack is an immutable ordered sequence of values. The zero value is an empty pack
// without an algebra; every operator on its elements fails with [ErrUnsupportedOp].
type Pack[T any] struct {
	items []T
	alg   Algebra[T]
}

// Len returns the number of elements.
func (p Pack[T]) Len() int {
	return len(p.items)
}

// At returns the element at index i. It panics if i is out of range.
func (p Pack[T]) At(i int) T {
	return p.items[i]
}

// Items returns a copy of the elements in order.
func (p Pack[T]) Items() []T {
	return slices.Clone(p.items)
}

// Values returns an iterator over the elements in order.
func (p Pack[T]) Values() iter.Seq[T] {
	return slices.Values(p.items)
}

// All returns an iterator over the indices and elements in order.
func (p Pack[T]) All() iter.Seq2[int, T] {
	return slices.All(p.items)
}

// Algebra returns the algebra the pack folds with.
func (p Pack[T]) Algebra() Algebra[T] {
	if p.alg == nil {
		return unsupported[T]{}
	}
	return p.alg
}

func (p Pack[T]) String() string {
	var b strings.Builder
	b.WriteString("Pack(")
	for i, item := range p.items {
		if i > 0 {
			b.WriteString(", ")
		}
		_, _ = fmt.Fprint(&b, item)
	}
	b.WriteString(")")
	return b.String()
}
