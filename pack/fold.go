package pack

import (
	"fmt"
)

// Fold folds op from the left, without a seed: op(op(op(x0, x1), x2), ..., xn).
// It is the Go spelling of `pack op ...`.
//
// A pack of one element folds to that element. An empty pack returns [ErrEmptyPack].
// The first error returned by the algebra stops the fold and is returned unchanged.
func (p Pack[T]) Fold(op Op) (T, error) {
	if len(p.items) == 0 {
		var zero T
		return zero, fmt.Errorf("fold %s: %w", op, ErrEmptyPack)
	}

	alg := p.Algebra()
	acc := p.items[0]
	for _, item := range p.items[1:] {
		var err error
		acc, err = alg.Apply(op, acc, item)
		if err != nil {
			var zero T
			return zero, err
		}
	}
	return acc, nil
}

// FoldRight folds op from the right, without a seed: op(x0, op(x1, ..., op(xn-1, xn))).
// It is the Go spelling of `... op pack`.
//
// A pack of one element folds to that element. An empty pack returns [ErrEmptyPack].
// The first error returned by the algebra stops the fold and is returned unchanged.
func (p Pack[T]) FoldRight(op Op) (T, error) {
	if len(p.items) == 0 {
		var zero T
		return zero, fmt.Errorf("fold right %s: %w", op, ErrEmptyPack)
	}

	alg := p.Algebra()
	acc := p.items[len(p.items)-1]
	for i := len(p.items) - 2; i >= 0; i-- {
		var err error
		acc, err = alg.Apply(op, p.items[i], acc)
		if err != nil {
			var zero T
			return zero, err
		}
	}
	return acc, nil
}

// Binary evaluates `lhs op rhs` where one operand is the [Placeholder] and the other a [Pack].
// A pack on the left folds from the left, a pack on the right folds from the right.
func Binary[T any](op Op, lhs any, rhs any) (T, error) {
	var zero T
	switch {
	case IsPlaceholder(rhs):
		p, ok := lhs.(Pack[T])
		if !ok {
			return zero, fmt.Errorf("%T %s ...: %w", lhs, op, ErrNotPack)
		}
		return p.Fold(op)
	case IsPlaceholder(lhs):
		p, ok := rhs.(Pack[T])
		if !ok {
			return zero, fmt.Errorf("... %s %T: %w", op, rhs, ErrNotPack)
		}
		return p.FoldRight(op)
	}
	return zero, fmt.Errorf("%T %s %T: %w", lhs, op, rhs, ErrNoPlaceholder)
}
