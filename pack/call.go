package pack

import (
	"fmt"
	"maps"
	"slices"
)

// Call folds a call across the pack: the first element is called with every
// [Placeholder] argument replaced by the second element, the result is called with
// the placeholders replaced by the third element, and so on:
//
//	Pack(a, b, c).Call(12, pack.Ellipsis, 15) == a(12, b, 15)(12, c, 15)
//
// The remaining arguments are passed unchanged to every call. A pack of one element
// returns that element, an empty pack returns [ErrEmptyPack]. The pack's algebra must
// implement [Caller], otherwise [ErrNotCallable] is returned.
func (p Pack[T]) Call(args ...any) (T, error) {
	return p.CallWith(nil, args...)
}

// CallWith is [Pack.Call] with keyword arguments. Placeholder values in kwargs are
// replaced the same way as positional placeholders.
func (p Pack[T]) CallWith(kwargs map[string]any, args ...any) (T, error) {
	var zero T
	if !slices.ContainsFunc(args, IsPlaceholder) && !containsPlaceholder(kwargs) {
		return zero, fmt.Errorf("call: %w", ErrNoPlaceholder)
	}
	if len(p.items) == 0 {
		return zero, fmt.Errorf("call: %w", ErrEmptyPack)
	}

	caller, ok := p.Algebra().(Caller[T])
	if !ok {
		return zero, fmt.Errorf("call: %w", ErrNotCallable)
	}

	acc := p.items[0]
	for _, item := range p.items[1:] {
		var err error
		acc, err = caller.Call(acc, substitute(args, item), substituteMap(kwargs, item))
		if err != nil {
			return zero, err
		}
	}
	return acc, nil
}

func containsPlaceholder(kwargs map[string]any) bool {
	for _, v := range kwargs {
		if IsPlaceholder(v) {
			return true
		}
	}
	return false
}

func substitute[T any](args []any, item T) []any {
	out := slices.Clone(args)
	for i, arg := range out {
		if IsPlaceholder(arg) {
			out[i] = item
		}
	}
	return out
}

func substituteMap[T any](kwargs map[string]any, item T) map[string]any {
	if kwargs == nil {
		return nil
	}
	out := maps.Clone(kwargs)
	for k, v := range out {
		if IsPlaceholder(v) {
			out[k] = item
		}
	}
	return out
}
