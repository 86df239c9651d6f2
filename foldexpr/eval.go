package foldexpr

import (
	"fmt"
	"strconv"

	"github.com/tree-sitter/go-tree-sitter"

	"go.gopad.dev/go-parameterpack/pack"
)

type valueKind int

const (
	valuePlaceholder valueKind = iota
	valuePack
	valueScalar
	valueChain
)

type value[T any] struct {
	kind   valueKind
	pack   pack.Pack[T]
	scalar T
	chain  pack.Chain[T]
}

// operand returns v in the form [pack.Binary], [pack.Relate] and [pack.Pack.Call] expect.
func (v value[T]) operand() any {
	switch v.kind {
	case valuePlaceholder:
		return pack.Ellipsis
	case valuePack:
		return v.pack
	case valueChain:
		return v.chain
	}
	return v.scalar
}

type evaluation[T any] struct {
	Source      []byte
	Env         Env[T]
	Placeholder string
}

func (e evaluation[T]) mentionsPlaceholder(node *tree_sitter.Node) bool {
	if isIdentifier(node) {
		return node.Utf8Text(e.Source) == e.Placeholder
	}
	for i := range node.NamedChildCount() {
		if e.mentionsPlaceholder(node.NamedChild(i)) {
			return true
		}
	}
	return false
}

// isIdentifier reports whether node is an identifier, `_` may be lexed as blank_identifier.
func isIdentifier(node *tree_sitter.Node) bool {
	return node.Kind() == "identifier" || node.Kind() == "blank_identifier"
}

func (e evaluation[T]) fold(node *tree_sitter.Node) (*Fold[T], error) {
	v, err := e.eval(node)
	if err != nil {
		return nil, err
	}

	fold := &Fold[T]{
		Expr:  node.Utf8Text(e.Source),
		Range: node.Range(),
	}
	switch v.kind {
	case valueScalar:
		fold.Kind = KindValue
		fold.Value = v.scalar
	case valueChain:
		holds, err := v.chain.Holds()
		if err != nil {
			return nil, newEvalError(node, e.Source, err)
		}
		fold.Kind = KindTruth
		fold.Holds = holds
	default:
		return nil, newEvalError(node, e.Source, fmt.Errorf("%w: not a fold", ErrUnsupportedExpression))
	}
	return fold, nil
}

func (e evaluation[T]) eval(node *tree_sitter.Node) (value[T], error) {
	var (
		v   value[T]
		err error
	)
	switch node.Kind() {
	case "identifier", "blank_identifier":
		v, err = e.identifier(node)
	case "parenthesized_expression":
		inner := node.NamedChild(0)
		if inner == nil {
			return v, newEvalError(node, e.Source, ErrSyntax)
		}
		return e.eval(inner)
	case "binary_expression":
		v, err = e.binary(node)
	case "call_expression":
		v, err = e.call(node)
	default:
		kind, ok := literalKinds[node.Kind()]
		if !ok {
			return v, newEvalError(node, e.Source, fmt.Errorf("%w: %s", ErrUnsupportedExpression, node.Kind()))
		}
		v.kind = valueScalar
		v.scalar, err = e.literal(kind, node)
	}
	if err != nil {
		return v, newEvalError(node, e.Source, err)
	}
	return v, nil
}

func (e evaluation[T]) identifier(node *tree_sitter.Node) (value[T], error) {
	name := node.Utf8Text(e.Source)
	if name == e.Placeholder {
		return value[T]{kind: valuePlaceholder}, nil
	}
	if p, ok := e.Env.Packs[name]; ok {
		return value[T]{kind: valuePack, pack: p}, nil
	}
	if s, ok := e.Env.Values[name]; ok {
		return value[T]{kind: valueScalar, scalar: s}, nil
	}
	return value[T]{}, fmt.Errorf("%w: %s", ErrUnboundIdentifier, name)
}

func (e evaluation[T]) literal(kind LiteralKind, node *tree_sitter.Node) (T, error) {
	var zero T
	if e.Env.Literal == nil {
		return zero, fmt.Errorf("%w: %s literal", ErrUnsupportedExpression, kind)
	}

	text := node.Utf8Text(e.Source)
	if kind == LiteralString {
		var err error
		text, err = strconv.Unquote(text)
		if err != nil {
			return zero, err
		}
	}
	return e.Env.Literal(kind, text)
}

func (e evaluation[T]) binary(node *tree_sitter.Node) (value[T], error) {
	left, err := e.eval(node.ChildByFieldName("left"))
	if err != nil {
		return value[T]{}, err
	}
	right, err := e.eval(node.ChildByFieldName("right"))
	if err != nil {
		return value[T]{}, err
	}

	operator := node.ChildByFieldName("operator").Utf8Text(e.Source)
	if rel, ok := pack.ParseRel(operator); ok {
		// (xs < _) < y extends the chain by y, only in the direction it was written
		if left.kind == valueChain && right.kind == valueScalar && left.chain.Rel() == rel {
			return value[T]{kind: valueChain, chain: left.chain.Then(right.scalar)}, nil
		}

		chain, err := pack.Relate[T](rel, left.operand(), right.operand())
		if err != nil {
			return value[T]{}, err
		}
		return value[T]{kind: valueChain, chain: chain}, nil
	}

	op, ok := pack.ParseOp(operator)
	if !ok {
		return value[T]{}, fmt.Errorf("%w: %s", ErrUnsupportedOperator, operator)
	}
	result, err := pack.Binary[T](op, left.operand(), right.operand())
	if err != nil {
		return value[T]{}, err
	}
	return value[T]{kind: valueScalar, scalar: result}, nil
}

func (e evaluation[T]) call(node *tree_sitter.Node) (value[T], error) {
	callee, err := e.eval(node.ChildByFieldName("function"))
	if err != nil {
		return value[T]{}, err
	}
	if callee.kind != valuePack {
		return value[T]{}, pack.ErrNotPack
	}

	arguments := node.ChildByFieldName("arguments")
	args := make([]any, 0, arguments.NamedChildCount())
	for i := range arguments.NamedChildCount() {
		arg := arguments.NamedChild(i)
		if arg.Kind() == "variadic_argument" {
			return value[T]{}, newEvalError(arg, e.Source, fmt.Errorf("%w: variadic argument", ErrUnsupportedExpression))
		}
		v, err := e.eval(arg)
		if err != nil {
			return value[T]{}, err
		}
		args = append(args, v.operand())
	}

	result, err := callee.pack.Call(args...)
	if err != nil {
		return value[T]{}, err
	}
	return value[T]{kind: valueScalar, scalar: result}, nil
}
