package foldexpr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/tree-sitter/go-tree-sitter"
	"github.com/tree-sitter/tree-sitter-json/bindings/go"
	"golang.org/x/exp/constraints"

	"go.gopad.dev/go-parameterpack/pack"
)

// LiteralKind is the kind of literal passed to a [Literal].
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralBool
	LiteralNull
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralInt:
		return "int"
	case LiteralFloat:
		return "float"
	case LiteralString:
		return "string"
	case LiteralBool:
		return "bool"
	case LiteralNull:
		return "null"
	}
	return "unknown"
}

// literalKinds maps Go and JSON node kinds to literal kinds.
var literalKinds = map[string]LiteralKind{
	"int_literal":                LiteralInt,
	"float_literal":              LiteralFloat,
	"interpreted_string_literal": LiteralString,
	"raw_string_literal":         LiteralString,
	"true":                       LiteralBool,
	"false":                      LiteralBool,
	"nil":                        LiteralNull,
}

// IntLiteral decodes integer literals in any base Go accepts, including `_` separators.
// Literals that do not fit T are a [strconv.ErrRange] error.
func IntLiteral[T constraints.Integer](kind LiteralKind, text string) (T, error) {
	if kind != LiteralInt {
		return 0, fmt.Errorf("%w: %s literal", ErrUnsupportedExpression, kind)
	}

	bits := reflect.TypeFor[T]().Bits()
	if ^T(0) < 0 {
		i, err := strconv.ParseInt(text, 0, bits)
		if err != nil {
			return 0, err
		}
		return T(i), nil
	}
	u, err := strconv.ParseUint(text, 0, bits)
	if err != nil {
		return 0, err
	}
	return T(u), nil
}

// FloatLiteral decodes integer and floating point literals.
func FloatLiteral[T constraints.Float](kind LiteralKind, text string) (T, error) {
	switch kind {
	case LiteralInt:
		i, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return 0, err
		}
		return T(i), nil
	case LiteralFloat:
		f, err := strconv.ParseFloat(text, reflect.TypeFor[T]().Bits())
		if err != nil {
			return 0, err
		}
		return T(f), nil
	}
	return 0, fmt.Errorf("%w: %s literal", ErrUnsupportedExpression, kind)
}

// ParseEnv builds an [Env] from a JSON object. Arrays become packs with the given algebra,
// every other member becomes a value. Members are decoded with literal, which is also
// used for the literals in fold expressions.
//
//	{"xs": [1, 2, 3], "limit": 10}
func ParseEnv[T any](ctx context.Context, alg pack.Algebra[T], literal Literal[T], document []byte) (Env[T], error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(tree_sitter.NewLanguage(tree_sitter_json.Language())); err != nil {
		return Env[T]{}, err
	}

	tree := parser.ParseCtx(ctx, document, nil)
	if tree == nil {
		if ctx.Err() != nil {
			return Env[T]{}, ctx.Err()
		}
		return Env[T]{}, errors.New("error parsing env")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return Env[T]{}, newEvalError(&root, document, ErrSyntax)
	}

	object := root.NamedChild(0)
	if object == nil || object.Kind() != "object" {
		return Env[T]{}, newEvalError(&root, document, fmt.Errorf("%w: env must be an object", ErrUnsupportedExpression))
	}

	d := envDecoder[T]{
		document: document,
		literal:  literal,
	}
	env := Env[T]{
		Packs:   map[string]pack.Pack[T]{},
		Values:  map[string]T{},
		Literal: literal,
	}
	for i := range object.NamedChildCount() {
		pair := object.NamedChild(i)
		if pair.Kind() != "pair" {
			continue
		}

		key, err := d.string(pair.ChildByFieldName("key"))
		if err != nil {
			return Env[T]{}, err
		}

		node := pair.ChildByFieldName("value")
		if node.Kind() != "array" {
			v, err := d.scalar(node)
			if err != nil {
				return Env[T]{}, err
			}
			env.Values[key] = v
			continue
		}

		items := make([]T, 0, node.NamedChildCount())
		for j := range node.NamedChildCount() {
			item := node.NamedChild(j)
			if item.Kind() == "comment" {
				continue
			}
			v, err := d.scalar(item)
			if err != nil {
				return Env[T]{}, err
			}
			items = append(items, v)
		}
		env.Packs[key] = pack.New(alg, items...)
	}

	return env, nil
}

type envDecoder[T any] struct {
	document []byte
	literal  Literal[T]
}

func (d envDecoder[T]) string(node *tree_sitter.Node) (string, error) {
	var s string
	if err := json.Unmarshal([]byte(node.Utf8Text(d.document)), &s); err != nil {
		return "", newEvalError(node, d.document, err)
	}
	return s, nil
}

func (d envDecoder[T]) scalar(node *tree_sitter.Node) (T, error) {
	var zero T
	if d.literal == nil {
		return zero, newEvalError(node, d.document, fmt.Errorf("%w: no literal decoder", ErrUnsupportedExpression))
	}

	text := node.Utf8Text(d.document)
	var kind LiteralKind
	switch node.Kind() {
	case "number":
		kind = LiteralInt
		if strings.ContainsAny(text, ".eE") {
			kind = LiteralFloat
		}
	case "string":
		s, err := d.string(node)
		if err != nil {
			return zero, err
		}
		kind, text = LiteralString, s
	case "true", "false":
		kind = LiteralBool
	case "null":
		kind = LiteralNull
	default:
		return zero, newEvalError(node, d.document, fmt.Errorf("%w: %s", ErrUnsupportedExpression, node.Kind()))
	}

	v, err := d.literal(kind, text)
	if err != nil {
		return zero, newEvalError(node, d.document, err)
	}
	return v, nil
}
