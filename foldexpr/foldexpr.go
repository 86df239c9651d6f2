// Package foldexpr finds fold expressions in source code and evaluates them against named packs.
//
// A fold expression is written with an identifier standing in for the placeholder, `_` by default:
//
//	total := xs + _          // xs.Fold(pack.Add)
//	_ - xs                   // xs.FoldRight(pack.Sub)
//	sorted := xs <= _        // xs.Compare(pack.LessEqual)
//	(xs != _) != 3           // xs.Compare(pack.NotEqual).Then(3)
//	xs(12, _, 15)            // xs.Call(12, pack.Ellipsis, 15)
//
// Expressions that do not mention the placeholder are skipped. The result of a fold can not
// be an operand of a further operator: `xs + _ + 1` is `(xs + _) + 1`, which has no
// placeholder and fails with [pack.ErrNoPlaceholder]. Only comparison chains extend,
// `(xs != _) != 3` compares the last element with 3.
package foldexpr

import (
	"context"
	"errors"
	"iter"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tree-sitter/go-tree-sitter"

	"go.gopad.dev/go-parameterpack/internal/peekiter"
	"go.gopad.dev/go-parameterpack/pack"
)

// Kind tells which field of a [Fold] holds its result.
type Kind int

const (
	// KindValue is the result of an arithmetic, bitwise, shift or call fold, see [Fold.Value].
	KindValue Kind = iota
	// KindTruth is the result of a chained comparison, see [Fold.Holds].
	KindTruth
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindTruth:
		return "truth"
	}
	return "unknown"
}

// Fold is an evaluated fold expression.
type Fold[T any] struct {
	// Name is the identifier the result is assigned to, if any.
	Name  string
	Expr  string
	Range tree_sitter.Range
	Kind  Kind
	Value T
	Holds bool
}

// Literal decodes a literal into an element value. Text is the literal as written,
// except for strings which are unquoted.
type Literal[T any] func(kind LiteralKind, text string) (T, error)

// Env binds the identifiers a fold expression may use.
type Env[T any] struct {
	Packs  map[string]pack.Pack[T]
	Values map[string]T
	// Literal decodes literals. If nil, literals are not supported.
	Literal Literal[T]
}

// Options configure an [Evaluator].
type Options struct {
	// Placeholder is the identifier that stands for the placeholder.
	Placeholder string
	Logger      *log.Logger
}

func defaultOptions() Options {
	return Options{
		Placeholder: "_",
		Logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "foldexpr",
		}),
	}
}

// New returns a new evaluator. Zero fields of options fall back to the defaults.
// The evaluator is not thread-safe, but it can be reused to evaluate multiple sources.
func New[T any](options *Options) *Evaluator[T] {
	opts := defaultOptions()
	if options != nil {
		if options.Placeholder != "" {
			opts.Placeholder = options.Placeholder
		}
		if options.Logger != nil {
			opts.Logger = options.Logger
		}
	}

	return &Evaluator[T]{
		Parser:  tree_sitter.NewParser(),
		cursor:  tree_sitter.NewQueryCursor(),
		options: opts,
	}
}

type Evaluator[T any] struct {
	Parser  *tree_sitter.Parser
	cursor  *tree_sitter.QueryCursor
	options Options
}

// Close releases the parser and query cursor.
func (e *Evaluator[T]) Close() {
	e.cursor.Close()
	e.Parser.Close()
}

// Folds evaluates the fold expressions cfg captures in source, in source order.
// Evaluation stops at the first error, which is yielded as an [*EvalError] unless the context is done.
// The sequence can be ranged once, later ranges yield [ErrIterated].
func (e *Evaluator[T]) Folds(ctx context.Context, cfg Configuration, env Env[T], source []byte) (iter.Seq2[Fold[T], error], error) {
	err := e.Parser.SetLanguage(cfg.Language)
	if err != nil {
		return nil, err
	}

	e.Parser.Reset()
	tree := e.Parser.ParseCtx(ctx, source, nil)
	if tree == nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.New("error parsing source")
	}

	captures := peekiter.NewQueryCaptures(e.cursor.Captures(cfg.Query, tree.RootNode(), source))

	i := iterator[T]{
		Ctx:      ctx,
		Source:   source,
		Captures: captures,
		Cfg:      cfg,
		Eval: evaluation[T]{
			Source:      source,
			Env:         env,
			Placeholder: e.options.Placeholder,
		},
	}

	var ranged bool
	return func(yield func(Fold[T], error) bool) {
		// the tree is released after the first range
		if ranged {
			yield(Fold[T]{}, ErrIterated)
			return
		}
		ranged = true
		defer tree.Close()
		for {
			fold, err := i.next()
			if err != nil {
				yield(Fold[T]{}, err)
				return
			}

			if fold == nil {
				return
			}

			e.options.Logger.Debug("found fold", "name", fold.Name, "expr", fold.Expr, "kind", fold.Kind, "row", fold.Range.StartPoint.Row)
			if !yield(*fold, nil) {
				return
			}
		}
	}, nil
}
