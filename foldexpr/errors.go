package foldexpr

import (
	"errors"
	"fmt"

	"github.com/tree-sitter/go-tree-sitter"
)

var (
	ErrUnboundIdentifier     = errors.New("unbound identifier")
	ErrUnsupportedOperator   = errors.New("unsupported operator")
	ErrUnsupportedExpression = errors.New("unsupported expression")
	ErrSyntax                = errors.New("syntax error")
	ErrIterated              = errors.New("folds already iterated")
)

// EvalError reports the expression a fold failed at.
type EvalError struct {
	Range tree_sitter.Range
	Expr  string
	Err   error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Range.StartPoint.Row+1, e.Range.StartPoint.Column+1, e.Expr, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func newEvalError(node *tree_sitter.Node, source []byte, err error) error {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return err
	}
	return &EvalError{
		Range: node.Range(),
		Expr:  node.Utf8Text(source),
		Err:   err,
	}
}
