package foldexpr

import (
	"context"

	"github.com/tree-sitter/go-tree-sitter"

	"go.gopad.dev/go-parameterpack/internal/peekiter"
)

type iterator[T any] struct {
	Ctx      context.Context
	Source   []byte
	Captures *peekiter.QueryCaptures
	Cfg      Configuration
	Eval     evaluation[T]
}

func (f *iterator[T]) next() (*Fold[T], error) {
	for {
		// check for cancellation
		select {
		case <-f.Ctx.Done():
			return nil, f.Ctx.Err()
		default:
		}

		match, captureIndex, ok := f.Captures.Next()
		if !ok {
			return nil, nil
		}

		capture := match.Captures[captureIndex]
		if uint(capture.Index) != f.Cfg.foldCaptureIndex {
			continue
		}

		node := capture.Node

		// expressions without the placeholder are not folds
		if !f.Eval.mentionsPlaceholder(&node) {
			continue
		}

		f.skipWithin(&node)

		if node.HasError() {
			return nil, newEvalError(&node, f.Source, ErrSyntax)
		}

		fold, err := f.Eval.fold(&node)
		if err != nil {
			return nil, err
		}

		if f.Cfg.foldNameCaptureIndex != nil {
			for _, c := range match.Captures {
				if uint(c.Index) == *f.Cfg.foldNameCaptureIndex {
					fold.Name = c.Node.Utf8Text(f.Source)
					break
				}
			}
		}

		return fold, nil
	}
}

// skipWithin drops the pending captures inside node, they are part of its fold.
func (f *iterator[T]) skipWithin(node *tree_sitter.Node) {
	for {
		match, captureIndex, ok := f.Captures.Peek()
		if !ok || match.Captures[captureIndex].Node.StartByte() >= node.EndByte() {
			return
		}
		f.Captures.Next()
	}
}
