// Package peekiter wraps tree-sitter query iterators with one capture of lookahead.
package peekiter

import (
	"slices"

	"github.com/tree-sitter/go-tree-sitter"
)

// capture is a buffered result of [tree_sitter.QueryCaptures.Next].
type capture struct {
	match tree_sitter.QueryMatch
	index uint
	ok    bool
}

// NewQueryCaptures wraps captures. The wrapper owns captures from now on.
func NewQueryCaptures(captures tree_sitter.QueryCaptures) *QueryCaptures {
	return &QueryCaptures{inner: captures}
}

// QueryCaptures yields the captures of a query in source order and lets the caller
// look at the next capture without consuming it.
type QueryCaptures struct {
	inner    tree_sitter.QueryCaptures
	buffered *capture
}

// pull reads the next capture from the cursor. The cursor reuses the captures slice
// of its match, so it is copied before the match outlives the call.
func (q *QueryCaptures) pull() capture {
	match, index := q.inner.Next()
	if match == nil {
		return capture{index: index}
	}

	c := capture{match: *match, index: index, ok: true}
	c.match.Captures = slices.Clone(match.Captures)
	return c
}

// Next consumes the next capture. The returned index points into match.Captures.
// ok is false once the captures are exhausted.
func (q *QueryCaptures) Next() (match tree_sitter.QueryMatch, index uint, ok bool) {
	if q.buffered != nil {
		c := *q.buffered
		q.buffered = nil
		return c.match, c.index, c.ok
	}
	c := q.pull()
	return c.match, c.index, c.ok
}

// Peek returns the capture the following call to Next will return.
func (q *QueryCaptures) Peek() (match tree_sitter.QueryMatch, index uint, ok bool) {
	if q.buffered == nil {
		c := q.pull()
		q.buffered = &c
	}
	return q.buffered.match, q.buffered.index, q.buffered.ok
}
