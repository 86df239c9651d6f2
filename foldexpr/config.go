package foldexpr

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/tree-sitter/go-tree-sitter"
	"github.com/tree-sitter/tree-sitter-go/bindings/go"
)

const (
	captureFold     = "fold"
	captureFoldName = "fold.name"
)

//go:embed queries/go.scm
var goFoldsQuery []byte

// DefaultConfiguration returns the configuration for fold expressions written in Go syntax:
// expression statements, `name := expr` and `name = expr`.
func DefaultConfiguration() (*Configuration, error) {
	language := tree_sitter.NewLanguage(tree_sitter_go.Language())
	return NewConfiguration(language, goFoldsQuery)
}

// NewConfiguration creates a configuration from a [tree_sitter.Language] and a query.
// The query must capture the expressions to evaluate as @fold, and may capture the
// identifier a result is assigned to as @fold.name.
func NewConfiguration(language *tree_sitter.Language, foldsQuery []byte) (*Configuration, error) {
	query, err := tree_sitter.NewQuery(language, string(foldsQuery))
	if err != nil {
		return nil, fmt.Errorf("error creating query: %w", err)
	}

	var (
		foldCaptureIndex     *uint
		foldNameCaptureIndex *uint
	)
	for i, captureName := range query.CaptureNames() {
		ui := uint(i)
		switch captureName {
		case captureFold:
			foldCaptureIndex = &ui
		case captureFoldName:
			foldNameCaptureIndex = &ui
		}
	}
	if foldCaptureIndex == nil {
		query.Close()
		return nil, errors.New("error creating query: no @fold capture")
	}

	return &Configuration{
		Language:             language,
		Query:                query,
		foldCaptureIndex:     *foldCaptureIndex,
		foldNameCaptureIndex: foldNameCaptureIndex,
	}, nil
}

type Configuration struct {
	Language             *tree_sitter.Language
	Query                *tree_sitter.Query
	foldCaptureIndex     uint
	foldNameCaptureIndex *uint
}
