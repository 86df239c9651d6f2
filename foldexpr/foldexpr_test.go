package foldexpr

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.gopad.dev/go-parameterpack/pack"
)

type result struct {
	Name  string
	Kind  Kind
	Value int
	Holds bool
}

func newEnv(t *testing.T) Env[int] {
	document, err := os.ReadFile("../testdata/env.json")
	require.NoError(t, err)

	env, err := ParseEnv[int](context.Background(), pack.Integers[int]{}, IntLiteral[int], document)
	require.NoError(t, err)

	return env
}

func newConfiguration(t *testing.T) Configuration {
	cfg, err := DefaultConfiguration()
	require.NoError(t, err)
	t.Cleanup(cfg.Query.Close)

	return *cfg
}

func evaluate[T any](t *testing.T, options *Options, env Env[T], source string) ([]Fold[T], error) {
	evaluator := New[T](options)
	defer evaluator.Close()

	folds, err := evaluator.Folds(context.Background(), newConfiguration(t), env, []byte(source))
	require.NoError(t, err)

	var all []Fold[T]
	for fold, err := range folds {
		if err != nil {
			return all, err
		}
		all = append(all, fold)
	}
	return all, nil
}

func inFunc(statements ...string) string {
	return "package p\n\nfunc f() {\n\t" + strings.Join(statements, "\n\t") + "\n}\n"
}

func results(folds []Fold[int]) []result {
	all := make([]result, 0, len(folds))
	for _, fold := range folds {
		all = append(all, result{
			Name:  fold.Name,
			Kind:  fold.Kind,
			Value: fold.Value,
			Holds: fold.Holds,
		})
	}
	return all
}

func TestEvaluator_Folds(t *testing.T) {
	source, err := os.ReadFile("../testdata/folds.go")
	require.NoError(t, err)

	folds, err := evaluate(t, nil, newEnv(t), string(source))
	require.NoError(t, err)

	assert.Equal(t, []result{
		{Name: "sum", Kind: KindValue, Value: 112},
		{Name: "diff", Kind: KindValue, Value: 88},
		{Name: "rdiff", Kind: KindValue, Value: 92},
		{Name: "quot", Kind: KindValue, Value: 5},
		{Name: "rquot", Kind: KindValue, Value: 20},
		{Name: "bits", Kind: KindValue, Value: 7},
		{Name: "ascending", Kind: KindTruth, Holds: true},
		{Name: "descending", Kind: KindTruth, Holds: true},
		{Name: "same", Kind: KindTruth, Holds: true},
		{Name: "distinct", Kind: KindTruth, Holds: true},
		{Name: "repeats", Kind: KindTruth, Holds: false},
		{Name: "", Kind: KindTruth, Holds: false},
		{Name: "total", Kind: KindValue, Value: 24},
	}, results(folds))

	first := folds[0]
	assert.Equal(t, "xs + _", first.Expr)
	assert.Equal(t, uint(3), first.Range.StartPoint.Row)
}

func TestEvaluator_FoldsStop(t *testing.T) {
	evaluator := New[int](nil)
	defer evaluator.Close()

	source := inFunc("a := xs + _", "b := xs - _")
	folds, err := evaluator.Folds(context.Background(), newConfiguration(t), newEnv(t), []byte(source))
	require.NoError(t, err)

	var names []string
	for fold, err := range folds {
		require.NoError(t, err)
		names = append(names, fold.Name)
		break
	}
	assert.Equal(t, []string{"a"}, names)
}

func TestEvaluator_FoldsTwice(t *testing.T) {
	evaluator := New[int](nil)
	defer evaluator.Close()

	folds, err := evaluator.Folds(context.Background(), newConfiguration(t), newEnv(t), []byte(inFunc("a := xs + _")))
	require.NoError(t, err)

	var names []string
	for fold, err := range folds {
		require.NoError(t, err)
		names = append(names, fold.Name)
	}
	assert.Equal(t, []string{"a"}, names)

	var errs []error
	for _, err := range folds {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], ErrIterated)
}

func TestEvaluator_FoldsCall(t *testing.T) {
	var trace []int
	alg := pack.Funcs[int]{
		Invoke: func(fn int, args []any, _ map[string]any) (int, error) {
			trace = append(trace, fn)
			for _, arg := range args {
				fn += arg.(int)
			}
			return fn, nil
		},
	}
	env := Env[int]{
		Packs:   map[string]pack.Pack[int]{"fs": pack.New[int](alg, 1, 2, 3)},
		Literal: IntLiteral[int],
	}

	folds, err := evaluate(t, nil, env, inFunc("called := fs(10, _)"))
	require.NoError(t, err)

	assert.Equal(t, []result{{Name: "called", Kind: KindValue, Value: 26}}, results(folds))
	assert.Equal(t, []int{1, 13}, trace)
}

func TestEvaluator_FoldsStrings(t *testing.T) {
	alg := pack.Funcs[string]{
		Ops: map[pack.Op]func(x string, y string) (string, error){
			pack.Add: func(x string, y string) (string, error) { return x + y, nil },
		},
		Cmp: strings.Compare,
	}
	literal := func(kind LiteralKind, text string) (string, error) {
		return text, nil
	}
	env, err := ParseEnv[string](context.Background(), alg, literal, []byte(`{"names": ["a", "b!"], "sep": "-"}`))
	require.NoError(t, err)

	folds, err := evaluate(t, nil, env, inFunc(
		"joined := names + _",
		`last := (names != _) != "b!"`,
		"other := (names != _) != sep",
	))
	require.NoError(t, err)

	require.Len(t, folds, 3)
	assert.Equal(t, "ab!", folds[0].Value)
	assert.False(t, folds[1].Holds)
	assert.True(t, folds[2].Holds)
}

func TestEvaluator_FoldsPlaceholder(t *testing.T) {
	folds, err := evaluate(t, &Options{Placeholder: "__"}, newEnv(t), inFunc(
		"x := xs + __",
		"y := xs + _",
	))
	require.NoError(t, err)

	assert.Equal(t, []result{{Name: "x", Kind: KindValue, Value: 112}}, results(folds))
}

func TestEvaluator_FoldsErrors(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		err       error
	}{
		{name: "unbound", statement: "x := ws + _", err: ErrUnboundIdentifier},
		{name: "and not", statement: "x := xs &^ _", err: ErrUnsupportedOperator},
		{name: "logical", statement: "x := xs && _", err: ErrUnsupportedOperator},
		{name: "bare placeholder", statement: "x := _", err: ErrUnsupportedExpression},
		{name: "parenthesized placeholder", statement: "x := (_)", err: ErrUnsupportedExpression},
		{name: "index", statement: "x := xs[0] + _", err: ErrUnsupportedExpression},
		{name: "nested", statement: "x := xs + _ + _", err: pack.ErrNotPack},
		{name: "value", statement: "x := limit * _", err: pack.ErrNotPack},
		{name: "call value", statement: "x := limit(_)", err: pack.ErrNotPack},
		{name: "not callable", statement: "x := xs(_)", err: pack.ErrNotCallable},
		{name: "division by zero", statement: "x := _ / zeros", err: pack.ErrDivisionByZero},
		{name: "no placeholder", statement: "x := xs * _ * 2", err: pack.ErrNoPlaceholder},
		{name: "fold result operand", statement: "x := xs + _ + 1", err: pack.ErrNoPlaceholder},
	}

	env := newEnv(t)
	env.Packs["zeros"] = pack.New[int](pack.Integers[int]{}, 1, 0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluate(t, nil, env, inFunc(tt.statement))
			require.ErrorIs(t, err, tt.err)

			var evalErr *EvalError
			require.ErrorAs(t, err, &evalErr)
		})
	}
}

func TestEvaluator_FoldsNoLiterals(t *testing.T) {
	env := newEnv(t)
	env.Literal = nil

	_, err := evaluate(t, nil, env, inFunc("x := (xs != _) != 3"))
	require.ErrorIs(t, err, ErrUnsupportedExpression)
}

func TestEvalError(t *testing.T) {
	_, err := evaluate(t, nil, newEnv(t), inFunc("x := ws + _"))
	require.EqualError(t, err, "4:7: ws: unbound identifier: ws")
}

func TestEvaluator_FoldsCanceled(t *testing.T) {
	evaluator := New[int](nil)
	defer evaluator.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	folds, err := evaluator.Folds(ctx, newConfiguration(t), newEnv(t), []byte(inFunc("x := xs + _")))
	if err == nil {
		for _, iterErr := range folds {
			err = iterErr
			break
		}
	}
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewConfiguration(t *testing.T) {
	cfg := newConfiguration(t)

	_, err := NewConfiguration(cfg.Language, []byte("(expression_statement (_) @expr)"))
	require.Error(t, err)

	_, err = NewConfiguration(cfg.Language, []byte("(expression_statement"))
	require.Error(t, err)

	custom, err := NewConfiguration(cfg.Language, []byte("(return_statement (expression_list (_) @fold))"))
	require.NoError(t, err)
	defer custom.Query.Close()

	evaluator := New[int](nil)
	defer evaluator.Close()

	source := "package p\n\nfunc f() int {\n\tx := xs + _\n\treturn _ - xs\n}\n"
	folds, err := evaluator.Folds(context.Background(), *custom, newEnv(t), []byte(source))
	require.NoError(t, err)

	var all []Fold[int]
	for fold, err := range folds {
		require.NoError(t, err)
		all = append(all, fold)
	}
	assert.Equal(t, []result{{Kind: KindValue, Value: 92}}, results(all))
}
