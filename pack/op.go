package pack

import (
	"fmt"
)

// Op is a binary operator a [Pack] can fold with.
type Op uint8

const (
	Add Op = iota
	Sub
	Mul
	MatMul
	TrueDiv
	FloorDiv
	Mod
	And
	Or
	Xor
	LShift
	RShift
)

var opSymbols = [...]string{
	Add:      "+",
	Sub:      "-",
	Mul:      "*",
	MatMul:   "@",
	TrueDiv:  "/",
	FloorDiv: "//",
	Mod:      "%",
	And:      "&",
	Or:       "|",
	Xor:      "^",
	LShift:   "<<",
	RShift:   ">>",
}

// Ops lists every [Op] in declaration order.
var Ops = []Op{Add, Sub, Mul, MatMul, TrueDiv, FloorDiv, Mod, And, Or, Xor, LShift, RShift}

func (o Op) String() string {
	if int(o) < len(opSymbols) {
		return opSymbols[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// ParseOp returns the [Op] written as symbol, e.g. "+" or "<<".
func ParseOp(symbol string) (Op, bool) {
	for i, s := range opSymbols {
		if s == symbol {
			return Op(i), true
		}
	}
	return 0, false
}

// Rel is a relational operator used by chained comparison folds.
type Rel uint8

const (
	Less Rel = iota
	LessEqual
	Greater
	GreaterEqual
	Equal
	NotEqual
)

var relSymbols = [...]string{
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	Equal:        "==",
	NotEqual:     "!=",
}

// Rels lists every [Rel] in declaration order.
var Rels = []Rel{Less, LessEqual, Greater, GreaterEqual, Equal, NotEqual}

func (r Rel) String() string {
	if int(r) < len(relSymbols) {
		return relSymbols[r]
	}
	return fmt.Sprintf("Rel(%d)", uint8(r))
}

// ParseRel returns the [Rel] written as symbol, e.g. "<=" or "!=".
func ParseRel(symbol string) (Rel, bool) {
	for i, s := range relSymbols {
		if s == symbol {
			return Rel(i), true
		}
	}
	return 0, false
}

// Reflect returns the relation that holds for (y, x) whenever r holds for (x, y).
// A placeholder on the left of a relation compares the pack with the reflected relation.
func (r Rel) Reflect() Rel {
	switch r {
	case Less:
		return Greater
	case LessEqual:
		return GreaterEqual
	case Greater:
		return Less
	case GreaterEqual:
		return LessEqual
	}
	return r
}

func (r Rel) valid() bool {
	return int(r) < len(relSymbols)
}

// holds reports whether a three-way comparison result c satisfies r.
func (r Rel) holds(c int) bool {
	switch r {
	case Less:
		return c < 0
	case LessEqual:
		return c <= 0
	case Greater:
		return c > 0
	case GreaterEqual:
		return c >= 0
	case Equal:
		return c == 0
	case NotEqual:
		return c != 0
	}
	return false
}
