package pack

// Placeholder marks the operand a [Pack] folds across. It has no state;
// a value is the placeholder if and only if its dynamic type is Placeholder.
type Placeholder struct{}

// Ellipsis is the placeholder value.
var Ellipsis = Placeholder{}

func (Placeholder) String() string {
	return "..."
}

// IsPlaceholder reports whether v is the placeholder.
func IsPlaceholder(v any) bool {
	_, ok := v.(Placeholder)
	return ok
}
