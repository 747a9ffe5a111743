package dashboard

// State is the outcome class of a load or submit.
type State int

const (
	StateOK State = iota
	StateEmpty
	StateError
)

// Result is what a section load hands to its renderer.
type Result[T any] struct {
	State   State
	Value   T
	Message string
}

func Ok[T any](v T) Result[T] {
	return Result[T]{State: StateOK, Value: v}
}

func Empty[T any]() Result[T] {
	return Result[T]{State: StateEmpty}
}

func Failed[T any](msg string) Result[T] {
	return Result[T]{State: StateError, Message: msg}
}

// FromList is empty for a zero-length slice.
func FromList[T any](items []T) Result[[]T] {
	if len(items) == 0 {
		return Empty[[]T]()
	}
	return Ok(items)
}

// FromPtr is empty for nil.
func FromPtr[T any](p *T) Result[T] {
	if p == nil {
		return Empty[T]()
	}
	return Ok(*p)
}

// Render turns a result into section text. It is pure in r.
func Render[T any](r Result[T], empty string, render func(T) string) string {
	switch r.State {
	case StateOK:
		return render(r.Value)
	case StateError:
		return r.Message + "\n"
	default:
		return empty + "\n"
	}
}
