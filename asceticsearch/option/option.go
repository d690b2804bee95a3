package option

import "fmt"

// Option holds either a value (Some) or nothing at all (Nothing).
// The zero Option is Nothing.
type Option[T any] struct {
	val   T
	valid bool
}

// Some wraps val.
func Some[T any](val T) Option[T] {
	return Option[T]{val: val, valid: true}
}

// Nothing returns an empty Option.
func Nothing[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.valid
}

func (o Option[T]) IsNothing() bool {
	return !o.valid
}

// Unwrap returns the wrapped value and panics on Nothing.
func (o Option[T]) Unwrap() T {
	if !o.valid {
		panic("called Unwrap on a Nothing Option")
	}
	return o.val
}

func (o Option[T]) String() string {
	if o.valid {
		return fmt.Sprintf("Some(%v)", o.val)
	}
	return "Nothing"
}
