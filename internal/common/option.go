package common

// Option holds either a value or nothing. The zero value is None.
//
// It keeps "absent by design" visible at the type level where a nil pointer
// or an empty string would be ambiguous.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the held value or fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}

	return fallback
}

// Or returns o if it holds a value, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.ok {
		return o
	}

	return other
}

// Match calls some with the held value, or none when empty.
func Match[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.ok {
		return some(o.value)
	}

	return none()
}

// FromString returns Some(s) for a non-empty s and None otherwise.
func FromString(s string) Option[string] {
	if s == "" {
		return None[string]()
	}

	return Some(s)
}
