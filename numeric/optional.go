package numeric

// Optional holds a value that may not be defined yet. A zero Optional is
// undefined, so a genuine zero value is never mistaken for "unset".
type Optional[T any] struct {
	value   T
	defined bool
}

// Some returns a defined Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, defined: true}
}

// None returns an undefined Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsDefined tells if the value is set.
func (o Optional[T]) IsDefined() bool {
	return o.defined
}

// Get returns the value and whether it is defined.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.defined
}

// Or returns the value if it is defined, otherwise fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.defined {
		return o.value
	}

	return fallback
}
