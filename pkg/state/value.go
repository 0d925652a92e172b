// Package state provides the owned value cell shared by input-like
// components that may be either controlled by their caller or keep their own
// state.
package state

// Value is a value cell that is either uncontrolled (it owns the value) or
// controlled (the caller supplies the value and receives change requests).
type Value[T comparable] struct {
	inner      T
	external   T
	controlled bool
	onChange   func(T)
}

// NewValue creates an uncontrolled cell seeded with defaultValue.
func NewValue[T comparable](defaultValue T, onChange func(T)) *Value[T] {
	return &Value[T]{inner: defaultValue, onChange: onChange}
}

// Control hands ownership to the caller, pinning the value to v.
func (v *Value[T]) Control(value T) {
	v.controlled = true
	v.external = value
}

// Release returns ownership to the cell. The private value is kept as it was
// before the cell became controlled.
func (v *Value[T]) Release() {
	v.controlled = false
}

// Controlled reports whether the caller owns the value.
func (v *Value[T]) Controlled() bool {
	return v.controlled
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	if v.controlled {
		return v.external
	}
	return v.inner
}

// Set requests a new value. Controlled cells only forward the request to the
// change callback; uncontrolled cells store it and notify on change.
func (v *Value[T]) Set(value T) {
	if v.controlled {
		if v.onChange != nil && value != v.external {
			v.onChange(value)
		}
		return
	}
	if value == v.inner {
		return
	}
	v.inner = value
	if v.onChange != nil {
		v.onChange(value)
	}
}

// OnChange replaces the change callback.
func (v *Value[T]) OnChange(fn func(T)) {
	v.onChange = fn
}

// Reset overwrites the uncontrolled value without notifying.
func (v *Value[T]) Reset(value T) {
	v.inner = value
}
