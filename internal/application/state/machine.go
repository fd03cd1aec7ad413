package state

// Machine is a state value with a single pending-transition slot.
//
// Set only records the request; Current keeps reporting the old value
// until Apply runs at the tick boundary. The last Set before Apply wins.
type Machine[T comparable] struct {
	current    T
	next       T
	hasPending bool
}

// NewMachine creates a machine starting at initial.
func NewMachine[T comparable](initial T) *Machine[T] {
	return &Machine[T]{current: initial}
}

// Current returns the active value.
func (m *Machine[T]) Current() T {
	return m.current
}

// Set requests a transition to next at the end of the tick.
func (m *Machine[T]) Set(next T) {
	m.next = next
	m.hasPending = true
}

// Pending returns the requested value, if any.
func (m *Machine[T]) Pending() (T, bool) {
	return m.next, m.hasPending
}

// Apply consumes the pending slot. It returns the previous value and
// whether the value changed. Requesting the current value is consumed
// without a change.
func (m *Machine[T]) Apply() (prev T, changed bool) {
	prev = m.current
	if !m.hasPending {
		return prev, false
	}
	m.hasPending = false
	if m.next == m.current {
		return prev, false
	}
	m.current = m.next
	return prev, true
}
