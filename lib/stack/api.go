package stack

import (
	"errors"

	"github.com/Cloud-Foundations/containers/lib/log"
)

var (
	// ErrEmpty is returned by Pop and Top when the stack has no values.
	ErrEmpty = errors.New("stack is empty")

	// ErrFull is returned by Push when a bounded stack is at capacity.
	ErrFull = errors.New("stack is full")
)

// LengthRecorder is called with the new length of the stack whenever the
// length changes.
type LengthRecorder func(uint)

// Stack is a last-in first-out collection of values backed by a slice. It is
// not safe for concurrent use.
type Stack[T any] struct {
	capacity       uint
	lengthRecorder LengthRecorder
	values         []T
}

// New creates an empty stack. If capacity is non-zero the stack will hold at
// most capacity values, else it grows as needed. If lengthRecorder is not nil,
// it will be called to record the length of the stack whenever it changes.
func New[T any](capacity uint, lengthRecorder LengthRecorder) *Stack[T] {
	return newStack[T](capacity, lengthRecorder)
}

// Capacity returns the maximum number of values the stack may hold, or 0 if it
// is unbounded.
func (s *Stack[T]) Capacity() uint {
	return s.capacity
}

// Clear removes all values.
func (s *Stack[T]) Clear() {
	s.clear()
}

// IsEmpty returns true if the stack has no values.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.values) == 0
}

// Length returns the number of values on the stack.
func (s *Stack[T]) Length() uint {
	return uint(len(s.values))
}

// Pop removes and returns the value on the top of the stack.
func (s *Stack[T]) Pop() (T, error) {
	return s.pop()
}

// Print will log the values on the stack, from bottom to top, and the length.
func (s *Stack[T]) Print(logger log.Logger) {
	logger.Printf("%v length=%d\n", s.values, len(s.values))
}

// Push places value on the top of the stack. ErrFull is returned if the stack
// is bounded and already holds Capacity values.
func (s *Stack[T]) Push(value T) error {
	return s.push(value)
}

// Top returns the value on the top of the stack without removing it.
func (s *Stack[T]) Top() (T, error) {
	return s.top()
}

// Values returns a copy of the values on the stack, from bottom to top.
func (s *Stack[T]) Values() []T {
	return append([]T(nil), s.values...)
}
