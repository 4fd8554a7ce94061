package stack

import (
	"fmt"
)

func newStack[T any](capacity uint, lengthRecorder LengthRecorder) *Stack[T] {
	return &Stack[T]{
		capacity:       capacity,
		lengthRecorder: lengthRecorder,
		values:         make([]T, 0, capacity),
	}
}

func (s *Stack[T]) recordLength() {
	if s.lengthRecorder != nil {
		s.lengthRecorder(uint(len(s.values)))
	}
}

func (s *Stack[T]) clear() {
	if len(s.values) < 1 {
		return
	}
	clear(s.values)
	s.values = s.values[:0]
	s.recordLength()
}

func (s *Stack[T]) pop() (T, error) {
	value, err := s.top()
	if err != nil {
		return value, err
	}
	var zero T
	s.values[len(s.values)-1] = zero
	s.values = s.values[:len(s.values)-1]
	s.recordLength()
	return value, nil
}

func (s *Stack[T]) push(value T) error {
	if s.capacity > 0 && uint(len(s.values)) >= s.capacity {
		return fmt.Errorf("%w: capacity: %d", ErrFull, s.capacity)
	}
	s.values = append(s.values, value)
	s.recordLength()
	return nil
}

func (s *Stack[T]) top() (T, error) {
	if len(s.values) < 1 {
		var zero T
		return zero, ErrEmpty
	}
	return s.values[len(s.values)-1], nil
}
