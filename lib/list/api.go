package list

import (
	"errors"
	"iter"

	"github.com/Cloud-Foundations/containers/lib/log"
)

var (
	// ErrEmptyList is returned by operations which require a non-empty list.
	ErrEmptyList = errors.New("list is empty")

	// ErrInvalidHandle is returned when a Handle does not identify a live
	// entry of the list it is passed to: it is the nil Handle, it belongs to
	// another list or its entry has been removed.
	ErrInvalidHandle = errors.New("invalid list handle")
)

// Handle identifies an entry in a List. Handles are small comparable values
// which may be freely copied. A Handle remains valid until its entry is
// removed from the list (by Remove, PopFront, PopBack or Clear). Using a
// Handle after that yields ErrInvalidHandle, even if the storage for the entry
// has since been reused.
// The zero value is the nil Handle, which never identifies an entry.
type Handle struct {
	listId     uint64
	index      uint32
	generation uint32
}

// InvariantError describes a structural inconsistency found by Verify.
type InvariantError struct {
	Index  uint32 // Storage slot where the problem was found (0: the list).
	Reason string
}

// LengthRecorder is called with the new length of a container whenever the
// length changes.
type LengthRecorder func(uint)

// List is a doubly-linked list of values of type T. Entries are stored in
// storage owned by the list and are referred to by Handle values, so a list
// never hands out pointers into its own structure.
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use; callers must provide their own locking.
type List[T any] struct {
	id             uint64
	nodes          []node[T] // Slot 0 is the sentinel.
	free           uint32    // First slot in the free chain, 0 if none.
	length         uint
	lengthRecorder LengthRecorder
}

type node[T any] struct {
	value      T
	next       uint32
	previous   uint32
	generation uint32
	live       bool
}

// New creates an empty linked list.
func New[T any]() *List[T] {
	return newList[T](nil)
}

// NewWithLengthRecorder creates an empty linked list. If lengthRecorder is not
// nil, it will be called to record the length of the list whenever it changes.
func NewWithLengthRecorder[T any](lengthRecorder LengthRecorder) *List[T] {
	return newList[T](lengthRecorder)
}

// FindValue returns the first entry in the list holding a value equal to value,
// searching from the front. The nil Handle is returned if there is no match.
func FindValue[T comparable](l *List[T], value T) Handle {
	return l.Find(func(v T) bool { return v == value })
}

// IsNil returns true if h is the nil Handle.
func (h Handle) IsNil() bool {
	return h.listId == 0
}

// String returns a debugging representation of the Handle.
func (h Handle) String() string {
	return h.format()
}

func (e *InvariantError) Error() string {
	return e.message()
}

// All returns an iterator over the entries in the list, from front to back.
// Each call starts a new traversal. It is safe to remove the entry which was
// just yielded; entries inserted after it will also be visited.
func (l *List[T]) All() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		l.walk(false, yield)
	}
}

// Back returns the last entry in the list if there is an entry, else the nil
// Handle.
func (l *List[T]) Back() Handle {
	return l.handle(l.tail())
}

// BackValue returns the value of the last entry in the list. ErrEmptyList is
// returned if the list is empty.
func (l *List[T]) BackValue() (T, error) {
	return l.endValue(l.tail())
}

// Backward returns an iterator over the entries in the list, from back to
// front. It has the same safety properties as All.
func (l *List[T]) Backward() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		l.walk(true, yield)
	}
}

// Clear removes all entries from the list. All Handles to its entries become
// invalid. Clearing an empty list does nothing.
func (l *List[T]) Clear() {
	l.clear()
}

// Contains returns true if h identifies a live entry in the list.
func (l *List[T]) Contains(h Handle) bool {
	_, ok := l.lookup(h)
	return ok
}

// Find returns the first entry, searching from the front, for which predicate
// returns true. The nil Handle is returned if there is no match.
func (l *List[T]) Find(predicate func(T) bool) Handle {
	return l.find(false, predicate)
}

// FindLast returns the last entry, searching from the back, for which
// predicate returns true. The nil Handle is returned if there is no match.
func (l *List[T]) FindLast(predicate func(T) bool) Handle {
	return l.find(true, predicate)
}

// Front returns the first entry in the list if there is an entry, else the nil
// Handle.
func (l *List[T]) Front() Handle {
	return l.handle(l.head())
}

// FrontValue returns the value of the first entry in the list. ErrEmptyList is
// returned if the list is empty.
func (l *List[T]) FrontValue() (T, error) {
	return l.endValue(l.head())
}

// InsertAfter creates a new entry holding value immediately after the entry
// identified by h and returns its Handle. If h is not a valid Handle for the
// list, ErrInvalidHandle is returned and the list is not modified.
func (l *List[T]) InsertAfter(value T, h Handle) (Handle, error) {
	return l.insertAfter(value, h)
}

// InsertBefore creates a new entry holding value immediately before the entry
// identified by h and returns its Handle. If h is not a valid Handle for the
// list, ErrInvalidHandle is returned and the list is not modified.
func (l *List[T]) InsertBefore(value T, h Handle) (Handle, error) {
	return l.insertBefore(value, h)
}

// IsEmpty returns true if the list has no entries.
func (l *List[T]) IsEmpty() bool {
	return l.length == 0
}

// IterateEntries will call fn for each entry in the list, starting from the
// front. If fn returns false the iteration terminates and IterateEntries will
// return false, else it will return true.
// It is safe to remove the entry passed to fn.
func (l *List[T]) IterateEntries(fn func(Handle) bool) bool {
	return l.walk(false, fn)
}

// IterateEntriesBackward is similar to IterateEntries, except that it starts
// from the back.
func (l *List[T]) IterateEntriesBackward(fn func(Handle) bool) bool {
	return l.walk(true, fn)
}

// IterateValues will call fn for each entry in the list, starting from the
// front. If fn returns false the iteration terminates and IterateValues will
// return false, else it will return true.
func (l *List[T]) IterateValues(fn func(T) bool) bool {
	return l.iterateValues(false, fn)
}

// IterateValuesBackward is similar to IterateValues, except that it starts
// from the back.
func (l *List[T]) IterateValuesBackward(fn func(T) bool) bool {
	return l.iterateValues(true, fn)
}

// Length returns the number of entries in the list.
func (l *List[T]) Length() uint {
	return l.length
}

// Next returns the entry after the entry identified by h, or the nil Handle if
// h is the last entry.
func (l *List[T]) Next(h Handle) (Handle, error) {
	return l.neighbour(h, false)
}

// PopBack removes the last entry and returns its value. ErrEmptyList is
// returned if the list is empty.
func (l *List[T]) PopBack() (T, error) {
	return l.pop(l.tail())
}

// PopFront removes the first entry and returns its value. ErrEmptyList is
// returned if the list is empty.
func (l *List[T]) PopFront() (T, error) {
	return l.pop(l.head())
}

// Previous returns the entry before the entry identified by h, or the nil
// Handle if h is the first entry.
func (l *List[T]) Previous(h Handle) (Handle, error) {
	return l.neighbour(h, true)
}

// Print will log the values in the list, from front to back, and the length.
func (l *List[T]) Print(logger log.Logger) {
	logger.Printf("%v length=%d\n", l.Values(), l.length)
}

// PushBack adds the value to the back of the list. It returns the Handle for
// the new entry.
func (l *List[T]) PushBack(value T) Handle {
	return l.pushBack(value)
}

// PushFront adds the value to the front of the list. It returns the Handle for
// the new entry.
func (l *List[T]) PushFront(value T) Handle {
	return l.pushFront(value)
}

// Remove removes the entry identified by h from the list and returns the entry
// which followed it, or the nil Handle if it was the last entry. h becomes
// invalid. If h is not a valid Handle for the list, ErrInvalidHandle is
// returned and the list is not modified.
func (l *List[T]) Remove(h Handle) (Handle, error) {
	return l.remove(h)
}

// SetValue replaces the value held by the entry identified by h.
func (l *List[T]) SetValue(h Handle, value T) error {
	return l.setValue(h, value)
}

// Value returns the value held by the entry identified by h.
func (l *List[T]) Value(h Handle) (T, error) {
	return l.value(h)
}

// Values returns a copy of the values in the list, from front to back.
func (l *List[T]) Values() []T {
	return l.values()
}

// Verify checks the internal consistency of the list. An *InvariantError is
// returned describing the first problem found.
func (l *List[T]) Verify() error {
	return l.verify()
}

// UniqueList is a linked list where each value appears at most once. Adding a
// value which is already present moves it.
type UniqueList[T comparable] struct {
	entries map[T]Handle
	list    List[T]
}

// NewUnique creates a linked list of unique entries.
func NewUnique[T comparable]() *UniqueList[T] {
	return newUniqueList[T]()
}

// Back returns the last value in the list. ErrEmptyList is returned if the list
// is empty.
func (l *UniqueList[T]) Back() (T, error) {
	return l.list.BackValue()
}

// Clear removes all values.
func (l *UniqueList[T]) Clear() {
	l.clear()
}

// Contains returns true if value is in the list.
func (l *UniqueList[T]) Contains(value T) bool {
	_, ok := l.entries[value]
	return ok
}

// Front returns the first value in the list. ErrEmptyList is returned if the
// list is empty.
func (l *UniqueList[T]) Front() (T, error) {
	return l.list.FrontValue()
}

// IterateValues will call fn for each value in the list, starting from the
// front. If fn returns false the iteration terminates and IterateValues will
// return false, else it will return true.
// It is safe to remove the value passed to fn.
func (l *UniqueList[T]) IterateValues(fn func(T) bool) bool {
	return l.list.IterateValues(fn)
}

// Length returns the number of values in the list.
func (l *UniqueList[T]) Length() uint {
	return l.list.Length()
}

// PopBack removes and returns the last value.
func (l *UniqueList[T]) PopBack() (T, error) {
	return l.pop(l.list.Back())
}

// PopFront removes and returns the first value.
func (l *UniqueList[T]) PopFront() (T, error) {
	return l.pop(l.list.Front())
}

// PushBack adds/moves the value to the back of the list.
func (l *UniqueList[T]) PushBack(value T) {
	l.pushBack(value)
}

// PushFront adds/moves the value to the front of the list.
func (l *UniqueList[T]) PushFront(value T) {
	l.pushFront(value)
}

// Remove removes the value from the list. It returns false if the value was not
// present.
func (l *UniqueList[T]) Remove(value T) bool {
	return l.remove(value)
}

// Values returns a copy of the values in the list, from front to back.
func (l *UniqueList[T]) Values() []T {
	return l.list.Values()
}
