package list

import (
	"fmt"
	"math"
	"sync/atomic"
)

const sentinel = 0

var lastListId atomic.Uint64

func newList[T any](lengthRecorder LengthRecorder) *List[T] {
	l := &List[T]{lengthRecorder: lengthRecorder}
	l.lazyInit()
	return l
}

func invalidHandle(operation string, h Handle) error {
	return fmt.Errorf("%s: %w: %s", operation, ErrInvalidHandle, h)
}

func (h Handle) format() string {
	if h.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("%d/%d.%d", h.listId, h.index, h.generation)
}

func (l *List[T]) lazyInit() {
	if l.nodes == nil {
		l.id = lastListId.Add(1)
		l.nodes = make([]node[T], 1, 16)
	}
}

func (l *List[T]) head() uint32 {
	if l.nodes == nil {
		return sentinel
	}
	return l.nodes[sentinel].next
}

func (l *List[T]) tail() uint32 {
	if l.nodes == nil {
		return sentinel
	}
	return l.nodes[sentinel].previous
}

func (l *List[T]) handle(index uint32) Handle {
	if index == sentinel {
		return Handle{}
	}
	return Handle{
		listId:     l.id,
		index:      index,
		generation: l.nodes[index].generation,
	}
}

// lookup returns the storage slot for h if h is valid for this list.
func (l *List[T]) lookup(h Handle) (uint32, bool) {
	if h.IsNil() || h.listId != l.id {
		return 0, false
	}
	if h.index == sentinel || int(h.index) >= len(l.nodes) {
		return 0, false
	}
	if n := &l.nodes[h.index]; !n.live || n.generation != h.generation {
		return 0, false
	}
	return h.index, true
}

func (l *List[T]) recordLength() {
	if l.lengthRecorder != nil {
		l.lengthRecorder(l.length)
	}
}

// allocate returns an unlinked live slot holding value.
func (l *List[T]) allocate(value T) uint32 {
	l.lazyInit()
	if index := l.free; index != sentinel {
		n := &l.nodes[index]
		l.free = n.next
		n.value = value
		n.next = sentinel
		n.live = true
		return index
	}
	if uint64(len(l.nodes)) > math.MaxUint32 {
		panic("list: storage exhausted")
	}
	l.nodes = append(l.nodes, node[T]{value: value, generation: 1, live: true})
	return uint32(len(l.nodes) - 1)
}

// release frees an unlinked slot. Bumping the generation invalidates all
// outstanding Handles to the slot. A slot whose generation wraps is retired.
func (l *List[T]) release(index uint32) {
	n := &l.nodes[index]
	var zero T
	n.value = zero
	n.live = false
	n.previous = sentinel
	n.generation++
	if n.generation == 0 {
		n.next = sentinel
		return
	}
	n.next = l.free
	l.free = index
}

// linkAfter links the unlinked slot index after previous, which may be the
// sentinel.
func (l *List[T]) linkAfter(index, previous uint32) {
	next := l.nodes[previous].next
	l.nodes[index].previous = previous
	l.nodes[index].next = next
	l.nodes[previous].next = index
	l.nodes[next].previous = index
	l.length++
	l.recordLength()
}

// unlink removes index from the chain, frees it and returns its successor.
func (l *List[T]) unlink(index uint32) uint32 {
	previous := l.nodes[index].previous
	next := l.nodes[index].next
	l.nodes[previous].next = next
	l.nodes[next].previous = previous
	l.release(index)
	l.length--
	l.recordLength()
	return next
}

func (l *List[T]) clear() {
	if l.nodes == nil {
		return
	}
	var nextIndex uint32
	for index := l.nodes[sentinel].next; index != sentinel; index = nextIndex {
		nextIndex = l.nodes[index].next
		l.release(index)
	}
	l.nodes[sentinel].next = sentinel
	l.nodes[sentinel].previous = sentinel
	if l.length > 0 {
		l.length = 0
		l.recordLength()
	}
}

func (l *List[T]) endValue(index uint32) (T, error) {
	if index == sentinel {
		var zero T
		return zero, ErrEmptyList
	}
	return l.nodes[index].value, nil
}

func (l *List[T]) insertAfter(value T, h Handle) (Handle, error) {
	previous, ok := l.lookup(h)
	if !ok {
		return Handle{}, invalidHandle("insert after", h)
	}
	index := l.allocate(value)
	l.linkAfter(index, previous)
	return l.handle(index), nil
}

func (l *List[T]) insertBefore(value T, h Handle) (Handle, error) {
	next, ok := l.lookup(h)
	if !ok {
		return Handle{}, invalidHandle("insert before", h)
	}
	index := l.allocate(value)
	l.linkAfter(index, l.nodes[next].previous)
	return l.handle(index), nil
}

func (l *List[T]) neighbour(h Handle, backward bool) (Handle, error) {
	index, ok := l.lookup(h)
	if !ok {
		return Handle{}, invalidHandle("neighbour", h)
	}
	if backward {
		return l.handle(l.nodes[index].previous), nil
	}
	return l.handle(l.nodes[index].next), nil
}

func (l *List[T]) pop(index uint32) (T, error) {
	if index == sentinel {
		var zero T
		return zero, ErrEmptyList
	}
	value := l.nodes[index].value
	l.unlink(index)
	return value, nil
}

func (l *List[T]) pushBack(value T) Handle {
	index := l.allocate(value)
	l.linkAfter(index, l.nodes[sentinel].previous)
	return l.handle(index)
}

func (l *List[T]) pushFront(value T) Handle {
	index := l.allocate(value)
	l.linkAfter(index, sentinel)
	return l.handle(index)
}

func (l *List[T]) remove(h Handle) (Handle, error) {
	index, ok := l.lookup(h)
	if !ok {
		return Handle{}, invalidHandle("remove", h)
	}
	return l.handle(l.unlink(index)), nil
}

func (l *List[T]) setValue(h Handle, value T) error {
	index, ok := l.lookup(h)
	if !ok {
		return invalidHandle("set value", h)
	}
	l.nodes[index].value = value
	return nil
}

func (l *List[T]) value(h Handle) (T, error) {
	index, ok := l.lookup(h)
	if !ok {
		var zero T
		return zero, invalidHandle("value", h)
	}
	return l.nodes[index].value, nil
}
