package list

import (
	"fmt"
)

func newInvariantError(index uint32, format string,
	v ...interface{}) *InvariantError {
	return &InvariantError{Index: index, Reason: fmt.Sprintf(format, v...)}
}

func (e *InvariantError) message() string {
	if e.Index == sentinel {
		return "list invariant violated: " + e.Reason
	}
	return fmt.Sprintf("list invariant violated at slot %d: %s",
		e.Index, e.Reason)
}

func (l *List[T]) verify() error {
	if l.nodes == nil {
		if l.length != 0 {
			return newInvariantError(sentinel,
				"no storage but length is %d", l.length)
		}
		return nil
	}
	if l.length == 0 {
		if s := l.nodes[sentinel]; s.next != sentinel || s.previous != sentinel {
			return newInvariantError(sentinel,
				"empty list has head: %d, tail: %d", s.next, s.previous)
		}
	}
	if err := l.verifyChain(false); err != nil {
		return err
	}
	if err := l.verifyChain(true); err != nil {
		return err
	}
	return l.verifyStorage()
}

// verifyChain follows the links in one direction and checks that each back
// link is the inverse of the link which was followed.
func (l *List[T]) verifyChain(backward bool) error {
	direction := "forward"
	if backward {
		direction = "backward"
	}
	var count uint
	last := uint32(sentinel)
	for index := l.step(sentinel, backward); index != sentinel; {
		if count >= l.length {
			return newInvariantError(index,
				"%s chain longer than length: %d", direction, l.length)
		}
		if int(index) >= len(l.nodes) {
			return newInvariantError(sentinel,
				"%s link to slot %d out of range", direction, index)
		}
		if !l.nodes[index].live {
			return newInvariantError(index, "dead slot linked %s", direction)
		}
		if back := l.step(index, !backward); back != last {
			return newInvariantError(index, "%s back link: %d, expected: %d",
				direction, back, last)
		}
		last = index
		index = l.step(index, backward)
		count++
	}
	if count != l.length {
		return newInvariantError(sentinel, "%s chain length: %d, expected: %d",
			direction, count, l.length)
	}
	if end := l.step(sentinel, !backward); end != last {
		return newInvariantError(sentinel, "%s chain ends at: %d, expected: %d",
			direction, last, end)
	}
	return nil
}

// verifyStorage checks that the live slots are exactly the linked entries and
// that the free chain holds only dead slots.
func (l *List[T]) verifyStorage() error {
	var numLive uint
	for index := 1; index < len(l.nodes); index++ {
		if l.nodes[index].live {
			numLive++
		}
	}
	if numLive != l.length {
		return newInvariantError(sentinel, "live slots: %d, length: %d",
			numLive, l.length)
	}
	numFree := 0
	for index := l.free; index != sentinel; index = l.nodes[index].next {
		if int(index) >= len(l.nodes) {
			return newInvariantError(sentinel,
				"free link to slot %d out of range", index)
		}
		if l.nodes[index].live {
			return newInvariantError(index, "live slot in free chain")
		}
		if numFree++; numFree >= len(l.nodes) {
			return newInvariantError(index, "free chain has a cycle")
		}
	}
	return nil
}
