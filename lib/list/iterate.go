package list

func (l *List[T]) find(backward bool, predicate func(T) bool) Handle {
	if l.nodes == nil {
		return Handle{}
	}
	for index := l.step(sentinel, backward); index != sentinel; {
		if predicate(l.nodes[index].value) {
			return l.handle(index)
		}
		index = l.step(index, backward)
	}
	return Handle{}
}

func (l *List[T]) iterateValues(backward bool, fn func(T) bool) bool {
	return l.walk(backward, func(h Handle) bool {
		return fn(l.nodes[h.index].value)
	})
}

func (l *List[T]) step(index uint32, backward bool) uint32 {
	if backward {
		return l.nodes[index].previous
	}
	return l.nodes[index].next
}

func (l *List[T]) values() []T {
	retval := make([]T, 0, l.length)
	if l.nodes == nil {
		return retval
	}
	for index := l.nodes[sentinel].next; index != sentinel; {
		retval = append(retval, l.nodes[index].value)
		index = l.nodes[index].next
	}
	return retval
}

// walk calls fn for each entry. After fn returns, the traversal continues from
// the current entry if it is still live, else from the entry which followed it
// before fn was called. If neither is live the traversal ends.
func (l *List[T]) walk(backward bool, fn func(Handle) bool) bool {
	if l.nodes == nil {
		return true
	}
	current := l.handle(l.step(sentinel, backward))
	for !current.IsNil() {
		following := l.handle(l.step(current.index, backward))
		if !fn(current) {
			return false
		}
		if index, ok := l.lookup(current); ok {
			current = l.handle(l.step(index, backward))
		} else if _, ok := l.lookup(following); ok {
			current = following
		} else {
			return true
		}
	}
	return true
}
