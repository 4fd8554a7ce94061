package list

func newUniqueList[T comparable]() *UniqueList[T] {
	return &UniqueList[T]{
		entries: make(map[T]Handle),
	}
}

func (l *UniqueList[T]) clear() {
	l.list.Clear()
	l.entries = make(map[T]Handle)
}

func (l *UniqueList[T]) pop(h Handle) (T, error) {
	value, err := l.list.Value(h)
	if err != nil {
		if h.IsNil() {
			return value, ErrEmptyList
		}
		return value, err
	}
	l.remove(value)
	return value, nil
}

func (l *UniqueList[T]) pushBack(value T) {
	l.remove(value)
	l.entries[value] = l.list.PushBack(value)
}

func (l *UniqueList[T]) pushFront(value T) {
	l.remove(value)
	l.entries[value] = l.list.PushFront(value)
}

func (l *UniqueList[T]) remove(value T) bool {
	h, ok := l.entries[value]
	if !ok {
		return false
	}
	delete(l.entries, value)
	if _, err := l.list.Remove(h); err != nil {
		panic(err)
	}
	return true
}
