package state

// NoSelection is the cursor value of a list without a selection.
const NoSelection = -1

// SelectableList is an ordered sequence plus a cursor with wraparound
// navigation. The zero value is an empty list with no selection.
type SelectableList[T any] struct {
	items    []T
	selected int
	set      bool
}

// NewSelectableList wraps items without selecting anything.
func NewSelectableList[T any](items []T) *SelectableList[T] {
	return &SelectableList[T]{items: items}
}

// Items returns the underlying sequence. Callers must not modify it.
func (l *SelectableList[T]) Items() []T {
	return l.items
}

// Len returns the number of items.
func (l *SelectableList[T]) Len() int {
	return len(l.items)
}

// Next moves the cursor forward, wrapping from the last item to the first.
func (l *SelectableList[T]) Next() {
	if len(l.items) == 0 {
		return
	}
	if !l.set {
		l.selectIndex(0)
		return
	}
	l.selectIndex((l.selected + 1) % len(l.items))
}

// Previous moves the cursor back, wrapping from the first item to the last.
func (l *SelectableList[T]) Previous() {
	if len(l.items) == 0 {
		return
	}
	if !l.set {
		l.selectIndex(0)
		return
	}
	if l.selected == 0 {
		l.selectIndex(len(l.items) - 1)
		return
	}
	l.selectIndex(l.selected - 1)
}

// Select moves the cursor to i. Out-of-range indices are rejected.
func (l *SelectableList[T]) Select(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	l.selectIndex(i)
	return true
}

// Selected returns the cursor, or NoSelection and false when unset.
func (l *SelectableList[T]) Selected() (int, bool) {
	if !l.set {
		return NoSelection, false
	}
	return l.selected, true
}

// Current returns the selected item.
func (l *SelectableList[T]) Current() (T, bool) {
	var zero T
	if !l.set {
		return zero, false
	}
	return l.items[l.selected], true
}

func (l *SelectableList[T]) selectIndex(i int) {
	l.selected = i
	l.set = true
}
