package observable

// Change describes a single items-changed notification: at Position, Removed
// items were dropped and Added items were inserted.
type Change struct {
	Position int
	Removed  int
	Added    int
}

// Signal is a set of callbacks that receive emitted values in registration
// order. The zero value is ready to use.
type Signal[E any] struct {
	nextID int
	subs   map[int]func(E)
	order  []int
}

// Connect registers fn and returns a func that disconnects it.
func (s *Signal[E]) Connect(fn func(E)) func() {
	if s.subs == nil {
		s.subs = make(map[int]func(E))
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	return func() {
		if _, ok := s.subs[id]; !ok {
			return
		}
		delete(s.subs, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Signal[E]) Emit(ev E) {
	ids := make([]int, len(s.order))
	copy(ids, s.order)
	for _, id := range ids {
		if fn, ok := s.subs[id]; ok {
			fn(ev)
		}
	}
}

// List is an ordered sequence that notifies subscribers of insertions and
// removals. It is not safe for concurrent use; all calls belong on the UI loop.
type List[T any] struct {
	items []T
	subs  Signal[Change]
}

func NewList[T any](items ...T) *List[T] {
	l := &List[T]{items: make([]T, 0, len(items))}
	l.items = append(l.items, items...)
	return l
}

func (l *List[T]) Len() int {
	return len(l.items)
}

func (l *List[T]) ItemAt(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Items returns a copy of the current contents.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List[T]) IndexFunc(match func(T) bool) int {
	for i, item := range l.items {
		if match(item) {
			return i
		}
	}
	return -1
}

func (l *List[T]) Append(items ...T) {
	l.Extend(items)
}

// Extend appends items and emits one change covering all of them.
func (l *List[T]) Extend(items []T) {
	if len(items) == 0 {
		return
	}
	pos := len(l.items)
	l.items = append(l.items, items...)
	l.subs.Emit(Change{Position: pos, Added: len(items)})
}

func (l *List[T]) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}
	var zero T
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	l.subs.Emit(Change{Position: i, Removed: 1})
	return true
}

// Subscribe registers fn for every change. The returned func detaches it.
func (l *List[T]) Subscribe(fn func(Change)) (cancel func()) {
	return l.subs.Connect(fn)
}
