package observable

// Filtered is a live view over a List. A nil predicate shows every item.
type Filtered[T any] struct {
	source    *List[T]
	predicate func(T) bool
	index     []int
	subs      Signal[Change]
	detach    func()
}

func NewFiltered[T any](source *List[T], predicate func(T) bool) *Filtered[T] {
	f := &Filtered[T]{source: source, predicate: predicate}
	f.rebuild()
	f.detach = source.Subscribe(func(Change) { f.Refilter() })
	return f
}

func (f *Filtered[T]) SetPredicate(predicate func(T) bool) {
	f.predicate = predicate
	f.Refilter()
}

// Refilter recomputes membership, e.g. after an item attribute changed.
func (f *Filtered[T]) Refilter() {
	before := len(f.index)
	f.rebuild()
	f.subs.Emit(Change{Position: 0, Removed: before, Added: len(f.index)})
}

func (f *Filtered[T]) rebuild() {
	f.index = f.index[:0]
	for i, item := range f.source.items {
		if f.predicate == nil || f.predicate(item) {
			f.index = append(f.index, i)
		}
	}
}

func (f *Filtered[T]) Len() int {
	return len(f.index)
}

func (f *Filtered[T]) ItemAt(i int) (T, bool) {
	if i < 0 || i >= len(f.index) {
		var zero T
		return zero, false
	}
	return f.source.ItemAt(f.index[i])
}

func (f *Filtered[T]) Items() []T {
	out := make([]T, 0, len(f.index))
	for _, idx := range f.index {
		if item, ok := f.source.ItemAt(idx); ok {
			out = append(out, item)
		}
	}
	return out
}

// SourceIndex maps a view row back to its position in the source list.
func (f *Filtered[T]) SourceIndex(i int) (int, bool) {
	if i < 0 || i >= len(f.index) {
		return -1, false
	}
	return f.index[i], true
}

func (f *Filtered[T]) Subscribe(fn func(Change)) (cancel func()) {
	return f.subs.Connect(fn)
}

// Close detaches the view from its source. The view keeps its last contents.
func (f *Filtered[T]) Close() {
	if f.detach != nil {
		f.detach()
		f.detach = nil
	}
}
