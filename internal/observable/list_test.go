package observable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListAppendAndRemoveNotify(t *testing.T) {
	l := NewList[string]()
	var changes []Change
	cancel := l.Subscribe(func(c Change) { changes = append(changes, c) })

	l.Append("a", "b")
	l.Append("c")
	require.True(t, l.RemoveAt(1))
	require.False(t, l.RemoveAt(5))

	require.Equal(t, []string{"a", "c"}, l.Items())
	require.Equal(t, []Change{
		{Position: 0, Added: 2},
		{Position: 2, Added: 1},
		{Position: 1, Removed: 1},
	}, changes)

	cancel()
	l.Append("d")
	require.Len(t, changes, 3)
}

func TestListEmptyExtendIsSilent(t *testing.T) {
	l := NewList(1, 2)
	fired := false
	l.Subscribe(func(Change) { fired = true })
	l.Extend(nil)
	require.False(t, fired)
	require.Equal(t, 2, l.Len())
}

func TestListItemAtAndIndexFunc(t *testing.T) {
	l := NewList("x", "y")
	v, ok := l.ItemAt(1)
	require.True(t, ok)
	require.Equal(t, "y", v)
	_, ok = l.ItemAt(-1)
	require.False(t, ok)
	require.Equal(t, 0, l.IndexFunc(func(s string) bool { return s == "x" }))
	require.Equal(t, -1, l.IndexFunc(func(s string) bool { return s == "z" }))
}

func TestUnsubscribeDuringEmit(t *testing.T) {
	l := NewList[int]()
	calls := 0
	var cancel func()
	cancel = l.Subscribe(func(Change) {
		calls++
		cancel()
	})
	l.Append(1)
	l.Append(2)
	require.Equal(t, 1, calls)
}

func TestFilteredFollowsSourceAndPredicate(t *testing.T) {
	l := NewList(1, 2, 3, 4)
	even := func(n int) bool { return n%2 == 0 }
	f := NewFiltered(l, even)
	require.Equal(t, []int{2, 4}, f.Items())

	l.Append(6)
	require.Equal(t, []int{2, 4, 6}, f.Items())
	src, ok := f.SourceIndex(2)
	require.True(t, ok)
	require.Equal(t, 4, src)

	f.SetPredicate(nil)
	require.Equal(t, 5, f.Len())

	notified := 0
	f.Subscribe(func(Change) { notified++ })
	l.RemoveAt(0)
	require.Equal(t, 1, notified)
	require.Equal(t, []int{2, 3, 4, 6}, f.Items())

	f.Close()
	l.Append(8)
	require.Equal(t, 1, notified)
}
