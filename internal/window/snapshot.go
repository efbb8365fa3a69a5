package window

import "github.com/sandeepkv93/todo/internal/filter"

type Row struct {
	Content   string
	Completed bool
}

// Snapshot is a plain copy of everything a renderer draws.
type Snapshot struct {
	State           State
	Page            Page
	ShowContent     bool
	TaskListVisible bool
	Filter          filter.Setting
	Collections     []string
	Current         int
	Rows            []Row
}

func (c *Controller) Snapshot() Snapshot {
	cols := c.collections.Items()
	titles := make([]string, 0, len(cols))
	for _, col := range cols {
		titles = append(titles, col.Title())
	}
	snap := Snapshot{
		State:           c.State(),
		Page:            c.page,
		ShowContent:     c.showContent,
		TaskListVisible: c.taskListVisible,
		Filter:          c.setting,
		Collections:     titles,
		Current:         c.currentIndex(),
		Rows:            []Row{},
	}
	if c.view != nil {
		for _, t := range c.view.Items() {
			snap.Rows = append(snap.Rows, Row{Content: t.Content(), Completed: t.Completed()})
		}
	}
	return snap
}
