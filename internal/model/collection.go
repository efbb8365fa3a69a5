package model

import (
	"github.com/google/uuid"
	"github.com/sandeepkv93/todo/internal/observable"
)

// Collection is a named, ordered group of tasks. ID is assigned at
// construction and lives only in memory.
type Collection struct {
	ID      string
	title   string
	tasks   *observable.List[*Task]
	changed observable.Signal[*Collection]
}

// NewCollection takes ownership of tasks. A nil list is replaced by an empty one.
func NewCollection(title string, tasks *observable.List[*Task]) *Collection {
	if tasks == nil {
		tasks = observable.NewList[*Task]()
	}
	return &Collection{
		ID:    uuid.NewString(),
		title: title,
		tasks: tasks,
	}
}

func (c *Collection) Title() string                  { return c.title }
func (c *Collection) Tasks() *observable.List[*Task] { return c.tasks }

func (c *Collection) SetTitle(title string) {
	if c.title == title {
		return
	}
	c.title = title
	c.changed.Emit(c)
}

func (c *Collection) Subscribe(fn func(*Collection)) (cancel func()) {
	return c.changed.Connect(fn)
}

func (c *Collection) ToData() CollectionData {
	items := c.tasks.Items()
	tasks := make([]TaskData, 0, len(items))
	for _, t := range items {
		tasks = append(tasks, t.ToData())
	}
	return CollectionData{Title: c.title, Tasks: tasks}
}

func CollectionFromData(d CollectionData) *Collection {
	tasks := make([]*Task, 0, len(d.Tasks))
	for _, td := range d.Tasks {
		tasks = append(tasks, TaskFromData(td))
	}
	return NewCollection(d.Title, observable.NewList(tasks...))
}
