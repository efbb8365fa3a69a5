package model

import "github.com/sandeepkv93/todo/internal/observable"

// Task is a content string with a completion flag. Mutations notify
// subscribers so bound rows update without refetching the collection.
type Task struct {
	completed bool
	content   string
	changed   observable.Signal[*Task]
}

func NewTask(completed bool, content string) *Task {
	return &Task{completed: completed, content: content}
}

func (t *Task) Completed() bool { return t.completed }
func (t *Task) Content() string { return t.content }

func (t *Task) SetCompleted(completed bool) {
	if t.completed == completed {
		return
	}
	t.completed = completed
	t.changed.Emit(t)
}

func (t *Task) Toggle() {
	t.SetCompleted(!t.completed)
}

func (t *Task) SetContent(content string) {
	if t.content == content {
		return
	}
	t.content = content
	t.changed.Emit(t)
}

// Subscribe registers fn for attribute changes of t.
func (t *Task) Subscribe(fn func(*Task)) (cancel func()) {
	return t.changed.Connect(fn)
}

func (t *Task) ToData() TaskData {
	return TaskData{Completed: t.completed, Content: t.content}
}

func TaskFromData(d TaskData) *Task {
	return NewTask(d.Completed, d.Content)
}
