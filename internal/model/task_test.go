package model

import (
	"testing"

	"github.com/sandeepkv93/todo/internal/observable"
)

func TestTaskNotifiesOnlyOnChange(t *testing.T) {
	task := NewTask(false, "write docs")
	calls := 0
	cancel := task.Subscribe(func(*Task) { calls++ })

	task.SetCompleted(false)
	task.SetContent("write docs")
	if calls != 0 {
		t.Fatalf("expected no notifications for unchanged values, got %d", calls)
	}

	task.Toggle()
	task.SetContent("write more docs")
	if calls != 2 {
		t.Fatalf("expected 2 notifications, got %d", calls)
	}
	if !task.Completed() || task.Content() != "write more docs" {
		t.Fatalf("unexpected task state: completed=%v content=%q", task.Completed(), task.Content())
	}

	cancel()
	task.Toggle()
	if calls != 2 {
		t.Fatalf("expected no notification after cancel, got %d", calls)
	}
}

func TestNewCollectionNeverHasNilTasks(t *testing.T) {
	c := NewCollection("Work", nil)
	if c.Tasks() == nil || c.Tasks().Len() != 0 {
		t.Fatalf("expected empty task list, got %#v", c.Tasks())
	}
	if c.ID == "" {
		t.Fatal("expected collection id")
	}
	other := NewCollection("Work", nil)
	if other.ID == c.ID {
		t.Fatal("expected distinct collection ids")
	}
}

func TestCollectionTitleNotification(t *testing.T) {
	c := NewCollection("Home", nil)
	var got string
	c.Subscribe(func(col *Collection) { got = col.Title() })
	c.SetTitle("House")
	if got != "House" {
		t.Fatalf("expected notification with new title, got %q", got)
	}
}

func TestCollectionDataConversion(t *testing.T) {
	data := CollectionData{
		Title: "Errands",
		Tasks: []TaskData{{Completed: true, Content: "milk"}, {Completed: false, Content: "bread"}},
	}
	c := CollectionFromData(data)
	if c.Title() != "Errands" || c.Tasks().Len() != 2 {
		t.Fatalf("unexpected collection: %q with %d tasks", c.Title(), c.Tasks().Len())
	}
	first, _ := c.Tasks().ItemAt(0)
	if !first.Completed() || first.Content() != "milk" {
		t.Fatalf("unexpected first task: %+v", first.ToData())
	}

	back := c.ToData()
	if back.Title != data.Title || len(back.Tasks) != 2 || back.Tasks[1] != data.Tasks[1] {
		t.Fatalf("unexpected round trip: %+v", back)
	}

	empty := NewCollection("Empty", observable.NewList[*Task]()).ToData()
	if empty.Tasks == nil {
		t.Fatal("expected non-nil tasks slice for empty collection")
	}
}
