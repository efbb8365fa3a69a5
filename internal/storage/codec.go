package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sandeepkv93/todo/internal/model"
)

var ErrMalformedData = errors.New("storage: malformed data")

type rawTask struct {
	Completed *bool   `json:"completed"`
	Content   *string `json:"content"`
}

type rawCollection struct {
	Title *string    `json:"title"`
	Tasks *[]rawTask `json:"tasks"`
}

// Encode writes collections as a JSON array, one element per collection.
func Encode(w io.Writer, collections []model.CollectionData) error {
	out := make([]model.CollectionData, 0, len(collections))
	for _, c := range collections {
		if c.Tasks == nil {
			c.Tasks = []model.TaskData{}
		}
		out = append(out, c)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode collections: %w", err)
	}
	return nil
}

// Decode parses the document written by Encode. Any structural mismatch fails
// the whole decode; nothing is returned partially.
func Decode(r io.Reader) ([]model.CollectionData, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var raw *[]rawCollection
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected array, got null", ErrMalformedData)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after array", ErrMalformedData)
	}

	out := make([]model.CollectionData, 0, len(*raw))
	for i, rc := range *raw {
		if rc.Title == nil {
			return nil, fmt.Errorf("%w: collection %d: missing title", ErrMalformedData, i)
		}
		if rc.Tasks == nil {
			return nil, fmt.Errorf("%w: collection %d: missing tasks", ErrMalformedData, i)
		}
		tasks := make([]model.TaskData, 0, len(*rc.Tasks))
		for j, rt := range *rc.Tasks {
			if rt.Completed == nil {
				return nil, fmt.Errorf("%w: collection %d task %d: missing completed", ErrMalformedData, i, j)
			}
			if rt.Content == nil {
				return nil, fmt.Errorf("%w: collection %d task %d: missing content", ErrMalformedData, i, j)
			}
			tasks = append(tasks, model.TaskData{Completed: *rt.Completed, Content: *rt.Content})
		}
		out = append(out, model.CollectionData{Title: *rc.Title, Tasks: tasks})
	}
	return out, nil
}
