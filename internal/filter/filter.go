package filter

import (
	"errors"
	"fmt"

	"github.com/sandeepkv93/todo/internal/model"
)

var ErrInvalidSetting = errors.New("filter: invalid setting")

// Key is the settings key holding the active filter.
const Key = "filter"

type Setting string

const (
	All  Setting = "All"
	Open Setting = "Open"
	Done Setting = "Done"
)

func Values() []string {
	return []string{string(All), string(Open), string(Done)}
}

func (s Setting) IsValid() bool {
	switch s {
	case All, Open, Done:
		return true
	default:
		return false
	}
}

// Predicate decides whether a task is visible. A nil Predicate shows everything.
type Predicate func(*model.Task) bool

func isOpen(t *model.Task) bool { return !t.Completed() }
func isDone(t *model.Task) bool { return t.Completed() }

func For(s Setting) (Predicate, error) {
	switch s {
	case All:
		return nil, nil
	case Open:
		return isOpen, nil
	case Done:
		return isDone, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSetting, string(s))
	}
}

// Next cycles All -> Open -> Done -> All.
func Next(s Setting) Setting {
	switch s {
	case All:
		return Open
	case Open:
		return Done
	default:
		return All
	}
}
