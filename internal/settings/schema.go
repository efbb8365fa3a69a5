package settings

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sandeepkv93/todo/internal/filter"
)

var (
	ErrUnknownKey   = errors.New("settings: unknown key")
	ErrInvalidValue = errors.New("settings: invalid value")
)

// Store is the configuration provider the window controller reads from.
// Implementations notify OnChange callbacks synchronously from Set.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	OnChange(key string, fn func(value string)) (cancel func())
	Close() error
}

// Key describes one setting: its default and, when non-empty, the only values
// Set accepts.
type Key struct {
	Name    string
	Default string
	Choices []string
}

type Schema struct {
	keys map[string]Key
}

func NewSchema(keys ...Key) Schema {
	s := Schema{keys: make(map[string]Key, len(keys))}
	for _, k := range keys {
		s.keys[k.Name] = k
	}
	return s
}

// DefaultSchema holds the keys the application defines.
func DefaultSchema() Schema {
	return NewSchema(Key{
		Name:    filter.Key,
		Default: string(filter.All),
		Choices: filter.Values(),
	})
}

func (s Schema) Lookup(name string) (Key, error) {
	k, ok := s.keys[name]
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}

func (s Schema) Validate(name, value string) error {
	k, err := s.Lookup(name)
	if err != nil {
		return err
	}
	if len(k.Choices) > 0 && !slices.Contains(k.Choices, value) {
		return fmt.Errorf("%w: %s=%q", ErrInvalidValue, name, value)
	}
	return nil
}
