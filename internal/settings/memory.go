package settings

import "github.com/sandeepkv93/todo/internal/observable"

type MemoryStore struct {
	schema  Schema
	values  map[string]string
	changed map[string]*observable.Signal[string]
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(schema Schema) *MemoryStore {
	return &MemoryStore{
		schema:  schema,
		values:  make(map[string]string),
		changed: make(map[string]*observable.Signal[string]),
	}
}

func (m *MemoryStore) Get(key string) (string, error) {
	k, err := m.schema.Lookup(key)
	if err != nil {
		return "", err
	}
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return k.Default, nil
}

func (m *MemoryStore) Set(key, value string) error {
	if err := m.schema.Validate(key, value); err != nil {
		return err
	}
	prev, _ := m.Get(key)
	m.values[key] = value
	if prev != value {
		m.signal(key).Emit(value)
	}
	return nil
}

func (m *MemoryStore) OnChange(key string, fn func(string)) func() {
	return m.signal(key).Connect(fn)
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) signal(key string) *observable.Signal[string] {
	sig, ok := m.changed[key]
	if !ok {
		sig = &observable.Signal[string]{}
		m.changed[key] = sig
	}
	return sig
}
