package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/observable"
	"github.com/sandeepkv93/todo/internal/storage"
)

const queryTimeout = 2 * time.Second

// SQLiteStore keeps settings in a SQLite database. Values are cached after the
// first read; Set writes through before notifying.
type SQLiteStore struct {
	schema  Schema
	repo    *storage.SQLiteRepository
	cache   map[string]string
	changed map[string]*observable.Signal[string]
	log     zerolog.Logger
}

var _ Store = (*SQLiteStore)(nil)

func OpenSQLiteStore(path string, schema Schema, log zerolog.Logger) (*SQLiteStore, error) {
	repo, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	return &SQLiteStore{
		schema:  schema,
		repo:    repo,
		cache:   make(map[string]string),
		changed: make(map[string]*observable.Signal[string]),
		log:     logging.Component(log, "settings"),
	}, nil
}

// Get returns the stored value, or the schema default when the key was never
// set. Stored values are returned as-is, without checking the schema choices.
func (s *SQLiteStore) Get(key string) (string, error) {
	k, err := s.schema.Lookup(key)
	if err != nil {
		return "", err
	}
	if v, ok := s.cache[key]; ok {
		return v, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	row, err := s.repo.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return k.Default, nil
		}
		return "", fmt.Errorf("read setting %s: %w", key, err)
	}
	s.cache[key] = row.Value
	return row.Value, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	if err := s.schema.Validate(key, value); err != nil {
		return err
	}
	prev, err := s.Get(key)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	if err := s.repo.PutSetting(ctx, storage.Setting{Key: key, Value: value, UpdatedAt: time.Now()}); err != nil {
		return fmt.Errorf("write setting %s: %w", key, err)
	}
	s.cache[key] = value
	if prev != value {
		s.log.Debug().Str("key", key).Str("value", value).Msg("setting changed")
		s.signal(key).Emit(value)
	}
	return nil
}

func (s *SQLiteStore) OnChange(key string, fn func(string)) func() {
	return s.signal(key).Connect(fn)
}

func (s *SQLiteStore) Close() error {
	return s.repo.Close()
}

func (s *SQLiteStore) signal(key string) *observable.Signal[string] {
	sig, ok := s.changed[key]
	if !ok {
		sig = &observable.Signal[string]{}
		s.changed[key] = sig
	}
	return sig
}
