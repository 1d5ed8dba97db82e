// Package cache persists small key/value state between kitten invocations,
// mirroring kitty's cached-values files.
package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Store is a namespace-scoped persistent key/value store backed by a JSON
// file under the user cache directory.
type Store struct {
	v    *viper.Viper
	path string
}

// New opens the store for a namespace, loading any previously saved values.
// A namespace that has never been saved starts empty.
func New(namespace string) (*Store, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("locating cache dir: %w", err)
	}
	return newAt(filepath.Join(dir, "kittysearch", namespace+".json"))
}

func newAt(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading cached values: %w", err)
	}
	return &Store{v: v, path: path}, nil
}

// GetString returns the stored value for key, or def when unset.
func (s *Store) GetString(key, def string) string {
	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetString(key)
}

// Set records a value. Nothing is written until Save.
func (s *Store) Set(key string, value any) { s.v.Set(key, value) }

// Save writes all values back to the namespace file.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing cached values: %w", err)
	}
	return nil
}
