package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/crosshair"
)

// FileStore is a Store backed by a TOML file. Namespaced keys map to
// nested tables: "crosshair/length" is key length in table [crosshair].
// It is safe for concurrent use.
type FileStore struct {
	path string

	mu     sync.RWMutex
	values map[string]any
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings: locate config dir: %w", err)
	}
	return filepath.Join(dir, "crosshair", "config.toml"), nil
}

// NewFileStore returns an empty store that will be written to path.
// It does not read the file; call Reload for that.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, values: make(map[string]any)}
}

// OpenFile returns a store loaded from path. A missing file yields an
// empty store. A file that is not valid TOML yields an error wrapping
// ErrCorrupt.
func OpenFile(path string) (*FileStore, error) {
	s := NewFileStore(path)
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Reload replaces the in-memory values with the file contents.
func (s *FileStore) Reload() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.mu.Lock()
		s.values = make(map[string]any)
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("settings: read %s: %w", s.path, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}

	values := make(map[string]any)
	flatten("", doc, values)

	s.mu.Lock()
	s.values = values
	s.mu.Unlock()

	crosshair.Logger().Debug("settings: loaded file", "path", s.path, "keys", len(values))
	return nil
}

// Value implements Store.
func (s *FileStore) Value(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// SetValue implements Store.
func (s *FileStore) SetValue(key string, v any) {
	s.mu.Lock()
	s.values[key] = v
	s.mu.Unlock()
}

// Keys returns the stored keys in sorted order.
func (s *FileStore) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// Sync implements Store. The file is replaced atomically: the new contents
// are written to a temporary file in the same directory and renamed over
// the old one.
func (s *FileStore) Sync() error {
	s.mu.RLock()
	doc := unflatten(s.values)
	s.mu.RUnlock()

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("settings: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return fmt.Errorf("settings: create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("settings: write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("settings: close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("settings: replace %s: %w", s.path, err)
	}
	return nil
}

// flatten copies nested tables into dst with "/"-joined keys.
func flatten(prefix string, src map[string]any, dst map[string]any) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "/" + k
		}
		if table, ok := v.(map[string]any); ok {
			flatten(key, table, dst)
			continue
		}
		dst[key] = v
	}
}

// unflatten turns "/"-joined keys back into nested tables.
func unflatten(src map[string]any) map[string]any {
	doc := make(map[string]any)
	for key, v := range src {
		parts := strings.Split(key, "/")
		table := doc
		for _, p := range parts[:len(parts)-1] {
			next, ok := table[p].(map[string]any)
			if !ok {
				next = make(map[string]any)
				table[p] = next
			}
			table = next
		}
		table[parts[len(parts)-1]] = v
	}
	return doc
}
