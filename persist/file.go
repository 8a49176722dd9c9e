// Package persist provides file-backed stores for cached attribute values,
// so a value computed in one process run (e.g. fetched remote content) can
// be reused by the next.
package persist

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/vpavlin/cached-property/attr"
)

// File persists attribute values to a single JSON file: one object mapping
// attribute name to {value, at}, with the value kept as raw JSON.
//
// File is best-effort by design, matching the attr.Persister contract:
// a missing or unreadable file reads as a miss for every name, and writes
// replace the whole file. Safe for concurrent use within one process; it
// does not coordinate between processes.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a store backed by the JSON file at path.
// The file is created lazily on first Store.
func NewFile(path string) *File {
	return &File{path: path}
}

type fileEntry struct {
	Value json.RawMessage `json:"value"`
	At    int64           `json:"at"`
}

// Load returns the stored value and creation time for name, if present.
func (f *File) Load(name string) ([]byte, int64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return nil, 0, false
	}
	e, ok := data[name]
	if !ok {
		return nil, 0, false
	}
	return e.Value, e.At, true
}

// Store records raw under name, replacing any previous value.
func (f *File) Store(name string, raw []byte, at int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		// First run, or an unreadable file: start fresh.
		data = map[string]fileEntry{}
	}
	data[name] = fileEntry{Value: raw, At: at}
	return f.write(data)
}

// Remove drops the stored value for name, if present.
func (f *File) Remove(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return nil
	}
	if _, ok := data[name]; !ok {
		return nil
	}
	delete(data, name)
	return f.write(data)
}

func (f *File) read() (map[string]fileEntry, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	var data map[string]fileEntry
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = map[string]fileEntry{}
	}
	return data, nil
}

func (f *File) write(data map[string]fileEntry) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0o644)
}

// Compile-time check: ensure File implements attr.Persister.
var _ attr.Persister = (*File)(nil)
