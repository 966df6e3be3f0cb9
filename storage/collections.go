package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Collections is the persistence abstraction every store goes through: a
// named collection is read and written as one whole JSON document. Backends
// are swappable (file, in-memory, Badger); callers must not cache documents
// across requests.
//
// Read leaves out untouched and returns nil when no durable copy exists, so
// the caller's zero value acts as the default. A malformed document returns
// an error; callers log it and continue with the default. Write replaces the
// entire document, so its cost tracks total collection size, not the size of
// the change.
type Collections interface {
	Read(name string, out interface{}) error
	Write(name string, v interface{}) error
}

// FileCollections stores each collection as <dir>/<name>.json,
// pretty-printed the way the data files were always written.
type FileCollections struct {
	dir string
}

func NewFileCollections(dir string) *FileCollections {
	return &FileCollections{dir: dir}
}

func (f *FileCollections) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

func (f *FileCollections) Read(name string, out interface{}) error {
	data, err := os.ReadFile(f.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}

func (f *FileCollections) Write(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path(name), data, 0o644)
}
