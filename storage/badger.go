package storage

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCollections keeps each collection as a single key in an embedded
// BadgerDB. Collection semantics are unchanged: the whole document is still
// read and rewritten per operation, Badger only replaces the flat files.
type BadgerCollections struct {
	db *badger.DB
}

func NewBadgerCollections(db *badger.DB) *BadgerCollections {
	return &BadgerCollections{db: db}
}

// OpenBadger opens the embedded database at dir with logging quieted down to
// errors, matching how the rest of the app logs.
func OpenBadger(dir string) (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
}

func (b *BadgerCollections) key(name string) []byte {
	return []byte("collection:" + name)
}

func (b *BadgerCollections) Read(name string, out interface{}) error {
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.key(name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	return err
}

func (b *BadgerCollections) Write(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.key(name), data)
	})
}
