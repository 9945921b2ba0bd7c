// Package store abstracts the persistent storage used by the line editor.
package store

import (
	"fmt"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.lined.sh/pkg/logutil"
	"src.lined.sh/pkg/store/storedefs"
	"src.lined.sh/pkg/testutil"
)

var logger = logutil.GetLogger("[store] ")

var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is a store backed by a database.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file.
func NewStore(dbname string) (DBStore, error) {
	db, err := dbOpen(dbname)
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

func dbOpen(dbname string) (*bolt.DB, error) {
	return bolt.Open(dbname, 0644,
		&bolt.Options{
			Timeout: 1 * time.Second,
		})
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db: db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %v", name, err)
			}
		}
		return nil
	})
	return st, err
}

// Close closes the store and the underlying database.
func (s *dbStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// MustTempStore returns a Store backed by a temporary file, and arranges for
// it to be cleaned up when the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	dir := testutil.TempDir(c)
	db, err := bolt.Open(filepath.Join(dir, "db"), 0644, &bolt.Options{})
	if err != nil {
		panic(fmt.Sprintf("open boltdb: %v", err))
	}
	st, err := NewStoreFromDB(db)
	if err != nil {
		panic(fmt.Sprintf("create Store instance: %v", err))
	}
	c.Cleanup(func() { st.Close() })
	return st
}
