// Package store implements persistent command history on top of a
// single-file key-value database.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"bish.sh/pkg/logutil"
	"bish.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

const bucketCmd = "cmd"

// DBStore is a store backed by a database file.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore opens the database file at the given path, creating it and
// the required buckets if they do not exist. A short lock timeout makes
// opening a database held by another process fail fast instead of
// blocking indefinitely.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644,
		&bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}
	logger.Println("opened database at", dbname)
	return &dbStore{db}, nil
}

func (s *dbStore) Close() error {
	return s.db.Close()
}
