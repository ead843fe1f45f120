package storage

import (
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var recordsBucket = []byte("records")

// BoltStore keeps all records in a single bucket of one bbolt file. It is
// the production RecordStore: local, synchronous and crash-safe.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) the store file and ensures the records
// bucket exists.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open record store %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recordsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create records bucket")
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) ReadRecord(key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(recordsBucket).Get([]byte(key))
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "read record %q", key)
	}
	return data, nil
}

func (s *BoltStore) WriteRecord(key string, data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(recordsBucket).Put([]byte(key), data)
	})
	return errors.Wrapf(err, "write record %q", key)
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
