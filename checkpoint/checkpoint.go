// Package checkpoint stores per-sequence results in a bolt database,
// so an interrupted batch run can be resumed.
package checkpoint

import (
	"bytes"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/codonw/analyzer"
)

// log is the global logging variable.
var log = logging.MustGetLogger("checkpoint")

// MAIN is the bucket name for sequence records.
var MAIN = []byte("main")

// META is the bucket name for the run settings.
var META = []byte("meta")

// SETTINGS is the key of the serialized run settings.
var SETTINGS = []byte("settings")

// Store saves and loads sequence records. Records are buffered and
// written at most every few seconds.
type Store struct {
	db      *bolt.DB
	seconds float64

	mu      sync.Mutex
	last    time.Time
	pending map[string][]byte
}

// Open opens (or creates) a database file.
func Open(path string, seconds float64) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return New(db, seconds), nil
}

// New creates a new Store. db can be nil, in this case nothing is
// stored.
func New(db *bolt.DB, seconds float64) (s *Store) {
	s = &Store{
		db:      db,
		seconds: seconds,
		pending: make(map[string][]byte),
	}
	s.SetNow()
	return
}

// Key returns the database key for the sequence number idx with a
// given name. The key includes the sequence checksum, so an edited
// sequence is not matched with its old record.
func Key(idx int, name, seq string) []byte {
	return []byte(fmt.Sprintf("%09d\t%x\t%s", idx, md5.Sum([]byte(seq)), name))
}

// CheckSettings compares the stored run settings with the current
// ones. If they differ, all stored records are removed. It returns
// true if the stored records can be reused.
func (s *Store) CheckSettings(settings interface{}) (bool, error) {
	if s.db == nil {
		return false, nil
	}
	cur, err := json.Marshal(settings)
	if err != nil {
		return false, err
	}
	old, err := LoadData(s.db, META, SETTINGS)
	if err != nil {
		return false, err
	}
	if bytes.Equal(old, cur) {
		return true, nil
	}
	if old != nil {
		log.Warning("Settings differ from the checkpoint, discarding stored results")
	}
	s.mu.Lock()
	s.pending = make(map[string][]byte)
	s.mu.Unlock()
	err = s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(MAIN) != nil {
			if err := tx.DeleteBucket(MAIN); err != nil {
				return err
			}
		}
		b, err := tx.CreateBucketIfNotExists(META)
		if err != nil {
			return err
		}
		return b.Put(SETTINGS, cur)
	})
	return false, err
}

// Save buffers a record, all the buffered records are written if the
// last write was too long ago.
func (s *Store) Save(key []byte, rec *analyzer.Record) error {
	if s.db == nil {
		return nil
	}
	data, err := json.Marshal(rec)
	if err != nil {
		log.Error("Error serializing record", err)
		return err
	}
	s.mu.Lock()
	s.pending[string(key)] = data
	old := s.old()
	s.mu.Unlock()
	if old {
		return s.Flush()
	}
	return nil
}

// Load returns a stored record or nil if there is none.
func (s *Store) Load(key []byte) (*analyzer.Record, error) {
	s.mu.Lock()
	b, ok := s.pending[string(key)]
	s.mu.Unlock()
	if !ok {
		var err error
		b, err = LoadData(s.db, MAIN, key)
		if err != nil || b == nil {
			return nil, err
		}
	}
	var rec *analyzer.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Flush writes all the buffered records.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Even if saving fails, we do not want to run this code too often.
	s.last = time.Now()
	if s.db == nil || len(s.pending) == 0 {
		return nil
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(MAIN)
		if err != nil {
			return err
		}
		for k, v := range s.pending {
			if err := b.Put([]byte(k), v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("Error saving checkpoint", err)
		return err
	}
	log.Debugf("Saved %d records", len(s.pending))
	s.pending = make(map[string][]byte)
	return nil
}

// Close flushes the records and closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	if err := s.Flush(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}

// Count returns the number of stored records.
func (s *Store) Count() (n int, err error) {
	if s.db == nil {
		return 0, nil
	}
	err = s.db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket(MAIN); b != nil {
			n = b.Stats().KeyN
		}
		return nil
	})
	return
}

// old returns true if the last save was too long ago.
func (s *Store) old() bool {
	return time.Since(s.last).Seconds() > s.seconds
}

// SetNow sets last save time to now.
func (s *Store) SetNow() {
	s.mu.Lock()
	s.last = time.Now()
	s.mu.Unlock()
}

// LoadData loads data from bolt database. The returned slice is a
// copy and remains valid after the transaction.
func LoadData(db *bolt.DB, bucket, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = append(make([]byte, 0, len(v)), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
