// Package store persists benchmark results in a Badger key-value store.
//
// Each Record is a JSON value under the key "run/<instance>/<strategy>", so
// a prefix scan over "run/<instance>/" lists every strategy run on one
// instance in strategy-name order.
package store

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
)

// ErrNotFound is returned by Get for a missing record.
var ErrNotFound = errors.New("store: record not found")

// ErrBadKey is returned for an instance or strategy name containing '/'.
var ErrBadKey = errors.New("store: name must be non-empty and not contain '/'")

const keyPrefix = "run/"

// Record is the outcome of running one strategy on one instance.
type Record struct {
	Instance string        `json:"instance"`
	Strategy string        `json:"strategy"`
	Vertices int           `json:"vertices"`
	Edges    int           `json:"edges"`
	Colors   int           `json:"colors"`
	Verified bool          `json:"verified"`
	Runs     int           `json:"runs"`
	Median   time.Duration `json:"median_ns"`
	Mean     time.Duration `json:"mean_ns"`
	StdDev   time.Duration `json:"stddev_ns"`
	Min      time.Duration `json:"min_ns"`
	Max      time.Duration `json:"max_ns"`
	At       time.Time     `json:"at"`
}

// Options configures Open. An empty Dir implies InMemory.
type Options struct {
	Dir      string
	InMemory bool
}

// Store wraps a Badger database.
type Store struct {
	db *badger.DB
}

// Open opens or creates the store described by opts.
func Open(opts Options) (*Store, error) {
	dbOpts := badger.DefaultOptions(opts.Dir)
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false
	if opts.InMemory || opts.Dir == "" {
		dbOpts.Dir, dbOpts.ValueDir = "", ""
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "store: open %q", opts.Dir)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return errors.Wrap(err, "store: close")
}

func validName(name string) bool {
	return name != "" && !strings.Contains(name, "/")
}

func recordKey(instance, strategy string) ([]byte, error) {
	if !validName(instance) || !validName(strategy) {
		return nil, errors.Wrapf(ErrBadKey, "%q/%q", instance, strategy)
	}

	return []byte(keyPrefix + instance + "/" + strategy), nil
}

// Put stores rec, replacing any earlier record for the same pair.
func (s *Store) Put(rec Record) error {
	key, err := recordKey(rec.Instance, rec.Strategy)
	if err != nil {
		return err
	}
	val, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "store: encode")
	}

	return errors.Wrapf(s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	}), "store: put %s", key)
}

// Get loads the record for instance and strategy.
func (s *Store) Get(instance, strategy string) (*Record, error) {
	key, err := recordKey(instance, strategy)
	if err != nil {
		return nil, err
	}
	var rec Record
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.Wrapf(ErrNotFound, "%s", key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "store: get %s", key)
	}

	return &rec, nil
}

// List returns the records of one instance, or of every instance when
// instance is empty, in key order.
func (s *Store) List(instance string) ([]Record, error) {
	prefix := []byte(keyPrefix)
	if instance != "" {
		if !validName(instance) {
			return nil, errors.Wrapf(ErrBadKey, "%q", instance)
		}
		prefix = []byte(keyPrefix + instance + "/")
	}

	var out []Record
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   100,
			Prefix:         prefix,
		})
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if !bytes.HasPrefix(item.Key(), prefix) {
				break
			}
			var rec Record
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return errors.Wrapf(err, "decode %s", item.Key())
			}
			out = append(out, rec)
		}
		return nil
	})

	return out, errors.Wrap(err, "store: list")
}

// Delete removes the record for instance and strategy; a missing record is
// not an error.
func (s *Store) Delete(instance, strategy string) error {
	key, err := recordKey(instance, strategy)
	if err != nil {
		return err
	}

	return errors.Wrapf(s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	}), "store: delete %s", key)
}
