package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	bolt "go.etcd.io/bbolt"

	"github.com/katalvlaran/lvbasket/itemset"
	"github.com/katalvlaran/lvbasket/rules"
)

// Bucket keys
var (
	bucketTransactions = []byte("transactions")
	bucketRules        = []byte("rules")
)

var (
	// ErrEmptyID is returned when a transaction without ID is stored.
	ErrEmptyID = errors.New("store: empty transaction id")

	// ErrNotFound is returned when a rule snapshot or transaction does not exist.
	ErrNotFound = errors.New("store: not found")
)

// BoltStore keeps transactions keyed by ID, and named rule snapshots, in a
// bbolt file.
type BoltStore struct {
	db *bolt.DB
}

// OpenBolt opens (or creates) a bbolt database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketTransactions, bucketRules} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Put stores txs in one write transaction. An existing ID is overwritten.
func (s *BoltStore) Put(txs ...itemset.Transaction) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketTransactions)
		for _, t := range txs {
			if t.ID == "" {
				return ErrEmptyID
			}
			data, err := json.Marshal(t.Items)
			if err != nil {
				return fmt.Errorf("marshal %s: %w", t.ID, err)
			}
			if err := b.Put([]byte(t.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Get returns the transaction with the given ID.
func (s *BoltStore) Get(id string) (itemset.Transaction, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketTransactions).Get([]byte(id)); v != nil {
			// bbolt values are only valid inside the transaction
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil || data == nil {
		return itemset.Transaction{}, false, err
	}

	var items itemset.Itemset
	if err := json.Unmarshal(data, &items); err != nil {
		return itemset.Transaction{}, false, fmt.Errorf("unmarshal %s: %w", id, err)
	}

	return itemset.Transaction{ID: id, Items: items}, true, nil
}

// All returns every stored transaction in ascending ID byte order.
func (s *BoltStore) All() ([]itemset.Transaction, error) {
	var out []itemset.Transaction
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTransactions).ForEach(func(k, v []byte) error {
			var items itemset.Itemset
			if err := json.Unmarshal(v, &items); err != nil {
				return fmt.Errorf("unmarshal %s: %w", k, err)
			}
			out = append(out, itemset.Transaction{ID: string(k), Items: items})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Count returns the number of stored transactions.
func (s *BoltStore) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucketTransactions).Stats().KeyN
		return nil
	})

	return n, err
}

// Delete removes the transaction with the given ID. A missing ID is not an
// error.
func (s *BoltStore) Delete(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketTransactions).Delete([]byte(id))
	})
}

// Clear removes every stored transaction.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketTransactions); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketTransactions)
		return err
	})
}

// ruleSnapshot is the stored form of a rule set.
type ruleSnapshot struct {
	SavedAt time.Time    `json:"saved_at"`
	Rules   []rules.Rule `json:"rules"`
}

// SaveRules stores rs under name, replacing an earlier snapshot.
func (s *BoltStore) SaveRules(name string, rs []rules.Rule) error {
	data, err := json.Marshal(ruleSnapshot{SavedAt: time.Now().UTC(), Rules: rs})
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRules).Put([]byte(name), data)
	})
}

// LoadRules returns the snapshot stored under name and when it was saved.
func (s *BoltStore) LoadRules(name string) ([]rules.Rule, time.Time, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketRules).Get([]byte(name))
		if v == nil {
			return fmt.Errorf("%w: rules %q", ErrNotFound, name)
		}
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	})
	if err != nil {
		return nil, time.Time{}, err
	}

	var snap ruleSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, time.Time{}, fmt.Errorf("unmarshal rules: %w", err)
	}

	return snap.Rules, snap.SavedAt, nil
}
