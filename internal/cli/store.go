package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v3"

	"github.com/lattice-systems/gridmorph/mapping"
)

// errNotFound reports a catalog lookup miss.
var errNotFound = errors.New("cli: no catalog entry")

// store is a badger-backed catalog of serialized mapping results,
// keyed by lattice mode and normalized graph expression.
type store struct {
	db *badger.DB
}

// openStore opens (or creates) the catalog database at dir. An empty
// dir opens an in-memory database, used by tests.
func openStore(dir string) (*store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil
	opts.MetricsEnabled = false

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	return &store{db: db}, nil
}

// Close releases the underlying database.
func (s *store) Close() error {
	return s.db.Close()
}

// resultKey builds the catalog key for a mode and normalized
// expression. The NUL separator cannot occur in either part.
func resultKey(mode mapping.Mode, expr string) string {
	return mode.String() + "\x00" + expr
}

// splitKey is the inverse of resultKey. Malformed keys come back as a
// bare expression with an empty mode.
func splitKey(key string) (mode, expr string) {
	if i := strings.IndexByte(key, 0); i >= 0 {
		return key[:i], key[i+1:]
	}
	return "", key
}

// put stores val under key, overwriting any previous entry.
func (s *store) put(key string, val []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
}

// get returns the value stored under key, or errNotFound.
func (s *store) get(key string) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", errNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// delete removes the entry under key. Deleting a missing key reports
// errNotFound so callers can distinguish a no-op from a drop.
func (s *store) delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get([]byte(key)); err != nil {
			return err
		}
		return txn.Delete([]byte(key))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %s", errNotFound, key)
	}
	return err
}

// clear drops every entry in the catalog.
func (s *store) clear() error {
	return s.db.DropAll()
}

// keys lists every stored key in lexicographic order.
func (s *store) keys() ([]string, error) {
	var out []string
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: false,
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			out = append(out, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
