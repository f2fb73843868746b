// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"sync"

	"github.com/dgraph-io/badger"
	"github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// BadgerState stores contract state in an embedded badger database and keeps
// recently read committed values in an LRU cache.
type BadgerState struct {
	mu    sync.RWMutex
	db    *badger.DB
	cache *lru.Cache
}

func OpenBadgerState(dir string, cacheSize int, log *logrus.Logger) (*BadgerState, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = log

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open state db at %s", dir)
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to init cache")
	}
	return &BadgerState{db: db, cache: cache}, nil
}

func (s *BadgerState) Update(fn func(Txn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &badgerTxn{cache: s.cache, dirty: make(map[string][]byte)}
	err := s.db.Update(func(txn *badger.Txn) error {
		t.txn = txn
		return fn(t)
	})
	if err != nil {
		return err
	}

	for key, value := range t.dirty {
		if value == nil {
			s.cache.Remove(key)
			continue
		}
		s.cache.Add(key, value)
	}
	return nil
}

func (s *BadgerState) View(fn func(Reader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.db.View(func(txn *badger.Txn) error {
		return fn(&badgerTxn{txn: txn, cache: s.cache})
	})
}

func (s *BadgerState) Close() error {
	return errors.Wrap(s.db.Close(), "failed to close state db")
}

type badgerTxn struct {
	txn   *badger.Txn
	cache *lru.Cache
	// Writes of this transaction, nil value marks a deletion.
	dirty map[string][]byte
}

func (t *badgerTxn) Get(key []byte) ([]byte, error) {
	if value, ok := t.dirty[string(key)]; ok {
		if value == nil {
			return nil, ErrNotFound
		}
		return cloneBytes(value), nil
	}
	if cached, ok := t.cache.Get(string(key)); ok {
		if value, ok := cached.([]byte); ok {
			return cloneBytes(value), nil
		}
	}

	item, err := t.txn.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read state")
	}
	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to copy state value")
	}
	if t.dirty != nil {
		t.cache.Add(string(key), cloneBytes(value))
	}
	return value, nil
}

func (t *badgerTxn) Iterate(prefix []byte, fn func(key, value []byte) error) error {
	it := t.txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		value, err := item.ValueCopy(nil)
		if err != nil {
			return errors.Wrap(err, "failed to copy state value")
		}
		if err := fn(item.KeyCopy(nil), value); err != nil {
			return err
		}
	}
	return nil
}

func (t *badgerTxn) Set(key, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if err := t.txn.Set(cloneBytes(key), cloneBytes(value)); err != nil {
		return errors.Wrap(err, "failed to write state")
	}
	t.dirty[string(key)] = cloneBytes(value)
	return nil
}

func (t *badgerTxn) Delete(key []byte) error {
	if err := t.txn.Delete(cloneBytes(key)); err != nil {
		return errors.Wrap(err, "failed to delete state")
	}
	t.dirty[string(key)] = nil
	return nil
}
