// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"bytes"
	"sync"

	"github.com/google/btree"
)

const memoryDegree = 32

type memoryItem struct {
	key   []byte
	value []byte
}

func (i memoryItem) Less(than btree.Item) bool {
	return bytes.Compare(i.key, than.(memoryItem).key) < 0
}

// MemoryState keeps state in an ordered in-memory tree. Every Update works on a
// copy-on-write clone which replaces the tree only when fn succeeds.
type MemoryState struct {
	mu   sync.RWMutex
	tree *btree.BTree
}

func NewMemoryState() *MemoryState {
	return &MemoryState{tree: btree.New(memoryDegree)}
}

func (s *MemoryState) Update(fn func(Txn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txn := &memoryTxn{tree: s.tree.Clone()}
	if err := fn(txn); err != nil {
		return err
	}
	s.tree = txn.tree
	return nil
}

func (s *MemoryState) View(fn func(Reader) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(&memoryTxn{tree: s.tree})
}

func (s *MemoryState) Close() error {
	return nil
}

type memoryTxn struct {
	tree *btree.BTree
}

func (t *memoryTxn) Get(key []byte) ([]byte, error) {
	found := t.tree.Get(memoryItem{key: key})
	if found == nil {
		return nil, ErrNotFound
	}
	return cloneBytes(found.(memoryItem).value), nil
}

func (t *memoryTxn) Iterate(prefix []byte, fn func(key, value []byte) error) error {
	var err error
	t.tree.AscendGreaterOrEqual(memoryItem{key: prefix}, func(i btree.Item) bool {
		item := i.(memoryItem)
		if !bytes.HasPrefix(item.key, prefix) {
			return false
		}
		err = fn(cloneBytes(item.key), cloneBytes(item.value))
		return err == nil
	})
	return err
}

func (t *memoryTxn) Set(key, value []byte) error {
	t.tree.ReplaceOrInsert(memoryItem{key: cloneBytes(key), value: cloneBytes(value)})
	return nil
}

func (t *memoryTxn) Delete(key []byte) error {
	t.tree.Delete(memoryItem{key: key})
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
