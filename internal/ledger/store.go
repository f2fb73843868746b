// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"encoding/binary"
	"math/big"

	"github.com/pkg/errors"
)

// Key builds a table key from fixed-width parts, so that prefix scans over the
// leading parts are unambiguous.
func Key(table byte, parts ...[]byte) []byte {
	size := 1
	for _, p := range parts {
		size += len(p)
	}
	key := make([]byte, 0, size)
	key = append(key, table)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}

// Store is a module's namespace inside the call's transaction.
type Store struct {
	txn Txn
	ns  []byte
}

func (s *Store) key(k []byte) []byte {
	full := make([]byte, 0, len(s.ns)+len(k))
	full = append(full, s.ns...)
	return append(full, k...)
}

func (s *Store) Has(key []byte) (bool, error) {
	_, err := s.txn.Get(s.key(key))
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Load decodes the record under key into v and reports whether it existed.
func (s *Store) Load(key []byte, v interface{}) (bool, error) {
	raw, err := s.txn.Get(s.key(key))
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := Deserialize(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Save(key []byte, v interface{}) error {
	raw, err := Serialize(v)
	if err != nil {
		return err
	}
	return s.txn.Set(s.key(key), raw)
}

func (s *Store) Delete(key []byte) error {
	return s.txn.Delete(s.key(key))
}

// Amount returns the value under key, zero when absent.
func (s *Store) Amount(key []byte) (*big.Int, error) {
	raw, err := s.txn.Get(s.key(key))
	if err == ErrNotFound {
		return new(big.Int), nil
	}
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(string(raw), 10)
	if !ok {
		return nil, errors.Errorf("corrupted amount under key %x", key)
	}
	return v, nil
}

// SetAmount stores v; a zero amount removes the key.
func (s *Store) SetAmount(key []byte, v *big.Int) error {
	if v != nil && v.Sign() < 0 {
		return errors.Errorf("negative amount %s", v)
	}
	if IsZero(v) {
		return s.Delete(key)
	}
	return s.txn.Set(s.key(key), []byte(v.String()))
}

func (s *Store) Uint(key []byte) (uint64, error) {
	raw, err := s.txn.Get(s.key(key))
	if err == ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, errors.Errorf("corrupted counter under key %x", key)
	}
	return binary.BigEndian.Uint64(raw), nil
}

func (s *Store) SetUint(key []byte, v uint64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, v)
	return s.txn.Set(s.key(key), raw)
}

func (s *Store) Flag(key []byte) (bool, error) {
	return s.Has(key)
}

// SetFlag marks key as present; false removes it.
func (s *Store) SetFlag(key []byte, on bool) error {
	if !on {
		return s.Delete(key)
	}
	return s.txn.Set(s.key(key), []byte{1})
}

// Suffixes lists what follows prefix in every key of the table scan, in key order.
func (s *Store) Suffixes(prefix []byte) ([][]byte, error) {
	full := s.key(prefix)
	var out [][]byte
	err := s.txn.Iterate(full, func(key, _ []byte) error {
		out = append(out, key[len(full):])
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan state")
	}
	return out, nil
}

// DeletePrefix removes every key under prefix.
func (s *Store) DeletePrefix(prefix []byte) error {
	suffixes, err := s.Suffixes(prefix)
	if err != nil {
		return err
	}
	for _, suffix := range suffixes {
		if err := s.Delete(append(cloneBytes(prefix), suffix...)); err != nil {
			return err
		}
	}
	return nil
}
