// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"errors"
)

var (
	ErrNotFound = errors.New("state key not found")
	ErrReadOnly = errors.New("state is read-only in this call")
)

// Reader gives access to committed state plus the writes of the current transaction.
// Iterate callbacks receive copies and must not write to the transaction.
type Reader interface {
	Get(key []byte) ([]byte, error)
	Iterate(prefix []byte, fn func(key, value []byte) error) error
}

type Txn interface {
	Reader
	Set(key, value []byte) error
	Delete(key []byte) error
}

// State is the host's persistent contract storage. Update applies fn atomically:
// if fn returns an error nothing it wrote becomes visible.
type State interface {
	Update(fn func(Txn) error) error
	View(fn func(Reader) error) error
	Close() error
}

type readOnlyTxn struct {
	Reader
}

func (readOnlyTxn) Set(key, value []byte) error {
	return ErrReadOnly
}

func (readOnlyTxn) Delete(key []byte) error {
	return ErrReadOnly
}
