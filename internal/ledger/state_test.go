// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func withStates(t *testing.T, test func(t *testing.T, s State)) {
	t.Run("memory", func(t *testing.T) {
		test(t, NewMemoryState())
	})

	t.Run("badger", func(t *testing.T) {
		dir, err := ioutil.TempDir("", "flightsurety-state")
		require.NoError(t, err)
		defer os.RemoveAll(dir)

		log := logrus.New()
		log.SetLevel(logrus.ErrorLevel)
		s, err := OpenBadgerState(dir, 16, log)
		require.NoError(t, err)
		defer s.Close()

		test(t, s)
	})
}

func TestState_Update(t *testing.T) {
	withStates(t, func(t *testing.T, s State) {
		err := s.Update(func(txn Txn) error {
			require.NoError(t, txn.Set([]byte("a"), []byte("1")))
			got, err := txn.Get([]byte("a"))
			require.NoError(t, err)
			require.Equal(t, []byte("1"), got)
			return nil
		})
		require.NoError(t, err)

		err = s.View(func(r Reader) error {
			got, err := r.Get([]byte("a"))
			require.NoError(t, err)
			require.Equal(t, []byte("1"), got)

			_, err = r.Get([]byte("b"))
			require.Equal(t, ErrNotFound, err)
			return nil
		})
		require.NoError(t, err)
	})
}

func TestState_Rollback(t *testing.T) {
	withStates(t, func(t *testing.T, s State) {
		require.NoError(t, s.Update(func(txn Txn) error {
			return txn.Set([]byte("kept"), []byte("1"))
		}))

		failure := errors.New("boom")
		err := s.Update(func(txn Txn) error {
			require.NoError(t, txn.Set([]byte("dropped"), []byte("1")))
			require.NoError(t, txn.Delete([]byte("kept")))
			return failure
		})
		require.Equal(t, failure, err)

		require.NoError(t, s.View(func(r Reader) error {
			_, err := r.Get([]byte("dropped"))
			require.Equal(t, ErrNotFound, err)
			got, err := r.Get([]byte("kept"))
			require.NoError(t, err)
			require.Equal(t, []byte("1"), got)
			return nil
		}))
	})
}

func TestState_Iterate(t *testing.T) {
	withStates(t, func(t *testing.T, s State) {
		require.NoError(t, s.Update(func(txn Txn) error {
			for _, k := range []string{"p1", "p3", "p2", "q1", "o9"} {
				if err := txn.Set([]byte(k), []byte(k)); err != nil {
					return err
				}
			}
			return nil
		}))

		var keys []string
		require.NoError(t, s.View(func(r Reader) error {
			return r.Iterate([]byte("p"), func(key, value []byte) error {
				require.Equal(t, key, value)
				keys = append(keys, string(key))
				return nil
			})
		}))
		require.Equal(t, []string{"p1", "p2", "p3"}, keys)
	})
}

func TestState_Delete(t *testing.T) {
	withStates(t, func(t *testing.T, s State) {
		require.NoError(t, s.Update(func(txn Txn) error {
			return txn.Set([]byte("a"), []byte("1"))
		}))
		require.NoError(t, s.Update(func(txn Txn) error {
			// warm the read cache before deleting
			_, err := txn.Get([]byte("a"))
			require.NoError(t, err)
			return txn.Delete([]byte("a"))
		}))
		require.NoError(t, s.View(func(r Reader) error {
			_, err := r.Get([]byte("a"))
			require.Equal(t, ErrNotFound, err)
			return nil
		}))
	})
}

func TestReadOnlyTxn(t *testing.T) {
	s := NewMemoryState()
	require.NoError(t, s.View(func(r Reader) error {
		txn := readOnlyTxn{r}
		require.Equal(t, ErrReadOnly, txn.Set([]byte("a"), []byte("1")))
		require.Equal(t, ErrReadOnly, txn.Delete([]byte("a")))
		return nil
	}))
}
