// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// Keccak256 hashes the concatenation of parts, the way packed ABI encoding does.
func Keccak256(parts ...[]byte) Hash {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	var out Hash
	h.Sum(out[:0])
	return out
}

// Uint256 returns v as a 32 byte big-endian word.
func Uint256(v uint64) []byte {
	word := make([]byte, HashLength)
	binary.BigEndian.PutUint64(word[HashLength-8:], v)
	return word
}

// Mod reduces a hash, read as a big-endian integer, modulo m.
func (h Hash) Mod(m uint64) uint64 {
	n := new(big.Int).SetBytes(h[:])
	return n.Mod(n, new(big.Int).SetUint64(m)).Uint64()
}
