// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

const (
	AddressLength = 20
	HashLength    = 32
)

// Address identifies an account or a module on the ledger.
type Address [AddressLength]byte

func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

// ParseAddress accepts 40 hex digits with an optional 0x prefix.
func ParseAddress(s string) (Address, error) {
	raw, err := decodeHex(s, AddressLength)
	if err != nil {
		return Address{}, errors.Wrapf(err, "invalid address %q", s)
	}
	return BytesToAddress(raw), nil
}

// ModuleAddress derives a deterministic address for a named module.
func ModuleAddress(name string) Address {
	h := Keccak256([]byte(name))
	return BytesToAddress(h[HashLength-AddressLength:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a Address) String() string {
	return a.Hex()
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Hash is a keccak256 digest.
type Hash [HashLength]byte

func BytesToHash(b []byte) Hash {
	var h Hash
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
	return h
}

func ParseHash(s string) (Hash, error) {
	raw, err := decodeHex(s, HashLength)
	if err != nil {
		return Hash{}, errors.Wrapf(err, "invalid hash %q", s)
	}
	return BytesToHash(raw), nil
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) String() string {
	return h.Hex()
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func decodeHex(s string, size int) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) != size*2 {
		return nil, errors.Errorf("expected %d hex digits, got %d", size*2, len(s))
	}
	return hex.DecodeString(s)
}
