// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"github.com/pkg/errors"
)

// Rejection is a precondition violation. A rejected call leaves state untouched
// and the caller may resubmit once the precondition holds.
type Rejection struct {
	Code    string
	Message string
}

func Reject(code, message string) *Rejection {
	return &Rejection{Code: code, Message: message}
}

func (r *Rejection) Error() string {
	return r.Message
}

// AsRejection unwraps err down to a rejection, if it is one.
func AsRejection(err error) (*Rejection, bool) {
	if err == nil {
		return nil, false
	}
	r, ok := errors.Cause(err).(*Rejection)
	return r, ok
}

var (
	ErrNotOwner         = Reject("not-owner", "caller is not contract owner")
	ErrNotOperational   = Reject("contract-paused", "contract is currently not operational")
	ErrAlreadyDeployed  = Reject("already-deployed", "contract is already deployed")
	ErrNegativeValue    = Reject("negative-value", "attached value must not be negative")
	ErrUnexpectedValue  = Reject("unexpected-value", "call does not accept value")
	ErrInsufficientPool = Reject("insufficient-funds", "contract balance is too low")
)

// Guard is a precondition checked before a call mutates anything.
type Guard func(*Call) error

// Require runs guards in order and stops at the first rejection.
func Require(call *Call, guards ...Guard) error {
	for _, g := range guards {
		if err := g(call); err != nil {
			return err
		}
	}
	return nil
}

// NoValue rejects calls carrying value.
func NoValue(call *Call) error {
	if call.Value().Sign() != 0 {
		return ErrUnexpectedValue
	}
	return nil
}
