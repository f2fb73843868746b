// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

const (
	adminTable byte = 0x00

	EventOperatingStatusChanged = "OperatingStatusChanged"
)

var (
	ownerKey  = Key(adminTable, []byte{0})
	pausedKey = Key(adminTable, []byte{1})
)

type OperatingStatusChanged struct {
	Module      Address `json:"module"`
	Operational bool    `json:"operational"`
}

// Admin holds a module's owner and its operational flag.
type Admin struct {
	module Address
}

func NewAdmin(module Address) Admin {
	return Admin{module: module}
}

// Init makes the caller the owner of a freshly deployed module.
func (a Admin) Init(call *Call) error {
	st := call.Store(a.module)
	deployed, err := st.Has(ownerKey)
	if err != nil {
		return err
	}
	if deployed {
		return ErrAlreadyDeployed
	}
	return st.Save(ownerKey, call.Caller().Bytes())
}

func (a Admin) Deployed(call *Call) (bool, error) {
	return call.Store(a.module).Has(ownerKey)
}

// Owner returns the zero address for a module that was never deployed.
func (a Admin) Owner(call *Call) (Address, error) {
	var raw []byte
	found, err := call.Store(a.module).Load(ownerKey, &raw)
	if err != nil || !found {
		return Address{}, err
	}
	return BytesToAddress(raw), nil
}

func (a Admin) IsOperational(call *Call) (bool, error) {
	paused, err := call.Store(a.module).Flag(pausedKey)
	return !paused, err
}

// SetOperatingStatus pauses or resumes every state-changing entry point.
func (a Admin) SetOperatingStatus(call *Call, operational bool) error {
	if err := Require(call, NoValue, a.OnlyOwner); err != nil {
		return err
	}
	if err := call.Store(a.module).SetFlag(pausedKey, !operational); err != nil {
		return err
	}
	call.Emit(a.module, EventOperatingStatusChanged, OperatingStatusChanged{
		Module:      a.module,
		Operational: operational,
	})
	return nil
}

// OnlyOwner is a guard admitting the owner only.
func (a Admin) OnlyOwner(call *Call) error {
	owner, err := a.Owner(call)
	if err != nil {
		return err
	}
	if owner.IsZero() || owner != call.Caller() {
		return ErrNotOwner
	}
	return nil
}

// Operational is a guard rejecting calls while the module is paused.
func (a Admin) Operational(call *Call) error {
	ok, err := a.IsOperational(call)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotOperational
	}
	return nil
}
