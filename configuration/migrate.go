// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package configuration

type Migrate struct {
	Log Log
	DB  DB
}

func (Migrate) Default() *Migrate {
	d := Default()
	return &Migrate{Log: d.Log, DB: d.DB}
}

func (m *Migrate) GetConfig() interface{} {
	return m
}

func Configurations() map[string]interface{} {
	cfgs := make(map[string]interface{})
	cfgs["flightsurety.yaml"] = Default()
	cfgs["migrate.yaml"] = Migrate{}.Default()
	return cfgs
}
