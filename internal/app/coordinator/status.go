// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package coordinator

import (
	"fmt"
)

type AirlineStatus uint8

const (
	Unregistered AirlineStatus = iota
	InRegistration
	Registered
	Funded
)

func (s AirlineStatus) String() string {
	switch s {
	case Unregistered:
		return "unregistered"
	case InRegistration:
		return "in-registration"
	case Registered:
		return "registered"
	case Funded:
		return "funded"
	}
	return fmt.Sprintf("airline-status(%d)", uint8(s))
}

// FlightStatus is the code oracles report for a flight.
type FlightStatus uint8

const (
	StatusUnknown       FlightStatus = 0
	StatusOnTime        FlightStatus = 10
	StatusLateAirline   FlightStatus = 20
	StatusLateWeather   FlightStatus = 30
	StatusLateTechnical FlightStatus = 40
	StatusLateOther     FlightStatus = 50
)

func (s FlightStatus) Valid() bool {
	switch s {
	case StatusUnknown, StatusOnTime, StatusLateAirline, StatusLateWeather, StatusLateTechnical, StatusLateOther:
		return true
	}
	return false
}

func (s FlightStatus) String() string {
	switch s {
	case StatusUnknown:
		return "UNKNOWN"
	case StatusOnTime:
		return "ON_TIME"
	case StatusLateAirline:
		return "LATE_AIRLINE"
	case StatusLateWeather:
		return "LATE_WEATHER"
	case StatusLateTechnical:
		return "LATE_TECHNICAL"
	case StatusLateOther:
		return "LATE_OTHER"
	}
	return fmt.Sprintf("STATUS_%d", uint8(s))
}
