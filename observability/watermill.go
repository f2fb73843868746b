// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package observability

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/sirupsen/logrus"
)

// WatermillLogger routes watermill's logs into logrus.
func WatermillLogger(log logrus.FieldLogger) watermill.LoggerAdapter {
	return &watermillLogger{log: log}
}

type watermillLogger struct {
	log logrus.FieldLogger
}

func (l *watermillLogger) Error(msg string, err error, fields watermill.LogFields) {
	l.log.WithFields(logrus.Fields(fields)).WithError(err).Error(msg)
}

func (l *watermillLogger) Info(msg string, fields watermill.LogFields) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *watermillLogger) Debug(msg string, fields watermill.LogFields) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Trace is folded into debug, watermill traces every message.
func (l *watermillLogger) Trace(msg string, fields watermill.LogFields) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *watermillLogger) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &watermillLogger{log: l.log.WithFields(logrus.Fields(fields))}
}
