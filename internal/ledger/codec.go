// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package ledger

import (
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

var cborHandle = &codec.CborHandle{}

// Serialize encodes a state record as CBOR.
func Serialize(v interface{}) ([]byte, error) {
	var buf []byte
	if err := codec.NewEncoderBytes(&buf, cborHandle).Encode(v); err != nil {
		return nil, errors.Wrap(err, "failed to serialize record")
	}
	return buf, nil
}

func Deserialize(data []byte, v interface{}) error {
	if err := codec.NewDecoderBytes(data, cborHandle).Decode(v); err != nil {
		return errors.Wrap(err, "failed to deserialize record")
	}
	return nil
}
