// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package "idcodec" converts propagated span identifiers into the fixed
// 64-bit unsigned form used by the Datadog trace intake.
package idcodec

import (
	"errors"
	"math/big"
	"strconv"
)

// HexBase is the base of identifiers rendered from W3C trace context.
const HexBase = 16

// Decode parses id as an unsigned integer in the given base. Identifiers
// wider than 64 bits (such as 128-bit trace ids) are folded to their
// least-significant 64 bits rather than rejected. An empty identifier
// decodes to zero. Non-numeric input returns an error; callers decide how
// to degrade.
func Decode(id string, base int) (uint64, error) {
	if id == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(id, base, 64)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	wide, ok := new(big.Int).SetString(id, base)
	if !ok {
		return 0, err
	}
	// Uint64 keeps the low 64 bits, which is the value modulo 2^64.
	return wide.Uint64(), nil
}
