// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package tracestate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrigin(t *testing.T) {
	origin, ok := Origin("_dd_origin=synthetics")
	assert.True(t, ok)
	assert.Equal(t, "synthetics", origin)
}

func TestOriginAmongOtherEntries(t *testing.T) {
	origin, ok := Origin("rojo=00f067aa0ba902b7,_dd_origin=rum,congo=t61rcWkgMzE")
	assert.True(t, ok)
	assert.Equal(t, "rum", origin)

	origin, ok = Origin("rojo=00f067aa0ba902b7, _dd_origin=rum")
	assert.True(t, ok)
	assert.Equal(t, "rum", origin)
}

func TestOriginAbsent(t *testing.T) {
	for _, raw := range []string{
		"",
		"rojo=00f067aa0ba902b7",
		"_dd_origin=",
		"x_dd_origin=synthetics",
		"not a tracestate at all",
	} {
		_, ok := Origin(raw)
		assert.False(t, ok, "input %q", raw)
	}
}
