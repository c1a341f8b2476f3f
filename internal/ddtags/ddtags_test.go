// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package ddtags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tags, err := Parse("team:payments,region:us1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"team": "payments", "region": "us1"}, tags)
}

func TestParseEmpty(t *testing.T) {
	tags, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestParseValueWithColon(t *testing.T) {
	// Only the first ":" separates key from value.
	tags, err := Parse("url:example.com:8080")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"url": "example.com:8080"}, tags)
}

func TestParseFailClosed(t *testing.T) {
	for _, raw := range []string{
		"a:b,c",       // entry without value
		"a:b,:c",      // empty key
		"a:",          // empty value
		"a:b:",        // trailing colon
		"a:b,team:x:", // one bad entry poisons the set
		",",
	} {
		tags, err := Parse(raw)
		assert.Error(t, err, "input %q", raw)
		assert.Nil(t, tags, "input %q", raw)
	}
}
