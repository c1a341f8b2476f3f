// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package "tracestate" reads Datadog-specific entries out of the W3C
// trace-state string propagated with a trace.
package tracestate

import (
	"regexp"
)

// OriginKey is the reserved trace-state key carrying the origin of the
// trace (for example "synthetics" or "rum").
const OriginKey = "_dd_origin"

// originRe matches the origin entry anywhere in the list. Pattern matching
// is a shortcut: a full key/value parse of the trace-state header would be
// more robust, but the origin marker is the only entry read here.
var originRe = regexp.MustCompile(`(?:^|[,\s])` + OriginKey + `=([^,\s]+)`)

// Origin extracts the origin marker from a raw trace-state string. The
// second return is false when the state is empty, malformed, or carries no
// origin entry.
func Origin(raw string) (string, bool) {
	m := originRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}
