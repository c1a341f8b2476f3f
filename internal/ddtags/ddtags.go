// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package "ddtags" parses the comma separated "key:value" tag lists that
// Datadog tooling conventionally supplies through the environment.
package ddtags

import (
	"fmt"
	"strings"
)

// Parse converts a raw tag list such as "team:payments,region:us1" into a
// tag map. Entries split on "," and then on the first ":". An empty key,
// an empty value, or a value ending in ":" rejects the whole input, so a
// misconfigured environment cannot attach a partial set of garbage tags to
// every exported span.
func Parse(raw string) (map[string]string, error) {
	tags := make(map[string]string)
	if raw == "" {
		return tags, nil
	}
	for _, pair := range strings.Split(raw, ",") {
		key, value, found := strings.Cut(pair, ":")
		if !found || key == "" || value == "" || strings.HasSuffix(value, ":") {
			return nil, fmt.Errorf("invalid tag %q in %q", pair, raw)
		}
		tags[key] = value
	}
	return tags, nil
}
