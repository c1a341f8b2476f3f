// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package "resourcename" derives the resource label under which the
// Datadog backend aggregates a span.
package resourcename

import (
	"go.opentelemetry.io/collector/pdata/pcommon"
	conventions "go.opentelemetry.io/collector/semconv/v1.17.0"
)

// FromAttributes returns the resource label for a span. HTTP spans combine
// the request method with the matched route, falling back to the raw
// target when no route was recorded; anything else keeps the fallback
// (the span's own name).
func FromAttributes(attrs pcommon.Map, fallback string) string {
	method, ok := attrs.Get(conventions.AttributeHTTPMethod)
	if !ok {
		return fallback
	}
	if route, ok := attrs.Get(conventions.AttributeHTTPRoute); ok {
		return method.AsString() + " " + route.AsString()
	}
	if target, ok := attrs.Get(conventions.AttributeHTTPTarget); ok {
		return method.AsString() + " " + target.AsString()
	}
	return method.AsString()
}
