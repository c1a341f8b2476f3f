// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package "errortags" extracts structured error information from span
// events so it can be attached to failed spans as tags.
package errortags

import (
	"go.opentelemetry.io/collector/pdata/ptrace"
)

// Tag keys understood by the Datadog backend for failed spans.
const (
	TypeKey    = "error.type"
	MessageKey = "error.msg"
	StackKey   = "error.stack"
)

// eventName is the span event that instrumentation records error details
// under.
const eventName = "error"

// Details carries the error information recorded on a span's error event.
// Fields default to empty strings when the event (or an attribute on it)
// is absent.
type Details struct {
	Type    string
	Message string
	Stack   string
}

// FromEvents scans the span's events for the first one named "error" and
// reads the conventional error attributes from it. A missing event or
// missing attributes degrade to empty fields, never to an error.
func FromEvents(events ptrace.SpanEventSlice) Details {
	var d Details
	for i := 0; i < events.Len(); i++ {
		event := events.At(i)
		if event.Name() != eventName {
			continue
		}
		attrs := event.Attributes()
		if v, ok := attrs.Get(TypeKey); ok {
			d.Type = v.AsString()
		}
		if v, ok := attrs.Get(MessageKey); ok {
			d.Message = v.AsString()
		}
		if v, ok := attrs.Get(StackKey); ok {
			d.Stack = v.AsString()
		}
		break
	}
	return d
}
