// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package "datadog" translates batches of OTLP spans into the span model
// used by the Datadog trace intake.
//
// The file "translator.go" holds the per-batch translation pipeline.
package datadog

import (
	pb "github.com/DataDog/datadog-agent/pkg/proto/pbgo/trace"
	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"
	conventions "go.opentelemetry.io/collector/semconv/v1.17.0"
	"go.uber.org/zap"

	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/translator/datadog/internal/ddtags"
	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/translator/datadog/internal/errortags"
	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/translator/datadog/internal/idcodec"
	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/translator/datadog/internal/resourcename"
	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/translator/datadog/internal/spantype"
	"github.com/open-telemetry/opentelemetry-collector-contrib/pkg/translator/datadog/internal/tracestate"
)

// Well-known tag and metric keys on translated spans.
const (
	envTag           = "env"
	versionTag       = "version"
	originTag        = tracestate.OriginKey
	sampleRateMetric = "_sample_rate"
)

// sampledFlag is the W3C trace-flags sampled bit within span flags.
const sampledFlag = uint32(0x01)

// Translator converts OTLP span batches into Datadog spans. It holds no
// per-batch state, so a single Translator is safe to share across
// goroutines working on disjoint batches.
type Translator struct {
	logger      *zap.Logger
	cfg         Config
	defaultTags map[string]string
}

// NewTranslator creates a Translator for the given configuration. A
// malformed default-tag string disables default tags for every batch
// rather than applying a partial set.
func NewTranslator(set component.TelemetrySettings, cfg Config) (*Translator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tags, err := ddtags.Parse(cfg.Tags)
	if err != nil {
		set.Logger.Warn("Malformed default tags; continuing without default tags.",
			zap.String("tags", cfg.Tags),
			zap.Error(err))
		tags = map[string]string{}
	}
	return &Translator{
		logger:      set.Logger,
		cfg:         cfg,
		defaultTags: tags,
	}, nil
}

// TranslateTraces converts every span in the batch, preserving input
// order: output span i corresponds to the i-th span of the flattened
// resource/scope/span sequence. A malformed field on one span degrades
// that span's output; it never drops the span or fails the batch.
func (t *Translator) TranslateTraces(td ptrace.Traces) []*pb.Span {
	out := make([]*pb.Span, 0, td.SpanCount())

	resourceSpans := td.ResourceSpans()
	for i := 0; i < resourceSpans.Len(); i++ {
		scopeSpans := resourceSpans.At(i).ScopeSpans()
		for j := 0; j < scopeSpans.Len(); j++ {
			scopeSpan := scopeSpans.At(j)
			scope := scopeSpan.Scope()
			spans := scopeSpan.Spans()
			for k := 0; k < spans.Len(); k++ {
				out = append(out, t.translateSpan(scope, spans.At(k)))
			}
		}
	}
	return out
}

func (t *Translator) translateSpan(scope pcommon.InstrumentationScope, span ptrace.Span) *pb.Span {
	traceID, spanID, parentID := t.decodeIdentifiers(span)

	ddspan := &pb.Span{
		Service:  t.cfg.Service,
		Name:     spantype.OperationName(scope, span),
		Resource: resourcename.FromAttributes(span.Attributes(), span.Name()),
		Type:     spantype.Infer(scope.Name()),
		TraceID:  traceID,
		SpanID:   spanID,
		ParentID: parentID,
		Start:    int64(span.StartTimestamp()),
		Duration: duration(span),
		Meta:     make(map[string]string, span.Attributes().Len()+4),
		Metrics:  make(map[string]float64, 1),
	}

	span.Attributes().Range(func(k string, v pcommon.Value) bool {
		ddspan.Meta[k] = v.AsString()
		return true
	})

	if span.Status().Code() == ptrace.StatusCodeError {
		ddspan.Error = 1
		details := errortags.FromEvents(span.Events())
		if details.Message == "" {
			// No error event recorded a message; the status description
			// is the next best thing.
			details.Message = span.Status().Message()
		}
		// Applied after the attribute copy so extracted error details win
		// over same-named span attributes.
		putNonEmpty(ddspan.Meta, errortags.TypeKey, details.Type)
		putNonEmpty(ddspan.Meta, errortags.MessageKey, details.Message)
		putNonEmpty(ddspan.Meta, errortags.StackKey, details.Stack)
	}

	t.applyDefaultTags(ddspan, span)

	if parentID == 0 {
		if origin, ok := tracestate.Origin(span.TraceState().AsRaw()); ok {
			ddspan.Meta[originTag] = origin
		}
		if t.cfg.Version != "" {
			ddspan.Meta[versionTag] = t.cfg.Version
		}
	}
	if env := t.env(span); env != "" {
		ddspan.Meta[envTag] = env
	}
	if rate, ok := sampleRate(span); ok {
		ddspan.Metrics[sampleRateMetric] = rate
	}

	return ddspan
}

// decodeIdentifiers converts the span's propagated identifiers into their
// 64-bit wire form. One malformed identifier zeroes the whole triple so
// the span still exports instead of failing the batch.
func (t *Translator) decodeIdentifiers(span ptrace.Span) (traceID, spanID, parentID uint64) {
	var err error
	if traceID, err = idcodec.Decode(span.TraceID().String(), idcodec.HexBase); err == nil {
		if spanID, err = idcodec.Decode(span.SpanID().String(), idcodec.HexBase); err == nil {
			parentID, err = idcodec.Decode(span.ParentSpanID().String(), idcodec.HexBase)
		}
	}
	if err != nil {
		t.logger.Warn("Malformed span identifier; exporting span with zeroed identifiers.",
			zap.String("spanName", span.Name()),
			zap.Error(err))
		return 0, 0, 0
	}
	return traceID, spanID, parentID
}

// applyDefaultTags overlays the configured default tags. By default each
// tag key is resolved against the span's own attributes and attached only
// when the span carries it; LiteralDefaultTags attaches the configured
// values verbatim instead.
func (t *Translator) applyDefaultTags(ddspan *pb.Span, span ptrace.Span) {
	for key, value := range t.defaultTags {
		if t.cfg.LiteralDefaultTags {
			ddspan.Meta[key] = value
			continue
		}
		if attr, ok := span.Attributes().Get(key); ok {
			ddspan.Meta[key] = attr.AsString()
		}
	}
}

// env returns the environment to tag the span with: the configured value
// when set, else the span's deployment.environment attribute.
func (t *Translator) env(span ptrace.Span) string {
	if t.cfg.Env != "" {
		return t.cfg.Env
	}
	if v, ok := span.Attributes().Get(conventions.AttributeDeploymentEnvironment); ok {
		return v.AsString()
	}
	return ""
}

// duration returns the span's elapsed nanoseconds. A span whose end
// timestamp was never recorded is still in flight; it exports with a
// zero duration rather than a nonsense negative one.
func duration(span ptrace.Span) int64 {
	if span.EndTimestamp() == 0 {
		return 0
	}
	return int64(span.EndTimestamp()) - int64(span.StartTimestamp())
}

// sampleRate reports the upstream sampling decision: 1 when the trace
// flags mark the span sampled, 0 when the flags are recorded but the
// sampled bit is clear. Spans carrying an all-zero flags word recorded no
// decision and produce no metric.
func sampleRate(span ptrace.Span) (float64, bool) {
	flags := span.Flags()
	if flags == 0 {
		return 0, false
	}
	if flags&sampledFlag != 0 {
		return 1, true
	}
	return 0, true
}

func putNonEmpty(meta map[string]string, key, value string) {
	if value != "" {
		meta[key] = value
	}
}
