// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package "spantype" maps instrumentation scopes to the coarse span
// categories understood by the Datadog trace intake, and derives the
// operation name recorded on translated spans.
package spantype

import (
	"strings"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"
)

// Span types understood by the trace intake.
const (
	TypeCache    = "cache"
	TypeHTTP     = "http"
	TypeMongo    = "mongodb"
	TypeQueue    = "queue"
	TypeRedis    = "redis"
	TypeRPC      = "rpc"
	TypeSQL      = "sql"
	TypeTemplate = "template"
	TypeWeb      = "web"
)

// contribPrefix is shared by the official instrumentation libraries.
const contribPrefix = "go.opentelemetry.io/contrib/instrumentation/"

// instrumentationTypes maps instrumentation scope names to span
// categories. Onboarding a new integration means adding an entry here;
// translation logic never branches on individual scope names.
var instrumentationTypes = map[string]string{
	contribPrefix + "net/http/otelhttp":                                    TypeHTTP,
	contribPrefix + "net/http/httptrace/otelhttptrace":                     TypeHTTP,
	contribPrefix + "github.com/gorilla/mux/otelmux":                       TypeWeb,
	contribPrefix + "github.com/gin-gonic/gin/otelgin":                     TypeWeb,
	contribPrefix + "github.com/labstack/echo/otelecho":                    TypeWeb,
	contribPrefix + "github.com/emicklei/go-restful/otelrestful":           TypeWeb,
	contribPrefix + "google.golang.org/grpc/otelgrpc":                      TypeRPC,
	contribPrefix + "go.mongodb.org/mongo-driver/mongo/otelmongo":          TypeMongo,
	contribPrefix + "github.com/bradfitz/gomemcache/memcache/otelmemcache": TypeCache,
	contribPrefix + "github.com/Shopify/sarama/otelsarama":                 TypeQueue,
	"github.com/redis/go-redis/extra/redisotel":                            TypeRedis,
	"github.com/XSAM/otelsql":                                              TypeSQL,
	"github.com/uptrace/opentelemetry-go-extra/otelgorm":                   TypeSQL,
	"github.com/uptrace/opentelemetry-go-extra/otelsql":                    TypeSQL,
}

// Infer returns the span category for the given instrumentation scope
// name, or an empty string when the scope is unknown or anonymous. An
// empty category leaves the type field unset on the wire.
func Infer(scopeName string) string {
	return instrumentationTypes[scopeName]
}

// OperationName builds the operation name recorded on a translated span
// as "<scope>.<kind>" (for example "go.opentelemetry.io/contrib/.../otelhttp.client").
// Spans with an anonymous scope or an unspecified kind keep their own name.
func OperationName(scope pcommon.InstrumentationScope, span ptrace.Span) string {
	if scope.Name() == "" || span.Kind() == ptrace.SpanKindUnspecified {
		return span.Name()
	}
	return scope.Name() + "." + strings.ToLower(span.Kind().String())
}
