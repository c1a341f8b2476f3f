// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package "datadog" translates batches of OTLP spans into the span model
// used by the Datadog trace intake.
//
// The file "config.go" manages interaction with config options.
package datadog

import (
	"errors"
	"fmt"
)

// "Config" defines the batch-level translation settings.
type Config struct {
	// The service name recorded on every translated span. Required.
	Service string `mapstructure:"service"`

	// The deployment environment attached to every span as the "env" tag.
	// When empty, a span's own "deployment.environment" attribute is used
	// instead, if present.
	Env string `mapstructure:"env"`

	// The application version attached to root spans as the "version" tag.
	Version string `mapstructure:"version"`

	// Default tags applied to spans, as a comma separated "key:value"
	// list (the DD_TAGS convention). A malformed list disables default
	// tags entirely rather than applying a partial set.
	Tags string `mapstructure:"tags"`

	// How default tag values are resolved. When false, each default tag
	// key is looked up in the span's own attributes and attached only for
	// spans that carry the key. When true, the configured values are
	// attached verbatim to every span.
	LiteralDefaultTags bool `mapstructure:"literal_default_tags"`

	// Any fields which did not fall into the defined structure.
	UnknownFields map[string]interface{} `mapstructure:",remain"`
}

// Helper to raise errors if there are any unknown fields
func errorIfUnknown(u map[string]interface{}) error {
	for k := range u {
		return fmt.Errorf("found unknown key: %v", k)
	}
	return nil
}

// Verifies that the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Service) == 0 {
		return errors.New("missing required 'service' setting")
	}
	if err := errorIfUnknown(c.UnknownFields); err != nil {
		return err
	}
	return nil
}
