// Copyright 2026 The apiversion Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package apiversion

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// DefaultDescriptor is the descriptor claimed when WithDescriptor is not used.
const DefaultDescriptor = "api-version"

// defaultDescriptorLiteral is published in a Resolution when the default
// version was applied instead of a requested one.
const defaultDescriptorLiteral = "default"

// Config holds the immutable configuration of one middleware instance.
// It is built once via NewConfig (or New) and never mutated afterwards,
// so request handling reads it without synchronization.
type Config struct {
	validVersions  []int
	defaultVersion int
	passive        bool
	basePath       string
	descriptor     string
	invalidCode    int

	extractor Extractor
	observer  *Observer
	routes    RouteMatcher

	// set by options so validate can enforce mutual exclusion
	vendorName  string
	versionFunc VersionFunc
}

// Option configures a middleware instance.
type Option func(*Config) error

// NewConfig creates a validated Config from the given options.
// Most callers use New, which builds the Config and registers the
// instance in one step; NewConfig is exposed for custom Extractor
// implementations that need access to the configuration.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		basePath:    "/",
		descriptor:  DefaultDescriptor,
		invalidCode: http.StatusUnsupportedMediaType,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validate checks the assembled configuration for errors.
func (c *Config) validate() error {
	if len(c.validVersions) == 0 {
		return ErrNoValidVersions
	}
	seen := make(map[int]struct{}, len(c.validVersions))
	for _, v := range c.validVersions {
		if v <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidVersionValue, v)
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("%w: %d listed twice", ErrDuplicateVersion, v)
		}
		seen[v] = struct{}{}
	}

	if !slices.Contains(c.validVersions, c.defaultVersion) {
		return fmt.Errorf("%w: default %d, valid %v", ErrDefaultNotValid, c.defaultVersion, c.validVersions)
	}

	sources := 0
	for _, set := range []bool{c.vendorName != "", c.versionFunc != nil, c.extractor != nil} {
		if set {
			sources++
		}
	}

	switch {
	case sources == 0:
		return ErrExtractorRequired
	case sources > 1:
		return ErrExtractorConflict
	case c.vendorName != "":
		c.extractor = &mediaTypeExtractor{vendor: c.vendorName}
	case c.versionFunc != nil:
		c.extractor = &callbackExtractor{fn: c.versionFunc}
	}

	return nil
}

// checkVersion validates an extraction outcome against the configured
// version set. The returned action tells the interceptor how to proceed:
// a missing candidate defers to the caller, a malformed or unknown
// candidate fails the request, and a known candidate passes through.
func (c *Config) checkVersion(cand Candidate) (int, candidateCheck) {
	switch {
	case !cand.present:
		return 0, checkNoVersion
	case cand.malformed:
		return 0, checkInvalid
	case slices.Contains(c.validVersions, cand.version):
		return cand.version, checkValid
	default:
		return 0, checkInvalid
	}
}

// candidateCheck is the outcome of validating an extraction candidate.
type candidateCheck int

const (
	checkNoVersion candidateCheck = iota
	checkInvalid
	checkValid
)

// invalidVersionMessage is the body sent with the configured error status
// when a requested version fails validation.
func (c *Config) invalidVersionMessage() string {
	parts := make([]string, len(c.validVersions))
	for i, v := range c.validVersions {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return "invalid API version requested, valid versions: " + strings.Join(parts, ", ")
}

// ValidVersions returns a copy of the configured valid versions.
func (c *Config) ValidVersions() []int {
	return slices.Clone(c.validVersions)
}

// DefaultVersion returns the version applied when no version is requested.
func (c *Config) DefaultVersion() int {
	return c.defaultVersion
}

// PassiveMode reports whether requests without a version bypass the instance.
func (c *Config) PassiveMode() bool {
	return c.passive
}

// BasePath returns the normalized path prefix the instance is active under.
// The returned value always ends in "/".
func (c *Config) BasePath() string {
	return c.basePath
}

// Descriptor returns the string identifying this instance.
func (c *Config) Descriptor() string {
	return c.descriptor
}

// InvalidVersionCode returns the HTTP status used for failed validation.
func (c *Config) InvalidVersionCode() int {
	return c.invalidCode
}

// VendorName returns the configured vendor token, or "" when a version
// function is used instead of the built-in media-type extractor.
func (c *Config) VendorName() string {
	return c.vendorName
}
