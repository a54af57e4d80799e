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
	"strings"
)

// WithValidVersions sets the versions clients are allowed to request.
// At least one positive integer is required; duplicates are rejected.
//
// Example:
//
//	apiversion.WithValidVersions(1, 2)
func WithValidVersions(versions ...int) Option {
	return func(cfg *Config) error {
		if len(versions) == 0 {
			return ErrNoValidVersions
		}
		cfg.validVersions = append([]int(nil), versions...)

		return nil
	}
}

// WithDefaultVersion sets the version applied when a request carries no
// version. It must be one of the valid versions.
//
// Example:
//
//	apiversion.WithDefaultVersion(1)
func WithDefaultVersion(version int) Option {
	return func(cfg *Config) error {
		cfg.defaultVersion = version
		return nil
	}
}

// WithVendorName enables the built-in Accept-header extractor for
// vendor-specific media types (RFC 6838 vendor tree).
//
// With vendor name "acme", clients request version 2 by sending:
//
//	Accept: application/vnd.acme.v2+json
//
// Mutually exclusive with WithVersionFunc and WithExtractor.
func WithVendorName(name string) Option {
	return func(cfg *Config) error {
		if name == "" {
			return ErrEmptyVendorName
		}
		cfg.vendorName = name

		return nil
	}
}

// VersionFunc extracts a candidate version from a request. It receives the
// instance's configuration so it can consult the effective valid versions,
// base path or descriptor through the Config accessors.
// Returning ok=false means the request carries no version. Any returned
// integer is taken verbatim as the candidate: values outside the valid
// set (negative ones included) fail validation rather than being treated
// as absent.
type VersionFunc func(r *http.Request, cfg *Config) (version int, ok bool)

// WithVersionFunc enables a custom extraction function in place of the
// built-in Accept-header extractor. Mutually exclusive with WithVendorName
// and WithExtractor.
//
// Example:
//
//	apiversion.WithVersionFunc(func(r *http.Request, _ *apiversion.Config) (int, bool) {
//	    v, err := strconv.Atoi(r.URL.Query().Get("version"))
//	    return v, err == nil
//	})
func WithVersionFunc(fn VersionFunc) Option {
	return func(cfg *Config) error {
		if fn == nil {
			return ErrNilVersionFunc
		}
		cfg.versionFunc = fn

		return nil
	}
}

// WithExtractor installs a caller-supplied Extractor in place of the
// built-in ones, for version sources the Candidate states can express but
// VersionFunc cannot (e.g. reporting a malformed request). Mutually
// exclusive with WithVendorName and WithVersionFunc.
func WithExtractor(e Extractor) Option {
	return func(cfg *Config) error {
		if e == nil {
			return ErrNilExtractor
		}
		cfg.extractor = e

		return nil
	}
}

// WithPassiveMode makes requests without an extractable version bypass the
// instance entirely: no default is applied and no rewrite happens.
func WithPassiveMode() Option {
	return func(cfg *Config) error {
		cfg.passive = true
		return nil
	}
}

// WithBasePath restricts the instance to requests under the given path
// prefix. The default "/" matches every request. The prefix is normalized
// to end in "/".
//
// Example:
//
//	apiversion.WithBasePath("/api/")
func WithBasePath(p string) Option {
	return func(cfg *Config) error {
		if p == "" {
			return ErrEmptyBasePath
		}
		if !strings.HasSuffix(p, "/") {
			p += "/"
		}
		cfg.basePath = p

		return nil
	}
}

// WithDescriptor sets the string identifying this instance. Descriptors
// must be unique per Registry; registration fails on collision.
func WithDescriptor(d string) Option {
	return func(cfg *Config) error {
		if d == "" {
			return ErrEmptyDescriptor
		}
		cfg.descriptor = d

		return nil
	}
}

// WithInvalidVersionCode sets the HTTP status returned when a requested
// version fails validation. Defaults to 415 Unsupported Media Type.
func WithInvalidVersionCode(code int) Option {
	return func(cfg *Config) error {
		if code < 400 || code > 599 {
			return fmt.Errorf("%w: got %d", ErrInvalidStatusCode, code)
		}
		cfg.invalidCode = code

		return nil
	}
}
