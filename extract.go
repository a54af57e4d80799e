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
	"mime"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// Candidate is the outcome of one extraction attempt. It is one of three
// states: no version requested, a malformed version request, or a concrete
// candidate value. Malformed is distinct from absent — it always fails
// validation regardless of the configured valid versions.
type Candidate struct {
	version   int
	present   bool
	malformed bool
}

// NoVersion returns the Candidate meaning the request carries no version.
func NoVersion() Candidate {
	return Candidate{}
}

// MalformedVersion returns the Candidate meaning the request asked for a
// version in a structurally invalid way. It never passes validation.
func MalformedVersion() Candidate {
	return Candidate{present: true, malformed: true}
}

// VersionCandidate returns a concrete candidate value. The value is taken
// verbatim: whether it is acceptable is decided by validation, not here.
func VersionCandidate(v int) Candidate {
	return Candidate{version: v, present: true}
}

// label renders what the client asked for, for the OnInvalid hook.
// The Accept header is the only built-in source of malformed candidates.
func (c Candidate) label(r *http.Request) string {
	if c.malformed {
		return r.Header.Get("Accept")
	}

	return strconv.Itoa(c.version)
}

// Extractor produces a candidate version from a request. Implementations
// must be side-effect-free and must not panic on malformed input; a bad
// request is a Candidate state, not an extractor failure.
type Extractor interface {
	Extract(r *http.Request, cfg *Config) Candidate
}

// vendorSubtypeRe matches the subtype of a vendor-tree media type carrying
// a version facet, e.g. "vnd.acme.v2" or "vnd.acme.v2+json".
// The "v" prefix is case-sensitive.
var vendorSubtypeRe = regexp.MustCompile(`^vnd\.([^.]+)\.v([0-9]+)(?:\+.+)?$`)

// mediaTypeExtractor reads the version facet from the Accept header.
//
//	Accept: application/vnd.acme.v2+json  ->  candidate 2 (vendor "acme")
type mediaTypeExtractor struct {
	vendor string
}

func (e *mediaTypeExtractor) Extract(r *http.Request, _ *Config) Candidate {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return NoVersion()
	}

	// ParseMediaType validates structure but lowercases the media type;
	// the vendor token and the "v" prefix are matched case-sensitively on
	// the raw header instead.
	if _, _, err := mime.ParseMediaType(accept); err != nil {
		return MalformedVersion()
	}

	raw, _, _ := strings.Cut(accept, ";")
	_, subtype, found := strings.Cut(strings.TrimSpace(raw), "/")
	if !found {
		return MalformedVersion()
	}

	m := vendorSubtypeRe.FindStringSubmatch(subtype)
	if m == nil || m[1] != e.vendor {
		return MalformedVersion()
	}

	v, err := strconv.Atoi(m[2])
	if err != nil {
		// Digits too large for an int fail validation like any other
		// out-of-range candidate.
		return MalformedVersion()
	}

	return VersionCandidate(v)
}

// callbackExtractor delegates extraction to a user-supplied VersionFunc,
// forwarding the instance configuration so the callback can consult it.
// The function's result flows into validation verbatim; a panicking
// callback is not recovered here and fails the request.
type callbackExtractor struct {
	fn VersionFunc
}

func (e *callbackExtractor) Extract(r *http.Request, cfg *Config) Candidate {
	v, ok := e.fn(r, cfg)
	if !ok {
		return NoVersion()
	}

	return VersionCandidate(v)
}
