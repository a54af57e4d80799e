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

import "errors"

// Static errors for configuration and registration validation.
// These errors should be wrapped with fmt.Errorf and %w when context is needed.
var (
	// Configuration errors
	ErrNoValidVersions     = errors.New("at least one valid version is required")
	ErrInvalidVersionValue = errors.New("versions must be positive integers")
	ErrDuplicateVersion    = errors.New("valid versions must be distinct")
	ErrDefaultNotValid     = errors.New("default version must be one of the valid versions")
	ErrExtractorRequired   = errors.New("a vendor name, version function or extractor is required")
	ErrExtractorConflict   = errors.New("vendor name, version function and extractor are mutually exclusive")
	ErrEmptyVendorName     = errors.New("vendor name cannot be empty")
	ErrNilVersionFunc      = errors.New("version function cannot be nil")
	ErrNilExtractor        = errors.New("extractor cannot be nil")
	ErrEmptyBasePath       = errors.New("base path cannot be empty")
	ErrEmptyDescriptor     = errors.New("descriptor cannot be empty")
	ErrInvalidStatusCode   = errors.New("invalid version status code must be a 4xx or 5xx code")

	// Registration errors
	ErrNilRegistry         = errors.New("registry cannot be nil")
	ErrNilRouteMatcher     = errors.New("route matcher cannot be nil")
	ErrDuplicateDescriptor = errors.New("descriptor already registered")
)
