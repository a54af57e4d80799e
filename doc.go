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

// Package apiversion resolves, per request, which API version the caller
// wants and transparently rewrites the request to the version-qualified
// route. Clients call a single stable path (e.g. /users) while the service
// maintains several concurrent implementations (/v1/users, /v2/users)
// behind it.
//
// # Resolution
//
// A middleware instance extracts a candidate version from one of three
// pluggable sources:
//
//   - the Accept header, parsed as a vendor-tree media type
//     (application/vnd.<vendor>.v<N>+json), enabled by WithVendorName
//   - a custom VersionFunc receiving the request and the instance
//     configuration, enabled by WithVersionFunc
//   - a caller-supplied Extractor implementation, enabled by WithExtractor
//
// A candidate outside the configured valid versions (including a
// structurally malformed Accept header or a wrong vendor token) fails the
// request with the configured status code (415 by default) and a message
// enumerating the valid versions. A request carrying no version resolves
// to the default version, unless passive mode is enabled, in which case
// the request passes through untouched.
//
// # Rewriting
//
// Once a version is resolved the middleware asks the router, through the
// RouteMatcher collaborator, whether a route exists at the
// version-qualified path (a v<N> segment spliced in after the base path).
// If one exists the request's routing path is rewritten, preserving the
// query string and every trailing path segment byte-for-byte; if not, the
// request proceeds unversioned. Handlers read the outcome with
// ResolutionFromContext.
//
// Adapters for chi (ChiRoutes), gin (GinRoutes) and echo (EchoRoutes)
// ship with the package.
//
// # Cooperating instances
//
// Several instances can share one handler chain, e.g. one reading the
// Accept header and one reading a query parameter. They coordinate
// through a shared Registry: the first instance (in chain order) that
// extracts a concrete version resolves the request for all of them, every
// instance gets a chance before the default applies, and an invalid
// version from any instance fails the request immediately. Descriptors
// identify instances and must be unique per Registry.
//
//	reg := apiversion.NewRegistry()
//	r := chi.NewRouter()
//
//	accept, err := apiversion.New(reg, apiversion.ChiRoutes(r),
//	    apiversion.WithValidVersions(1, 2),
//	    apiversion.WithDefaultVersion(1),
//	    apiversion.WithVendorName("acme"),
//	    apiversion.WithDescriptor("accept-header"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	query, err := apiversion.New(reg, apiversion.ChiRoutes(r),
//	    apiversion.WithValidVersions(1, 2),
//	    apiversion.WithDefaultVersion(1),
//	    apiversion.WithVersionFunc(queryVersion),
//	    apiversion.WithDescriptor("query-param"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r.Use(accept, query)
//	r.Get("/v1/users", listUsersV1)
//	r.Get("/v2/users", listUsersV2)
//
// # Observability
//
// The package never logs. Hosts attach hooks with WithObserver, for
// example a logger:
//
//	apiversion.WithObserver(
//	    apiversion.OnInvalid(func(candidate string) {
//	        slog.Warn("invalid api version requested", "candidate", candidate)
//	    }),
//	)
//
// or OpenTelemetry counters via NewMeterObserver.
package apiversion
