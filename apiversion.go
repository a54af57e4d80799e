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
	"net/http"
	"strings"
)

// Middleware wraps an http.Handler with version resolution and rewriting.
type Middleware func(http.Handler) http.Handler

// New builds one middleware instance: it claims the configured descriptor
// in the registry, validates the configuration, and returns a standard
// net/http middleware. Several instances may share a registry and a
// handler chain; they cooperate per request in chain order, and whichever
// extracts a concrete version first wins.
//
// Example:
//
//	reg := apiversion.NewRegistry()
//	r := chi.NewRouter()
//
//	mw, err := apiversion.New(reg, apiversion.ChiRoutes(r),
//	    apiversion.WithValidVersions(1, 2),
//	    apiversion.WithDefaultVersion(1),
//	    apiversion.WithVendorName("acme"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.Use(mw)
func New(reg *Registry, routes RouteMatcher, opts ...Option) (Middleware, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if routes == nil {
		return nil, ErrNilRouteMatcher
	}

	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	cfg.routes = routes

	if err := reg.register(cfg.descriptor); err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cfg.intercept(reg, next, w, r)
		})
	}, nil
}

// intercept runs the resolution pipeline for one instance on one request.
// Control always returns to the chain except when a requested version
// fails validation, which terminates the request with the configured
// status code.
func (c *Config) intercept(reg *Registry, next http.Handler, w http.ResponseWriter, r *http.Request) {
	if !c.underBasePath(r.URL.Path) {
		next.ServeHTTP(w, r)
		return
	}

	st, r := stateFromRequest(r)

	// A sibling already resolved a concrete version for this request;
	// never re-resolve or re-rewrite.
	if st.resolution != nil && !st.resolution.UseDefault {
		next.ServeHTTP(w, r)
		return
	}

	st.attempts++

	cand := c.extractor.Extract(r, c)
	version, check := c.checkVersion(cand)

	switch check {
	case checkInvalid:
		c.notifyInvalid(cand.label(r))
		http.Error(w, c.invalidVersionMessage(), c.invalidCode)
		return

	case checkNoVersion:
		if c.passive {
			next.ServeHTTP(w, r)
			return
		}
		// Let the remaining siblings try to extract a concrete version
		// before falling back to the default.
		if st.attempts < reg.Instances() {
			c.notifyMissing()
			next.ServeHTTP(w, r)
			return
		}
		c.resolve(st, r, c.defaultVersion, true)

	case checkValid:
		c.resolve(st, r, version, false)
	}

	next.ServeHTTP(w, r)
}

// resolve records the resolution on the request state and applies the
// path rewrite when a versioned route exists.
func (c *Config) resolve(st *requestState, r *http.Request, version int, usedDefault bool) {
	descriptor := c.descriptor
	if usedDefault {
		descriptor = defaultDescriptorLiteral
	}

	st.resolution = &Resolution{
		APIVersion: version,
		UseDefault: usedDefault,
		Count:      st.attempts,
		Descriptor: descriptor,
	}
	c.notifyResolved(version, usedDefault, descriptor)

	from := r.URL.Path
	if to, ok := c.rewrite(r, version); ok {
		c.notifyRewrite(from, to)
	}
}

// underBasePath reports whether the request path falls under the
// configured base path. The base path always ends in "/", so "/api/"
// matches "/api/users" but not "/apiary".
func (c *Config) underBasePath(path string) bool {
	return strings.HasPrefix(path, c.basePath)
}
