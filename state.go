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
	"context"
	"net/http"
)

// Resolution describes how a request's API version was determined.
// It is published to downstream handlers once an instance resolves a
// version, whether or not a versioned route existed for the rewrite.
type Resolution struct {
	// APIVersion is the resolved version number.
	APIVersion int

	// UseDefault reports whether the default version was applied because
	// no instance extracted a version from the request.
	UseDefault bool

	// Count is the number of instances that had examined the request when
	// the version was resolved.
	Count int

	// Descriptor identifies the instance that resolved the version, or
	// the literal "default" when UseDefault is true.
	Descriptor string
}

// contextKey is the type used for context keys in this package.
type contextKey struct{}

// stateKey carries the per-request coordination state shared by all
// instances in one handler chain.
var stateKey contextKey

// requestState is the per-request coordination record. The first instance
// touching a request creates it and threads a pointer through the request
// context, so later sibling instances mutate the same record. Instances in
// one chain run strictly sequentially, so no locking is needed.
type requestState struct {
	attempts   int
	resolution *Resolution
}

// stateFromRequest returns the request's coordination state, creating and
// attaching it on first access. The possibly-rewrapped request must be
// used for the rest of the chain.
func stateFromRequest(r *http.Request) (*requestState, *http.Request) {
	if st, ok := r.Context().Value(stateKey).(*requestState); ok {
		return st, r
	}

	st := &requestState{}

	return st, r.WithContext(context.WithValue(r.Context(), stateKey, st))
}

// ResolutionFromContext returns the version resolution published for this
// request, if any. Handlers behind the middleware use it to pick the
// implementation matching the caller's requested version.
func ResolutionFromContext(ctx context.Context) (Resolution, bool) {
	st, ok := ctx.Value(stateKey).(*requestState)
	if !ok || st.resolution == nil {
		return Resolution{}, false
	}

	return *st.resolution, true
}
