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

import "github.com/go-chi/chi/v5"

// ChiRoutes adapts a chi router to the RouteMatcher interface.
//
//	r := chi.NewRouter()
//	mw, err := apiversion.New(reg, apiversion.ChiRoutes(r), ...)
//	r.Use(mw)
func ChiRoutes(r chi.Routes) RouteMatcher {
	return &chiMatcher{routes: r}
}

type chiMatcher struct {
	routes chi.Routes
}

func (m *chiMatcher) Match(method, path string) (string, bool) {
	rctx := chi.NewRouteContext()
	if !m.routes.Match(rctx, method, path) {
		return "", false
	}

	return rctx.RoutePattern(), true
}
