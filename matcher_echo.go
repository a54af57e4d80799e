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

import "github.com/labstack/echo/v4"

// EchoRoutes adapts a snapshot of echo's route table to the RouteMatcher
// interface. Take the snapshot after all routes are registered:
//
//	e := echo.New()
//	// ... register versioned routes ...
//	mw, err := apiversion.New(reg, apiversion.EchoRoutes(e.Routes()), ...)
func EchoRoutes(routes []*echo.Route) RouteMatcher {
	return &echoMatcher{routes: routes}
}

type echoMatcher struct {
	routes []*echo.Route
}

func (m *echoMatcher) Match(method, path string) (string, bool) {
	for _, rt := range m.routes {
		if rt != nil && rt.Method == method && matchSegments(rt.Path, path) {
			return rt.Path, true
		}
	}

	return "", false
}
