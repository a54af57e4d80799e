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
	"strconv"
	"strings"
)

// RouteMatcher is the route-table collaborator. Given a method and a path
// it reports the registered route pattern serving them, if any. Adapters
// for chi, gin and echo ship with this package; any router exposing its
// route table can implement the interface.
type RouteMatcher interface {
	Match(method, path string) (pattern string, ok bool)
}

// versionedPath splices a "v<version>" segment into path immediately after
// basePath. basePath is normalized to end in "/" and path is known to have
// basePath as a prefix. Everything after the inserted segment is the
// original path tail, byte-for-byte, so multi-segment and optional route
// parameters keep working.
//
//	versionedPath("/", "/users", 2)          -> "/v2/users"
//	versionedPath("/api/", "/api/users", 2)  -> "/api/v2/users"
func versionedPath(basePath, path string, version int) string {
	tail := path[len(basePath):]

	var b strings.Builder
	b.Grow(len(basePath) + len(tail) + 12)
	b.WriteString(basePath)
	b.WriteByte('v')
	b.WriteString(strconv.Itoa(version))
	b.WriteByte('/')
	b.WriteString(tail)

	return b.String()
}

// rewrite mutates the request's effective routing path to the
// version-qualified one when a matching versioned route exists. The query
// string and everything else on the request stay untouched. Absence of a
// versioned route is not an error: the request simply proceeds unversioned.
// Reports whether a rewrite happened and the path that was applied.
func (c *Config) rewrite(r *http.Request, version int) (string, bool) {
	target := versionedPath(c.basePath, r.URL.Path, version)

	prefix := c.basePath + "v" + strconv.Itoa(version)
	pattern, ok := c.routes.Match(r.Method, target)
	if !ok || !strings.HasPrefix(pattern, prefix) {
		return "", false
	}

	r.URL.Path = target
	r.URL.RawPath = ""

	return target, true
}

// matchSegments reports whether a router pattern using ":name" parameters
// and a trailing "*" wildcard serves the given concrete path. Shared by
// the gin and echo adapters, whose route tables expose patterns instead of
// a match primitive.
func matchSegments(pattern, path string) bool {
	for pattern != "" || path != "" {
		var pseg, sseg string
		var pmore, smore bool
		pseg, pattern, pmore = strings.Cut(pattern, "/")
		sseg, path, smore = strings.Cut(path, "/")

		switch {
		case strings.HasPrefix(pseg, "*"):
			// Wildcard consumes the rest of the path.
			return true
		case strings.HasPrefix(pseg, ":"):
			if sseg == "" {
				return false
			}
		case pseg != sseg:
			return false
		}

		if pattern == "" && path == "" {
			// A separator left over on one side only is a trailing-slash
			// mismatch: "/v2/widgets" does not serve "/v2/widgets/".
			return pmore == smore
		}
	}

	return true
}
