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

// This file contains integration tests for cooperating middleware
// instances: an Accept-header instance and a query-parameter fallback
// sharing one registry and one chi router.

//go:build integration

package apiversion_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-chi/chi/v5"

	apiversion "github.com/adam-26/hapi-api-version"
)

var _ = Describe("Cooperating instances", Label("integration"), func() {
	var (
		router     *chi.Mux
		resolution apiversion.Resolution
		published  bool
	)

	newHandler := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			resolution, published = apiversion.ResolutionFromContext(r.Context())
			_, _ = w.Write([]byte(body))
		}
	}

	queryVersion := func(r *http.Request, _ *apiversion.Config) (int, bool) {
		raw := r.URL.Query().Get("version")
		if raw == "" {
			return 0, false
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return -1, true
		}
		return v, true
	}

	BeforeEach(func() {
		published = false
		resolution = apiversion.Resolution{}

		reg := apiversion.NewRegistry()
		router = chi.NewRouter()

		accept, err := apiversion.New(reg, apiversion.ChiRoutes(router),
			apiversion.WithValidVersions(1, 2),
			apiversion.WithDefaultVersion(1),
			apiversion.WithVendorName("acme"),
			apiversion.WithDescriptor("accept-header"),
		)
		Expect(err).NotTo(HaveOccurred())

		query, err := apiversion.New(reg, apiversion.ChiRoutes(router),
			apiversion.WithValidVersions(1, 2),
			apiversion.WithDefaultVersion(1),
			apiversion.WithVersionFunc(queryVersion),
			apiversion.WithDescriptor("query-param"),
		)
		Expect(err).NotTo(HaveOccurred())

		router.Use(accept, query)
		router.Get("/v1/widgets", newHandler("widgets v1"))
		router.Get("/v2/widgets", newHandler("widgets v2"))
	})

	serve := func(target, acceptHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if acceptHeader != "" {
			req.Header.Set("Accept", acceptHeader)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	It("resolves from the Accept header when both sources are present", func() {
		rec := serve("/widgets?version=1", "application/vnd.acme.v2+json")

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal("widgets v2"))
		Expect(published).To(BeTrue())
		Expect(resolution.Descriptor).To(Equal("accept-header"))
		Expect(resolution.Count).To(Equal(1))
	})

	It("falls back to the query parameter when the header is absent", func() {
		rec := serve("/widgets?version=2", "")

		Expect(rec.Body.String()).To(Equal("widgets v2"))
		Expect(resolution.Descriptor).To(Equal("query-param"))
		Expect(resolution.Count).To(Equal(2))
		Expect(resolution.UseDefault).To(BeFalse())
	})

	It("applies the default only after every instance has run", func() {
		rec := serve("/widgets", "")

		Expect(rec.Body.String()).To(Equal("widgets v1"))
		Expect(resolution.Descriptor).To(Equal("default"))
		Expect(resolution.UseDefault).To(BeTrue())
		Expect(resolution.Count).To(Equal(2))
	})

	It("rejects an invalid version from either instance", func() {
		rec := serve("/widgets", "application/vnd.other.v2+json")

		Expect(rec.Code).To(Equal(http.StatusUnsupportedMediaType))
		Expect(rec.Body.String()).To(ContainSubstring("valid versions: 1, 2"))
		Expect(published).To(BeFalse())
	})

	It("rejects an out-of-range query version", func() {
		rec := serve("/widgets?version=9", "")

		Expect(rec.Code).To(Equal(http.StatusUnsupportedMediaType))
		Expect(published).To(BeFalse())
	})
})
