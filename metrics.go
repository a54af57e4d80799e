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

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// NewMeterObserver builds an Observer that records version resolution
// events on OpenTelemetry counters. Pass the result to WithObserver.
//
// Instruments:
//
//	apiversion.resolved  counter, attributes: version, default
//	apiversion.invalid   counter
//	apiversion.rewrites  counter
//
// Example:
//
//	obs, err := apiversion.NewMeterObserver(otel.Meter("myservice"))
//	if err != nil {
//	    return err
//	}
//	mw, err := apiversion.New(reg, routes,
//	    apiversion.WithValidVersions(1, 2),
//	    apiversion.WithDefaultVersion(1),
//	    apiversion.WithVendorName("acme"),
//	    apiversion.WithObserver(apiversion.FromObserver(obs)),
//	)
func NewMeterObserver(meter metric.Meter) (*Observer, error) {
	resolved, err := meter.Int64Counter("apiversion.resolved",
		metric.WithDescription("Requests with a resolved API version"))
	if err != nil {
		return nil, err
	}

	invalid, err := meter.Int64Counter("apiversion.invalid",
		metric.WithDescription("Requests rejected for an invalid API version"))
	if err != nil {
		return nil, err
	}

	rewrites, err := meter.Int64Counter("apiversion.rewrites",
		metric.WithDescription("Requests rewritten to a version-qualified route"))
	if err != nil {
		return nil, err
	}

	return &Observer{
		OnResolved: func(version int, usedDefault bool, _ string) {
			resolved.Add(context.Background(), 1, metric.WithAttributes(
				attribute.Int("version", version),
				attribute.Bool("default", usedDefault),
			))
		},
		OnInvalid: func(string) {
			invalid.Add(context.Background(), 1)
		},
		OnRewrite: func(string, string) {
			rewrites.Add(context.Background(), 1)
		},
	}, nil
}

// FromObserver turns a prebuilt Observer into ObserverOptions for
// WithObserver, copying every set hook.
func FromObserver(obs *Observer) ObserverOption {
	return func(o *Observer) {
		if obs == nil {
			return
		}
		if obs.OnResolved != nil {
			o.OnResolved = obs.OnResolved
		}
		if obs.OnMissing != nil {
			o.OnMissing = obs.OnMissing
		}
		if obs.OnInvalid != nil {
			o.OnInvalid = obs.OnInvalid
		}
		if obs.OnRewrite != nil {
			o.OnRewrite = obs.OnRewrite
		}
	}
}
