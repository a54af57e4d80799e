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

// Observer holds callbacks for version resolution events. The library
// never logs or records metrics itself; hosts attach their logger or
// meter through these hooks.
type Observer struct {
	// OnResolved is called when a version has been resolved for a request,
	// concrete or default.
	OnResolved func(version int, usedDefault bool, descriptor string)

	// OnMissing is called when an instance finds no version and defers to
	// its siblings.
	OnMissing func()

	// OnInvalid is called when a requested version fails validation.
	// The candidate is the textual form of what the client asked for.
	OnInvalid func(candidate string)

	// OnRewrite is called after the request path was rewritten to a
	// version-qualified route.
	OnRewrite func(from, to string)
}

// ObserverOption configures an Observer.
type ObserverOption func(*Observer)

// WithObserver attaches observability hooks to the instance.
//
// Example:
//
//	apiversion.WithObserver(
//	    apiversion.OnResolved(func(v int, usedDefault bool, descriptor string) {
//	        slog.Debug("api version resolved", "version", v, "default", usedDefault)
//	    }),
//	)
func WithObserver(opts ...ObserverOption) Option {
	return func(cfg *Config) error {
		obs := &Observer{}
		for _, opt := range opts {
			opt(obs)
		}
		cfg.observer = obs

		return nil
	}
}

// OnResolved sets the callback for successful version resolution.
func OnResolved(fn func(version int, usedDefault bool, descriptor string)) ObserverOption {
	return func(o *Observer) {
		o.OnResolved = fn
	}
}

// OnMissing sets the callback for an instance deferring with no version.
func OnMissing(fn func()) ObserverOption {
	return func(o *Observer) {
		o.OnMissing = fn
	}
}

// OnInvalid sets the callback for failed version validation.
func OnInvalid(fn func(candidate string)) ObserverOption {
	return func(o *Observer) {
		o.OnInvalid = fn
	}
}

// OnRewrite sets the callback for a completed path rewrite.
func OnRewrite(fn func(from, to string)) ObserverOption {
	return func(o *Observer) {
		o.OnRewrite = fn
	}
}

func (c *Config) notifyResolved(version int, usedDefault bool, descriptor string) {
	if c.observer != nil && c.observer.OnResolved != nil {
		c.observer.OnResolved(version, usedDefault, descriptor)
	}
}

func (c *Config) notifyMissing() {
	if c.observer != nil && c.observer.OnMissing != nil {
		c.observer.OnMissing()
	}
}

func (c *Config) notifyInvalid(candidate string) {
	if c.observer != nil && c.observer.OnInvalid != nil {
		c.observer.OnInvalid(candidate)
	}
}

func (c *Config) notifyRewrite(from, to string) {
	if c.observer != nil && c.observer.OnRewrite != nil {
		c.observer.OnRewrite(from, to)
	}
}
