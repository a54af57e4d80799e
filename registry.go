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
	"fmt"
	"sync"
)

// Registry coordinates the middleware instances of one host process.
// It owns the claimed-descriptor set and the instance count that the
// per-request deferral logic depends on.
//
// Create one Registry at server startup, pass it to every New call, and
// finish all registrations before accepting traffic. Request handling only
// reads the instance count; the descriptor set is never touched after
// registration.
type Registry struct {
	mu          sync.Mutex
	descriptors map[string]struct{}
	instances   int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		descriptors: make(map[string]struct{}),
	}
}

// register claims a descriptor for a new instance. It fails when the
// descriptor is already in use, leaving the registry unchanged.
func (reg *Registry) register(descriptor string) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, taken := reg.descriptors[descriptor]; taken {
		return fmt.Errorf("%w: %q", ErrDuplicateDescriptor, descriptor)
	}
	reg.descriptors[descriptor] = struct{}{}
	reg.instances++

	return nil
}

// Instances returns the number of instances registered so far.
func (reg *Registry) Instances() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	return reg.instances
}
