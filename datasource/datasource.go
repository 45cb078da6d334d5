// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package datasource is the static registry of named data-source modules.
//
// One source tree produces two deliverables: the interactive viewer bundle
// and the background compute bundle. Each data source contributes one
// entry point to each: a [Provider.NewLayer] constructor consumed by the
// viewer, and a [Provider.NewWorker] constructor consumed by the compute
// program. Provider packages register themselves in init and are selected
// by blank import, so the plugin list is a build-time concern, not part of
// the render-layer runtime:
//
//	import _ "github.com/gogpu/sceneview/datasource/proceduralmesh"
//
// Both cmd/viewer and cmd/worker import the same registration packages and
// therefore agree on the set of available sources.
package datasource

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/sceneview"
	"github.com/gogpu/sceneview/render"
)

// Worker is a data source's background compute entry point. Workers run in
// the compute program and feed content to layers through between-frame
// message passing; they never touch GPU state.
type Worker interface {
	// Run processes background work until ctx is canceled. A nil return
	// means the worker drained its work or stopped cleanly.
	Run(ctx context.Context) error
}

// Provider is one named data-source module, contributing a layer
// constructor to the viewer bundle and a worker constructor to the compute
// bundle.
type Provider interface {
	// Name returns the unique registry name of the source.
	Name() string

	// NewLayer creates the source's render layer on the given device.
	// Resource acquisition failures (shader compilation, allocation)
	// surface here, at construction time.
	NewLayer(dev render.DeviceHandle) (sceneview.RenderLayer, error)

	// NewWorker creates the source's background worker.
	NewWorker() (Worker, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Provider)
)

// Register adds a provider to the registry. It is typically called from a
// provider package's init function. Registering a nil provider, an empty
// name, or a duplicate name is an error.
func Register(p Provider) error {
	if p == nil {
		return fmt.Errorf("datasource: provider must not be nil")
	}
	name := p.Name()
	if name == "" {
		return fmt.Errorf("datasource: provider name must not be empty")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		return fmt.Errorf("datasource: provider %q already registered", name)
	}
	registry[name] = p
	return nil
}

// MustRegister is like [Register] but panics on error, for use in provider
// package init functions where a registration failure is a programming
// error.
func MustRegister(p Provider) {
	if err := Register(p); err != nil {
		panic(err)
	}
}

// Lookup returns the provider registered under name.
func Lookup(name string) (Provider, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// Names returns the registered provider names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
