/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"github.com/pkg/errors"
	"github.com/sasha-s/go-deadlock"
)

// Registry owns one parameter set per network and tracks which of them is
// active.  The sets are built by NewRegistry and never rebuilt; the returned
// *Params are read-only and safe for concurrent readers.  Select may be called
// again to switch networks (tests do this); it excludes concurrent
// ActiveParams calls while it runs.
type Registry struct {
	profiles map[Network]*Params

	mtx    deadlock.RWMutex
	active *Params
}

// NewRegistry builds every network and returns a registry with no active
// network.  Each derived network is built after the one it copies.  A
// genesis mismatch is fatal here, so no registry with missing networks
// is ever handed out.
func NewRegistry() *Registry {
	mainNet := newMainNetParams()
	testNet := newTestNetParams(&mainNet)
	regTest := newRegTestParams(&testNet)
	unitTest := newUnitTestParams(&mainNet)

	return &Registry{
		profiles: map[Network]*Params{
			MainNet:  &mainNet,
			TestNet:  &testNet,
			RegTest:  &regTest,
			UnitTest: &unitTest,
		},
	}
}

// ParamsFor returns the parameters of net without changing the selection.
// An unknown net is fatal.
func (r *Registry) ParamsFor(net Network) *Params {
	params, ok := r.profiles[net]
	if !ok {
		fatal(errors.Wrapf(ErrUnknownNetwork, "network id %d", uint8(net)))
	}
	return params
}

// Select makes net the active network.  An unknown net is fatal.
func (r *Registry) Select(net Network) {
	params := r.ParamsFor(net)

	r.mtx.Lock()
	r.active = params
	r.mtx.Unlock()

	log.Infof("Using %s network parameters", params.Name)
}

// SelectByName resolves name with ParseNetwork and selects it.  Unlike
// Select it reports an unrecognised name as an error, for callers handling
// user input.
func (r *Registry) SelectByName(name string) error {
	net, err := ParseNetwork(name)
	if err != nil {
		return err
	}

	r.Select(net)
	return nil
}

// ActiveParams returns the parameters of the selected network.  Calling it
// before a successful Select is fatal.
func (r *Registry) ActiveParams() *Params {
	r.mtx.RLock()
	params := r.active
	r.mtx.RUnlock()

	if params == nil {
		fatal(ErrNoActiveNetwork)
	}
	return params
}

// ActiveNetwork reports the selected network, if any.
func (r *Registry) ActiveNetwork() (Network, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if r.active == nil {
		return 0, false
	}
	return r.active.Net, true
}

// ModifiableParams returns a write handle over the unittest parameters.  It is
// fatal unless unittest is the active network.
func (r *Registry) ModifiableParams() *ModifiableParams {
	params := r.ActiveParams()
	if params != r.ParamsFor(UnitTest) {
		fatal(errors.Wrapf(ErrNotModifiable, "active network is %s", params.Name))
	}

	return &ModifiableParams{params: params}
}

// defaultRegistry backs the package-level helpers below.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// SelectParams selects net on the process-wide registry.
func SelectParams(net Network) {
	defaultRegistry.Select(net)
}

// ActiveParams returns the active parameters of the process-wide registry.
func ActiveParams() *Params {
	return defaultRegistry.ActiveParams()
}

// ParamsFor returns the parameters of net from the process-wide registry.
func ParamsFor(net Network) *Params {
	return defaultRegistry.ParamsFor(net)
}
