/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

// ModifiableParams is a write handle over the unittest parameters.  It is
// only handed out by Registry.ModifiableParams while unittest is the active
// network and exists for test setup alone.  Callers serialize their use: no
// reads of the unittest Params may run concurrently with a setter.
type ModifiableParams struct {
	params *Params
}

// Params returns the parameters the handle writes to.
func (m *ModifiableParams) Params() *Params {
	return m.params
}

func (m *ModifiableParams) SetSubsidyHalvingInterval(interval int32) {
	m.params.SubsidyHalvingInterval = interval
}

func (m *ModifiableParams) SetEnforceBlockUpgradeMajority(majority int) {
	m.params.EnforceBlockUpgradeMajority = majority
}

func (m *ModifiableParams) SetRejectBlockOutdatedMajority(majority int) {
	m.params.RejectBlockOutdatedMajority = majority
}

func (m *ModifiableParams) SetToCheckBlockUpgradeMajority(majority int) {
	m.params.ToCheckBlockUpgradeMajority = majority
}

func (m *ModifiableParams) SetDefaultConsistencyChecks(enabled bool) {
	m.params.DefaultConsistencyChecks = enabled
}

func (m *ModifiableParams) SetAllowMinDifficultyBlocks(allowed bool) {
	m.params.PowParams.AllowMinDifficultyBlocks = allowed
}

func (m *ModifiableParams) SetSkipProofOfWorkCheck(skip bool) {
	m.params.PowParams.SkipProofOfWorkCheck = skip
}
