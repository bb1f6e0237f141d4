// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"github.com/Qitmeer/phantom/common/anticone"
)

// Params defines a network by its dag parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// DAG
	BlockDelay    float64
	BlockRate     float64
	SecurityLevel float64
}

// AnticoneSize returns the number of red blocks one block can tolerate in
// its anticone before it is classified as red itself. It is derived from
// the network delay, the block rate and the security level of the network.
func (p *Params) AnticoneSize() int {
	return anticone.GetSize(p.BlockDelay, p.BlockRate, p.SecurityLevel)
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name: "mainnet",

	// DAG
	BlockDelay:    15,
	BlockRate:     0.02,
	SecurityLevel: 0.01,
}

// TestNetParams defines the network parameters for the test network.
// The block rate is higher than the main network, so the tolerated
// anticone is wider.
var TestNetParams = Params{
	Name: "testnet",

	// DAG
	BlockDelay:    15,
	BlockRate:     0.05,
	SecurityLevel: 0.01,
}

// PrivNetParams defines the network parameters for the private test
// network.  This network is intended for private use within a group of
// individuals doing simulation testing, so the parameters keep the
// tolerated anticone small.
var PrivNetParams = Params{
	Name: "privnet",

	// DAG
	BlockDelay:    2,
	BlockRate:     0.1,
	SecurityLevel: 0.1,
}

// ActiveNetParams is a pointer to the parameters specific to the
// currently active network.
var ActiveNetParams = &MainNetParams
