// Copyright (c) 2017-2018 The qitmeer developers
package hash

import (
	"golang.org/x/crypto/blake2b"
)

// HashB returns the blake2b 256 bit digest of b as a byte slice.
func HashB(b []byte) []byte {
	hash := blake2b.Sum256(b)
	return hash[:]
}

// HashH returns the blake2b 256 bit digest of b as a Hash.
func HashH(b []byte) Hash {
	return Hash(blake2b.Sum256(b))
}

// DoubleHashH returns the digest of the digest of b as a Hash.
func DoubleHashH(b []byte) Hash {
	first := blake2b.Sum256(b)
	return Hash(blake2b.Sum256(first[:]))
}
