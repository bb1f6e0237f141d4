// Copyright 2017-2018 The qitmeer developers

package hash

import (
	"encoding/hex"
	"fmt"
)

// HashSize is the length of a digest in bytes.
const HashSize = 32

// MaxHashStringSize is the maximum length of the string form of a Hash.
const MaxHashStringSize = HashSize * 2

// ErrHashStrSize is returned when a hash string is longer than
// MaxHashStringSize.
var ErrHashStrSize = fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)

type Hash [HashSize]byte

// ZeroHash is the all zero digest.
var ZeroHash = Hash{}

// String returns the hexadecimal string of the byte-reversed hash.
func (hash Hash) String() string {
	var rev [HashSize]byte
	for i, b := range hash {
		rev[HashSize-1-i] = b
	}
	return hex.EncodeToString(rev[:])
}

func (h Hash) Bytes() []byte { return h[:] }

// CloneBytes returns the hash as a freshly allocated byte slice. Slicing
// the hash directly is cheaper when sharing the backing array is fine.
func (hash *Hash) CloneBytes() []byte {
	newHash := make([]byte, HashSize)
	copy(newHash, hash[:])
	return newHash
}

// SetBytes fills the hash from a byte slice, which must be HashSize long.
func (hash *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", len(newHash),
			HashSize)
	}
	copy(hash[:], newHash)
	return nil
}

// IsEqual returns true if target is the same as hash. Two nil hashes are
// equal, a nil hash never equals a non nil one.
func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// NewHash builds a Hash from a byte slice, which must be HashSize long.
func NewHash(newHash []byte) (*Hash, error) {
	var sh Hash
	if err := sh.SetBytes(newHash); err != nil {
		return nil, err
	}
	return &sh, nil
}

// NewHashFromStr parses the byte-reversed hexadecimal form of a Hash.
// Missing characters turn into zero padding at the end of the Hash.
func NewHashFromStr(hash string) (*Hash, error) {
	ret := new(Hash)
	if err := Decode(ret, hash); err != nil {
		return nil, err
	}
	return ret, nil
}

// Decode parses the byte-reversed hexadecimal form of a Hash into dst.
func Decode(dst *Hash, src string) error {
	if len(src) > MaxHashStringSize {
		return ErrHashStrSize
	}

	// The hex decoder wants an even number of characters, pad short
	// input with one leading zero.
	srcBytes := []byte(src)
	if len(src)%2 != 0 {
		srcBytes = append([]byte{'0'}, srcBytes...)
	}

	// Decode into the tail of a zeroed hash, then reverse it into the
	// destination so that short strings end up zero padded.
	var reversedHash Hash
	_, err := hex.Decode(reversedHash[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return err
	}
	for i, b := range reversedHash[:HashSize/2] {
		dst[i], dst[HashSize-1-i] = reversedHash[HashSize-1-i], b
	}

	return nil
}
