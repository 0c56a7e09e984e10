package types

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const HashSize = 32

// Hash is a 32-byte BLAKE2b content hash. It identifies block headers,
// block bodies and stake pools.
type Hash [HashSize]byte

// HashBytes computes the content hash of data.
func HashBytes(data []byte) Hash {
	return blake2b.Sum256(data)
}

// HashFromBytes copies b into a Hash, b must be exactly HashSize bytes.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashSize {
		return h, fmt.Errorf("invalid hash length %d, expected %d", len(b), HashSize)
	}
	copy(h[:], b)
	return h, nil
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Compare orders hashes lexicographically by their bytes.
func (h Hash) Compare(other Hash) int {
	return bytes.Compare(h[:], other[:])
}
