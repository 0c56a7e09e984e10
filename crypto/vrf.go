package crypto

import (
	"fmt"
)

const (
	VRFPublicKeySize = 32
	VRFProofSize     = 96
)

type (
	// VRFPublicKey identifies a leader candidate in the slot lottery.
	VRFPublicKey [VRFPublicKeySize]byte

	// VRFProof is the leadership eligibility proof carried by a
	// Genesis-Praos header. The value is opaque to this package, evaluation
	// and verification belong to the consensus layer's VRF provider.
	VRFProof [VRFProofSize]byte
)

// VRFPublicKeyFromBytes copies b into a VRF public key.
func VRFPublicKeyFromBytes(b []byte) (VRFPublicKey, error) {
	var pk VRFPublicKey
	if len(b) != VRFPublicKeySize {
		return pk, fmt.Errorf("invalid VRF public key length %d, expected %d", len(b), VRFPublicKeySize)
	}
	copy(pk[:], b)
	return pk, nil
}

func (pk VRFPublicKey) Bytes() []byte {
	return pk[:]
}

func (p VRFProof) Bytes() []byte {
	return p[:]
}
