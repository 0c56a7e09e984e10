package crypto

import (
	"fmt"
)

const (
	KESPublicKeySize = 32
	KESSignatureSize = 64
)

type (
	// KESPublicKey is the public part of a key-evolving signature key.
	KESPublicKey [KESPublicKeySize]byte

	// KESSignature is a forward-secure signature over a block header.
	KESSignature [KESSignatureSize]byte
)

// The scheme used here is single-period and maps directly onto ed25519, the
// key sizes on the wire are the same. Forward security comes from the key
// management layer evolving the underlying signing key between periods.

// KESPublicKeyFromBytes copies b into a KES public key.
func KESPublicKeyFromBytes(b []byte) (KESPublicKey, error) {
	var pk KESPublicKey
	if len(b) != KESPublicKeySize {
		return pk, fmt.Errorf("invalid KES public key length %d, expected %d", len(b), KESPublicKeySize)
	}
	copy(pk[:], b)
	return pk, nil
}

func (pk KESPublicKey) Bytes() []byte {
	return pk[:]
}

func (sig KESSignature) Bytes() []byte {
	return sig[:]
}

// SignKES signs msg with the current period key of the signer.
func SignKES(signer Signer, msg []byte) (KESSignature, error) {
	var sig KESSignature
	if signer == nil {
		return sig, errSignerNil
	}
	b, err := signer.SignBytes(msg)
	if err != nil {
		return sig, err
	}
	if len(b) != KESSignatureSize {
		return sig, fmt.Errorf("invalid KES signature length %d, expected %d", len(b), KESSignatureSize)
	}
	copy(sig[:], b)
	return sig, nil
}

// VerifyKES checks the signature of the current period against the KES
// public key.
func VerifyKES(sig KESSignature, pk KESPublicKey, msg []byte) Verification {
	return VerifySignature(sig[:], pk[:], msg)
}
