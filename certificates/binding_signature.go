package certificates

import (
	"fmt"

	"github.com/midgard-chain/midgard/crypto"
)

// BindingSignature is a single account's signature over the binding data
// of the enclosing transaction. The binding data itself is derived by the
// transaction layer, certificates only carry and check the signature.
type BindingSignature [crypto.SignatureSize]byte

// NewBindingSignature signs the binding data with the account key.
func NewBindingSignature(signer crypto.Signer, bindingData []byte) (BindingSignature, error) {
	var s BindingSignature
	sig, err := signer.SignBytes(bindingData)
	if err != nil {
		return s, fmt.Errorf("failed to sign binding data: %w", err)
	}
	if len(sig) != crypto.SignatureSize {
		return s, fmt.Errorf("invalid signature length %d, expected %d", len(sig), crypto.SignatureSize)
	}
	copy(s[:], sig)
	return s, nil
}

// Verify checks the signature against the account public key and the
// binding data supplied by the transaction layer.
func (s BindingSignature) Verify(pubKey []byte, bindingData []byte) crypto.Verification {
	return crypto.VerifySignature(s[:], pubKey, bindingData)
}

func (s BindingSignature) Bytes() []byte {
	return s[:]
}
