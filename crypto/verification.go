package crypto

import "crypto/ed25519"

// Verification is the outcome of a cryptographic check. It is deliberately
// two-valued and distinct from error: a well-formed proof failing its
// signature check is an expected outcome, not a fault in the caller's input.
type Verification int

const (
	Failed Verification = iota
	Success
)

func (v Verification) String() string {
	if v == Success {
		return "Success"
	}
	return "Failed"
}

// VerifySignature checks an ed25519 signature over msg. A malformed public
// key or signature counts as Failed, never as a panic or an error.
func VerifySignature(sig []byte, pubKey []byte, msg []byte) Verification {
	if len(pubKey) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return Failed
	}
	if ed25519.Verify(ed25519.PublicKey(pubKey), msg, sig) {
		return Success
	}
	return Failed
}
