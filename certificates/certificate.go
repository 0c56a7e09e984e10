package certificates

import (
	"fmt"

	"github.com/midgard-chain/midgard/codec"
	"github.com/midgard-chain/midgard/crypto"
)

// Kind is the wire tag of a certificate. The set is closed, decoding an
// unknown tag is a structural error.
type Kind uint8

const (
	KindPoolRegistration Kind = 1
	KindPoolRetirement   Kind = 2
	KindVoteTally        Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindPoolRegistration:
		return "pool registration"
	case KindPoolRetirement:
		return "pool retirement"
	case KindVoteTally:
		return "vote tally"
	default:
		return fmt.Sprintf("unknown certificate kind %d", uint8(k))
	}
}

type (
	// Certificate is a certificate paired with its authorization, ready
	// for inclusion in a transaction.
	Certificate interface {
		Kind() Kind

		write(w *codec.Writer)
	}

	// SignedPoolRegistration carries a pool registration authorized by one
	// of the declared owners.
	SignedPoolRegistration struct {
		Registration PoolRegistration
		Auth         *PoolOwnerSignature
	}

	// SignedPoolRetirement carries a pool retirement authorized by one of
	// the owners registered for the pool being retired.
	SignedPoolRetirement struct {
		Retirement PoolRetirement
		Auth       *PoolOwnerSignature
	}

	// SignedVoteTally carries a tally request authorized by a tally proof
	// of the matching payload type.
	SignedVoteTally struct {
		Tally VoteTally
		Proof TallyProof
	}
)

// Serialize encodes the certificate as the kind tag followed by the payload
// body and the authorization value.
func Serialize(c Certificate) []byte {
	w := codec.NewWriter()
	w.WriteUint8(uint8(c.Kind()))
	c.write(w)
	return w.Bytes()
}

// Deserialize decodes a certificate produced by Serialize. Trailing bytes
// after the authorization value are a structural error.
func Deserialize(data []byte) (Certificate, error) {
	r := codec.NewReader(data)
	tag, err := r.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("reading certificate kind: %w", err)
	}

	var cert Certificate
	switch Kind(tag) {
	case KindPoolRegistration:
		reg, err := DecodePoolRegistration(r)
		if err != nil {
			return nil, err
		}
		auth, err := DecodePoolOwnerSignature(r)
		if err != nil {
			return nil, err
		}
		cert = &SignedPoolRegistration{Registration: reg, Auth: auth}
	case KindPoolRetirement:
		ret, err := DecodePoolRetirement(r)
		if err != nil {
			return nil, err
		}
		auth, err := DecodePoolOwnerSignature(r)
		if err != nil {
			return nil, err
		}
		cert = &SignedPoolRetirement{Retirement: ret, Auth: auth}
	case KindVoteTally:
		tally, err := DecodeVoteTally(r)
		if err != nil {
			return nil, err
		}
		proof, err := DecodeTallyProof(r)
		if err != nil {
			return nil, err
		}
		cert = &SignedVoteTally{Tally: tally, Proof: proof}
	default:
		return nil, fmt.Errorf("%w: unknown certificate kind %d", codec.ErrStructureInvalid, tag)
	}

	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing byte(s) after certificate", codec.ErrStructureInvalid, r.Remaining())
	}
	return cert, nil
}

func (c *SignedPoolRegistration) Kind() Kind {
	return KindPoolRegistration
}

func (c *SignedPoolRegistration) write(w *codec.Writer) {
	c.Registration.writeData(w)
	c.Auth.writeAuth(w)
}

// Verify checks the authorization against the owner list the registration
// itself declares.
func (c *SignedPoolRegistration) Verify(bindingData []byte) crypto.Verification {
	return c.Auth.Verify(c.Registration.Info.Owners, bindingData)
}

func (c *SignedPoolRetirement) Kind() Kind {
	return KindPoolRetirement
}

func (c *SignedPoolRetirement) write(w *codec.Writer) {
	c.Retirement.writeData(w)
	c.Auth.writeAuth(w)
}

// Verify checks the authorization against the owner list of the registered
// pool, which the caller looks up in the registry.
func (c *SignedPoolRetirement) Verify(owners [][]byte, bindingData []byte) crypto.Verification {
	return c.Auth.Verify(owners, bindingData)
}

func (c *SignedVoteTally) Kind() Kind {
	return KindVoteTally
}

func (c *SignedVoteTally) write(w *codec.Writer) {
	c.Tally.writeData(w)
	c.Proof.writeAuth(w)
}

// Verify checks the tally proof against the payload type the tally body
// declares.
func (c *SignedVoteTally) Verify(bindingData []byte) crypto.Verification {
	return c.Proof.Verify(c.Tally.TallyType(), bindingData)
}
