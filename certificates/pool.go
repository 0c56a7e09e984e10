package certificates

import (
	"fmt"

	"github.com/midgard-chain/midgard/codec"
	"github.com/midgard-chain/midgard/crypto"
	"github.com/midgard-chain/midgard/stake"
)

type (
	// PoolRegistration announces a stake pool and carries the full
	// registration record the registry will store.
	PoolRegistration struct {
		Info stake.StakePoolInfo
	}

	// PoolRetirement removes a stake pool from the registry. The retirement
	// time is declared by the issuer and is not interpreted here.
	PoolRetirement struct {
		PoolID         stake.PoolID
		RetirementTime uint64
	}

	// PoolOwnerSignature authorizes a pool certificate with the signature
	// of one registered owner, named by its position in the owner list of
	// the pool the certificate concerns.
	PoolOwnerSignature struct {
		OwnerIndex uint8
		Signature  BindingSignature
	}
)

// NewPoolOwnerSignature signs the binding data as the owner at the given
// position.
func NewPoolOwnerSignature(signer crypto.Signer, ownerIndex uint8, bindingData []byte) (*PoolOwnerSignature, error) {
	sig, err := NewBindingSignature(signer, bindingData)
	if err != nil {
		return nil, err
	}
	return &PoolOwnerSignature{OwnerIndex: ownerIndex, Signature: sig}, nil
}

func (c PoolRegistration) HasData() bool {
	return true
}

func (c PoolRegistration) HasAuth() bool {
	return true
}

func (c PoolRegistration) writeData(w *codec.Writer) {
	w.WriteBytes(c.Info.Bytes())
}

// DecodePoolRegistration reads a pool registration body from the cursor.
func DecodePoolRegistration(r *codec.Reader) (PoolRegistration, error) {
	info, err := stake.DecodeStakePoolInfo(r)
	if err != nil {
		return PoolRegistration{}, fmt.Errorf("reading pool registration: %w", err)
	}
	return PoolRegistration{Info: info}, nil
}

func (c PoolRetirement) HasData() bool {
	return true
}

func (c PoolRetirement) HasAuth() bool {
	return true
}

func (c PoolRetirement) writeData(w *codec.Writer) {
	w.WriteBytes(c.PoolID[:])
	w.WriteUint64(c.RetirementTime)
}

// DecodePoolRetirement reads a pool retirement body from the cursor.
func DecodePoolRetirement(r *codec.Reader) (PoolRetirement, error) {
	var c PoolRetirement
	if err := r.ReadInto(c.PoolID[:]); err != nil {
		return c, fmt.Errorf("reading pool id: %w", err)
	}
	var err error
	if c.RetirementTime, err = r.ReadUint64(); err != nil {
		return c, fmt.Errorf("reading retirement time: %w", err)
	}
	return c, nil
}

func (s *PoolOwnerSignature) writeAuth(w *codec.Writer) {
	w.WriteUint8(s.OwnerIndex)
	w.WriteBytes(s.Signature[:])
}

// Verify checks the signature against the owner the index names. An index
// past the end of the owner list fails without any cryptographic check.
func (s *PoolOwnerSignature) Verify(owners [][]byte, bindingData []byte) crypto.Verification {
	if int(s.OwnerIndex) >= len(owners) {
		return crypto.Failed
	}
	return s.Signature.Verify(owners[s.OwnerIndex], bindingData)
}

// DecodePoolOwnerSignature reads a pool certificate authorization from the
// cursor.
func DecodePoolOwnerSignature(r *codec.Reader) (*PoolOwnerSignature, error) {
	s := &PoolOwnerSignature{}
	var err error
	if s.OwnerIndex, err = r.ReadUint8(); err != nil {
		return nil, fmt.Errorf("reading owner index: %w", err)
	}
	if err = r.ReadInto(s.Signature[:]); err != nil {
		return nil, fmt.Errorf("reading owner signature: %w", err)
	}
	return s, nil
}
