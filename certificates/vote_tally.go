package certificates

import (
	"fmt"

	"github.com/midgard-chain/midgard/codec"
	"github.com/midgard-chain/midgard/crypto"
)

type (
	// VoteTally requests the tally of a vote plan. The payload type states
	// whether the plan's ballots are public or private, the matching proof
	// kind must authorize the tally.
	VoteTally struct {
		ID      VotePlanID
		Payload PayloadType
	}

	// TallyProof authorizes a VoteTally certificate. Exactly two kinds
	// exist, one per payload type.
	TallyProof interface {
		Auth

		// TallyType is the payload type this proof kind authorizes.
		TallyType() PayloadType
		// Verify checks the proof against the declared tally type and the
		// binding data of the enclosing transaction. A type mismatch fails
		// before any cryptographic check is made.
		Verify(tallyType PayloadType, bindingData []byte) crypto.Verification
	}

	// PublicTallyProof authorizes the tally of an open vote plan with a
	// committee member's signature.
	PublicTallyProof struct {
		Committee CommitteeID
		Signature BindingSignature
	}

	// PrivateTallyProof authorizes the tally of an encrypted vote plan and
	// carries the committee's decryption shares. The shares are not
	// authenticated individually, only the covering signature is checked.
	PrivateTallyProof struct {
		Committee CommitteeID
		Signature BindingSignature
		Shares    []DecryptShare
	}
)

// NewPublicVoteTally builds a tally request for an open vote plan.
func NewPublicVoteTally(id VotePlanID) VoteTally {
	return VoteTally{ID: id, Payload: PayloadTypePublic}
}

// NewPrivateVoteTally builds a tally request for an encrypted vote plan.
func NewPrivateVoteTally(id VotePlanID) VoteTally {
	return VoteTally{ID: id, Payload: PayloadTypePrivate}
}

func (v VoteTally) TallyType() PayloadType {
	return v.Payload
}

func (v VoteTally) HasData() bool {
	return true
}

func (v VoteTally) HasAuth() bool {
	return true
}

func (v VoteTally) writeData(w *codec.Writer) {
	w.WriteBytes(v.ID[:])
	w.WriteUint8(uint8(v.Payload))
}

// DecodeVoteTally reads a vote tally body from the cursor.
func DecodeVoteTally(r *codec.Reader) (VoteTally, error) {
	var v VoteTally
	if err := r.ReadInto(v.ID[:]); err != nil {
		return v, fmt.Errorf("reading vote plan id: %w", err)
	}
	b, err := r.ReadUint8()
	if err != nil {
		return v, fmt.Errorf("reading payload type: %w", err)
	}
	if v.Payload, err = PayloadTypeFromByte(b); err != nil {
		return v, err
	}
	return v, nil
}

func (p *PublicTallyProof) TallyType() PayloadType {
	return PayloadTypePublic
}

func (p *PublicTallyProof) writeAuth(w *codec.Writer) {
	w.WriteUint8(uint8(PayloadTypePublic))
	w.WriteBytes(p.Committee[:])
	w.WriteBytes(p.Signature[:])
}

func (p *PublicTallyProof) Verify(tallyType PayloadType, bindingData []byte) crypto.Verification {
	if tallyType != PayloadTypePublic {
		return crypto.Failed
	}
	return p.Signature.Verify(p.Committee[:], bindingData)
}

func (p *PrivateTallyProof) TallyType() PayloadType {
	return PayloadTypePrivate
}

func (p *PrivateTallyProof) writeAuth(w *codec.Writer) {
	w.WriteUint8(uint8(PayloadTypePrivate))
	w.WriteBytes(p.Committee[:])
	w.WriteBytes(p.Signature[:])
	// the share count is written as eight bytes, DecodeTallyProof reads it
	// back as a single byte
	w.WriteUint64(uint64(len(p.Shares)))
	for _, share := range p.Shares {
		w.WriteBytes(share[:])
	}
}

func (p *PrivateTallyProof) Verify(tallyType PayloadType, bindingData []byte) crypto.Verification {
	if tallyType != PayloadTypePrivate {
		return crypto.Failed
	}
	return p.Signature.Verify(p.Committee[:], bindingData)
}

// DecodeTallyProof reads a tally proof from the cursor, dispatching on the
// kind tag. Unknown tags are a structural error.
func DecodeTallyProof(r *codec.Reader) (TallyProof, error) {
	tag, err := r.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("reading tally proof type: %w", err)
	}
	switch PayloadType(tag) {
	case PayloadTypePublic:
		p := &PublicTallyProof{}
		if err = r.ReadInto(p.Committee[:]); err != nil {
			return nil, fmt.Errorf("reading committee id: %w", err)
		}
		if err = r.ReadInto(p.Signature[:]); err != nil {
			return nil, fmt.Errorf("reading committee signature: %w", err)
		}
		return p, nil
	case PayloadTypePrivate:
		p := &PrivateTallyProof{}
		if err = r.ReadInto(p.Committee[:]); err != nil {
			return nil, fmt.Errorf("reading committee id: %w", err)
		}
		if err = r.ReadInto(p.Signature[:]); err != nil {
			return nil, fmt.Errorf("reading committee signature: %w", err)
		}
		count, err := r.ReadUint8()
		if err != nil {
			return nil, fmt.Errorf("reading share count: %w", err)
		}
		p.Shares = make([]DecryptShare, count)
		for i := range p.Shares {
			if err = r.ReadInto(p.Shares[i][:]); err != nil {
				return nil, fmt.Errorf("reading decrypt share %d: %w", i, err)
			}
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: unknown tally proof type %d", codec.ErrStructureInvalid, tag)
	}
}
