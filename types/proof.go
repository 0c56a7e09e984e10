package types

import (
	"encoding/hex"
	"fmt"

	"github.com/midgard-chain/midgard/codec"
	"github.com/midgard-chain/midgard/crypto"
)

const (
	BftLeaderIDSize  = crypto.PublicKeySize
	BftSignatureSize = crypto.SignatureSize
)

type (
	// Proof seals a block header under the consensus algorithm announced by
	// the header's block version. The set of implementations is closed:
	// NoProof, BftProof and GenesisPraosProof.
	Proof interface {
		// Leader returns the public leadership identity the proof exposes,
		// nil when the proof carries none. Consumed by the leader schedule,
		// not by header verification.
		Leader() Leader

		blockVersion() BlockVersion
		write(w *codec.Writer)
		verify(message []byte) crypto.Verification
	}

	// Leader is the public leadership identity of a sealed block, either a
	// BftLeader or a GenesisPraosLeader.
	Leader interface {
		isLeader()
	}

	// BftLeaderID is the ed25519 public key of the leader that signed the
	// block.
	BftLeaderID [BftLeaderIDSize]byte

	// BftSignature is the leader's signature over the canonical bytes of
	// the header's Common part.
	BftSignature [BftSignatureSize]byte

	// NoProof seals nothing, used by blocks produced without consensus.
	NoProof struct{}

	// BftProof seals a header with a single leader signature.
	BftProof struct {
		LeaderID  BftLeaderID
		Signature BftSignature
	}

	// GenesisPraosProof seals a header with a VRF leadership eligibility
	// proof and a key-evolving signature.
	GenesisPraosProof struct {
		VRFPublicKey crypto.VRFPublicKey
		VRFProof     crypto.VRFProof
		KESPublicKey crypto.KESPublicKey
		KESProof     crypto.KESSignature
	}

	BftLeader struct {
		ID BftLeaderID
	}

	GenesisPraosLeader struct {
		VRFPublicKey crypto.VRFPublicKey
		KESPublicKey crypto.KESPublicKey
	}
)

// BftLeaderIDFromBytes copies b into a leader id, b must be an ed25519
// public key.
func BftLeaderIDFromBytes(b []byte) (BftLeaderID, error) {
	var id BftLeaderID
	if len(b) != BftLeaderIDSize {
		return id, fmt.Errorf("invalid leader id length %d, expected %d", len(b), BftLeaderIDSize)
	}
	copy(id[:], b)
	return id, nil
}

func (id BftLeaderID) Bytes() []byte {
	return id[:]
}

func (id BftLeaderID) String() string {
	return hex.EncodeToString(id[:])
}

func (BftLeader) isLeader()          {}
func (GenesisPraosLeader) isLeader() {}

func (p *NoProof) blockVersion() BlockVersion {
	return BlockVersionNone
}

func (p *NoProof) write(*codec.Writer) {}

func (p *NoProof) verify([]byte) crypto.Verification {
	return crypto.Success
}

func (p *NoProof) Leader() Leader {
	return nil
}

func (p *BftProof) blockVersion() BlockVersion {
	return BlockVersionBft
}

func (p *BftProof) write(w *codec.Writer) {
	w.WriteBytes(p.LeaderID[:])
	w.WriteBytes(p.Signature[:])
}

func (p *BftProof) verify(message []byte) crypto.Verification {
	return crypto.VerifySignature(p.Signature[:], p.LeaderID[:], message)
}

func (p *BftProof) Leader() Leader {
	return BftLeader{ID: p.LeaderID}
}

func decodeBftProof(r *codec.Reader) (*BftProof, error) {
	p := &BftProof{}
	if err := r.ReadInto(p.LeaderID[:]); err != nil {
		return nil, fmt.Errorf("reading leader id: %w", err)
	}
	if err := r.ReadInto(p.Signature[:]); err != nil {
		return nil, fmt.Errorf("reading leader signature: %w", err)
	}
	return p, nil
}

func (p *GenesisPraosProof) blockVersion() BlockVersion {
	return BlockVersionGenesisPraos
}

func (p *GenesisPraosProof) write(w *codec.Writer) {
	w.WriteBytes(p.VRFPublicKey.Bytes())
	w.WriteBytes(p.VRFProof.Bytes())
	w.WriteBytes(p.KESPublicKey.Bytes())
	w.WriteBytes(p.KESProof.Bytes())
}

func (p *GenesisPraosProof) verify(message []byte) crypto.Verification {
	// TODO: verify the VRF proof as well
	return crypto.VerifyKES(p.KESProof, p.KESPublicKey, message)
}

func (p *GenesisPraosProof) Leader() Leader {
	return GenesisPraosLeader{
		VRFPublicKey: p.VRFPublicKey,
		KESPublicKey: p.KESPublicKey,
	}
}
