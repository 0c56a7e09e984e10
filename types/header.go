package types

import (
	"errors"
	"fmt"

	"github.com/midgard-chain/midgard/codec"
	"github.com/midgard-chain/midgard/crypto"
)

var ErrHeaderIsNil = errors.New("header is nil")

type (
	// Common is the part of a block header shared by every consensus
	// algorithm. Its canonical bytes are the exact message consensus
	// signatures are computed over, no proof bytes are ever included.
	Common struct {
		Version     BlockVersion
		Date        BlockDate
		ContentSize uint32
		ContentHash Hash
		ParentHash  Hash
	}

	// Header is the canonical block header: the common part plus the proof
	// sealing it. Headers are immutable, an update means building a new one.
	Header struct {
		Common Common
		Proof  Proof
	}
)

func (c *Common) write(w *codec.Writer) {
	w.WriteUint16(uint16(c.Version))
	w.WriteUint32(c.ContentSize)
	w.WriteUint32(c.Date.Epoch)
	w.WriteUint32(c.Date.Slot)
	w.WriteBytes(c.ContentHash[:])
	w.WriteBytes(c.ParentHash[:])
}

// Bytes returns the canonical signed message of the header.
func (c *Common) Bytes() []byte {
	w := codec.NewWriter()
	c.write(w)
	return w.Bytes()
}

// NewHeader builds a header from its parts, rejecting a proof whose
// variant does not match the block version of the common part.
func NewHeader(common Common, proof Proof) (*Header, error) {
	h := &Header{Common: common, Proof: proof}
	if err := h.IsValid(); err != nil {
		return nil, err
	}
	return h, nil
}

// NewNoProofHeader builds an unsealed header, the version is set by the
// builder.
func NewNoProofHeader(common Common) *Header {
	common.Version = BlockVersionNone
	return &Header{Common: common, Proof: &NoProof{}}
}

// NewBftHeader builds a header sealed with the signer's key over the
// canonical bytes of the common part, the version is set by the builder.
func NewBftHeader(common Common, signer crypto.Signer) (*Header, error) {
	common.Version = BlockVersionBft
	verifier, err := signer.Verifier()
	if err != nil {
		return nil, fmt.Errorf("failed to get leader verifier: %w", err)
	}
	pubKey, err := verifier.MarshalPublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get leader public key: %w", err)
	}
	leaderID, err := BftLeaderIDFromBytes(pubKey)
	if err != nil {
		return nil, err
	}
	sig, err := signer.SignBytes(common.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to sign header: %w", err)
	}
	proof := &BftProof{LeaderID: leaderID}
	copy(proof.Signature[:], sig)
	return &Header{Common: common, Proof: proof}, nil
}

// NewGenesisPraosHeader builds a header sealed with a key-evolving
// signature over the canonical bytes of the common part, carrying the
// given VRF eligibility proof. The version is set by the builder.
func NewGenesisPraosHeader(common Common, vrfPublicKey crypto.VRFPublicKey, vrfProof crypto.VRFProof, kesSigner crypto.Signer) (*Header, error) {
	common.Version = BlockVersionGenesisPraos
	verifier, err := kesSigner.Verifier()
	if err != nil {
		return nil, fmt.Errorf("failed to get KES verifier: %w", err)
	}
	pubKey, err := verifier.MarshalPublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get KES public key: %w", err)
	}
	kesPublicKey, err := crypto.KESPublicKeyFromBytes(pubKey)
	if err != nil {
		return nil, err
	}
	kesProof, err := crypto.SignKES(kesSigner, common.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to sign header: %w", err)
	}
	return &Header{
		Common: common,
		Proof: &GenesisPraosProof{
			VRFPublicKey: vrfPublicKey,
			VRFProof:     vrfProof,
			KESPublicKey: kesPublicKey,
			KESProof:     kesProof,
		},
	}, nil
}

// IsValid checks the structural invariants of the header.
func (h *Header) IsValid() error {
	if h == nil {
		return ErrHeaderIsNil
	}
	if !h.Common.Version.Supported() {
		return fmt.Errorf("unsupported block version %d", uint16(h.Common.Version))
	}
	if h.Proof == nil {
		return errors.New("proof is nil")
	}
	if v := h.Proof.blockVersion(); v != h.Common.Version {
		return fmt.Errorf("proof variant %s does not match block version %s", v, h.Common.Version)
	}
	return nil
}

// Serialize returns the canonical frame of the header: a 2-byte body
// length followed by the common part and the proof bytes.
func (h *Header) Serialize() []byte {
	w := codec.NewWriter()
	hole := w.Hole(2)
	h.Common.write(w)
	h.Proof.write(w)
	w.FillHoleUint16(hole, uint16(w.Len()-2))
	return w.Bytes()
}

// Hash is the identity of the header: the content hash of its canonical
// serialization with the length prefix stripped.
func (h *Header) Hash() Hash {
	return HashBytes(h.Serialize()[2:])
}

// VerifyProof checks the proof against the canonical signed message of
// the header. The outcome is two-valued, a well-formed proof that does
// not verify is Failed, not an error.
func (h *Header) VerifyProof() crypto.Verification {
	return h.Proof.verify(h.Common.Bytes())
}

// Leader returns the public leadership identity of the sealing proof,
// nil for unsealed headers.
func (h *Header) Leader() Leader {
	return h.Proof.Leader()
}

// DeserializeHeader decodes a header frame. The leading length field is
// consumed but deliberately not validated against the buffer size.
// Unsupported block versions, including the genesis praos decode path,
// make it panic: callers must never continue with partially decoded
// headers.
func DeserializeHeader(raw []byte) (*Header, error) {
	r := codec.NewReader(raw)
	if _, err := r.ReadUint16(); err != nil {
		return nil, fmt.Errorf("reading header size: %w", err)
	}
	var c Common
	version, err := r.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("reading block version: %w", err)
	}
	c.Version = BlockVersion(version)
	if c.ContentSize, err = r.ReadUint32(); err != nil {
		return nil, fmt.Errorf("reading content size: %w", err)
	}
	if c.Date.Epoch, err = r.ReadUint32(); err != nil {
		return nil, fmt.Errorf("reading epoch: %w", err)
	}
	if c.Date.Slot, err = r.ReadUint32(); err != nil {
		return nil, fmt.Errorf("reading slot: %w", err)
	}
	if err = r.ReadInto(c.ContentHash[:]); err != nil {
		return nil, fmt.Errorf("reading content hash: %w", err)
	}
	if err = r.ReadInto(c.ParentHash[:]); err != nil {
		return nil, fmt.Errorf("reading parent hash: %w", err)
	}

	var proof Proof
	switch c.Version {
	case BlockVersionNone:
		proof = &NoProof{}
	case BlockVersionBft:
		if proof, err = decodeBftProof(r); err != nil {
			return nil, err
		}
	case BlockVersionGenesisPraos:
		panic("decoding genesis praos headers is not supported")
	default:
		panic(fmt.Sprintf("unsupported block version %d", version))
	}
	return &Header{Common: c, Proof: proof}, nil
}
