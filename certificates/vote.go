package certificates

import (
	"encoding/hex"
	"fmt"

	"github.com/midgard-chain/midgard/codec"
)

const (
	VotePlanIDSize  = 32
	CommitteeIDSize = 32

	// DecryptShareSize is the wire size of one decryption share: a group
	// element and the two scalars of its correctness proof.
	DecryptShareSize = 96
)

type (
	// PayloadType declares whether the ballots of a vote plan are disclosed
	// (public) or encrypted until the committee tallies them (private).
	PayloadType uint8

	// VotePlanID identifies the vote plan a certificate acts on.
	VotePlanID [VotePlanIDSize]byte

	// CommitteeID identifies a tally committee member. The id bytes double
	// as the member's ed25519 public key.
	CommitteeID [CommitteeIDSize]byte

	// DecryptShare is one committee member's share of a private tally
	// decryption, opaque at this layer.
	DecryptShare [DecryptShareSize]byte
)

const (
	PayloadTypePublic  PayloadType = 0
	PayloadTypePrivate PayloadType = 1
)

// PayloadTypeFromByte validates a payload type read off the wire.
func PayloadTypeFromByte(b uint8) (PayloadType, error) {
	switch pt := PayloadType(b); pt {
	case PayloadTypePublic, PayloadTypePrivate:
		return pt, nil
	default:
		return 0, fmt.Errorf("%w: invalid payload type %d", codec.ErrStructureInvalid, b)
	}
}

func (pt PayloadType) String() string {
	switch pt {
	case PayloadTypePublic:
		return "Public"
	case PayloadTypePrivate:
		return "Private"
	default:
		return fmt.Sprintf("PayloadType(%d)", uint8(pt))
	}
}

// VotePlanIDFromBytes copies b into a vote plan id.
func VotePlanIDFromBytes(b []byte) (VotePlanID, error) {
	var id VotePlanID
	if len(b) != VotePlanIDSize {
		return id, fmt.Errorf("invalid vote plan id length %d, expected %d", len(b), VotePlanIDSize)
	}
	copy(id[:], b)
	return id, nil
}

func (id VotePlanID) Bytes() []byte {
	return id[:]
}

func (id VotePlanID) String() string {
	return hex.EncodeToString(id[:])
}

// CommitteeIDFromBytes copies b into a committee id.
func CommitteeIDFromBytes(b []byte) (CommitteeID, error) {
	var id CommitteeID
	if len(b) != CommitteeIDSize {
		return id, fmt.Errorf("invalid committee id length %d, expected %d", len(b), CommitteeIDSize)
	}
	copy(id[:], b)
	return id, nil
}

func (id CommitteeID) Bytes() []byte {
	return id[:]
}

func (id CommitteeID) String() string {
	return hex.EncodeToString(id[:])
}
