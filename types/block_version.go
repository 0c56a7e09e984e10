package types

import "fmt"

// BlockVersion selects the consensus algorithm a block was produced under
// and thereby the shape of the proof its header carries.
type BlockVersion uint16

const (
	// BlockVersionNone marks blocks without a consensus proof.
	BlockVersionNone BlockVersion = 0
	// BlockVersionBft marks blocks sealed by a single leader signature.
	BlockVersionBft BlockVersion = 1
	// BlockVersionGenesisPraos marks blocks sealed by a VRF eligibility
	// proof and a key-evolving signature.
	BlockVersionGenesisPraos BlockVersion = 2
)

// Supported returns true for the versions this package knows how to
// represent. Unsupported versions must be rejected, never guessed at.
func (v BlockVersion) Supported() bool {
	switch v {
	case BlockVersionNone, BlockVersionBft, BlockVersionGenesisPraos:
		return true
	default:
		return false
	}
}

func (v BlockVersion) String() string {
	switch v {
	case BlockVersionNone:
		return "None"
	case BlockVersionBft:
		return "Bft"
	case BlockVersionGenesisPraos:
		return "GenesisPraos"
	default:
		return fmt.Sprintf("Unsupported(%d)", uint16(v))
	}
}
