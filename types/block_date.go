package types

import "fmt"

// BlockDate is the position of a block in chain time, an epoch number and
// a slot within the epoch.
type BlockDate struct {
	Epoch uint32
	Slot  uint32
}

func (d BlockDate) String() string {
	return fmt.Sprintf("%d.%d", d.Epoch, d.Slot)
}

// Compare orders dates chronologically, first by epoch, then by slot.
func (d BlockDate) Compare(other BlockDate) int {
	switch {
	case d.Epoch != other.Epoch:
		if d.Epoch < other.Epoch {
			return -1
		}
		return 1
	case d.Slot != other.Slot:
		if d.Slot < other.Slot {
			return -1
		}
		return 1
	default:
		return 0
	}
}
