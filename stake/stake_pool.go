package stake

import (
	"errors"
	"fmt"

	"github.com/midgard-chain/midgard/codec"
	"github.com/midgard-chain/midgard/crypto"
	"github.com/midgard-chain/midgard/types"
)

// PoolID is the content-addressed identity of a stake pool, the hash of
// the pool info's canonical bytes.
type PoolID = types.Hash

// StakePoolInfo describes a stake pool: a registration serial, the
// account keys of the pool owners and the keys the pool seals blocks
// with. The value is treated as immutable once handed to a registry,
// callers must not modify Owners afterwards.
type StakePoolInfo struct {
	Serial       uint64
	Owners       [][]byte
	KESPublicKey crypto.KESPublicKey
	VRFPublicKey crypto.VRFPublicKey
}

func (p *StakePoolInfo) write(w *codec.Writer) {
	w.WriteUint64(p.Serial)
	w.WriteUint8(uint8(len(p.Owners)))
	for _, owner := range p.Owners {
		w.WriteBytes(owner)
	}
	w.WriteBytes(p.KESPublicKey.Bytes())
	w.WriteBytes(p.VRFPublicKey.Bytes())
}

// Bytes returns the canonical bytes of the pool info, the preimage of the
// pool id.
func (p *StakePoolInfo) Bytes() []byte {
	w := codec.NewWriter()
	p.write(w)
	return w.Bytes()
}

// ID computes the pool's identity from its info.
func (p *StakePoolInfo) ID() PoolID {
	return types.HashBytes(p.Bytes())
}

func (p *StakePoolInfo) IsValid() error {
	if p == nil {
		return errors.New("stake pool info is nil")
	}
	if len(p.Owners) == 0 {
		return errors.New("stake pool has no owners")
	}
	if len(p.Owners) > 255 {
		return fmt.Errorf("stake pool has %d owners, the maximum is 255", len(p.Owners))
	}
	for i, owner := range p.Owners {
		if len(owner) != crypto.PublicKeySize {
			return fmt.Errorf("invalid owner key %d length %d, expected %d", i, len(owner), crypto.PublicKeySize)
		}
	}
	return nil
}

// DecodeStakePoolInfo reads pool info from the cursor.
func DecodeStakePoolInfo(r *codec.Reader) (StakePoolInfo, error) {
	var p StakePoolInfo
	var err error
	if p.Serial, err = r.ReadUint64(); err != nil {
		return p, fmt.Errorf("reading pool serial: %w", err)
	}
	count, err := r.ReadUint8()
	if err != nil {
		return p, fmt.Errorf("reading pool owner count: %w", err)
	}
	p.Owners = make([][]byte, count)
	for i := range p.Owners {
		if p.Owners[i], err = r.ReadBytes(crypto.PublicKeySize); err != nil {
			return p, fmt.Errorf("reading pool owner %d: %w", i, err)
		}
	}
	if err = r.ReadInto(p.KESPublicKey[:]); err != nil {
		return p, fmt.Errorf("reading pool KES key: %w", err)
	}
	if err = r.ReadInto(p.VRFPublicKey[:]); err != nil {
		return p, fmt.Errorf("reading pool VRF key: %w", err)
	}
	return p, nil
}
