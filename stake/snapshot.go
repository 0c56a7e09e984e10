package stake

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/midgard-chain/midgard/crypto"
	"github.com/midgard-chain/midgard/tree/avl"
	"github.com/midgard-chain/midgard/util"
)

const snapshotVersion = 1

type (
	snapshotHeader struct {
		_               struct{} `cbor:",toarray"`
		Version         uint8
		PoolRecordCount uint64
	}

	// poolRecord is one registry entry in post-order position. The child
	// flags let the reader reassemble the exact tree shape, so writing a
	// reassembled snapshot reproduces the original byte stream.
	poolRecord struct {
		_        struct{} `cbor:",toarray"`
		Serial   uint64
		Owners   [][]byte
		KESKey   []byte
		VRFKey   []byte
		HasLeft  bool
		HasRight bool
	}
)

// WriteSnapshot streams the registry snapshot to w as a CBOR record
// sequence. Storage of the stream is the caller's business.
func (s DelegationState) WriteSnapshot(w io.Writer) error {
	enc := cbor.NewEncoder(w)
	header := snapshotHeader{Version: snapshotVersion, PoolRecordCount: uint64(s.Len())}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("unable to encode snapshot header: %w", err)
	}
	return s.stakePools.TraversePostOrder(func(_ PoolID, info StakePoolInfo, hasLeft, hasRight bool) error {
		record := poolRecord{
			Serial:   info.Serial,
			Owners:   info.Owners,
			KESKey:   info.KESPublicKey.Bytes(),
			VRFKey:   info.VRFPublicKey.Bytes(),
			HasLeft:  hasLeft,
			HasRight: hasRight,
		}
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("unable to encode pool record: %w", err)
		}
		return nil
	})
}

// ReadSnapshot reassembles a registry snapshot from a stream produced by
// WriteSnapshot.
func ReadSnapshot(r io.Reader) (DelegationState, error) {
	decoder := cbor.NewDecoder(r)
	var header snapshotHeader
	if err := decoder.Decode(&header); err != nil {
		return DelegationState{}, fmt.Errorf("unable to decode snapshot header: %w", err)
	}
	if header.Version != snapshotVersion {
		return DelegationState{}, fmt.Errorf("unsupported snapshot version %d", header.Version)
	}
	root, err := readPoolRecords(decoder, header.PoolRecordCount)
	if err != nil {
		return DelegationState{}, err
	}
	return DelegationState{stakePools: avl.NewWithRoot(root)}, nil
}

func readPoolRecords(decoder *cbor.Decoder, count uint64) (*avl.Node[PoolID, StakePoolInfo], error) {
	if count == 0 {
		return nil, nil
	}

	var nodeStack util.Stack[*avl.Node[PoolID, StakePoolInfo]]
	for i := uint64(0); i < count; i++ {
		var record poolRecord
		if err := decoder.Decode(&record); err != nil {
			return nil, fmt.Errorf("unable to decode pool record: %w", err)
		}

		kesKey, err := crypto.KESPublicKeyFromBytes(record.KESKey)
		if err != nil {
			return nil, fmt.Errorf("invalid pool record: %w", err)
		}
		vrfKey, err := crypto.VRFPublicKeyFromBytes(record.VRFKey)
		if err != nil {
			return nil, fmt.Errorf("invalid pool record: %w", err)
		}
		info := StakePoolInfo{
			Serial:       record.Serial,
			Owners:       record.Owners,
			KESPublicKey: kesKey,
			VRFPublicKey: vrfKey,
		}

		var right, left *avl.Node[PoolID, StakePoolInfo]
		if record.HasRight {
			right = nodeStack.Pop()
		}
		if record.HasLeft {
			left = nodeStack.Pop()
		}

		nodeStack.Push(avl.NewBalancedNode(info.ID(), info, left, right))
	}

	root := nodeStack.Pop()
	if !nodeStack.IsEmpty() {
		return nil, fmt.Errorf("%d unexpected pool record(s)", len(nodeStack))
	}
	return root, nil
}
