package stake

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/midgard-chain/midgard/codec"
	"github.com/midgard-chain/midgard/crypto"
	test "github.com/midgard-chain/midgard/internal/testutils"
)

func TestStakePoolInfo_Bytes(t *testing.T) {
	info := newTestPool(t, 2)
	data := info.Bytes()

	require.Len(t, data, 8+1+2*crypto.PublicKeySize+crypto.KESPublicKeySize+crypto.VRFPublicKeySize)
	require.EqualValues(t, 2, data[8])
	require.Equal(t, info.Owners[0], data[9:9+crypto.PublicKeySize])
}

func TestStakePoolInfo_ID(t *testing.T) {
	info := newTestPool(t, 1)
	require.Equal(t, info.ID(), info.ID())

	bumped := info
	bumped.Serial++
	require.NotEqual(t, info.ID(), bumped.ID())
}

func TestStakePoolInfo_RoundTrip(t *testing.T) {
	info := newTestPool(t, 3)

	decoded, err := DecodeStakePoolInfo(codec.NewReader(info.Bytes()))
	require.NoError(t, err)
	require.Equal(t, info, decoded)
	require.Equal(t, info.ID(), decoded.ID())
}

func TestDecodeStakePoolInfo_Truncated(t *testing.T) {
	pool := newTestPool(t, 1)
	data := pool.Bytes()
	for _, cut := range []int{0, 5, 9, 20, len(data) - 1} {
		_, err := DecodeStakePoolInfo(codec.NewReader(data[:cut]))
		require.ErrorIs(t, err, codec.ErrStructureInvalid, "cut at %d", cut)
	}
}

func TestStakePoolInfo_IsValid(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		info := newTestPool(t, 1)
		require.NoError(t, info.IsValid())
	})
	t.Run("nil", func(t *testing.T) {
		var info *StakePoolInfo
		require.ErrorContains(t, info.IsValid(), "stake pool info is nil")
	})
	t.Run("no owners", func(t *testing.T) {
		info := newTestPool(t, 1)
		info.Owners = nil
		require.ErrorContains(t, info.IsValid(), "stake pool has no owners")
	})
	t.Run("too many owners", func(t *testing.T) {
		info := newTestPool(t, 1)
		info.Owners = make([][]byte, 256)
		for i := range info.Owners {
			info.Owners[i] = test.RandomBytes(crypto.PublicKeySize)
		}
		require.ErrorContains(t, info.IsValid(), "256 owners")
	})
	t.Run("bad owner key length", func(t *testing.T) {
		info := newTestPool(t, 2)
		info.Owners[1] = test.RandomBytes(16)
		require.ErrorContains(t, info.IsValid(), "invalid owner key 1 length 16")
	})
}

func newTestPool(t *testing.T, owners int) StakePoolInfo {
	t.Helper()
	info := StakePoolInfo{Serial: 1}
	for i := 0; i < owners; i++ {
		info.Owners = append(info.Owners, test.RandomBytes(crypto.PublicKeySize))
	}
	var err error
	info.KESPublicKey, err = crypto.KESPublicKeyFromBytes(test.RandomBytes(crypto.KESPublicKeySize))
	require.NoError(t, err)
	info.VRFPublicKey, err = crypto.VRFPublicKeyFromBytes(test.RandomBytes(crypto.VRFPublicKeySize))
	require.NoError(t, err)
	require.NoError(t, info.IsValid())
	return info
}
