package certificates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/midgard-chain/midgard/codec"
	test "github.com/midgard-chain/midgard/internal/testutils"
)

func TestPayloadData_MatchesWriterOutput(t *testing.T) {
	tally := NewPrivateVoteTally(randomVotePlanID(t))

	w := codec.NewWriter()
	tally.writeData(w)

	require.Equal(t, w.Bytes(), NewPayloadData(tally).Bytes())
}

func TestPayloadAuthData_MatchesWriterOutput(t *testing.T) {
	signer, committee := newCommittee(t)
	sig, err := NewBindingSignature(signer, test.RandomBytes(16))
	require.NoError(t, err)
	proof := &PublicTallyProof{Committee: committee, Signature: sig}

	w := codec.NewWriter()
	proof.writeAuth(w)

	require.Equal(t, w.Bytes(), NewPayloadAuthData[VoteTally](proof).Bytes())
}

func TestToCertificateSlice(t *testing.T) {
	payload := NewPayloadData(NewPublicVoteTally(randomVotePlanID(t)))
	require.Equal(t, payload.Bytes(), ToCertificateSlice(payload).Bytes())
}

func TestCertificateKinds_CarryDataAndAuth(t *testing.T) {
	retired := newStakePoolInfo(t, 1)
	kinds := []Payload{
		NewPublicVoteTally(randomVotePlanID(t)),
		PoolRegistration{Info: newStakePoolInfo(t, 1)},
		PoolRetirement{PoolID: retired.ID(), RetirementTime: 1},
	}
	for _, kind := range kinds {
		require.True(t, kind.HasData())
		require.True(t, kind.HasAuth())
	}
}
