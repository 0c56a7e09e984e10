package certificates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/midgard-chain/midgard/codec"
	"github.com/midgard-chain/midgard/crypto"
	test "github.com/midgard-chain/midgard/internal/testutils"
	testsig "github.com/midgard-chain/midgard/internal/testutils/sig"
)

func TestCertificate_RoundTrip(t *testing.T) {
	bindingData := test.RandomBytes(32)
	info := newStakePoolInfo(t, 1)
	signer, committee := newCommittee(t)

	ownerAuth, err := NewPoolOwnerSignature(signer, 0, bindingData)
	require.NoError(t, err)
	tallySig, err := NewBindingSignature(signer, bindingData)
	require.NoError(t, err)

	tests := []struct {
		name string
		cert Certificate
		kind Kind
	}{
		{
			name: "pool registration",
			cert: &SignedPoolRegistration{Registration: PoolRegistration{Info: info}, Auth: ownerAuth},
			kind: KindPoolRegistration,
		},
		{
			name: "pool retirement",
			cert: &SignedPoolRetirement{
				Retirement: PoolRetirement{PoolID: info.ID(), RetirementTime: 99},
				Auth:       ownerAuth,
			},
			kind: KindPoolRetirement,
		},
		{
			name: "vote tally",
			cert: &SignedVoteTally{
				Tally: NewPublicVoteTally(randomVotePlanID(t)),
				Proof: &PublicTallyProof{Committee: committee, Signature: tallySig},
			},
			kind: KindVoteTally,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := Serialize(tt.cert)
			require.EqualValues(t, tt.kind, data[0])
			require.Equal(t, tt.kind, tt.cert.Kind())

			decoded, err := Deserialize(data)
			require.NoError(t, err)
			require.Equal(t, tt.cert, decoded)
		})
	}
}

func TestDeserialize_Invalid(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Deserialize(nil)
		require.ErrorIs(t, err, codec.ErrStructureInvalid)
	})
	t.Run("unknown kind", func(t *testing.T) {
		_, err := Deserialize([]byte{9, 1, 2, 3})
		require.ErrorIs(t, err, codec.ErrStructureInvalid)
		require.ErrorContains(t, err, "unknown certificate kind 9")
	})
	t.Run("trailing bytes", func(t *testing.T) {
		signer, committee := newCommittee(t)
		sig, err := NewBindingSignature(signer, test.RandomBytes(32))
		require.NoError(t, err)
		cert := &SignedVoteTally{
			Tally: NewPublicVoteTally(randomVotePlanID(t)),
			Proof: &PublicTallyProof{Committee: committee, Signature: sig},
		}
		_, err = Deserialize(append(Serialize(cert), 0))
		require.ErrorIs(t, err, codec.ErrStructureInvalid)
		require.ErrorContains(t, err, "trailing")
	})
	t.Run("private tally with shares", func(t *testing.T) {
		// the share count is written as eight bytes and read back as one,
		// so the leftover count bytes surface as trailing data
		signer, committee := newCommittee(t)
		sig, err := NewBindingSignature(signer, test.RandomBytes(32))
		require.NoError(t, err)
		cert := &SignedVoteTally{
			Tally: NewPrivateVoteTally(randomVotePlanID(t)),
			Proof: &PrivateTallyProof{Committee: committee, Signature: sig, Shares: randomShares(t, 1)},
		}
		_, err = Deserialize(Serialize(cert))
		require.ErrorIs(t, err, codec.ErrStructureInvalid)
		require.ErrorContains(t, err, "trailing")
	})
}

func TestSignedCertificate_Verify(t *testing.T) {
	bindingData := test.RandomBytes(32)
	signer, verifier := testsig.CreateSignerAndVerifier(t)
	ownerKey, err := verifier.MarshalPublicKey()
	require.NoError(t, err)

	info := newStakePoolInfo(t, 1)
	info.Owners = [][]byte{ownerKey}

	auth, err := NewPoolOwnerSignature(signer, 0, bindingData)
	require.NoError(t, err)

	t.Run("pool registration", func(t *testing.T) {
		cert := &SignedPoolRegistration{Registration: PoolRegistration{Info: info}, Auth: auth}
		require.Equal(t, crypto.Success, cert.Verify(bindingData))
		require.Equal(t, crypto.Failed, cert.Verify(test.RandomBytes(32)))
	})
	t.Run("pool retirement", func(t *testing.T) {
		cert := &SignedPoolRetirement{
			Retirement: PoolRetirement{PoolID: info.ID(), RetirementTime: 7},
			Auth:       auth,
		}
		require.Equal(t, crypto.Success, cert.Verify(info.Owners, bindingData))
		require.Equal(t, crypto.Failed, cert.Verify(nil, bindingData))
	})
	t.Run("vote tally", func(t *testing.T) {
		_, committee := newCommittee(t)
		sig, err := NewBindingSignature(signer, bindingData)
		require.NoError(t, err)
		cert := &SignedVoteTally{
			Tally: NewPrivateVoteTally(randomVotePlanID(t)),
			Proof: &PublicTallyProof{Committee: committee, Signature: sig},
		}
		// proof kind does not match the declared payload type
		require.Equal(t, crypto.Failed, cert.Verify(bindingData))
	})
}
