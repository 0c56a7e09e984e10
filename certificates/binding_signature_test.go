package certificates

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/midgard-chain/midgard/crypto"
	test "github.com/midgard-chain/midgard/internal/testutils"
	testsig "github.com/midgard-chain/midgard/internal/testutils/sig"
)

func TestBindingSignature(t *testing.T) {
	bindingData := test.RandomBytes(32)
	signer, verifier := testsig.CreateSignerAndVerifier(t)
	pubKey, err := verifier.MarshalPublicKey()
	require.NoError(t, err)

	sig, err := NewBindingSignature(signer, bindingData)
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		require.Equal(t, crypto.Success, sig.Verify(pubKey, bindingData))
	})
	t.Run("wrong key", func(t *testing.T) {
		_, otherVerifier := testsig.CreateSignerAndVerifier(t)
		otherKey, err := otherVerifier.MarshalPublicKey()
		require.NoError(t, err)
		require.Equal(t, crypto.Failed, sig.Verify(otherKey, bindingData))
	})
	t.Run("wrong binding data", func(t *testing.T) {
		require.Equal(t, crypto.Failed, sig.Verify(pubKey, test.RandomBytes(32)))
	})
	t.Run("tampered signature", func(t *testing.T) {
		tampered := sig
		tampered[0] ^= 0x01
		require.Equal(t, crypto.Failed, tampered.Verify(pubKey, bindingData))
	})
}
