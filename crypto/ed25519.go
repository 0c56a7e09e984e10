package crypto

import (
	gocrypto "crypto"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

const (
	PublicKeySize = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
	SeedSize      = ed25519.SeedSize
)

var errSignerNil = errors.New("signer is nil")

type (
	// InMemoryEd25519Signer keeps the private key in process memory. Meant for
	// nodes and tests, key custody beyond that is the caller's responsibility.
	InMemoryEd25519Signer struct {
		key ed25519.PrivateKey
	}

	ed25519Verifier struct {
		pubKey ed25519.PublicKey
	}
)

// NewInMemoryEd25519Signer generates a new key pair and wraps the private key
// into a signer.
func NewInMemoryEd25519Signer() (*InMemoryEd25519Signer, error) {
	_, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ed25519 key: %w", err)
	}
	return &InMemoryEd25519Signer{key: privKey}, nil
}

// NewEd25519SignerFromSeed creates a signer from 32 private key seed bytes.
func NewEd25519SignerFromSeed(seed []byte) (*InMemoryEd25519Signer, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("invalid seed length %d, expected %d", len(seed), SeedSize)
	}
	return &InMemoryEd25519Signer{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// NewEd25519SignerFromMnemonic derives a signer from a BIP-39 mnemonic
// sentence. The same mnemonic always yields the same key.
func NewEd25519SignerFromMnemonic(mnemonic string) (*InMemoryEd25519Signer, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}
	return NewEd25519SignerFromSeed(seed[:SeedSize])
}

// NewMnemonic generates a BIP-39 mnemonic sentence for key derivation.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(128)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

func (s *InMemoryEd25519Signer) SignBytes(data []byte) ([]byte, error) {
	if s == nil {
		return nil, errSignerNil
	}
	sig, err := s.key.Sign(rand.Reader, data, gocrypto.Hash(0))
	if err != nil {
		return nil, fmt.Errorf("signing failed: %w", err)
	}
	return sig, nil
}

func (s *InMemoryEd25519Signer) MarshalPrivateKey() ([]byte, error) {
	if s == nil {
		return nil, errSignerNil
	}
	return s.key.Seed(), nil
}

func (s *InMemoryEd25519Signer) Verifier() (Verifier, error) {
	if s == nil {
		return nil, errSignerNil
	}
	return NewVerifierEd25519(s.key.Public().(ed25519.PublicKey))
}

// NewVerifierEd25519 creates a verifier from ed25519 public key bytes.
func NewVerifierEd25519(pubKey []byte) (Verifier, error) {
	if len(pubKey) != PublicKeySize {
		return nil, fmt.Errorf("invalid ed25519 public key length %d, expected %d", len(pubKey), PublicKeySize)
	}
	key := make([]byte, PublicKeySize)
	copy(key, pubKey)
	return &ed25519Verifier{pubKey: key}, nil
}

func (v *ed25519Verifier) VerifyBytes(sig []byte, data []byte) error {
	if v == nil {
		return errors.New("verifier is nil")
	}
	if len(sig) != SignatureSize {
		return fmt.Errorf("invalid signature length %d, expected %d", len(sig), SignatureSize)
	}
	if !ed25519.Verify(v.pubKey, data, sig) {
		return errors.New("signature verify failed")
	}
	return nil
}

func (v *ed25519Verifier) MarshalPublicKey() ([]byte, error) {
	if v == nil {
		return nil, errors.New("verifier is nil")
	}
	key := make([]byte, PublicKeySize)
	copy(key, v.pubKey)
	return key, nil
}
