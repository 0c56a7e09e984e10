/*
Package ledger applies certificates to the stake-pool registry and verifies
block headers on behalf of the surrounding block validation pipeline.

A Ledger value is as immutable as the registry it wraps: applying a
certificate yields the successor ledger and leaves the receiver usable, so
competing chain branches can be evolved independently from a common state.
*/
package ledger

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/midgard-chain/midgard/certificates"
	"github.com/midgard-chain/midgard/crypto"
	"github.com/midgard-chain/midgard/logger"
	"github.com/midgard-chain/midgard/stake"
	"github.com/midgard-chain/midgard/types"
)

var log = logger.CreateForPackage()

var ErrProofVerificationFailed = errors.New("header proof verification failed")

// verifyConcurrency bounds the number of headers VerifyHeaders checks in
// parallel.
const verifyConcurrency = 8

// Ledger ties the stake-pool registry to the certificates that evolve it.
type Ledger struct {
	delegation stake.DelegationState
}

// NewLedger returns a ledger over the empty registry of genesis.
func NewLedger() Ledger {
	return Ledger{delegation: stake.NewDelegationState()}
}

// NewLedgerWithState returns a ledger over an existing registry snapshot,
// e.g. one restored with stake.ReadSnapshot.
func NewLedgerWithState(state stake.DelegationState) Ledger {
	return Ledger{delegation: state}
}

// Delegation returns the registry snapshot backing this ledger.
func (l Ledger) Delegation() stake.DelegationState {
	return l.delegation
}

// ApplyCertificate verifies the certificate's authorization against the
// binding data of the enclosing transaction and applies its action,
// returning the successor ledger. The receiver is left untouched.
func (l Ledger) ApplyCertificate(cert certificates.Certificate, bindingData []byte) (Ledger, error) {
	switch c := cert.(type) {
	case *certificates.SignedPoolRegistration:
		return l.applyPoolRegistration(c, bindingData)
	case *certificates.SignedPoolRetirement:
		return l.applyPoolRetirement(c, bindingData)
	case *certificates.SignedVoteTally:
		return l.applyVoteTally(c, bindingData)
	default:
		return Ledger{}, fmt.Errorf("unsupported certificate kind %s", cert.Kind())
	}
}

func (l Ledger) applyPoolRegistration(c *certificates.SignedPoolRegistration, bindingData []byte) (Ledger, error) {
	info := c.Registration.Info
	if err := info.IsValid(); err != nil {
		return Ledger{}, fmt.Errorf("invalid pool registration: %w", err)
	}
	if c.Verify(bindingData) != crypto.Success {
		return Ledger{}, &stake.DelegationError{Cause: stake.ErrInvalidSignature, PoolID: info.ID()}
	}
	next, err := l.delegation.RegisterStakePool(info)
	if err != nil {
		return Ledger{}, err
	}
	log.Debug("registered stake pool %s", info.ID())
	return Ledger{delegation: next}, nil
}

func (l Ledger) applyPoolRetirement(c *certificates.SignedPoolRetirement, bindingData []byte) (Ledger, error) {
	id := c.Retirement.PoolID
	info, ok := l.delegation.StakePool(id)
	if !ok {
		return Ledger{}, &stake.DelegationError{Cause: stake.ErrStakePoolMissing, PoolID: id}
	}
	if c.Verify(info.Owners, bindingData) != crypto.Success {
		return Ledger{}, &stake.DelegationError{Cause: stake.ErrInvalidSignature, PoolID: id}
	}
	next, err := l.delegation.DeregisterStakePool(id)
	if err != nil {
		return Ledger{}, err
	}
	log.Debug("deregistered stake pool %s, retirement time %d", id, c.Retirement.RetirementTime)
	return Ledger{delegation: next}, nil
}

func (l Ledger) applyVoteTally(c *certificates.SignedVoteTally, bindingData []byte) (Ledger, error) {
	if c.Verify(bindingData) != crypto.Success {
		return Ledger{}, fmt.Errorf("%w: %s tally of vote plan %s", stake.ErrInvalidSignature, c.Tally.TallyType(), c.Tally.ID)
	}
	// tallying itself happens in the vote plan ledger, here the certificate
	// is only authenticated
	log.Debug("verified %s tally of vote plan %s", c.Tally.TallyType(), c.Tally.ID)
	return l, nil
}

// VerifyHeader checks the structural validity of the header and its
// consensus proof.
func (l Ledger) VerifyHeader(header *types.Header) error {
	if err := header.IsValid(); err != nil {
		return err
	}
	if header.VerifyProof() != crypto.Success {
		return fmt.Errorf("%w: header %s", ErrProofVerificationFailed, header.Hash())
	}
	log.Debug("verified header %s (%s)", header.Hash(), header.Common.Date)
	return nil
}

// VerifyHeaders checks a batch of headers concurrently. The first failure
// cancels the remaining work, ctx cancellation does the same.
func (l Ledger) VerifyHeaders(ctx context.Context, headers []*types.Header) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(verifyConcurrency)
	for i, header := range headers {
		i, header := i, header
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := l.VerifyHeader(header); err != nil {
				return fmt.Errorf("header %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}
