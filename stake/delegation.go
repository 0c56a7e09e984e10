/*
Package stake implements the persistent stake-pool registry evolved by
delegation certificates.

A DelegationState is an immutable snapshot: every registration and
deregistration returns a new state while the receiver stays valid, so
concurrent consensus branches can hold and read distinct snapshots
without coordination. Snapshots structurally share the registry entries
they do not disagree on.
*/
package stake

import (
	"errors"
	"fmt"

	"github.com/midgard-chain/midgard/tree/avl"
)

var (
	ErrStakePoolAlreadyExists = errors.New("stake pool already exists")
	ErrStakePoolMissing       = errors.New("stake pool does not exist")
	ErrInvalidSignature       = errors.New("invalid certificate signature")
)

type (
	// DelegationState is one immutable snapshot of the stake-pool
	// registry. The zero value is not usable, use NewDelegationState.
	DelegationState struct {
		stakePools *avl.Tree[PoolID, StakePoolInfo]
	}

	// DelegationError reports a failed registry operation together with
	// the offending pool id. It wraps one of the sentinel errors above.
	DelegationError struct {
		Cause  error
		PoolID PoolID
	}
)

func (e *DelegationError) Error() string {
	return fmt.Sprintf("%v: pool %s", e.Cause, e.PoolID)
}

func (e *DelegationError) Unwrap() error {
	return e.Cause
}

// NewDelegationState returns the empty registry of genesis.
func NewDelegationState() DelegationState {
	return DelegationState{stakePools: avl.New[PoolID, StakePoolInfo]()}
}

// RegisterStakePool adds a pool to the registry under the id computed
// from its info and returns the new registry snapshot. Registering an id
// that is already present fails with ErrStakePoolAlreadyExists, there are
// no overwrite semantics.
func (s DelegationState) RegisterStakePool(info StakePoolInfo) (DelegationState, error) {
	id := info.ID()
	pools, err := s.stakePools.Insert(id, info)
	if err != nil {
		if errors.Is(err, avl.ErrKeyExists) {
			return DelegationState{}, &DelegationError{Cause: ErrStakePoolAlreadyExists, PoolID: id}
		}
		return DelegationState{}, err
	}
	return DelegationState{stakePools: pools}, nil
}

// DeregisterStakePool removes a pool from the registry and returns the
// new registry snapshot. Removing an absent id fails with
// ErrStakePoolMissing.
func (s DelegationState) DeregisterStakePool(id PoolID) (DelegationState, error) {
	pools, err := s.stakePools.Remove(id)
	if err != nil {
		if errors.Is(err, avl.ErrKeyNotFound) {
			return DelegationState{}, &DelegationError{Cause: ErrStakePoolMissing, PoolID: id}
		}
		return DelegationState{}, err
	}
	return DelegationState{stakePools: pools}, nil
}

// StakePoolExists is a pure membership query.
func (s DelegationState) StakePoolExists(id PoolID) bool {
	_, ok := s.stakePools.Get(id)
	return ok
}

// StakePool looks up the info of a registered pool.
func (s DelegationState) StakePool(id PoolID) (StakePoolInfo, bool) {
	return s.stakePools.Get(id)
}

// Len returns the number of registered pools.
func (s DelegationState) Len() int {
	return s.stakePools.Len()
}

// StakePools lists the registered pools in pool id order.
func (s DelegationState) StakePools() []StakePoolInfo {
	pools := make([]StakePoolInfo, 0, s.stakePools.Len())
	_ = s.stakePools.Traverse(func(_ PoolID, info StakePoolInfo) error {
		pools = append(pools, info)
		return nil
	})
	return pools
}

// PoolIDs lists the ids of the registered pools in id order.
func (s DelegationState) PoolIDs() []PoolID {
	ids := make([]PoolID, 0, s.stakePools.Len())
	_ = s.stakePools.Traverse(func(id PoolID, _ StakePoolInfo) error {
		ids = append(ids, id)
		return nil
	})
	return ids
}
