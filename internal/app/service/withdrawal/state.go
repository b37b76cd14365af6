package withdrawal

import (
	"errors"

	"github.com/upmkt/affiliates-api/pkg/types"
)

var (
	ErrNotFound          = errors.New("withdrawal not found")
	ErrInvalidTransition = errors.New("invalid withdrawal transition")
	ErrEmptyReason       = errors.New("rejection reason must not be empty")
	ErrNoPaymentProof    = errors.New("at least one payment proof is required")
	ErrNothingToWithdraw = errors.New("no available commissions to withdraw")
)

// transitions is the complete legality table. Reverse edges are the manual
// admin reverts; rejected is terminal.
var transitions = map[types.WithdrawalStatus][]types.WithdrawalStatus{
	types.WithdrawalStatusPending:  {types.WithdrawalStatusApproved, types.WithdrawalStatusRejected},
	types.WithdrawalStatusApproved: {types.WithdrawalStatusPaid, types.WithdrawalStatusPending},
	types.WithdrawalStatusPaid:     {types.WithdrawalStatusApproved},
	types.WithdrawalStatusRejected: {},
}

// CanTransition reports whether from -> to is a legal status change. Service
// methods are the only writers of withdrawal status, and each checks this
// table inside the row transaction, so an illegal edge cannot be produced by
// racing admins.
func CanTransition(from, to types.WithdrawalStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
