package withdrawal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/upmkt/affiliates-api/pkg/types"
)

func TestCanTransition_ForwardPath(t *testing.T) {
	require.True(t, CanTransition(types.WithdrawalStatusPending, types.WithdrawalStatusApproved))
	require.True(t, CanTransition(types.WithdrawalStatusPending, types.WithdrawalStatusRejected))
	require.True(t, CanTransition(types.WithdrawalStatusApproved, types.WithdrawalStatusPaid))
}

func TestCanTransition_Reverts(t *testing.T) {
	require.True(t, CanTransition(types.WithdrawalStatusApproved, types.WithdrawalStatusPending))
	require.True(t, CanTransition(types.WithdrawalStatusPaid, types.WithdrawalStatusApproved))
}

func TestCanTransition_RejectedIsTerminal(t *testing.T) {
	for _, to := range []types.WithdrawalStatus{
		types.WithdrawalStatusPending,
		types.WithdrawalStatusApproved,
		types.WithdrawalStatusPaid,
		types.WithdrawalStatusRejected,
	} {
		require.False(t, CanTransition(types.WithdrawalStatusRejected, to), "rejected -> %s", to)
	}
}

func TestCanTransition_NoSkipping(t *testing.T) {
	require.False(t, CanTransition(types.WithdrawalStatusPending, types.WithdrawalStatusPaid))
	require.False(t, CanTransition(types.WithdrawalStatusPaid, types.WithdrawalStatusPending))
	require.False(t, CanTransition(types.WithdrawalStatusApproved, types.WithdrawalStatusRejected))
}

func TestReject_BlankReasonBlockedBeforeAnyWrite(t *testing.T) {
	s := &Service{}
	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := s.Reject(context.Background(), "wd-1", "adm-1", reason)
		require.ErrorIs(t, err, ErrEmptyReason, "reason %q", reason)
	}
}

func TestPay_NoProofsBlockedBeforeAnyWrite(t *testing.T) {
	s := &Service{}
	_, err := s.Pay(context.Background(), "wd-1", "adm-1", nil)
	require.ErrorIs(t, err, ErrNoPaymentProof)

	_, err = s.Pay(context.Background(), "wd-1", "adm-1", []string{})
	require.ErrorIs(t, err, ErrNoPaymentProof)
}

func TestCanTransition_SelfLoopsAreInvalid(t *testing.T) {
	for _, s := range []types.WithdrawalStatus{
		types.WithdrawalStatusPending,
		types.WithdrawalStatusApproved,
		types.WithdrawalStatusPaid,
		types.WithdrawalStatusRejected,
	} {
		require.False(t, CanTransition(s, s))
	}
}
