package goal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/upmkt/affiliates-api/pkg/types"
)

func TestParseTarget_ValueLocalizedInput(t *testing.T) {
	cents, err := ParseTarget(types.GoalTypeValue, "5.000,00")
	require.NoError(t, err)
	require.Equal(t, int64(500000), cents)
}

func TestParseTarget_ValueWithCurrencyPrefix(t *testing.T) {
	cents, err := ParseTarget(types.GoalTypeValue, "R$ 1.234,56")
	require.NoError(t, err)
	require.Equal(t, int64(123456), cents)
}

func TestParseTarget_ValuePlainInteger(t *testing.T) {
	cents, err := ParseTarget(types.GoalTypeValue, "250")
	require.NoError(t, err)
	require.Equal(t, int64(25000), cents)
}

func TestParseTarget_ValueRejectsZeroAndNegative(t *testing.T) {
	_, err := ParseTarget(types.GoalTypeValue, "0")
	require.ErrorIs(t, err, ErrInvalidTarget)

	_, err = ParseTarget(types.GoalTypeValue, "0,00")
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestParseTarget_ValueLastCommaIsDecimal(t *testing.T) {
	cents, err := ParseTarget(types.GoalTypeValue, "1,234,56")
	require.NoError(t, err)
	require.Equal(t, int64(123456), cents)
}

func TestParseTarget_ValueRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "abc", ",", ",,"} {
		_, err := ParseTarget(types.GoalTypeValue, raw)
		require.ErrorIs(t, err, ErrInvalidTarget, "input %q", raw)
	}
}

func TestParseTarget_SalesStripsNonDigits(t *testing.T) {
	n, err := ParseTarget(types.GoalTypeSales, "15 vendas")
	require.NoError(t, err)
	require.Equal(t, int64(15), n)
}

func TestParseTarget_ReferralsRejectsZero(t *testing.T) {
	_, err := ParseTarget(types.GoalTypeReferrals, "0")
	require.ErrorIs(t, err, ErrInvalidTarget)

	_, err = ParseTarget(types.GoalTypeReferrals, "sem numero")
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	current := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, types.GoalStatusPending, DeriveStatus(future, 0, 100, now))
	require.Equal(t, types.GoalStatusActive, DeriveStatus(current, 50, 100, now))
	require.Equal(t, types.GoalStatusCompleted, DeriveStatus(current, 100, 100, now))
	require.Equal(t, types.GoalStatusCompleted, DeriveStatus(past, 120, 100, now))
	require.Equal(t, types.GoalStatusExpired, DeriveStatus(past, 99, 100, now))
}
