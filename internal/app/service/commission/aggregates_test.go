package commission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAggregateRequest_WindowDefaults(t *testing.T) {
	req := &AggregateRequest{}
	from, to, err := req.window(30 * 24 * time.Hour)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), to, time.Minute)
	require.WithinDuration(t, time.Now().Add(-30*24*time.Hour), from, time.Minute)
}

func TestAggregateRequest_WindowExplicit(t *testing.T) {
	req := &AggregateRequest{FromDate: "2026-01-01", ToDate: "2026-01-31"}
	from, to, err := req.window(time.Hour)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), from)
	// ToDate is inclusive, the bound is the start of the next day.
	require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestAggregateRequest_WindowRejectsBadDates(t *testing.T) {
	_, _, err := (&AggregateRequest{FromDate: "01/02/2026"}).window(time.Hour)
	require.Error(t, err)

	_, _, err = (&AggregateRequest{ToDate: "2026-13-40"}).window(time.Hour)
	require.Error(t, err)
}
