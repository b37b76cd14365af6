package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTicketStatusTerminal(t *testing.T) {
	require.True(t, TicketStatusResolved.Terminal())
	require.True(t, TicketStatusClosed.Terminal())

	require.False(t, TicketStatusOpen.Terminal())
	require.False(t, TicketStatusInProgress.Terminal())
	require.False(t, TicketStatusWaitingUser.Terminal())
}
