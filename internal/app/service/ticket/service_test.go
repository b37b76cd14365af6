package ticket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/pkg/types"
)

func TestSetStatus_RejectsNonTerminalStatuses(t *testing.T) {
	s := &Service{}
	for _, st := range []types.TicketStatus{
		types.TicketStatusOpen,
		types.TicketStatusInProgress,
		types.TicketStatusWaitingUser,
		"reopened",
		"",
	} {
		_, err := s.SetStatus(context.Background(), "tk-1", st)
		require.ErrorIs(t, err, ErrInvalidStatus, "status %q", st)
	}
}

func TestUnreadFromCounterpart_FiltersByRole(t *testing.T) {
	cond, role := unreadFromCounterpart(Sender{ID: "adm-1", Role: types.RoleAdmin})
	require.Equal(t, "sender_role <> ? AND read_at IS NULL", cond)
	require.Equal(t, types.RoleAdmin, role)

	_, role = unreadFromCounterpart(Sender{ID: "usr-1", Role: types.RoleAffiliate})
	require.Equal(t, types.RoleAffiliate, role)
}

func TestReplyUpdates_AdminClaimsUnassignedTicket(t *testing.T) {
	tk := &models.SupportTicket{Status: types.TicketStatusOpen}
	updates := replyUpdates(Sender{ID: "adm-1", Role: types.RoleAdmin}, tk)

	require.Equal(t, types.TicketStatusWaitingUser, updates["status"])
	require.Equal(t, "adm-1", updates["assigned_admin_id"])
}

func TestReplyUpdates_AdminKeepsExistingAssignee(t *testing.T) {
	assigned := "adm-1"
	tk := &models.SupportTicket{Status: types.TicketStatusInProgress, AssignedAdminID: &assigned}
	updates := replyUpdates(Sender{ID: "adm-2", Role: types.RoleAdmin}, tk)

	require.Equal(t, types.TicketStatusWaitingUser, updates["status"])
	require.NotContains(t, updates, "assigned_admin_id")
}

func TestReplyUpdates_UserReplyWhileWaiting(t *testing.T) {
	tk := &models.SupportTicket{Status: types.TicketStatusWaitingUser}
	updates := replyUpdates(Sender{ID: "usr-1", Role: types.RoleAffiliate}, tk)

	require.Equal(t, types.TicketStatusInProgress, updates["status"])
}

func TestReplyUpdates_UserReplyOtherStatusesNoFlip(t *testing.T) {
	for _, st := range []types.TicketStatus{types.TicketStatusOpen, types.TicketStatusInProgress} {
		tk := &models.SupportTicket{Status: st}
		updates := replyUpdates(Sender{ID: "usr-1", Role: types.RoleAffiliate}, tk)
		require.Empty(t, updates, "status %s", st)
	}
}
