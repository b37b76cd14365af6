package ticket

import (
	"context"
	"fmt"

	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/pkg/types"
)

// ListItem decorates a ticket with the unread count for the viewer.
type ListItem struct {
	models.SupportTicket
	UnreadCount int64 `json:"unread_count"`
}

type ListRequest struct {
	Status types.TicketStatus `json:"status"`
	From   int                `json:"from"`
	Size   int                `json:"size"`
}

// List returns tickets visible to the viewer, most recently updated first.
// Affiliates see their own tickets; admins see everything, optionally
// filtered by status.
func (s *Service) List(ctx context.Context, viewer Sender, req *ListRequest) ([]*ListItem, int64, error) {
	size := req.Size
	if size <= 0 {
		size = 10
	}

	tx := s.db.WithContext(ctx).Model(&models.SupportTicket{})
	if viewer.Role != types.RoleAdmin {
		tx = tx.Where("profile_id = ?", viewer.ID)
	}
	if req.Status != "" {
		tx = tx.Where("status = ?", req.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var tickets []*models.SupportTicket
	err := tx.Order("updated_at DESC").Offset(req.From).Limit(size).Find(&tickets).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	out := make([]*ListItem, 0, len(tickets))
	for _, t := range tickets {
		var unread int64
		cond, role := unreadFromCounterpart(viewer)
		err := s.db.WithContext(ctx).Model(&models.SupportMessage{}).
			Where("ticket_id = ?", t.ID).Where(cond, role).
			Count(&unread).Error
		if err != nil {
			return nil, 0, fmt.Errorf("failed to count unread messages: %w", err)
		}
		out = append(out, &ListItem{SupportTicket: *t, UnreadCount: unread})
	}
	return out, total, nil
}
