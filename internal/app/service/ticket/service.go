package ticket

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/pkg/logctx"
	"github.com/upmkt/affiliates-api/pkg/tool"
	"github.com/upmkt/affiliates-api/pkg/types"
)

var (
	ErrNotFound      = errors.New("ticket not found")
	ErrForbidden     = errors.New("ticket belongs to another profile")
	ErrTicketClosed  = errors.New("ticket no longer accepts messages")
	ErrEmptyMessage  = errors.New("message body must not be empty")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrInvalidStatus = errors.New("status must be resolved or closed")
	ErrNotRatable    = errors.New("only resolved or closed tickets can be rated")
	ErrAlreadyRated  = errors.New("ticket already rated")
)

type Service struct {
	log *zap.SugaredLogger
	db  *gorm.DB
}

func NewService(log *zap.SugaredLogger, db *gorm.DB) *Service {
	return &Service{log: log, db: db}
}

// Sender identifies who is acting on a thread.
type Sender struct {
	ID   string
	Role types.Role
}

type CreateRequest struct {
	Type       string                   `json:"type"`
	Priority   types.TicketPriority     `json:"priority"`
	Subject    string                   `json:"subject"`
	Body       string                   `json:"body"`
	ImageURLs  []string                 `json:"image_urls"`
	References []types.MessageReference `json:"references"`
}

// Create opens a ticket with its first message in one transaction.
// References are stored structured on the message row, the same way on
// creation and on every later reply.
func (s *Service) Create(ctx context.Context, profileID string, req *CreateRequest) (*models.SupportTicket, error) {
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Body) == "" {
		return nil, ErrEmptyMessage
	}

	priority := req.Priority
	if priority == "" {
		priority = types.TicketPriorityMedium
	}

	t := &models.SupportTicket{
		ID:        tool.GenerateUUIDV7(),
		ProfileID: profileID,
		Type:      req.Type,
		Priority:  priority,
		Subject:   strings.TrimSpace(req.Subject),
		Status:    types.TicketStatusOpen,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return fmt.Errorf("failed to create ticket: %w", err)
		}
		msg := &models.SupportMessage{
			ID:         tool.GenerateUUIDV7(),
			TicketID:   t.ID,
			SenderID:   profileID,
			SenderRole: types.RoleAffiliate,
			Body:       req.Body,
			ImageURLs:  datatypes.NewJSONSlice(req.ImageURLs),
			References: datatypes.NewJSONSlice(req.References),
		}
		if err := tx.Create(msg).Error; err != nil {
			return fmt.Errorf("failed to create first message: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("ticket created", "ticket_id", t.ID, "profile_id", profileID)
	return t, nil
}

type ReplyRequest struct {
	Body       string                   `json:"body"`
	ImageURLs  []string                 `json:"image_urls"`
	References []types.MessageReference `json:"references"`
}

// Reply appends a message and applies the status flip: an admin reply puts
// the ticket in waiting_user (claiming it when unassigned); a user reply
// while waiting_user moves it back to in_progress.
func (s *Service) Reply(ctx context.Context, sender Sender, ticketID string, req *ReplyRequest) (*models.SupportMessage, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, ErrEmptyMessage
	}

	var msg *models.SupportMessage
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := s.loadFor(tx, sender, ticketID)
		if err != nil {
			return err
		}
		if t.Status.Terminal() {
			return ErrTicketClosed
		}

		msg = &models.SupportMessage{
			ID:         tool.GenerateUUIDV7(),
			TicketID:   t.ID,
			SenderID:   sender.ID,
			SenderRole: sender.Role,
			Body:       req.Body,
			ImageURLs:  datatypes.NewJSONSlice(req.ImageURLs),
			References: datatypes.NewJSONSlice(req.References),
		}
		if err := tx.Create(msg).Error; err != nil {
			return fmt.Errorf("failed to create message: %w", err)
		}

		updates := replyUpdates(sender, t)
		if len(updates) > 0 {
			if err := tx.Model(t).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update ticket status: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// unreadFromCounterpart filters messages sent by the other side of the
// conversation that the viewer has not read yet. Matching on role rather
// than sender id keeps one admin's replies from counting as unread for
// another admin.
func unreadFromCounterpart(viewer Sender) (string, types.Role) {
	return "sender_role <> ? AND read_at IS NULL", viewer.Role
}

// replyUpdates computes the ticket fields a reply changes. An admin reply
// moves the ticket to waiting_user and claims it when unassigned; a user
// reply while waiting_user moves it back to in_progress.
func replyUpdates(sender Sender, t *models.SupportTicket) map[string]any {
	updates := map[string]any{}
	if sender.Role == types.RoleAdmin {
		updates["status"] = types.TicketStatusWaitingUser
		if t.AssignedAdminID == nil {
			updates["assigned_admin_id"] = sender.ID
		}
	} else if t.Status == types.TicketStatusWaitingUser {
		updates["status"] = types.TicketStatusInProgress
	}
	return updates
}

// Messages returns the thread, oldest first.
func (s *Service) Messages(ctx context.Context, viewer Sender, ticketID string) (*models.SupportTicket, []*models.SupportMessage, error) {
	t, err := s.loadFor(s.db.WithContext(ctx), viewer, ticketID)
	if err != nil {
		return nil, nil, err
	}

	var msgs []*models.SupportMessage
	err = s.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at").
		Find(&msgs).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return t, msgs, nil
}

// MarkRead bulk-stamps read_at on the counterparty's unread messages, the
// moment the viewer opens the thread.
func (s *Service) MarkRead(ctx context.Context, viewer Sender, ticketID string) (int64, error) {
	if _, err := s.loadFor(s.db.WithContext(ctx), viewer, ticketID); err != nil {
		return 0, err
	}

	cond, role := unreadFromCounterpart(viewer)
	res := s.db.WithContext(ctx).Model(&models.SupportMessage{}).
		Where("ticket_id = ?", ticketID).Where(cond, role).
		Update("read_at", time.Now())
	if res.Error != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Rate records the affiliate's rating once the ticket is resolved or closed.
func (s *Service) Rate(ctx context.Context, profileID, ticketID string, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := s.loadFor(tx, Sender{ID: profileID, Role: types.RoleAffiliate}, ticketID)
		if err != nil {
			return err
		}
		if !t.Status.Terminal() {
			return ErrNotRatable
		}
		if t.Rating != nil {
			return ErrAlreadyRated
		}
		err = tx.Model(t).Updates(map[string]any{
			"rating":         rating,
			"rating_comment": comment,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to store rating: %w", err)
		}
		return nil
	})
}

// SetStatus is the admin resolve/close action. Only the terminal statuses
// are accepted; everything else is driven by the reply flow.
func (s *Service) SetStatus(ctx context.Context, ticketID string, status types.TicketStatus) (*models.SupportTicket, error) {
	if !status.Terminal() {
		return nil, ErrInvalidStatus
	}

	var t models.SupportTicket
	err := s.db.WithContext(ctx).Where("id = ?", ticketID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&t).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update ticket status: %w", err)
	}
	return &t, nil
}

// loadFor loads a ticket enforcing ownership: affiliates only see their own
// tickets, admins see all.
func (s *Service) loadFor(tx *gorm.DB, viewer Sender, ticketID string) (*models.SupportTicket, error) {
	var t models.SupportTicket
	err := tx.Where("id = ?", ticketID).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if viewer.Role != types.RoleAdmin && t.ProfileID != viewer.ID {
		return nil, ErrForbidden
	}
	return &t, nil
}
