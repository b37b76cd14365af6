package withdrawal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/samber/lo"

	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/pkg/config"
	"github.com/upmkt/affiliates-api/pkg/logctx"
	"github.com/upmkt/affiliates-api/pkg/tool"
	"github.com/upmkt/affiliates-api/pkg/types"
)

type Service struct {
	cfg *config.Config
	log *zap.SugaredLogger
	db  *gorm.DB
}

func NewService(cfg *config.Config, log *zap.SugaredLogger, db *gorm.DB) *Service {
	return &Service{cfg: cfg, log: log, db: db}
}

// Request creates a pending withdrawal claiming every available, unclaimed
// commission of the profile. The claim (withdrawal_id stamp) happens at
// request time so two concurrent requests cannot claim the same commission;
// commission status only flips to withdrawn when the withdrawal is paid.
func (s *Service) Request(ctx context.Context, profileID string, pixKey string, pixKeyType types.PixKeyType) (*models.Withdrawal, error) {
	if strings.TrimSpace(pixKey) == "" {
		return nil, fmt.Errorf("pix key is required")
	}

	var w *models.Withdrawal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var commissions []*models.Commission
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("profile_id = ? AND status = ? AND withdrawal_id IS NULL", profileID, types.CommissionStatusAvailable).
			Find(&commissions).Error
		if err != nil {
			return fmt.Errorf("failed to load available commissions: %w", err)
		}
		if len(commissions) == 0 {
			return ErrNothingToWithdraw
		}

		ids := lo.Map(commissions, func(c *models.Commission, _ int) string { return c.ID })
		total := lo.SumBy(commissions, func(c *models.Commission) int64 { return c.AmountCents })

		w = &models.Withdrawal{
			ID:            tool.GenerateUUIDV7(),
			ProfileID:     profileID,
			AmountCents:   total,
			PixKey:        pixKey,
			PixKeyType:    pixKeyType,
			Status:        types.WithdrawalStatusPending,
			RequestedAt:   time.Now(),
			CommissionIDs: datatypes.NewJSONSlice(ids),
		}
		if err := tx.Create(w).Error; err != nil {
			return fmt.Errorf("failed to create withdrawal: %w", err)
		}

		err = tx.Model(&models.Commission{}).
			Where("id IN ?", ids).
			Update("withdrawal_id", w.ID).Error
		if err != nil {
			return fmt.Errorf("failed to claim commissions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("withdrawal requested",
		"withdrawal_id", w.ID, "profile_id", profileID, "amount_cents", w.AmountCents)
	return w, nil
}

// Approve moves pending -> approved, stamping who approved and when.
func (s *Service) Approve(ctx context.Context, id, adminID string) (*models.Withdrawal, error) {
	now := time.Now()
	return s.transition(ctx, id, types.WithdrawalStatusApproved, map[string]any{
		"status":      types.WithdrawalStatusApproved,
		"approved_at": now,
		"approved_by": adminID,
	}, nil)
}

// Reject moves pending -> rejected. The reason is validated before any
// database round trip.
func (s *Service) Reject(ctx context.Context, id, adminID, reason string) (*models.Withdrawal, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}
	return s.transition(ctx, id, types.WithdrawalStatusRejected, map[string]any{
		"status":          types.WithdrawalStatusRejected,
		"rejected_reason": reason,
	}, func(tx *gorm.DB, w *models.Withdrawal) error {
		// release the claim so the commissions can be re-requested
		return s.releaseCommissions(tx, w)
	})
}

// Pay moves approved -> paid. Requires at least one payment-proof URL; marks
// every claimed commission withdrawn in the same transaction.
func (s *Service) Pay(ctx context.Context, id, adminID string, proofURLs []string) (*models.Withdrawal, error) {
	if len(proofURLs) == 0 {
		return nil, ErrNoPaymentProof
	}
	now := time.Now()
	return s.transition(ctx, id, types.WithdrawalStatusPaid, map[string]any{
		"status":             types.WithdrawalStatusPaid,
		"paid_at":            now,
		"payment_proof_urls": datatypes.NewJSONSlice(proofURLs),
	}, func(tx *gorm.DB, w *models.Withdrawal) error {
		if len(w.CommissionIDs) == 0 {
			return nil
		}
		err := tx.Model(&models.Commission{}).
			Where("id IN ?", []string(w.CommissionIDs)).
			Updates(map[string]any{
				"status":        types.CommissionStatusWithdrawn,
				"withdrawal_id": w.ID,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to mark commissions withdrawn: %w", err)
		}
		return nil
	})
}

// RevertApproval moves approved -> pending, clearing the approval stamps and
// releasing every claimed commission back to available.
func (s *Service) RevertApproval(ctx context.Context, id string) (*models.Withdrawal, error) {
	return s.transition(ctx, id, types.WithdrawalStatusPending, map[string]any{
		"status":      types.WithdrawalStatusPending,
		"approved_at": nil,
		"approved_by": nil,
	}, func(tx *gorm.DB, w *models.Withdrawal) error {
		return s.revertCommissions(tx, w)
	})
}

// RevertPayment moves paid -> approved. paid_at and the proof URLs are
// cleared in the same update; approved_at is left untouched. Claimed
// commissions go back to available.
func (s *Service) RevertPayment(ctx context.Context, id string) (*models.Withdrawal, error) {
	return s.transition(ctx, id, types.WithdrawalStatusApproved, map[string]any{
		"status":             types.WithdrawalStatusApproved,
		"paid_at":            nil,
		"payment_proof_urls": datatypes.NewJSONSlice([]string{}),
	}, func(tx *gorm.DB, w *models.Withdrawal) error {
		if len(w.CommissionIDs) == 0 {
			return nil
		}
		err := tx.Model(&models.Commission{}).
			Where("id IN ?", []string(w.CommissionIDs)).
			Updates(map[string]any{
				"status":        types.CommissionStatusAvailable,
				"withdrawal_id": w.ID, // claim stays while the withdrawal is approved
			}).Error
		if err != nil {
			return fmt.Errorf("failed to revert commissions: %w", err)
		}
		return nil
	})
}

// transition is the single write path for withdrawal status. It locks the
// row, checks the legality table against the status actually in the
// database, applies the update and the commission side effect in one
// transaction. A racing admin loses with ErrInvalidTransition instead of
// silently double-applying.
func (s *Service) transition(ctx context.Context, id string, to types.WithdrawalStatus, updates map[string]any, sideEffect func(tx *gorm.DB, w *models.Withdrawal) error) (*models.Withdrawal, error) {
	var result *models.Withdrawal
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var w models.Withdrawal
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&w).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load withdrawal: %w", err)
		}

		if !CanTransition(w.Status, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.Status, to)
		}

		if err := tx.Model(&w).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update withdrawal: %w", err)
		}

		if sideEffect != nil {
			if err := sideEffect(tx, &w); err != nil {
				return err
			}
		}

		if err := tx.Where("id = ?", id).First(&w).Error; err != nil {
			return fmt.Errorf("failed to reload withdrawal: %w", err)
		}
		result = &w
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("withdrawal transition",
		"withdrawal_id", id, "to", to)
	return result, nil
}

func (s *Service) revertCommissions(tx *gorm.DB, w *models.Withdrawal) error {
	if len(w.CommissionIDs) == 0 {
		return nil
	}
	err := tx.Model(&models.Commission{}).
		Where("id IN ?", []string(w.CommissionIDs)).
		Updates(map[string]any{
			"status":        types.CommissionStatusAvailable,
			"withdrawal_id": nil,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to release commissions: %w", err)
	}
	return nil
}

func (s *Service) releaseCommissions(tx *gorm.DB, w *models.Withdrawal) error {
	return s.revertCommissions(tx, w)
}
