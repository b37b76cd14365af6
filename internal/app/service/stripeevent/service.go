package stripeevent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/upmkt/affiliates-api/internal/models"
	dbpkg "github.com/upmkt/affiliates-api/internal/platform/db"
	"github.com/upmkt/affiliates-api/pkg/logctx"
	"github.com/upmkt/affiliates-api/pkg/tool"
	"github.com/upmkt/affiliates-api/pkg/types"
)

var ErrNotFound = errors.New("stripe event not found")

type Service struct {
	log *zap.SugaredLogger
	db  *gorm.DB
}

func NewService(log *zap.SugaredLogger, db *gorm.DB) *Service {
	return &Service{log: log, db: db}
}

// envelope is the subset of the Stripe event wrapper we read.
type envelope struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Livemode bool   `json:"livemode"`
	Data     struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type subscriptionObject struct {
	ID                 string `json:"id"`
	Customer           string `json:"customer"`
	Status             string `json:"status"`
	CurrentPeriodStart int64  `json:"current_period_start"`
	CurrentPeriodEnd   int64  `json:"current_period_end"`
	CancelAtPeriodEnd  bool   `json:"cancel_at_period_end"`
	CanceledAt         *int64 `json:"canceled_at"`
}

type invoiceObject struct {
	ID           string `json:"id"`
	Customer     string `json:"customer"`
	Subscription string `json:"subscription"`
	AmountPaid   int64  `json:"amount_paid"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// Ingest stores the raw event (idempotent on the Stripe event id) and then
// reconciles subscription/payment rows for the event types we understand.
// Reconciliation failures are recorded on the row, never bubbled to Stripe:
// once the event is stored the webhook is answered with success so Stripe
// stops retrying.
func (s *Service) Ingest(ctx context.Context, payload []byte) (*models.StripeEvent, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("malformed event payload: %w", err)
	}
	if env.ID == "" || env.Type == "" {
		return nil, fmt.Errorf("event id and type are required")
	}

	environment := types.StripeEnvironmentTest
	if env.Livemode {
		environment = types.StripeEnvironmentLive
	}

	row := &models.StripeEvent{
		ID:            tool.GenerateUUIDV7(),
		StripeEventID: env.ID,
		Type:          env.Type,
		Environment:   environment,
		Payload:       datatypes.JSON(payload),
	}
	row.StripeCustomerID, row.StripeSubscriptionID = extractIDs(env)

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			// replayed delivery, return the stored row untouched
			var existing models.StripeEvent
			if err := s.db.WithContext(ctx).Where("stripe_event_id = ?", env.ID).First(&existing).Error; err != nil {
				return nil, fmt.Errorf("failed to load replayed event: %w", err)
			}
			return &existing, nil
		}
		return nil, fmt.Errorf("failed to store event: %w", err)
	}

	updates := map[string]any{"processed": true}
	if err := s.reconcile(ctx, env); err != nil {
		updates = map[string]any{"processed": false, "process_error": err.Error()}
		logctx.FromCtx(ctx, s.log).Warnw("stripe event reconciliation failed",
			"stripe_event_id", env.ID, "type", env.Type, "err", err)
	}
	if err := s.db.WithContext(ctx).Model(row).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to flag event: %w", err)
	}
	return row, nil
}

func extractIDs(env envelope) (customerID, subscriptionID string) {
	switch env.Type {
	case "customer.subscription.created", "customer.subscription.updated", "customer.subscription.deleted":
		var obj subscriptionObject
		if json.Unmarshal(env.Data.Object, &obj) == nil {
			return obj.Customer, obj.ID
		}
	case "invoice.paid", "invoice.payment_failed":
		var obj invoiceObject
		if json.Unmarshal(env.Data.Object, &obj) == nil {
			return obj.Customer, obj.Subscription
		}
	}
	return "", ""
}

func (s *Service) reconcile(ctx context.Context, env envelope) error {
	switch env.Type {
	case "customer.subscription.created", "customer.subscription.updated", "customer.subscription.deleted":
		var obj subscriptionObject
		if err := json.Unmarshal(env.Data.Object, &obj); err != nil {
			return fmt.Errorf("malformed subscription object: %w", err)
		}
		return s.upsertSubscription(ctx, &obj)

	case "invoice.paid":
		var obj invoiceObject
		if err := json.Unmarshal(env.Data.Object, &obj); err != nil {
			return fmt.Errorf("malformed invoice object: %w", err)
		}
		return s.recordPayment(ctx, &obj)
	}
	// unknown types are stored for the audit trail only
	return nil
}

func (s *Service) upsertSubscription(ctx context.Context, obj *subscriptionObject) error {
	var sub models.Subscription
	err := s.db.WithContext(ctx).
		Where("stripe_subscription_id = ?", obj.ID).
		First(&sub).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up subscription: %w", err)
		}
		return fmt.Errorf("no local subscription for stripe id %s", obj.ID)
	}

	updates := map[string]any{
		"status":               types.SubscriptionStatus(obj.Status),
		"cancel_at_period_end": obj.CancelAtPeriodEnd,
	}
	if obj.CurrentPeriodStart > 0 {
		updates["current_period_start"] = time.Unix(obj.CurrentPeriodStart, 0)
	}
	if obj.CurrentPeriodEnd > 0 {
		updates["current_period_end"] = time.Unix(obj.CurrentPeriodEnd, 0)
	}
	if obj.CanceledAt != nil {
		updates["canceled_at"] = time.Unix(*obj.CanceledAt, 0)
	}
	if err := s.db.WithContext(ctx).Model(&sub).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

func (s *Service) recordPayment(ctx context.Context, obj *invoiceObject) error {
	var sub models.Subscription
	err := s.db.WithContext(ctx).
		Where("stripe_subscription_id = ?", obj.Subscription).
		First(&sub).Error
	if err != nil {
		return fmt.Errorf("no local subscription for invoice %s: %w", obj.ID, err)
	}

	now := time.Now()
	p := &models.Payment{
		ID:              tool.GenerateUUIDV7(),
		ProfileID:       sub.ProfileID,
		SubscriptionID:  sub.ID,
		PlanID:          sub.PlanID,
		StripeInvoiceID: obj.ID,
		AmountCents:     obj.AmountPaid,
		Currency:        obj.Currency,
		Status:          obj.Status,
		PaidAt:          &now,
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			return nil // replayed invoice
		}
		return fmt.Errorf("failed to record payment: %w", err)
	}
	return nil
}
