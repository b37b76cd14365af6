package models

import (
	"time"

	"github.com/upmkt/affiliates-api/pkg/types"
)

// Subscription links a profile to a plan. Rows are written only by Stripe
// webhook reconciliation; the rest of the API treats them as read-only.
type Subscription struct {
	ID        string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	ProfileID string `gorm:"column:profile_id;type:uuid;not null;index" json:"profile_id"`
	PlanID    string `gorm:"column:plan_id;type:uuid;not null" json:"plan_id"`

	StripeCustomerID     string `gorm:"column:stripe_customer_id;type:varchar(128);index" json:"stripe_customer_id"`
	StripeSubscriptionID string `gorm:"column:stripe_subscription_id;type:varchar(128);uniqueIndex" json:"stripe_subscription_id"`

	Status types.SubscriptionStatus `gorm:"column:status;type:varchar(32);not null;index" json:"status"`

	CurrentPeriodStart *time.Time `gorm:"column:current_period_start;default:null" json:"current_period_start"`
	CurrentPeriodEnd   *time.Time `gorm:"column:current_period_end;default:null" json:"current_period_end"`

	CancelAtPeriodEnd bool       `gorm:"column:cancel_at_period_end;not null;default:false" json:"cancel_at_period_end"`
	CanceledAt        *time.Time `gorm:"column:canceled_at;default:null" json:"canceled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) Active() bool {
	return s != nil && (s.Status == types.SubscriptionStatusActive || s.Status == types.SubscriptionStatusTrialing)
}
