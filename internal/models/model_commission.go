package models

import (
	"time"

	"github.com/upmkt/affiliates-api/pkg/types"
)

// Commission is an affiliate earning record. Its status is mutated only as a
// side effect of withdrawal transitions: available -> withdrawn when a
// withdrawal is paid, back to available when the payment or approval is
// reverted.
type Commission struct {
	ID             string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	ProfileID      string `gorm:"column:profile_id;type:uuid;not null;index:idx_commission_profile_status,priority:1" json:"profile_id"`
	SubscriptionID string `gorm:"column:subscription_id;type:uuid;index" json:"subscription_id"`
	PaymentID      string `gorm:"column:payment_id;type:uuid;index" json:"payment_id"`

	AmountCents int64   `gorm:"column:amount_cents;type:bigint;not null" json:"amount_cents"`
	Percentage  float64 `gorm:"column:percentage;type:numeric(5,2);not null" json:"percentage"`
	// Level is the referral depth: 1 for direct referrals, 2 for
	// sub-affiliate earnings.
	Level int `gorm:"column:level;type:int;not null;default:1" json:"level"`

	Status types.CommissionStatus `gorm:"column:status;type:varchar(32);not null;index:idx_commission_profile_status,priority:2" json:"status"`

	// WithdrawalID is stamped when the claiming withdrawal is paid and
	// cleared when it is reverted.
	WithdrawalID *string    `gorm:"column:withdrawal_id;type:uuid;index" json:"withdrawal_id"`
	AvailableAt  *time.Time `gorm:"column:available_at;default:null" json:"available_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Commission) TableName() string {
	return "commissions"
}
