package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/upmkt/affiliates-api/pkg/types"
)

// Withdrawal is a PIX payout request. The status column is the single source
// of truth for its state; the timestamp columns record when each transition
// happened and are cleared when the transition is reverted.
type Withdrawal struct {
	ID        string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	ProfileID string `gorm:"column:profile_id;type:uuid;not null;index" json:"profile_id"`

	AmountCents int64            `gorm:"column:amount_cents;type:bigint;not null" json:"amount_cents"`
	PixKey      string           `gorm:"column:pix_key;type:varchar(255);not null" json:"pix_key"`
	PixKeyType  types.PixKeyType `gorm:"column:pix_key_type;type:varchar(16);not null" json:"pix_key_type"`

	Status types.WithdrawalStatus `gorm:"column:status;type:varchar(32);not null;index" json:"status"`

	RequestedAt time.Time  `gorm:"column:requested_at;not null" json:"requested_at"`
	ApprovedAt  *time.Time `gorm:"column:approved_at;default:null" json:"approved_at"`
	ApprovedBy  *string    `gorm:"column:approved_by;type:uuid;default:null" json:"approved_by"`
	PaidAt      *time.Time `gorm:"column:paid_at;default:null" json:"paid_at"`

	RejectedReason *string `gorm:"column:rejected_reason;type:text;default:null" json:"rejected_reason"`

	// CommissionIDs are the commissions this withdrawal claims; they are
	// marked withdrawn when the withdrawal is paid.
	CommissionIDs datatypes.JSONSlice[string] `gorm:"column:commission_ids;type:jsonb;default:'[]'" json:"commission_ids"`

	PaymentProofURLs datatypes.JSONSlice[string] `gorm:"column:payment_proof_urls;type:jsonb;default:'[]'" json:"payment_proof_urls"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Withdrawal) TableName() string {
	return "withdrawals"
}
