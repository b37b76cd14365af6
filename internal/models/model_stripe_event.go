package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/upmkt/affiliates-api/pkg/types"
)

// StripeEvent is an immutable webhook log row. Only Processed and
// ProcessError change after ingest.
type StripeEvent struct {
	ID            string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	StripeEventID string `gorm:"column:stripe_event_id;type:varchar(128);not null;uniqueIndex" json:"stripe_event_id"`
	Type          string `gorm:"column:type;type:varchar(128);not null;index" json:"type"`

	StripeCustomerID     string `gorm:"column:stripe_customer_id;type:varchar(128);index" json:"stripe_customer_id"`
	StripeSubscriptionID string `gorm:"column:stripe_subscription_id;type:varchar(128);index" json:"stripe_subscription_id"`

	Environment types.StripeEnvironment `gorm:"column:environment;type:varchar(16);not null;index" json:"environment"`

	Payload datatypes.JSON `gorm:"column:payload;type:jsonb;default:'{}'" json:"payload"`

	Processed    bool   `gorm:"column:processed;not null;default:false;index" json:"processed"`
	ProcessError string `gorm:"column:process_error;type:text" json:"process_error"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StripeEvent) TableName() string {
	return "stripe_events"
}
