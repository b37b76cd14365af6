package models

import "time"

// Payment is an invoice-level record of a completed Stripe charge. Written
// only by webhook reconciliation; the admin viewer reads it joined to plan
// and profile.
type Payment struct {
	ID             string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	ProfileID      string `gorm:"column:profile_id;type:uuid;not null;index" json:"profile_id"`
	SubscriptionID string `gorm:"column:subscription_id;type:uuid;index" json:"subscription_id"`
	PlanID         string `gorm:"column:plan_id;type:uuid" json:"plan_id"`

	StripeInvoiceID string `gorm:"column:stripe_invoice_id;type:varchar(128);uniqueIndex" json:"stripe_invoice_id"`

	AmountCents int64  `gorm:"column:amount_cents;type:bigint;not null" json:"amount_cents"`
	Currency    string `gorm:"column:currency;type:varchar(8);not null;default:'brl'" json:"currency"`
	Status      string `gorm:"column:status;type:varchar(32);not null;index" json:"status"`

	PaidAt     *time.Time `gorm:"column:paid_at;default:null" json:"paid_at"`
	CouponCode string     `gorm:"column:coupon_code;type:varchar(64)" json:"coupon_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}
