package models

import "time"

// Plan is a billable product tier. Rows are seeded by operations, not by the
// API.
type Plan struct {
	ID            string    `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(128);not null" json:"name"`
	StripePriceID string    `gorm:"column:stripe_price_id;type:varchar(128);uniqueIndex" json:"stripe_price_id"`
	PriceCents    int64     `gorm:"column:price_cents;type:bigint;not null" json:"price_cents"`
	Interval      string    `gorm:"column:interval;type:varchar(16);not null;default:'month'" json:"interval"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Plan) TableName() string {
	return "plans"
}
