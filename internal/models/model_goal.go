package models

import (
	"time"

	"github.com/upmkt/affiliates-api/pkg/types"
)

// AffiliateGoal is a monthly target set by the affiliate. Period is the first
// day of the calendar month. At most one goal per (profile, type, period);
// the unique index surfaces duplicates as a conflict. Progress and status are
// computed at read time, never stored.
type AffiliateGoal struct {
	ID        string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	ProfileID string `gorm:"column:profile_id;type:uuid;not null;uniqueIndex:uniq_goal_profile_type_period,priority:1" json:"profile_id"`

	GoalType types.GoalType `gorm:"column:goal_type;type:varchar(32);not null;uniqueIndex:uniq_goal_profile_type_period,priority:2" json:"goal_type"`
	Period   time.Time      `gorm:"column:period;type:date;not null;uniqueIndex:uniq_goal_profile_type_period,priority:3" json:"period"`

	// TargetValue is cents for value goals and a plain count otherwise.
	TargetValue int64 `gorm:"column:target_value;type:bigint;not null" json:"target_value"`

	// ProductID optionally scopes the goal to one product.
	ProductID *string `gorm:"column:product_id;type:uuid;default:null" json:"product_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AffiliateGoal) TableName() string {
	return "affiliate_goals"
}
