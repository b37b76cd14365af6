package stripeevent

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/pkg/types"
)

type ScanRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanResponse struct {
	Items []*models.StripeEvent `json:"items"`
	Total int64                 `json:"total"`
}

type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

// Scan implements the admin event log listing.
func (s *Service) Scan(ctx context.Context, req *ScanRequest) (*ScanResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.StripeEvent{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}

	var rows []*models.StripeEvent

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: sortBy}, Desc: req.SortOrder != "asc"}}})

	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return &ScanResponse{Items: rows, Total: total}, nil
}

// Detail is an event joined with whatever local rows its Stripe ids resolve
// to; the links are best effort and may be nil.
type Detail struct {
	Event        *models.StripeEvent  `json:"event"`
	Profile      *models.Profile      `json:"profile,omitempty"`
	Subscription *models.Subscription `json:"subscription,omitempty"`
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	var event models.StripeEvent
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	d := &Detail{Event: &event}

	if event.StripeSubscriptionID != "" {
		var sub models.Subscription
		err := s.db.WithContext(ctx).
			Where("stripe_subscription_id = ?", event.StripeSubscriptionID).
			First(&sub).Error
		if err == nil {
			d.Subscription = &sub
			var profile models.Profile
			if err := s.db.WithContext(ctx).Where("id = ?", sub.ProfileID).First(&profile).Error; err == nil {
				d.Profile = &profile
			}
		}
	}
	return d, nil
}
