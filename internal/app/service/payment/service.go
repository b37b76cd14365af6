package payment

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/pkg/types"
)

// Service is the admin read view over payments. Rows are written only by
// Stripe webhook reconciliation.
type Service struct {
	log *zap.SugaredLogger
	db  *gorm.DB
}

func NewService(log *zap.SugaredLogger, db *gorm.DB) *Service {
	return &Service{log: log, db: db}
}

type ScanRequest struct {
	Filters []*types.CommonFilter `json:"filters"`
	// Search matches payer name, email or coupon code.
	Search    string `json:"search"`
	From      int    `json:"from"`
	Size      int    `json:"size"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// Item is a payment joined with payer and plan for the admin table.
type Item struct {
	models.Payment
	PayerName  string `json:"payer_name"`
	PayerEmail string `json:"payer_email"`
	PlanName   string `json:"plan_name"`
}

type ScanResponse struct {
	Items []*Item `json:"items"`
	Total int64   `json:"total"`
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

	tx := s.db.WithContext(ctx).Model(&models.Payment{}).
		Joins("JOIN profiles ON profiles.id = payments.profile_id").
		Joins("LEFT JOIN plans ON plans.id = payments.plan_id")
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}
	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		tx = tx.Where("profiles.name ILIKE ? OR profiles.email ILIKE ? OR payments.coupon_code ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	var rows []*Item

	q := tx.Select("payments.*, profiles.name AS payer_name, profiles.email AS payer_email, plans.name AS plan_name").
		Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "paid_at"
	}
	q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Table: "payments", Name: sortBy}, Desc: req.SortOrder != "asc"}}})

	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &ScanResponse{Items: rows, Total: total}, nil
}
