package withdrawal

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/pkg/types"
)

type ScanRequest struct {
	Filters []*types.CommonFilter `json:"filters"`
	// Search matches affiliate name, email or pix key, case-insensitive.
	Search    string `json:"search"`
	From      int    `json:"from"`
	Size      int    `json:"size"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// Item is a withdrawal row joined with affiliate identity for the admin
// table.
type Item struct {
	models.Withdrawal
	AffiliateName  string `json:"affiliate_name"`
	AffiliateEmail string `json:"affiliate_email"`
}

type ScanResponse struct {
	Items []*Item `json:"items"`
	Total int64   `json:"total"`
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression
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

// Scan implements the paginated admin listing with filters and search.
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

	tx := s.db.WithContext(ctx).Model(&models.Withdrawal{}).
		Joins("JOIN profiles ON profiles.id = withdrawals.profile_id")
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}
	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		tx = tx.Where("profiles.name ILIKE ? OR profiles.email ILIKE ? OR withdrawals.pix_key ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count withdrawals: %w", err)
	}

	var rows []*Item

	q := tx.Select("withdrawals.*, profiles.name AS affiliate_name, profiles.email AS affiliate_email").
		Limit(req.Size)

	if req.From > 0 {
		q = q.Offset(req.From)
	}

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "requested_at"
	}
	q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Table: "withdrawals", Name: sortBy}, Desc: req.SortOrder != "asc"}}})

	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}

	return &ScanResponse{Items: rows, Total: total}, nil
}

// ListByProfile returns the affiliate's own withdrawals, newest first.
func (s *Service) ListByProfile(ctx context.Context, profileID string, from, size int) ([]*models.Withdrawal, int64, error) {
	if size <= 0 {
		size = 10
	}

	tx := s.db.WithContext(ctx).Model(&models.Withdrawal{}).Where("profile_id = ?", profileID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count withdrawals: %w", err)
	}

	var rows []*models.Withdrawal
	err := tx.Order("requested_at DESC").Offset(from).Limit(size).Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return rows, total, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Withdrawal, error) {
	var w models.Withdrawal
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&w).Error; err != nil {
		return nil, ErrNotFound
	}
	return &w, nil
}

// StatusStats is one row of the per-status rollup shown on the admin
// dashboard.
type StatusStats struct {
	Status      types.WithdrawalStatus `json:"status"`
	Count       int64                  `json:"count"`
	AmountCents int64                  `json:"amount_cents"`
}

// Stats aggregates withdrawal counts and totals per status.
func (s *Service) Stats(ctx context.Context) ([]*StatusStats, error) {
	var rows []*StatusStats
	err := s.db.WithContext(ctx).Model(&models.Withdrawal{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(amount_cents), 0) AS amount_cents").
		Group("status").
		Order("status").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate withdrawal stats: %w", err)
	}
	return rows, nil
}
