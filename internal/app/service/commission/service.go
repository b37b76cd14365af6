package commission

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/pkg/types"
)

// Service is the read side of commissions. Status mutation lives entirely in
// the withdrawal service.
type Service struct {
	log *zap.SugaredLogger
	db  *gorm.DB
}

func NewService(log *zap.SugaredLogger, db *gorm.DB) *Service {
	return &Service{log: log, db: db}
}

type ScanRequest struct {
	Filters []*types.CommonFilter `json:"filters"`
	// ProfileID scopes the listing; empty means all profiles (admin).
	ProfileID string `json:"-"`
	Search    string `json:"search"`
	From      int    `json:"from"`
	Size      int    `json:"size"`
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

type ScanResponse struct {
	Items []*models.Commission `json:"items"`
	Total int64                `json:"total"`
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

// Scan implements the filtered, paginated commission listing.
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

	tx := s.db.WithContext(ctx).Model(&models.Commission{})
	if req.ProfileID != "" {
		tx = tx.Where("profile_id = ?", req.ProfileID)
	}
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}
	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		tx = tx.Where("id IN (SELECT commissions.id FROM commissions JOIN profiles ON profiles.id = commissions.profile_id WHERE profiles.name ILIKE ? OR profiles.email ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count commissions: %w", err)
	}

	var rows []*models.Commission

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
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}

	return &ScanResponse{Items: rows, Total: total}, nil
}

// Total sums commission amounts for a profile, optionally scoped to one
// status. Empty status means everything except cancelled.
func (s *Service) Total(ctx context.Context, profileID string, status types.CommissionStatus) (int64, error) {
	tx := s.db.WithContext(ctx).Model(&models.Commission{}).
		Select("COALESCE(SUM(amount_cents), 0)").
		Where("profile_id = ?", profileID)
	if status != "" {
		tx = tx.Where("status = ?", status)
	} else {
		tx = tx.Where("status <> ?", types.CommissionStatusCancelled)
	}

	var sum int64
	if err := tx.Scan(&sum).Error; err != nil {
		return 0, fmt.Errorf("failed to sum commissions: %w", err)
	}
	return sum, nil
}
