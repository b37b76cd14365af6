package commission

import (
	"context"
	"fmt"
	"time"

	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/pkg/types"
)

// Bucket is one row of the daily or monthly rollup.
type Bucket struct {
	Date        string `json:"date"`
	Count       int64  `json:"count"`
	AmountCents int64  `json:"amount_cents"`
}

type AggregateRequest struct {
	ProfileID string `json:"-"`
	// FromDate/ToDate bound the rollup window, "2006-01-02". Defaults to
	// the last 30 days (daily) or 12 months (monthly).
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

func (r *AggregateRequest) window(defaultSpan time.Duration) (time.Time, time.Time, error) {
	to := time.Now()
	from := to.Add(-defaultSpan)

	if r.FromDate != "" {
		t, err := time.Parse("2006-01-02", r.FromDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from_date: %w", err)
		}
		from = t
	}
	if r.ToDate != "" {
		t, err := time.Parse("2006-01-02", r.ToDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to_date: %w", err)
		}
		// inclusive end of day
		to = t.AddDate(0, 0, 1)
	}
	return from, to, nil
}

// Daily aggregates commission counts and amounts per day.
func (s *Service) Daily(ctx context.Context, req *AggregateRequest) ([]*Bucket, error) {
	return s.aggregate(ctx, req, "YYYY-MM-DD", 30*24*time.Hour)
}

// Monthly aggregates commission counts and amounts per calendar month.
func (s *Service) Monthly(ctx context.Context, req *AggregateRequest) ([]*Bucket, error) {
	return s.aggregate(ctx, req, "YYYY-MM", 365*24*time.Hour)
}

func (s *Service) aggregate(ctx context.Context, req *AggregateRequest, dateFormat string, defaultSpan time.Duration) ([]*Bucket, error) {
	from, to, err := req.window(defaultSpan)
	if err != nil {
		return nil, err
	}

	tx := s.db.WithContext(ctx).Model(&models.Commission{}).
		Select(fmt.Sprintf("to_char(created_at, '%s') AS date, COUNT(*) AS count, COALESCE(SUM(amount_cents), 0) AS amount_cents", dateFormat)).
		Where("status <> ?", types.CommissionStatusCancelled).
		Where("created_at >= ? AND created_at < ?", from, to)
	if req.ProfileID != "" {
		tx = tx.Where("profile_id = ?", req.ProfileID)
	}

	var rows []*Bucket
	err = tx.Group("date").Order("date").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate commissions: %w", err)
	}
	return rows, nil
}
