package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/upmkt/affiliates-api/internal/models"
	dbpkg "github.com/upmkt/affiliates-api/internal/platform/db"
	"github.com/upmkt/affiliates-api/pkg/logctx"
	"github.com/upmkt/affiliates-api/pkg/tool"
	"github.com/upmkt/affiliates-api/pkg/types"
)

type Service struct {
	log *zap.SugaredLogger
	db  *gorm.DB
}

func NewService(log *zap.SugaredLogger, db *gorm.DB) *Service {
	return &Service{log: log, db: db}
}

type UpsertRequest struct {
	GoalType types.GoalType `json:"goal_type"`
	// Target is the raw user input ("5.000,00", "15 vendas").
	Target string `json:"target"`
	// Period is the calendar month, "2026-08".
	Period    string  `json:"period"`
	ProductID *string `json:"product_id"`
}

func parsePeriod(period string) (time.Time, error) {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}, fmt.Errorf("period must be YYYY-MM: %w", err)
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, profileID string, req *UpsertRequest) (*models.AffiliateGoal, error) {
	target, err := ParseTarget(req.GoalType, req.Target)
	if err != nil {
		return nil, err
	}
	period, err := parsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	g := &models.AffiliateGoal{
		ID:          tool.GenerateUUIDV7(),
		ProfileID:   profileID,
		GoalType:    req.GoalType,
		Period:      period,
		TargetValue: target,
		ProductID:   req.ProductID,
	}
	if err := s.db.WithContext(ctx).Create(g).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			return nil, ErrDuplicateGoal
		}
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("goal created", "goal_id", g.ID, "profile_id", profileID, "type", g.GoalType)
	return g, nil
}

// Update is a full replace of type, target, period and product scope.
func (s *Service) Update(ctx context.Context, profileID, goalID string, req *UpsertRequest) (*models.AffiliateGoal, error) {
	target, err := ParseTarget(req.GoalType, req.Target)
	if err != nil {
		return nil, err
	}
	period, err := parsePeriod(req.Period)
	if err != nil {
		return nil, err
	}

	var g models.AffiliateGoal
	err = s.db.WithContext(ctx).Where("id = ? AND profile_id = ?", goalID, profileID).First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load goal: %w", err)
	}

	updates := map[string]any{
		"goal_type":    req.GoalType,
		"period":       period,
		"target_value": target,
		"product_id":   req.ProductID,
	}
	if err := s.db.WithContext(ctx).Model(&g).Updates(updates).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			return nil, ErrDuplicateGoal
		}
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	return &g, nil
}

func (s *Service) Delete(ctx context.Context, profileID, goalID string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", goalID, profileID).
		Delete(&models.AffiliateGoal{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GoalWithProgress decorates a goal row with the progress figures computed
// at read time.
type GoalWithProgress struct {
	models.AffiliateGoal
	Progress int64            `json:"progress"`
	Percent  float64          `json:"percent"`
	Status   types.GoalStatus `json:"status"`
}

// List returns the profile's goals for the given month (or all months when
// period is empty), each with computed progress.
func (s *Service) List(ctx context.Context, profileID, period string) ([]*GoalWithProgress, error) {
	tx := s.db.WithContext(ctx).Where("profile_id = ?", profileID)
	if period != "" {
		p, err := parsePeriod(period)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("period = ?", p)
	}

	var goals []*models.AffiliateGoal
	if err := tx.Order("period DESC, goal_type").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	out := make([]*GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		gp, err := s.withProgress(ctx, g)
		if err != nil {
			return nil, err
		}
		out = append(out, gp)
	}
	return out, nil
}

// History returns past-period goals with their final progress, newest first.
func (s *Service) History(ctx context.Context, profileID string, from, size int) ([]*GoalWithProgress, int64, error) {
	if size <= 0 {
		size = 10
	}
	monthStart := startOfMonth(time.Now())

	tx := s.db.WithContext(ctx).Model(&models.AffiliateGoal{}).
		Where("profile_id = ? AND period < ?", profileID, monthStart)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count goal history: %w", err)
	}

	var goals []*models.AffiliateGoal
	err := tx.Order("period DESC, goal_type").Offset(from).Limit(size).Find(&goals).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list goal history: %w", err)
	}

	out := make([]*GoalWithProgress, 0, len(goals))
	for _, g := range goals {
		gp, err := s.withProgress(ctx, g)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, gp)
	}
	return out, total, nil
}

func (s *Service) withProgress(ctx context.Context, g *models.AffiliateGoal) (*GoalWithProgress, error) {
	progress, err := s.progress(ctx, g)
	if err != nil {
		return nil, err
	}

	gp := &GoalWithProgress{AffiliateGoal: *g, Progress: progress}
	if g.TargetValue > 0 {
		gp.Percent = float64(progress) / float64(g.TargetValue) * 100
	}
	gp.Status = DeriveStatus(g.Period, progress, g.TargetValue, time.Now())
	return gp, nil
}

func (s *Service) progress(ctx context.Context, g *models.AffiliateGoal) (int64, error) {
	start := g.Period
	end := start.AddDate(0, 1, 0)

	switch g.GoalType {
	case types.GoalTypeValue:
		var sum int64
		err := s.db.WithContext(ctx).Model(&models.Commission{}).
			Select("COALESCE(SUM(amount_cents), 0)").
			Where("profile_id = ? AND status <> ? AND created_at >= ? AND created_at < ?",
				g.ProfileID, types.CommissionStatusCancelled, start, end).
			Scan(&sum).Error
		if err != nil {
			return 0, fmt.Errorf("failed to sum commission progress: %w", err)
		}
		return sum, nil

	case types.GoalTypeSales:
		var count int64
		err := s.db.WithContext(ctx).Model(&models.Commission{}).
			Where("profile_id = ? AND level = 1 AND status <> ? AND created_at >= ? AND created_at < ?",
				g.ProfileID, types.CommissionStatusCancelled, start, end).
			Count(&count).Error
		if err != nil {
			return 0, fmt.Errorf("failed to count sales progress: %w", err)
		}
		return count, nil

	case types.GoalTypeReferrals:
		var count int64
		err := s.db.WithContext(ctx).Model(&models.Profile{}).
			Where("referrer_id = ? AND created_at >= ? AND created_at < ?", g.ProfileID, start, end).
			Count(&count).Error
		if err != nil {
			return 0, fmt.Errorf("failed to count referral progress: %w", err)
		}
		return count, nil
	}
	return 0, nil
}

// DeriveStatus computes the display status of a goal from its period and
// progress relative to now.
func DeriveStatus(period time.Time, progress, target int64, now time.Time) types.GoalStatus {
	current := startOfMonth(now)
	switch {
	case period.After(current):
		return types.GoalStatusPending
	case period.Equal(current):
		if target > 0 && progress >= target {
			return types.GoalStatusCompleted
		}
		return types.GoalStatusActive
	default:
		if target > 0 && progress >= target {
			return types.GoalStatusCompleted
		}
		return types.GoalStatusExpired
	}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
