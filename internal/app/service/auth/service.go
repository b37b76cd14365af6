package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/internal/platform/cache"
	dbpkg "github.com/upmkt/affiliates-api/internal/platform/db"
	"github.com/upmkt/affiliates-api/pkg/config"
	"github.com/upmkt/affiliates-api/pkg/logctx"
	"github.com/upmkt/affiliates-api/pkg/tool"
	"github.com/upmkt/affiliates-api/pkg/types"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	cfg   *config.Config
	log   *zap.SugaredLogger
	db    *gorm.DB
	cache *cache.Client
}

func NewService(cfg *config.Config, log *zap.SugaredLogger, db *gorm.DB, cache *cache.Client) *Service {
	return &Service{cfg: cfg, log: log, db: db, cache: cache}
}

type SignupRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	ReferrerID *string `json:"referrer_id"`
}

func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*models.Profile, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &models.Profile{
		ID:           tool.GenerateUUIDV7(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         types.RoleAffiliate,
		ReferrerID:   req.ReferrerID,
	}

	if err := s.db.WithContext(ctx).Create(profile).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create profile: %w", err)
	}

	token, err := GenerateToken(profile.ID, profile.Role, s.cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("profile signed up", "profile_id", profile.ID)
	return profile, token, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*models.Profile, string, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up profile: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(profile.ID, profile.Role, s.cfg)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.cacheRole(ctx, profile.ID, profile.Role)
	return &profile, token, nil
}

// Role resolves the current role for a user. The redis entry is a
// stale-while-revalidate convenience; on any doubt the database answer wins
// and refreshes the cache.
func (s *Service) Role(ctx context.Context, userID string) (types.Role, error) {
	if v, ok := s.cache.Get(ctx, roleKey(userID)); ok {
		return types.Role(v), nil
	}

	var profile models.Profile
	err := s.db.WithContext(ctx).Select("id", "role").Where("id = ?", userID).First(&profile).Error
	if err != nil {
		return "", fmt.Errorf("failed to resolve role: %w", err)
	}

	s.cacheRole(ctx, userID, profile.Role)
	return profile.Role, nil
}

// InvalidateRole drops the cached role after an admin changes it.
func (s *Service) InvalidateRole(ctx context.Context, userID string) {
	s.cache.Delete(ctx, roleKey(userID))
}

func (s *Service) cacheRole(ctx context.Context, userID string, role types.Role) {
	ttl := time.Duration(s.cfg.Redis.RoleTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	s.cache.Set(ctx, roleKey(userID), string(role), ttl)
}

func roleKey(userID string) string {
	return "role:" + userID
}
