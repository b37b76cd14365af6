package profile

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/internal/platform/storage"
	"github.com/upmkt/affiliates-api/pkg/logctx"
	"github.com/upmkt/affiliates-api/pkg/types"
)

var ErrNotFound = errors.New("profile not found")

type Service struct {
	log   *zap.SugaredLogger
	db    *gorm.DB
	store storage.Driver
}

func NewService(log *zap.SugaredLogger, db *gorm.DB, store storage.Driver) *Service {
	return &Service{log: log, db: db, store: store}
}

func (s *Service) Get(ctx context.Context, id string) (*models.Profile, error) {
	var p models.Profile
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &p, nil
}

// UpdateRequest carries the self-service editable fields. Email, role and
// password change through dedicated flows.
type UpdateRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Document string `json:"document"`

	PixKey     string           `json:"pix_key"`
	PixKeyType types.PixKeyType `json:"pix_key_type"`

	AddressStreet  string `json:"address_street"`
	AddressCity    string `json:"address_city"`
	AddressState   string `json:"address_state"`
	AddressZipCode string `json:"address_zip_code"`

	InstagramURL string `json:"instagram_url"`
	YoutubeURL   string `json:"youtube_url"`
	WebsiteURL   string `json:"website_url"`
}

func (s *Service) Update(ctx context.Context, id string, req *UpdateRequest) (*models.Profile, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"name":             req.Name,
		"phone":            req.Phone,
		"document":         req.Document,
		"pix_key":          req.PixKey,
		"pix_key_type":     req.PixKeyType,
		"address_street":   req.AddressStreet,
		"address_city":     req.AddressCity,
		"address_state":    req.AddressState,
		"address_zip_code": req.AddressZipCode,
		"instagram_url":    req.InstagramURL,
		"youtube_url":      req.YoutubeURL,
		"website_url":      req.WebsiteURL,
	}
	if err := s.db.WithContext(ctx).Model(p).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

// SetAvatar uploads the image to the avatars bucket and stores its public
// URL on the profile.
func (s *Service) SetAvatar(ctx context.Context, id, filename string, file io.Reader) (string, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return "", err
	}

	path := storage.ObjectPath(storage.BucketAvatars, id, "", filename)
	_, url, err := s.store.Upload(ctx, file, path)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	err = s.db.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", id).
		Update("avatar_url", url).Error
	if err != nil {
		return "", fmt.Errorf("failed to store avatar url: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("avatar updated", "profile_id", id)
	return url, nil
}
