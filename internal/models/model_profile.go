package models

import (
	"time"

	"github.com/upmkt/affiliates-api/pkg/types"
)

// Profile is an affiliate or admin account. Profiles are created by signup
// and updated by the owner or an admin; they are never deleted.
type Profile struct {
	ID           string     `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name         string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email        string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role         types.Role `gorm:"column:role;type:varchar(32);not null;default:'affiliate';index" json:"role"`

	Phone    string `gorm:"column:phone;type:varchar(32)" json:"phone"`
	Document string `gorm:"column:document;type:varchar(32)" json:"document"`

	PixKey     string           `gorm:"column:pix_key;type:varchar(255)" json:"pix_key"`
	PixKeyType types.PixKeyType `gorm:"column:pix_key_type;type:varchar(16)" json:"pix_key_type"`

	AddressStreet  string `gorm:"column:address_street;type:varchar(255)" json:"address_street"`
	AddressCity    string `gorm:"column:address_city;type:varchar(128)" json:"address_city"`
	AddressState   string `gorm:"column:address_state;type:varchar(64)" json:"address_state"`
	AddressZipCode string `gorm:"column:address_zip_code;type:varchar(16)" json:"address_zip_code"`

	InstagramURL string `gorm:"column:instagram_url;type:varchar(255)" json:"instagram_url"`
	YoutubeURL   string `gorm:"column:youtube_url;type:varchar(255)" json:"youtube_url"`
	WebsiteURL   string `gorm:"column:website_url;type:varchar(255)" json:"website_url"`

	AvatarURL string `gorm:"column:avatar_url;type:varchar(512)" json:"avatar_url"`

	// ReferrerID links a sub-affiliate to the profile that recruited it.
	ReferrerID *string `gorm:"column:referrer_id;type:uuid;index" json:"referrer_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) IsAdmin() bool {
	return p != nil && p.Role == types.RoleAdmin
}
