package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/upmkt/affiliates-api/pkg/types"
)

type SupportTicket struct {
	ID        string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	ProfileID string `gorm:"column:profile_id;type:uuid;not null;index" json:"profile_id"`

	Type     string               `gorm:"column:type;type:varchar(64);not null" json:"type"`
	Priority types.TicketPriority `gorm:"column:priority;type:varchar(16);not null;default:'medium'" json:"priority"`
	Subject  string               `gorm:"column:subject;type:varchar(255);not null" json:"subject"`

	Status types.TicketStatus `gorm:"column:status;type:varchar(32);not null;index" json:"status"`

	// AssignedAdminID is set by the first admin reply and kept afterwards.
	AssignedAdminID *string `gorm:"column:assigned_admin_id;type:uuid;default:null;index" json:"assigned_admin_id"`

	Rating        *int   `gorm:"column:rating;default:null" json:"rating"`
	RatingComment string `gorm:"column:rating_comment;type:text" json:"rating_comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SupportTicket) TableName() string {
	return "support_tickets"
}

// SupportMessage belongs to a ticket. References are always stored in the
// structured column, never encoded into Body.
type SupportMessage struct {
	ID       string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	TicketID string `gorm:"column:ticket_id;type:uuid;not null;index" json:"ticket_id"`

	SenderID   string     `gorm:"column:sender_id;type:uuid;not null" json:"sender_id"`
	SenderRole types.Role `gorm:"column:sender_role;type:varchar(32);not null" json:"sender_role"`

	Body string `gorm:"column:body;type:text;not null" json:"body"`

	ImageURLs  datatypes.JSONSlice[string]                 `gorm:"column:image_urls;type:jsonb;default:'[]'" json:"image_urls"`
	References datatypes.JSONSlice[types.MessageReference] `gorm:"column:references;type:jsonb;default:'[]'" json:"references"`

	// ReadAt is set in bulk when the counterparty opens the thread.
	ReadAt *time.Time `gorm:"column:read_at;default:null" json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SupportMessage) TableName() string {
	return "support_messages"
}
