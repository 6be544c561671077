package models

import (
	"time"

	"github.com/google/uuid"
)

// Moderation statuses for a prayer request. Transitions are forward-only:
// public or quarantine can move to hidden, nothing moves back automatically.
const (
	StatusPublic     = "public"
	StatusQuarantine = "quarantine"
	StatusHidden     = "hidden"
)

// Prayer is a prayer request submitted through the public wall.
type Prayer struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string     `gorm:"size:80" json:"name"`
	Email        string     `gorm:"size:120" json:"-"`
	RequestText  string     `gorm:"type:text;not null" json:"request_text"`
	IsPublic     bool       `gorm:"default:true" json:"is_public"`
	ShowName     bool       `gorm:"default:false" json:"show_name"`
	MemberID     *uuid.UUID `gorm:"type:uuid;index" json:"member_id,omitempty"`
	Status       string     `gorm:"size:20;not null;default:'public';index" json:"status"`
	SubmitterKey string     `gorm:"size:64;not null;index" json:"-"`
	UserAgent    string     `gorm:"size:500" json:"-"`
	RiskScore    int        `gorm:"default:0" json:"-"`
	TrustLevel   int        `gorm:"default:0" json:"-"`
	ReportCount  int        `gorm:"default:0" json:"-"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
}

func (Prayer) TableName() string {
	return "prayers"
}
