package models

import (
	"time"

	"github.com/google/uuid"
)

// PrayerReport records a community abuse report against a prayer.
// The unique index enforces at most one report per (prayer, reporter) pair.
type PrayerReport struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PrayerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_prayer_reports_prayer_reporter" json:"prayer_id"`
	ReporterKey string    `gorm:"size:64;not null;uniqueIndex:idx_prayer_reports_prayer_reporter;index" json:"-"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	Prayer      Prayer    `gorm:"foreignKey:PrayerID" json:"-"`
}

func (PrayerReport) TableName() string {
	return "prayer_reports"
}
