package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gracechapel/church-backend/internal/models"
	"gorm.io/gorm"
)

// GormStore is the PostgreSQL-backed implementation of services.PrayerStore.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreatePrayer(p *models.Prayer) error {
	return s.db.Create(p).Error
}

func (s *GormStore) GetPrayer(id uuid.UUID) (*models.Prayer, error) {
	var prayer models.Prayer
	if err := s.db.First(&prayer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &prayer, nil
}

func (s *GormStore) ListWall(page, limit int) ([]models.Prayer, int64, error) {
	var prayers []models.Prayer
	var total int64

	offset := (page - 1) * limit

	query := s.db.Model(&models.Prayer{}).
		Where("is_public = ? AND status <> ?", true, models.StatusHidden)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&prayers).Error

	return prayers, total, err
}

func (s *GormStore) ListByMember(memberID uuid.UUID, page, limit int) ([]models.Prayer, int64, error) {
	var prayers []models.Prayer
	var total int64

	offset := (page - 1) * limit

	query := s.db.Model(&models.Prayer{}).Where("member_id = ?", memberID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&prayers).Error

	return prayers, total, err
}

func (s *GormStore) SubmissionsSince(submitterKey string, since time.Time) ([]models.Prayer, error) {
	var prayers []models.Prayer
	err := s.db.
		Where("submitter_key = ? AND created_at > ?", submitterKey, since).
		Order("created_at DESC").
		Find(&prayers).Error
	return prayers, err
}

func (s *GormStore) CountSubmissionsSince(submitterKey string, since time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.Prayer{}).
		Where("submitter_key = ? AND created_at > ?", submitterKey, since).
		Count(&count).Error
	return count, err
}

func (s *GormStore) CreateReport(r *models.PrayerReport) error {
	return s.db.Create(r).Error
}

func (s *GormStore) HasReport(prayerID uuid.UUID, reporterKey string) (bool, error) {
	var report models.PrayerReport
	err := s.db.
		Where("prayer_id = ? AND reporter_key = ?", prayerID, reporterKey).
		First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormStore) CountReportsSince(reporterKey string, since time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.PrayerReport{}).
		Where("reporter_key = ? AND created_at > ?", reporterKey, since).
		Count(&count).Error
	return count, err
}

// IncrementReportCount relies on a single UPDATE for atomicity; two
// concurrent reports cannot lose an increment.
func (s *GormStore) IncrementReportCount(prayerID uuid.UUID) (*models.Prayer, error) {
	result := s.db.Model(&models.Prayer{}).
		Where("id = ?", prayerID).
		UpdateColumn("report_count", gorm.Expr("report_count + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetPrayer(prayerID)
}

func (s *GormStore) UpdateStatus(prayerID uuid.UUID, status string) error {
	return s.db.Model(&models.Prayer{}).
		Where("id = ?", prayerID).
		Update("status", status).Error
}
