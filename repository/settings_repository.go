package repository

import (
	"errors"

	"parrilla-backend/entity"

	"gorm.io/gorm"
)

type SettingsRepository struct{ DB *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{DB: db} }

// GetBranding returns the singleton row, or nil when it has never been
// written (callers fall back to defaults).
func (r *SettingsRepository) GetBranding() (*entity.Branding, error) {
	var b entity.Branding
	err := r.DB.First(&b, "id = ?", entity.BrandingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *SettingsRepository) SetBranding(b *entity.Branding) error {
	b.ID = entity.BrandingID
	return r.DB.Save(b).Error
}
