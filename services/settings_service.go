package services

import (
	"errors"
	"strings"

	"parrilla-backend/entity"
	"parrilla-backend/utils"
)

var ErrBrandingName = errors.New("restaurant name is required")

type SettingsStore interface {
	GetBranding() (*entity.Branding, error)
	SetBranding(b *entity.Branding) error
}

type SettingsService struct {
	Store     SettingsStore
	Events    Publisher
	UploadDir string
}

func NewSettingsService(store SettingsStore, events Publisher, uploadDir string) *SettingsService {
	return &SettingsService{Store: store, Events: events, UploadDir: uploadDir}
}

func (s *SettingsService) Get() (entity.Branding, error) {
	b, err := s.Store.GetBranding()
	if err != nil {
		return entity.Branding{}, err
	}
	if b == nil {
		return entity.DefaultBranding(), nil
	}
	return *b, nil
}

// Set updates the singleton branding row. A logo may arrive as a URL or
// as base64 payload; the latter is persisted under the upload dir and
// served statically.
func (s *SettingsService) Set(name, logoURL, logoData string) (entity.Branding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Branding{}, ErrBrandingName
	}

	if logoData != "" {
		path, err := utils.SaveBase64Image(logoData, s.UploadDir)
		if err != nil {
			return entity.Branding{}, err
		}
		logoURL = "/" + path
	}

	b := entity.Branding{ID: entity.BrandingID, Name: name, LogoURL: logoURL}
	if err := s.Store.SetBranding(&b); err != nil {
		return entity.Branding{}, err
	}
	if s.Events != nil {
		s.Events.Publish(TableSettings)
	}
	return b, nil
}
