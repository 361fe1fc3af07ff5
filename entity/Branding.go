package entity

import "time"

// BrandingID is the primary key of the single settings row.
const BrandingID = "branding"

// Branding is the singleton restaurant identity record, writable only
// from the admin surface.
type Branding struct {
	ID        string    `gorm:"primaryKey" json:"-"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logoUrl"`
	UpdatedAt time.Time `json:"-"`
}

// DefaultBranding is what every view falls back to before staff ever
// save their own.
func DefaultBranding() Branding {
	return Branding{
		ID:      BrandingID,
		Name:    "Santa Parrilla",
		LogoURL: "https://cdn-icons-png.flaticon.com/512/3075/3075977.png",
	}
}
