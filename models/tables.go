package models

import "time"

// StorageEntry is a string-keyed JSON blob row. The portfolio document, the
// admin password and the admin email each live under their own key so that a
// password change never rewrites the whole document.
type StorageEntry struct {
	Key       string    `gorm:"primary_key" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Well-known storage keys.
const (
	KeyPortfolioData = "portfolio_admin_data"
	KeyAdminPassword = "portfolio_admin_password"
	KeyAdminEmail    = "portfolio_admin_email"
	KeyMirrorData    = "portfolio_mirror_data"
)
