package models

import "time"

// ProviderModel is the database persistence model for providers.
type ProviderModel struct {
	ID        string  `gorm:"primaryKey;size:36"`
	Name      string  `gorm:"uniqueIndex;not null;size:255"`
	Category  string  `gorm:"not null;size:100;index:idx_provider_category"`
	Website   *string `gorm:"size:500"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ProviderModel) TableName() string {
	return "providers"
}
