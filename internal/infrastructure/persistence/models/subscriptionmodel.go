package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SubscriptionModel is the database persistence model for subscriptions.
// This is the anti-corruption layer between domain and database.
//
// Notification rules are stored as a JSON column on the subscription row:
// they are tiny owned value objects that are never queried independently.
// Renewal events get their own table because the schedulers query them by
// date and processed flag.
type SubscriptionModel struct {
	ID                string              `gorm:"primaryKey;size:36"`
	Name              string              `gorm:"not null;size:255;index:idx_subscription_name"`
	ProviderID        string              `gorm:"not null;size:36;index:idx_subscription_provider"`
	Provider          *ProviderModel      `gorm:"foreignKey:ProviderID"`
	CostAmount        decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	CostCurrency      string              `gorm:"not null;size:3"`
	BillingInterval   int                 `gorm:"not null"`
	BillingUnit       string              `gorm:"not null;size:10"`
	Status            string              `gorm:"not null;size:20;index:idx_subscription_status"`
	StartDate         time.Time           `gorm:"not null"`
	NextBillingDate   time.Time           `gorm:"not null;index:idx_next_billing_date"`
	CancellationDate  *time.Time
	Notes             *string             `gorm:"size:1000"`
	NotificationRules datatypes.JSON
	RenewalEvents     []RenewalEventModel `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// RenewalEventModel is the database persistence model for renewal events.
type RenewalEventModel struct {
	ID             string          `gorm:"primaryKey;size:36"`
	SubscriptionID string          `gorm:"not null;size:36;index:idx_event_subscription"`
	RenewalDate    time.Time       `gorm:"not null;index:idx_event_renewal_date"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Currency       string          `gorm:"not null;size:3"`
	IsProcessed    bool            `gorm:"not null;default:false;index:idx_event_processed"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (RenewalEventModel) TableName() string {
	return "renewal_events"
}
