package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	ItemID      string          `json:"item_id" gorm:"uniqueIndex;not null"` // business key, e.g. "M001"
	Name        string          `json:"name" gorm:"uniqueIndex;not null"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Cost        decimal.Decimal `json:"cost" gorm:"type:decimal(10,2)"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	IsOffer     bool            `json:"is_offer" gorm:"default:false"`
	// OriginalPrice holds the pre-offer price while the item is on offer,
	// zero otherwise.
	OriginalPrice decimal.Decimal `json:"original_price" gorm:"type:decimal(10,2)"`
	// OrderCount is popularity telemetry only. Revenue is always derived
	// from the sales log, never from this counter.
	OrderCount int64     `json:"order_count" gorm:"default:0"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PriceRevision records a single price/offer change. Rows are immutable —
// never updated or deleted.
type PriceRevision struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	ItemID    string          `json:"item_id" gorm:"index;not null"`
	OldPrice  decimal.Decimal `json:"old_price" gorm:"type:decimal(10,2);not null"`
	NewPrice  decimal.Decimal `json:"new_price" gorm:"type:decimal(10,2);not null"`
	IsOffer   bool            `json:"is_offer"`
	Reason    string          `json:"reason"`
	ChangedBy string          `json:"changed_by"`
	CreatedAt time.Time       `json:"created_at"`
}
