package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an immutable transaction record. Name, category, price, cost and
// profit are snapshots of the menu item at record time; later catalog edits
// never change historical rows. Date, month, year and time slot are derived
// once from the record-time clock and stored denormalized so dashboards can
// filter and group on plain indexed columns.
type Sale struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	ItemID        string          `json:"item_id" gorm:"index;not null"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Price         decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Cost          decimal.Decimal `json:"cost" gorm:"type:decimal(10,2)"`
	Profit        decimal.Decimal `json:"profit" gorm:"type:decimal(10,2)"`
	PaymentMethod string          `json:"payment_method" gorm:"not null"`
	SoldBy        string          `json:"sold_by" gorm:"index"`
	Timestamp     time.Time       `json:"timestamp"`
	Date          string          `json:"date" gorm:"index;size:10"` // YYYY-MM-DD
	Month         string          `json:"month" gorm:"index;size:2"` // MM
	Year          string          `json:"year" gorm:"index;size:4"`  // YYYY
	TimeSlot      string          `json:"time_slot" gorm:"index"`
}
