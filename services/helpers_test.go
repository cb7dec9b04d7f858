package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"cafe-pos-api/models"
	"cafe-pos-api/timeslot"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testMethods = []string{"Cash", "PhonePe", "UPI"}

// testDB opens a fresh in-memory database, one per test.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.MenuItem{}, &models.Sale{}, &models.PriceRevision{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, itemID, name, category string, price, cost int64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		ItemID:   itemID,
		Name:     name,
		Category: category,
		Price:    decimal.NewFromInt(price),
		Cost:     decimal.NewFromInt(cost),
		IsActive: true,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item %s: %v", itemID, err)
	}
	return item
}

// seedSale inserts a sale row directly with its denormalized fields, the way
// the recorder would have written it at the given instant.
func seedSale(t *testing.T, db *gorm.DB, itemID, name, category string, price, cost int64, method, soldBy string, at time.Time) models.Sale {
	t.Helper()
	p := decimal.NewFromInt(price)
	c := decimal.NewFromInt(cost)
	sale := models.Sale{
		ItemID:        itemID,
		Name:          name,
		Category:      category,
		Price:         p,
		Cost:          c,
		Profit:        p.Sub(c).Round(2),
		PaymentMethod: method,
		SoldBy:        soldBy,
		Timestamp:     at,
		Date:          at.Format("2006-01-02"),
		Month:         at.Format("01"),
		Year:          at.Format("2006"),
		TimeSlot:      timeslot.FiveBucket.Classify(at.Hour()),
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatalf("seed sale: %v", err)
	}
	return sale
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func wantDecimal(t *testing.T, label string, got decimal.Decimal, want int64) {
	t.Helper()
	if !got.Equal(decimal.NewFromInt(want)) {
		t.Errorf("%s = %s, want %d", label, got, want)
	}
}
