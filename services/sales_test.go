package services

import (
	"testing"
	"time"

	"cafe-pos-api/models"
	"cafe-pos-api/timeslot"
)

func TestRecordSaleUnknownItem(t *testing.T) {
	db := testDB(t)
	svc := NewSaleService(db, testMethods, timeslot.FiveBucket, false, nil)

	_, err := svc.RecordSale("NOPE", "Cash", "0088664422")
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected not_found, got %v", err)
	}

	var count int64
	db.Model(&models.Sale{}).Count(&count)
	if count != 0 {
		t.Errorf("sale was written despite failure, count = %d", count)
	}
}

func TestRecordSaleInvalidPaymentMethod(t *testing.T) {
	db := testDB(t)
	seedMenuItem(t, db, "M005", "Mango Milkshake", "Milkshakes", 80, 35)
	svc := NewSaleService(db, testMethods, timeslot.FiveBucket, false, nil)

	_, err := svc.RecordSale("M005", "Bitcoin", "0088664422")
	if KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	var count int64
	db.Model(&models.Sale{}).Count(&count)
	if count != 0 {
		t.Errorf("sale was written despite failure, count = %d", count)
	}

	var item models.MenuItem
	db.Where("item_id = ?", "M005").First(&item)
	if item.OrderCount != 0 {
		t.Errorf("order_count incremented despite failure: %d", item.OrderCount)
	}
}

func TestRecordSaleSnapshot(t *testing.T) {
	db := testDB(t)
	seedMenuItem(t, db, "M005", "Mango Milkshake", "Milkshakes", 80, 35)

	svc := NewSaleService(db, testMethods, timeslot.FiveBucket, false, nil)
	at := time.Date(2025, 3, 15, 10, 30, 0, 0, time.Local)
	svc.Now = fixedClock(at)

	sale, err := svc.RecordSale("M005", "Cash", "0088664422")
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	if sale.Name != "Mango Milkshake" || sale.Category != "Milkshakes" {
		t.Errorf("snapshot fields wrong: %+v", sale)
	}
	wantDecimal(t, "price", sale.Price, 80)
	wantDecimal(t, "cost", sale.Cost, 35)
	wantDecimal(t, "profit", sale.Profit, 45)
	if sale.PaymentMethod != "Cash" || sale.SoldBy != "0088664422" {
		t.Errorf("payment/operator wrong: %+v", sale)
	}
	if sale.Date != "2025-03-15" || sale.Month != "03" || sale.Year != "2025" {
		t.Errorf("derived date fields wrong: date=%s month=%s year=%s", sale.Date, sale.Month, sale.Year)
	}
	if sale.TimeSlot != "Morning (5am-11am)" {
		t.Errorf("time_slot = %q", sale.TimeSlot)
	}

	var item models.MenuItem
	db.Where("item_id = ?", "M005").First(&item)
	if item.OrderCount != 1 {
		t.Errorf("order_count = %d, want 1", item.OrderCount)
	}

	if _, err := svc.RecordSale("M005", "PhonePe", "0088664433"); err != nil {
		t.Fatalf("second RecordSale: %v", err)
	}
	db.Where("item_id = ?", "M005").First(&item)
	if item.OrderCount != 2 {
		t.Errorf("order_count = %d, want 2", item.OrderCount)
	}
}

// A later price edit must not touch already-recorded sales.
func TestRecordSaleImmuneToPriceEdits(t *testing.T) {
	db := testDB(t)
	seedMenuItem(t, db, "M005", "Mango Milkshake", "Milkshakes", 80, 35)
	svc := NewSaleService(db, testMethods, timeslot.FiveBucket, false, nil)

	sale, err := svc.RecordSale("M005", "Cash", "0088664422")
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}

	pricing := NewPricingService(db, nil)
	if err := pricing.RevisePrice("M005", dec(95), false, "hike", "1133557799"); err != nil {
		t.Fatalf("RevisePrice: %v", err)
	}

	var stored models.Sale
	db.First(&stored, sale.ID)
	wantDecimal(t, "stored price", stored.Price, 80)
	wantDecimal(t, "stored profit", stored.Profit, 45)
}

func TestRecordSaleInactiveItemPolicy(t *testing.T) {
	db := testDB(t)
	item := seedMenuItem(t, db, "S001", "Peri Peri French Fries", "Snacks", 100, 40)
	db.Model(&item).Update("is_active", false)

	allow := NewSaleService(db, testMethods, timeslot.FiveBucket, false, nil)
	if _, err := allow.RecordSale("S001", "Cash", "0088664422"); err != nil {
		t.Errorf("permissive policy rejected inactive item: %v", err)
	}

	block := NewSaleService(db, testMethods, timeslot.FiveBucket, true, nil)
	_, err := block.RecordSale("S001", "Cash", "0088664422")
	if KindOf(err) != KindValidation {
		t.Errorf("blocking policy let inactive item through, err = %v", err)
	}
}
