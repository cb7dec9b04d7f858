package services

import (
	"errors"
	"time"

	"cafe-pos-api/models"
	"cafe-pos-api/timeslot"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SaleService validates and persists individual transactions. Every sale is
// an immutable snapshot of the menu item and the clock at record time.
type SaleService struct {
	db             *gorm.DB
	paymentMethods []string
	slots          timeslot.Table
	blockInactive  bool
	log            *zap.Logger

	// Now supplies the record-time instant; overridable in tests.
	Now func() time.Time
}

func NewSaleService(db *gorm.DB, paymentMethods []string, slots timeslot.Table, blockInactive bool, log *zap.Logger) *SaleService {
	if log == nil {
		log = zap.NewNop()
	}
	return &SaleService{
		db:             db,
		paymentMethods: paymentMethods,
		slots:          slots,
		blockInactive:  blockInactive,
		log:            log.Named("sales"),
		Now:            time.Now,
	}
}

// RecordSale resolves the item, snapshots its name/category/price/cost,
// derives date, month, year and time slot from a single clock read, persists
// the sale, then increments the item's popularity counter. The counter is
// best-effort telemetry: a failed increment leaves the sale recorded.
func (s *SaleService) RecordSale(itemID, paymentMethod, soldBy string) (*models.Sale, error) {
	if !s.validPaymentMethod(paymentMethod) {
		return nil, Validation("invalid payment method")
	}

	var item models.MenuItem
	if err := s.db.Where("item_id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("item not found")
		}
		return nil, Storage(err)
	}

	if s.blockInactive && !item.IsActive {
		return nil, Validation("item is not available for sale")
	}

	now := s.Now()
	sale := models.Sale{
		ItemID:        item.ItemID,
		Name:          item.Name,
		Category:      item.Category,
		Price:         item.Price,
		Cost:          item.Cost,
		Profit:        item.Price.Sub(item.Cost).Round(2),
		PaymentMethod: paymentMethod,
		SoldBy:        soldBy,
		Timestamp:     now,
		Date:          now.Format("2006-01-02"),
		Month:         now.Format("01"),
		Year:          now.Format("2006"),
		TimeSlot:      s.slots.Classify(now.Hour()),
	}

	if err := s.db.Create(&sale).Error; err != nil {
		return nil, Storage(err)
	}

	// Atomic increment, not read-modify-write; concurrent sales against
	// the same item stay safe.
	if err := s.db.Model(&models.MenuItem{}).
		Where("item_id = ?", item.ItemID).
		UpdateColumn("order_count", gorm.Expr("order_count + 1")).Error; err != nil {
		s.log.Warn("order_count increment failed, sale remains recorded",
			zap.String("item_id", item.ItemID), zap.Error(err))
	}

	s.log.Info("sale recorded",
		zap.String("item_id", sale.ItemID),
		zap.String("payment_method", sale.PaymentMethod),
		zap.String("time_slot", sale.TimeSlot),
		zap.String("sold_by", sale.SoldBy))
	return &sale, nil
}

func (s *SaleService) validPaymentMethod(m string) bool {
	for _, pm := range s.paymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}
