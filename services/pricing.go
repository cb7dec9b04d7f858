package services

import (
	"errors"
	"time"

	"cafe-pos-api/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxPrice is the upper bound a revision may set.
var maxPrice = decimal.NewFromInt(10000)

// PricingService applies price/offer changes to the catalog and appends one
// immutable PriceRevision row per change. Offer handling is a two-state
// machine per item: entering offer mode captures the pre-offer price once,
// staying in offer mode preserves it, leaving offer mode clears it.
type PricingService struct {
	db  *gorm.DB
	log *zap.Logger

	// Now stamps revision rows; overridable in tests.
	Now func() time.Time
}

func NewPricingService(db *gorm.DB, log *zap.Logger) *PricingService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PricingService{db: db, log: log.Named("pricing"), Now: time.Now}
}

// RevisePrice updates the item's price and offer state, then records the
// change. Concurrent revisions are not serialized — last write wins.
func (p *PricingService) RevisePrice(itemID string, newPrice decimal.Decimal, isOffer bool, reason, actor string) error {
	if newPrice.LessThanOrEqual(decimal.Zero) || newPrice.GreaterThan(maxPrice) {
		return Validation("price must be greater than 0 and at most 10000")
	}

	var item models.MenuItem
	if err := p.db.Where("item_id = ?", itemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("item not found")
		}
		return Storage(err)
	}

	oldPrice := item.Price
	updates := map[string]interface{}{
		"price":    newPrice,
		"is_offer": isOffer,
	}
	switch {
	case isOffer && !item.IsOffer:
		// Entering offer mode: remember what we charged before.
		updates["original_price"] = item.Price
	case !isOffer:
		updates["original_price"] = decimal.Zero
	}
	// Already on offer: original_price stays untouched.

	if err := p.db.Model(&item).Updates(updates).Error; err != nil {
		return Storage(err)
	}

	revision := models.PriceRevision{
		ItemID:    item.ItemID,
		OldPrice:  oldPrice,
		NewPrice:  newPrice,
		IsOffer:   isOffer,
		Reason:    reason,
		ChangedBy: actor,
		CreatedAt: p.Now(),
	}
	if err := p.db.Create(&revision).Error; err != nil {
		return Storage(err)
	}

	p.log.Info("price revised",
		zap.String("item_id", item.ItemID),
		zap.String("old_price", oldPrice.String()),
		zap.String("new_price", newPrice.String()),
		zap.Bool("is_offer", isOffer),
		zap.String("changed_by", actor))
	return nil
}
