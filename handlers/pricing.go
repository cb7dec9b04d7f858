package handlers

import (
	"net/http"

	"cafe-pos-api/middleware"
	"cafe-pos-api/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PriceHandler struct {
	svc *services.PricingService
}

func NewPriceHandler(svc *services.PricingService) *PriceHandler {
	return &PriceHandler{svc: svc}
}

type RevisePriceRequest struct {
	NewPrice decimal.Decimal `json:"new_price" binding:"required"`
	IsOffer  bool            `json:"is_offer"`
	Reason   string          `json:"reason"`
}

// RevisePrice updates an item's price/offer state and appends one revision
// row — admin only
func (h *PriceHandler) RevisePrice(c *gin.Context) {
	var req RevisePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.svc.RevisePrice(c.Param("itemId"), req.NewPrice, req.IsOffer, req.Reason, middleware.GetUsername(c))
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Price updated"})
}
