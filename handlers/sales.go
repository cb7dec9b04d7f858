package handlers

import (
	"net/http"

	"cafe-pos-api/middleware"
	"cafe-pos-api/services"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	svc *services.SaleService
}

func NewSaleHandler(svc *services.SaleService) *SaleHandler {
	return &SaleHandler{svc: svc}
}

type RecordSaleRequest struct {
	ItemID        string `json:"item_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// RecordSale logs a single transaction. The selling operator comes from the
// JWT, never from the request body.
func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sale, err := h.svc.RecordSale(req.ItemID, req.PaymentMethod, middleware.GetUsername(c))
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Sale recorded successfully", "sale": sale})
}
