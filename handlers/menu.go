package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cafe-pos-api/config"
	"cafe-pos-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListMenuItems returns menu items, optionally filtered by category and a
// case-insensitive name search. Staff see the sale screen from this list, so
// inactive items are excluded unless include_inactive=true (admin screens).
func ListMenuItems(c *gin.Context) {
	query := config.DB.Model(&models.MenuItem{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if c.Query("include_inactive") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if c.Query("sort") == "popular" {
		query = query.Order("order_count desc")
	} else {
		query = query.Order("item_id asc")
	}

	var items []models.MenuItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItem returns a single item by its business key
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.Where("item_id = ?", c.Param("itemId")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type CreateMenuItemRequest struct {
	ItemID      string          `json:"item_id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Cost        decimal.Decimal `json:"cost"`
}

// CreateMenuItem adds a new item to the catalog — admin only
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.LessThanOrEqual(decimal.Zero) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than 0"})
		return
	}
	if req.Cost.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cost cannot be negative"})
		return
	}

	// Name and item_id are unique across the whole catalog, active or not
	var existing models.MenuItem
	if result := config.DB.Where("item_id = ? OR name = ?", req.ItemID, req.Name).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An item with this id or name already exists"})
		return
	}

	item := models.MenuItem{
		ItemID:      req.ItemID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		IsActive:    true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem updates non-price fields of a menu item — admin only.
// Price changes go through the price revision endpoint so the change log
// stays complete. Items are never hard-deleted, only disabled via is_active.
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.Where("item_id = ?", c.Param("itemId")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{"name": true, "category": true, "description": true, "is_active": true, "image_url": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if err := config.DB.Model(&item).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// UploadImage stores an item photo under the upload dir and points the
// item's image_url at it — admin only
func UploadImage(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.Where("item_id = ?", c.Param("itemId")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file required"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
		return
	}

	if err := os.MkdirAll(config.Cfg.UploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload dir"})
		return
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(config.Cfg.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}

	imageURL := "/" + config.Cfg.UploadDir + "/" + name
	if err := config.DB.Model(&item).Update("image_url", imageURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded", "image_url": imageURL})
}
