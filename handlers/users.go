package handlers

import (
	"net/http"

	"cafe-pos-api/config"
	"cafe-pos-api/middleware"
	"cafe-pos-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserRequest struct {
	Username string          `json:"username" binding:"required"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required"`
}

// CreateUser lets an admin register a new operator account. The café runs a
// small fixed roster: at most 2 admins and 5 staff.
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role != models.RoleAdmin && req.Role != models.RoleStaff {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: admin or staff"})
		return
	}

	var existing models.User
	if result := config.DB.Where("username = ?", req.Username).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already taken"})
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("role = ?", req.Role).Count(&count)
	if req.Role == models.RoleAdmin && count >= int64(config.Cfg.MaxAdmins) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admin limit reached"})
		return
	}
	if req.Role == models.RoleStaff && count >= int64(config.Cfg.MaxStaff) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Staff limit reached"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		IsActive:     true,
		CreatedBy:    middleware.GetUsername(c),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// ListUsers returns all operator accounts — admin only
func ListUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Order("created_at asc").Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// DeactivateUser soft-disables an operator. The last active admin can never
// be deactivated, so sold_by on new sales always resolves to a real operator
// and someone can still administer the system.
func DeactivateUser(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if user.Role == models.RoleAdmin {
		var activeAdmins int64
		config.DB.Model(&models.User{}).
			Where("role = ? AND is_active = ?", models.RoleAdmin, true).
			Count(&activeAdmins)
		if activeAdmins <= 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot deactivate the last active admin"})
			return
		}
	}

	if err := config.DB.Model(&user).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deactivated", "username": user.Username})
}
