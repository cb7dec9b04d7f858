package main

import (
	"log"

	"cafe-pos-api/config"
	"cafe-pos-api/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type seedItem struct {
	itemID   string
	name     string
	category string
	price    int64
	cost     int64
	desc     string
}

var menu = []seedItem{
	{"M001", "Oreo Milkshake", "Milkshakes", 100, 45, "Rich and creamy milkshake featuring Oreo cookies blended with chilled milk."},
	{"M002", "Belgian Dark Chocolate Milkshake", "Milkshakes", 100, 50, "Premium dark chocolate blended into a smooth and indulgent shake."},
	{"M003", "Dry Fruit Milkshake", "Milkshakes", 150, 70, "Energy-packed milkshake blended with cashews, almonds and pistachios."},
	{"M004", "Brownie Milkshake", "Milkshakes", 120, 55, "Chocolate brownie blended with creamy milk for a rich dessert-style shake."},
	{"M005", "Mango Milkshake", "Milkshakes", 80, 35, "Sweet tropical mango milkshake made with fresh mango crush."},
	{"M006", "Vanilla Milkshake", "Milkshakes", 80, 30, "Classic vanilla flavored creamy milkshake."},
	{"I001", "Kitkat Ice Cream Shake", "Ice Cream Shakes", 150, 70, "Ice cream blended with Kitkat chocolate and milk."},
	{"I002", "Mango Ice Cream Shake", "Ice Cream Shakes", 150, 65, "Mango flavored ice cream blended into thick shake."},
	{"I003", "Butterscotch Ice Cream Shake", "Ice Cream Shakes", 150, 65, "Butterscotch ice cream blended into creamy shake."},
	{"S001", "Peri Peri French Fries", "Snacks", 100, 40, "Crispy fries coated in peri peri spice blend."},
	{"S002", "Masala Fries", "Snacks", 70, 30, "Classic fries tossed with spicy masala seasoning."},
	{"S003", "Cheesy Fries", "Snacks", 150, 70, "Loaded fries topped with melted cheese."},
	{"C001", "Mango Milkshake + French Fries", "Combo Offers", 140, 65, "Sweet mango milkshake paired with crispy fries."},
	{"C002", "Vanilla Milkshake + Classic French Fries", "Combo Offers", 140, 60, "Classic vanilla shake with crispy fries."},
}

type seedUser struct {
	username  string
	password  string
	role      models.UserRole
	createdBy string
}

var users = []seedUser{
	{"1133557799", "2244668800", models.RoleAdmin, "system"},
	{"9988776655", "1122334455", models.RoleAdmin, "system"},
	{"0088664422", "9977553311", models.RoleStaff, "1133557799"},
	{"0088664433", "9977553311", models.RoleStaff, "1133557799"},
	{"0088664444", "9977553311", models.RoleStaff, "1133557799"},
	{"0088664455", "9977553311", models.RoleStaff, "1133557799"},
	{"0088664466", "9977553311", models.RoleStaff, "1133557799"},
}

// Seeds the starter menu and operator roster. Safe to rerun: existing rows
// are left alone.
func main() {
	cfg := config.Load()
	config.InitDB(cfg)

	for _, s := range menu {
		var existing models.MenuItem
		if err := config.DB.Where("item_id = ?", s.itemID).First(&existing).Error; err == nil {
			continue
		}
		item := models.MenuItem{
			ItemID:      s.itemID,
			Name:        s.name,
			Category:    s.category,
			Description: s.desc,
			Price:       decimal.NewFromInt(s.price),
			Cost:        decimal.NewFromInt(s.cost),
			IsActive:    true,
		}
		if err := config.DB.Create(&item).Error; err != nil {
			log.Fatalf("failed to seed item %s: %v", s.itemID, err)
		}
		log.Printf("seeded item %s (%s)", s.itemID, s.name)
	}

	for _, u := range users {
		var existing models.User
		if err := config.DB.Where("username = ?", u.username).First(&existing).Error; err == nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password for %s: %v", u.username, err)
		}
		user := models.User{
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
			IsActive:     true,
			CreatedBy:    u.createdBy,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Fatalf("failed to seed user %s: %v", u.username, err)
		}
		log.Printf("seeded %s: %s", u.role, u.username)
	}

	log.Println("seeding complete")
}
