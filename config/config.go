package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"cafe-pos-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Cfg is the active configuration, set by Load at startup.
var Cfg *App

// App holds the full configuration surface. Deployment-varying enumerations
// (payment methods, time-slot scheme, inactive-sale policy) live here rather
// than as code branches.
type App struct {
	Port      string
	DBPath    string
	JWTSecret []byte

	// PaymentMethods is the closed set a sale's payment method must
	// belong to. Deployments vary between {Cash, PhonePe} and
	// {Cash, PhonePe, UPI}.
	PaymentMethods []string

	// TimeSlotScheme selects the classifier bucket table: "five" or "three".
	TimeSlotScheme string

	// BlockInactiveSales rejects sales against soft-disabled items when
	// true. The default mirrors deployments that only filter inactive
	// items out of listings.
	BlockInactiveSales bool

	MaxAdmins int
	MaxStaff  int

	UploadDir string

	// EODSchedule is a cron expression for the end-of-day summary log.
	// Empty disables the job.
	EODSchedule string
}

// Load reads environment variables (optionally from a .env file) and
// materializes the configuration. Missing .env files are fine; configuration
// can come from the environment directly.
func Load() *App {
	_ = godotenv.Load()

	Cfg = &App{
		Port:               getEnv("PORT", "8080"),
		DBPath:             getEnv("DB_PATH", "cafe_pos.db"),
		JWTSecret:          []byte(getEnv("JWT_SECRET", "cafe_pos_super_secret_2024")),
		PaymentMethods:     splitList(getEnv("PAYMENT_METHODS", "Cash,PhonePe,UPI")),
		TimeSlotScheme:     getEnv("TIME_SLOT_SCHEME", "five"),
		BlockInactiveSales: getEnvBool("BLOCK_INACTIVE_SALES", false),
		MaxAdmins:          getEnvInt("MAX_ADMINS", 2),
		MaxStaff:           getEnvInt("MAX_STAFF", 5),
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),
		EODSchedule:        getEnv("EOD_REPORT_SCHEDULE", ""),
	}
	return Cfg
}

// ValidPaymentMethod reports whether m belongs to the configured closed set.
func (a *App) ValidPaymentMethod(m string) bool {
	for _, pm := range a.PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func InitDB(cfg *App) {
	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Sale{},
		&models.PriceRevision{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}
