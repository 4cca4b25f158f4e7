package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Email     EmailConfig
	OAuth     OAuthConfig
	Pricing   PricingConfig
	Printer   PrinterConfig
	Backup    BackupConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendSuccessURL string
	FrontendErrorURL   string
}

// PricingConfig holds checkout pricing knobs. All amounts are in cents.
type PricingConfig struct {
	FreeShippingThreshold    int64
	FlatShippingCost         int64
	TaxRateBasisPoints       int64
	RedemptionCapBasisPoints int64
	PointValue               int64
	EarnDivisor              int64
	ReverseLoyaltyOnCancel   bool
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
}

type BackupConfig struct {
	Enabled       bool
	IntervalHours int
	Directory     string
	KeepLast      int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "storefront-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "freshbasket")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("EMAIL_FROM_NAME", "FreshBasket")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("FREE_SHIPPING_THRESHOLD", 50000)
	viper.SetDefault("FLAT_SHIPPING_COST", 5000)
	viper.SetDefault("TAX_RATE_BASIS_POINTS", 500)
	viper.SetDefault("LOYALTY_REDEMPTION_CAP_BASIS_POINTS", 1000)
	viper.SetDefault("LOYALTY_POINT_VALUE", 100)
	viper.SetDefault("LOYALTY_EARN_DIVISOR", 10000)
	viper.SetDefault("LOYALTY_REVERSE_ON_CANCEL", false)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("BACKUP_ENABLED", false)
	viper.SetDefault("BACKUP_INTERVAL_HOURS", 24)
	viper.SetDefault("BACKUP_DIRECTORY", "./backups")
	viper.SetDefault("BACKUP_KEEP_LAST", 7)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Email: EmailConfig{
			SMTPHost:     viper.GetString("SMTP_HOST"),
			SMTPPort:     viper.GetInt("SMTP_PORT"),
			SMTPUsername: viper.GetString("SMTP_USERNAME"),
			SMTPPassword: viper.GetString("SMTP_PASSWORD"),
			FromName:     viper.GetString("EMAIL_FROM_NAME"),
			FromEmail:    viper.GetString("EMAIL_FROM_ADDRESS"),
			FrontendURL:  viper.GetString("FRONTEND_URL"),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
			GoogleClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
			GoogleRedirectURL:  viper.GetString("GOOGLE_REDIRECT_URL"),
			FrontendSuccessURL: viper.GetString("OAUTH_SUCCESS_URL"),
			FrontendErrorURL:   viper.GetString("OAUTH_ERROR_URL"),
		},
		Pricing: PricingConfig{
			FreeShippingThreshold:    viper.GetInt64("FREE_SHIPPING_THRESHOLD"),
			FlatShippingCost:         viper.GetInt64("FLAT_SHIPPING_COST"),
			TaxRateBasisPoints:       viper.GetInt64("TAX_RATE_BASIS_POINTS"),
			RedemptionCapBasisPoints: viper.GetInt64("LOYALTY_REDEMPTION_CAP_BASIS_POINTS"),
			PointValue:               viper.GetInt64("LOYALTY_POINT_VALUE"),
			EarnDivisor:              viper.GetInt64("LOYALTY_EARN_DIVISOR"),
			ReverseLoyaltyOnCancel:   viper.GetBool("LOYALTY_REVERSE_ON_CANCEL"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
		Backup: BackupConfig{
			Enabled:       viper.GetBool("BACKUP_ENABLED"),
			IntervalHours: viper.GetInt("BACKUP_INTERVAL_HOURS"),
			Directory:     viper.GetString("BACKUP_DIRECTORY"),
			KeepLast:      viper.GetInt("BACKUP_KEEP_LAST"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
