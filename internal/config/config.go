package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Ozon            Ozon            `mapstructure:",squash"`
	Report          Report          `mapstructure:",squash"`
	Subscription    Subscription    `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Crypto          Crypto          `mapstructure:",squash"`
	Storage         Storage         `mapstructure:",squash"`
	TrialExpirySync TrialExpirySync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Ozon struct {
	BaseURL        string        `mapstructure:"ozon_base_url"`
	RequestTimeout time.Duration `mapstructure:"ozon_request_timeout"`
	PageSize       int           `mapstructure:"ozon_page_size"`
	MaxRetries     int           `mapstructure:"ozon_max_retries"`
	RetryBackoff   time.Duration `mapstructure:"ozon_retry_backoff"`
	// UseStub serves reports from the built-in static data set instead of the Seller API.
	UseStub bool `mapstructure:"ozon_use_stub"`
}

type Report struct {
	MaxPeriodDays  int   `mapstructure:"report_max_period_days"`
	AllowedPeriods []int `mapstructure:"report_allowed_periods"`
}

type Subscription struct {
	TrialPeriodDays int             `mapstructure:"trial_period_days"`
	Currency        string          `mapstructure:"subscription_currency"`
	PriceOneMonth   decimal.Decimal `mapstructure:"subscription_price_1_month"`
	PriceSixMonths  decimal.Decimal `mapstructure:"subscription_price_6_months"`
	PriceOneYear    decimal.Decimal `mapstructure:"subscription_price_1_year"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type Crypto struct {
	// CredentialsKey encrypts seller api keys at rest.
	CredentialsKey string `mapstructure:"credentials_encryption_key"`
}

type Storage struct {
	Enabled   bool          `mapstructure:"storage_enabled"`
	Endpoint  string        `mapstructure:"storage_endpoint"`
	AccessKey string        `mapstructure:"storage_access_key"`
	SecretKey string        `mapstructure:"storage_secret_key"`
	Bucket    string        `mapstructure:"storage_bucket"`
	UseSSL    bool          `mapstructure:"storage_use_ssl"`
	URLExpiry time.Duration `mapstructure:"storage_url_expiry"`
}

type TrialExpirySync struct {
	CronSchedule string `mapstructure:"trial_expiry_sync_cron"`
	Enabled      bool   `mapstructure:"trial_expiry_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ozon_logistics?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OZON_BASE_URL", "https://api-seller.ozon.ru")
	viper.SetDefault("OZON_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("OZON_PAGE_SIZE", 1000)
	viper.SetDefault("OZON_MAX_RETRIES", 2)
	viper.SetDefault("OZON_RETRY_BACKOFF", "500ms")
	viper.SetDefault("OZON_USE_STUB", false)

	viper.SetDefault("REPORT_MAX_PERIOD_DAYS", 90)
	viper.SetDefault("REPORT_ALLOWED_PERIODS", "7,28")

	viper.SetDefault("TRIAL_PERIOD_DAYS", 7)
	viper.SetDefault("SUBSCRIPTION_CURRENCY", "RUB")
	viper.SetDefault("SUBSCRIPTION_PRICE_1_MONTH", "990")
	viper.SetDefault("SUBSCRIPTION_PRICE_6_MONTHS", "4990")
	viper.SetDefault("SUBSCRIPTION_PRICE_1_YEAR", "8990")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "720h")

	viper.SetDefault("CREDENTIALS_ENCRYPTION_KEY", "your_credentials_key") // ONLY LOCAL

	viper.SetDefault("STORAGE_ENABLED", false)
	viper.SetDefault("STORAGE_ENDPOINT", "localhost:9000")
	viper.SetDefault("STORAGE_BUCKET", "ozon-reports")
	viper.SetDefault("STORAGE_USE_SSL", false)
	viper.SetDefault("STORAGE_URL_EXPIRY", "24h")

	viper.SetDefault("TRIAL_EXPIRY_SYNC_CRON", "0 2 * * *") // every day at 02:00
	viper.SetDefault("TRIAL_EXPIRY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info("The .env file was read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			StringToDecimalHookFunc(),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values the services cannot run without.
func (c *Config) Validate() error {
	if c.Report.MaxPeriodDays <= 0 {
		return fmt.Errorf("REPORT_MAX_PERIOD_DAYS must be positive, got %d", c.Report.MaxPeriodDays)
	}
	for _, days := range c.Report.AllowedPeriods {
		if days <= 0 || days > c.Report.MaxPeriodDays {
			return fmt.Errorf("REPORT_ALLOWED_PERIODS entry %d is outside 1..%d", days, c.Report.MaxPeriodDays)
		}
	}
	if c.Subscription.TrialPeriodDays < 0 {
		return fmt.Errorf("TRIAL_PERIOD_DAYS must not be negative, got %d", c.Subscription.TrialPeriodDays)
	}
	if c.Storage.Enabled && c.Storage.Bucket == "" {
		return fmt.Errorf("STORAGE_BUCKET is required when storage is enabled")
	}
	return nil
}

// StringToDecimalHookFunc decodes strings and numbers into decimal.Decimal.
func StringToDecimalHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(decimal.Decimal{}) {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return decimal.NewFromString(v)
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case float64:
			return decimal.NewFromFloat(v), nil
		default:
			return data, nil
		}
	}
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not get the working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Trying to load .env from:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Loaded .env from:", location)
			return
		}
	}

	logrus.Warn("Could not load a .env file from any known location")
}
