package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"healthcare/internal/availability"
	"healthcare/internal/geo"
)

// Config holds all application configuration
type Config struct {
	Env            string
	Port           string
	DatabaseURL    string
	AllowedOrigins []string
	JWT            JWTConfig
	Search         SearchConfig
	Booking        BookingConfig
	Emergency      EmergencyConfig
	Stripe         StripeConfig
	Twilio         TwilioConfig
	SendGrid       SendGridConfig
	RateLimit      RateLimitConfig
	CronEnabled    bool
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// SearchConfig drives proximity filtering and the availability planner.
type SearchConfig struct {
	Geo          geo.Config
	Availability availability.Config
}

type BookingConfig struct {
	ServiceFee float64
	Currency   string
}

type EmergencyConfig struct {
	DefaultHospital       string
	EstimatedResponseTime string
	// AlertNumber gets an SMS copy of every emergency request.
	AlertNumber string
}

// RateLimitConfig bounds per-client requests on the auth and emergency routes.
type RateLimitConfig struct {
	PerMinute      int
	Burst          int
	IdleTTL        time.Duration
	// TrustedProxies lists IPs or CIDRs allowed to set X-Forwarded-For.
	TrustedProxies []string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	SuccessURL    string
	CancelURL     string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
			TTL:    time.Duration(getEnvAsInt("JWT_TTL_HOURS", 24)) * time.Hour,
		},
		Search: SearchConfig{
			Geo: geo.Config{
				EarthRadiusKm:   getEnvAsFloat("EARTH_RADIUS_KM", geo.EarthRadiusKm),
				DefaultRadiusKm: getEnvAsFloat("SEARCH_RADIUS_KM", geo.DefaultRadiusKm),
			},
			Availability: availability.Config{
				LookaheadDays:   getEnvAsInt("LOOKAHEAD_DAYS", availability.DefaultLookaheadDays),
				MaxAlternatives: getEnvAsInt("MAX_ALTERNATIVE_DATES", availability.DefaultMaxAlternatives),
				Slots:           availability.DefaultSlots,
			},
		},
		Booking: BookingConfig{
			ServiceFee: getEnvAsFloat("SERVICE_FEE", 500),
			Currency:   getEnv("CURRENCY", "TZS"),
		},
		Emergency: EmergencyConfig{
			DefaultHospital:       getEnv("DEFAULT_EMERGENCY_HOSPITAL", "Muhimbili National Hospital"),
			EstimatedResponseTime: getEnv("EMERGENCY_RESPONSE_TIME", "15 minutes"),
			AlertNumber:           os.Getenv("EMERGENCY_ALERT_NUMBER"),
		},
		Stripe: StripeConfig{
			SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
			Currency:      getEnv("STRIPE_CURRENCY", "tzs"),
			SuccessURL:    getEnv("STRIPE_SUCCESS_URL", "http://localhost:3000/appointments/confirmation?session_id={CHECKOUT_SESSION_ID}"),
			CancelURL:     getEnv("STRIPE_CANCEL_URL", "http://localhost:3000/appointments/failed?session_id={CHECKOUT_SESSION_ID}"),
		},
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			FromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		},
		SendGrid: SendGridConfig{
			APIKey:    os.Getenv("SENDGRID_API_KEY"),
			FromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
			FromName:  getEnv("SENDGRID_FROM_NAME", "Healthcare"),
		},
		RateLimit: RateLimitConfig{
			PerMinute:      getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
			Burst:          getEnvAsInt("RATE_LIMIT_BURST", 10),
			IdleTTL:        time.Duration(getEnvAsInt("RATE_LIMIT_IDLE_TTL_MINUTES", 10)) * time.Minute,
			TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
		},
		CronEnabled: getEnvAsBool("CRON_ENABLED", true),
	}

	if slots := os.Getenv("TIME_SLOTS"); slots != "" {
		parsed, err := availability.ParseSlots(slots)
		if err != nil {
			return nil, fmt.Errorf("TIME_SLOTS: %w", err)
		}
		if len(parsed) > 0 {
			cfg.Search.Availability.Slots = parsed
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL not set")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET not set")
	}
	if c.Search.Geo.EarthRadiusKm <= 0 || c.Search.Geo.DefaultRadiusKm <= 0 {
		return fmt.Errorf("EARTH_RADIUS_KM and SEARCH_RADIUS_KM must be positive")
	}
	if c.Search.Availability.LookaheadDays <= 0 || c.Search.Availability.MaxAlternatives <= 0 {
		return fmt.Errorf("LOOKAHEAD_DAYS and MAX_ALTERNATIVE_DATES must be positive")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
