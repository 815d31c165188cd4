package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"yanails-backend/utils"
)

type Config struct {
	// Server
	Port           string   `envconfig:"PORT" default:"8080"`
	Env            string   `envconfig:"ENV" default:"development"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"debug"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// Session
	JWTSecret      string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiryHours int    `envconfig:"JWT_EXPIRY_HOURS" default:"24"`

	// Login rate limit
	LoginRatePerSec float64 `envconfig:"LOGIN_RATE_PER_SEC" default:"5"`
	LoginBurst      int     `envconfig:"LOGIN_BURST" default:"10"`

	// Booking
	PaymentDelay       time.Duration `envconfig:"PAYMENT_DELAY" default:"2s"`
	PaymentTimeout     time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"15s"`
	NotificationBuffer int           `envconfig:"NOTIFICATION_BUFFER" default:"32"`
	ReminderSchedule   string        `envconfig:"REMINDER_SCHEDULE" default:"0 9 * * *"`

	// Twilio (staff SMS alerts; optional)
	TwilioAccountSID  string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string `envconfig:"TWILIO_PHONE_NUMBER"`
	SalonAlertPhone   string `envconfig:"SALON_ALERT_PHONE"`
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	if c.PaymentTimeout <= c.PaymentDelay {
		return fmt.Errorf("config: PAYMENT_TIMEOUT (%s) must exceed PAYMENT_DELAY (%s)", c.PaymentTimeout, c.PaymentDelay)
	}
	for _, p := range []string{c.TwilioPhoneNumber, c.SalonAlertPhone} {
		if p != "" && !utils.ValidatePhone(p) {
			return fmt.Errorf("config: invalid phone number %q", p)
		}
	}
	return nil
}

func (c *Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}
