package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	FrontendURL string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`

	JWTSecret      string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpiryHours int    `envconfig:"JWT_EXPIRY_HOURS" default:"168"`

	// Outgoing mail (invoice delivery and payment reminders)
	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	EmailFrom    string `envconfig:"EMAIL_FROM"`

	// Stripe Connect
	StripeSecretKey     string  `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string  `envconfig:"STRIPE_WEBHOOK_SECRET"`
	PlatformFeePercent  float64 `envconfig:"PLATFORM_FEE_PERCENT" default:"2"`

	// Single system-wide currency; used by the PDF renderer, the email
	// templates, and Stripe session creation.
	CurrencyCode   string `envconfig:"CURRENCY_CODE" default:"usd"`
	CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"$"`

	// Optional SMS channel for payment reminders
	TwilioAccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `envconfig:"TWILIO_FROM_NUMBER"`

	RemindersEnabled bool   `envconfig:"REMINDERS_ENABLED" default:"false"`
	ReminderCron     string `envconfig:"REMINDER_CRON" default:"0 9 * * *"`
}

var C *Config

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	C = &cfg
	return &cfg, nil
}
