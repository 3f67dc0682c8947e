package main

import (
	"os"
	"time"

	"paymint-backend/config"
	"paymint-backend/models"
	"paymint-backend/routes"
	"paymint-backend/services"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	if _, err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if err := config.ConnectDB(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.InvoiceSequence{},
		&models.ReminderLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	stripe.Key = config.C.StripeSecretKey

	if config.C.RemindersEnabled {
		if err := services.NewReminderService(config.DB).Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start reminder scheduler")
		}
	}

	r := routes.SetupRouter()

	log.Info().Str("port", config.C.Port).Msg("server starting")
	if err := r.Run(":" + config.C.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
