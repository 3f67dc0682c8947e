// services/reminder.go
package services

import (
	"fmt"
	"time"

	"paymint-backend/config"
	"paymint-backend/models"
	"paymint-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends payment reminders for past-due invoices on a daily
// schedule. It only notifies; invoice status is never changed here.
type ReminderService struct {
	db     *gorm.DB
	mailer *Mailer
	client *twilio.RestClient // nil when SMS is not configured
}

func NewReminderService(db *gorm.DB) *ReminderService {
	s := &ReminderService{db: db, mailer: NewMailer()}

	if config.C.TwilioAccountSID != "" && config.C.TwilioAuthToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.C.TwilioAccountSID,
			Password: config.C.TwilioAuthToken,
		})
	}
	return s
}

func (s *ReminderService) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(config.C.ReminderCron, s.SendDailyReminders); err != nil {
		return err
	}
	c.Start()
	log.Info().Str("schedule", config.C.ReminderCron).Msg("reminder scheduler started")
	return nil
}

func (s *ReminderService) SendDailyReminders() {
	log.Info().Msg("starting daily reminder processing")

	now := time.Now()
	var invoices []models.Invoice
	if err := s.db.Preload("Client").
		Where("status <> ? AND due_date < ?", models.StatusPaid, now).
		Find(&invoices).Error; err != nil {
		log.Error().Err(err).Msg("failed to fetch past-due invoices")
		return
	}

	owners := make(map[string]*models.User)
	for i := range invoices {
		inv := &invoices[i]
		if inv.Client == nil {
			continue
		}

		owner, ok := owners[inv.UserID.String()]
		if !ok {
			var u models.User
			if err := s.db.First(&u, "id = ?", inv.UserID).Error; err != nil {
				log.Error().Err(err).Str("invoice", inv.InvoiceNumber).Msg("failed to load invoice owner")
				continue
			}
			owner = &u
			owners[inv.UserID.String()] = owner
		}

		s.remind(inv, owner, now)
	}

	log.Info().Msg("daily reminder processing completed")
}

func (s *ReminderService) remind(inv *models.Invoice, owner *models.User, now time.Time) {
	daysOverdue := utils.DaysBetween(inv.DueDate, now)

	err := s.mailer.Send(
		inv.Client.Email,
		ReminderEmailSubject(inv),
		ReminderEmailBody(inv, owner, daysOverdue),
		nil, "",
	)
	s.logAttempt(inv, "email", err)

	if s.client != nil && utils.ValidatePhone(inv.Client.Phone) {
		body := fmt.Sprintf("Reminder from %s: invoice %s for %s%.2f was due on %s and is still unpaid.",
			owner.Name, inv.InvoiceNumber, config.C.CurrencySymbol, inv.Total,
			inv.DueDate.Format("Jan 2, 2006"))

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(inv.Client.Phone)
		params.SetFrom(config.C.TwilioFromNumber)
		params.SetBody(body)

		_, smsErr := s.client.Api.CreateMessage(params)
		s.logAttempt(inv, "sms", smsErr)
	}
}

func (s *ReminderService) logAttempt(inv *models.Invoice, channel string, sendErr error) {
	status := "sent"
	errorMsg := ""
	if sendErr != nil {
		log.Error().Err(sendErr).
			Str("invoice", inv.InvoiceNumber).
			Str("channel", channel).
			Msg("failed to send payment reminder")
		status = "failed"
		errorMsg = sendErr.Error()
	}

	entry := models.ReminderLog{
		UserID:       inv.UserID,
		InvoiceID:    inv.ID,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Error().Err(err).Str("invoice", inv.InvoiceNumber).Msg("failed to log reminder")
	}
}
