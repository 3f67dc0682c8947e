package services

import (
	"fmt"
	"io"

	"paymint-backend/config"
	"paymint-backend/models"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer() *Mailer {
	cfg := config.C
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.EmailFrom,
	}
}

// Send delivers a single HTML message, optionally with a PDF attachment.
// There is no retry; a failed dial or send surfaces to the caller.
func (m *Mailer) Send(to, subject, htmlBody string, pdf []byte, filename string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if pdf != nil {
		msg.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}))
	}

	return m.dialer.DialAndSend(msg)
}

// InvoiceEmailSubject and the body templates mirror the messages clients of
// the legacy system already receive.
func InvoiceEmailSubject(inv *models.Invoice, owner *models.User) string {
	return fmt.Sprintf("Invoice #%s from %s", inv.InvoiceNumber, owner.Name)
}

func InvoiceEmailBody(inv *models.Invoice, owner *models.User) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
          <h2 style="color: #333;">Invoice #%s</h2>
          <p>Dear %s,</p>
          <p>Please find attached the invoice #%s for %s%.2f.</p>
          <p>Due Date: %s</p>
          <p>Thank you for your business!</p>
          <p>Best regards,<br>%s</p>
        </div>`,
		inv.InvoiceNumber,
		inv.Client.Name,
		inv.InvoiceNumber,
		config.C.CurrencySymbol,
		inv.Total,
		inv.DueDate.Format("1/2/2006"),
		owner.Name,
	)
}

func ReminderEmailSubject(inv *models.Invoice) string {
	return fmt.Sprintf("Payment reminder: invoice #%s is past due", inv.InvoiceNumber)
}

func ReminderEmailBody(inv *models.Invoice, owner *models.User, daysOverdue int) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
          <h2 style="color: #333;">Invoice #%s</h2>
          <p>Dear %s,</p>
          <p>This is a friendly reminder that invoice #%s for %s%.2f was due on %s
          (%d day(s) ago) and remains unpaid.</p>
          <p>Best regards,<br>%s</p>
        </div>`,
		inv.InvoiceNumber,
		inv.Client.Name,
		inv.InvoiceNumber,
		config.C.CurrencySymbol,
		inv.Total,
		inv.DueDate.Format("1/2/2006"),
		daysOverdue,
		owner.Name,
	)
}
