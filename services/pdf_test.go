package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"paymint-backend/config"
	"paymint-backend/models"

	"github.com/google/uuid"
)

func testInvoice() (*models.Invoice, *models.User) {
	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	owner := &models.User{
		ID:      uuid.New(),
		Name:    "Jane Freelancer",
		Email:   "jane@example.com",
		Company: "Jane Design Studio",
		Phone:   "+14155552671",
	}
	inv := &models.Invoice{
		ID:            uuid.New(),
		UserID:        owner.ID,
		InvoiceNumber: "INV-2024-007",
		Client: &models.Client{
			Name:    "Acme Corp",
			Email:   "billing@acme.com",
			Company: "Acme Corp",
			Address: "1 Industrial Way",
		},
		Items: []models.InvoiceItem{
			{Title: "Logo design", Rate: 100, Quantity: 2, Amount: 200},
			{Title: "Consulting", Rate: 50, Quantity: 1, Amount: 50},
		},
		Subtotal:  250,
		TaxRate:   10,
		TaxAmount: 25,
		Total:     275,
		Status:    models.StatusUnpaid,
		DueDate:   due,
		Notes:     "Payable within 30 days.",
		CreatedAt: due.AddDate(0, 0, -30),
	}
	return inv, owner
}

func TestGenerateInvoicePDF(t *testing.T) {
	config.C = &config.Config{CurrencySymbol: "$"}

	inv, owner := testInvoice()
	pdf, err := GenerateInvoicePDF(inv, owner)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with a PDF header")
	}
	if len(pdf) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(pdf))
	}
}

func TestGenerateInvoicePDFMissingClient(t *testing.T) {
	config.C = &config.Config{CurrencySymbol: "$"}

	inv, owner := testInvoice()
	inv.Client = nil
	if _, err := GenerateInvoicePDF(inv, owner); err == nil {
		t.Error("expected error for invoice without client")
	}
}

func TestInvoiceEmailContent(t *testing.T) {
	config.C = &config.Config{CurrencySymbol: "$"}

	inv, owner := testInvoice()

	subject := InvoiceEmailSubject(inv, owner)
	if subject != "Invoice #INV-2024-007 from Jane Freelancer" {
		t.Errorf("unexpected subject: %q", subject)
	}

	body := InvoiceEmailBody(inv, owner)
	for _, want := range []string{"INV-2024-007", "Acme Corp", "$275.00", "7/1/2024"} {
		if !strings.Contains(body, want) {
			t.Errorf("invoice email body missing %q", want)
		}
	}

	reminder := ReminderEmailBody(inv, owner, 12)
	for _, want := range []string{"INV-2024-007", "$275.00", "12 day(s)"} {
		if !strings.Contains(reminder, want) {
			t.Errorf("reminder email body missing %q", want)
		}
	}
}
