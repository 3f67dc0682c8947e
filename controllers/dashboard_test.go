package controllers

import (
	"testing"
	"time"

	"paymint-backend/models"
)

func TestCollectDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	owner := createTestOwner(t, db, "owner@example.com")
	client := createTestClient(t, db, owner.ID, "billing@acme.com")

	paidAt := time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC)
	createTestInvoice(t, db, &models.Invoice{
		UserID:        owner.ID,
		InvoiceNumber: "INV-2024-001",
		ClientID:      client.ID,
		Subtotal:      200,
		TaxRate:       10,
		TaxAmount:     20,
		Total:         220,
		Status:        models.StatusPaid,
		PaymentDate:   &paidAt,
	})
	createTestInvoice(t, db, &models.Invoice{
		UserID:        owner.ID,
		InvoiceNumber: "INV-2024-002",
		ClientID:      client.ID,
		Subtotal:      50,
		Total:         50,
		Status:        models.StatusOverdue,
		DueDate:       time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	// Another owner's paid invoice must not leak into the rollup
	other := createTestOwner(t, db, "other@example.com")
	otherClient := createTestClient(t, db, other.ID, "billing@globex.com")
	otherPaidAt := time.Date(2024, 7, 5, 9, 0, 0, 0, time.UTC)
	createTestInvoice(t, db, &models.Invoice{
		UserID:        other.ID,
		InvoiceNumber: "INV-2024-001",
		ClientID:      otherClient.ID,
		Subtotal:      999,
		Total:         999,
		Status:        models.StatusPaid,
		PaymentDate:   &otherPaidAt,
	})

	stats, err := collectDashboardStats(owner.ID, now)
	if err != nil {
		t.Fatalf("collectDashboardStats returned error: %v", err)
	}

	if stats.TotalInvoices != 2 {
		t.Errorf("totalInvoices = %d, want 2", stats.TotalInvoices)
	}
	if stats.PaidInvoices != 1 || stats.UnpaidInvoices != 0 || stats.OverdueInvoices != 1 {
		t.Errorf("status counts = paid %d / unpaid %d / overdue %d, want 1 / 0 / 1",
			stats.PaidInvoices, stats.UnpaidInvoices, stats.OverdueInvoices)
	}
	if stats.TotalClients != 1 {
		t.Errorf("totalClients = %d, want 1", stats.TotalClients)
	}
	if stats.TotalEarnings != 220 {
		t.Errorf("totalEarnings = %v, want 220", stats.TotalEarnings)
	}
	if stats.CurrentMonthEarnings != 220 {
		t.Errorf("currentMonthEarnings = %v, want 220", stats.CurrentMonthEarnings)
	}
	if stats.OverdueAmount != 50 {
		t.Errorf("overdueAmount = %v, want 50", stats.OverdueAmount)
	}

	if len(stats.MonthlyIncomeData) != 6 {
		t.Fatalf("monthlyIncomeData length = %d, want 6", len(stats.MonthlyIncomeData))
	}
	first := stats.MonthlyIncomeData[0]
	if first.Month != "Feb" || first.Amount != 0 {
		t.Errorf("oldest month = %s/%v, want Feb/0", first.Month, first.Amount)
	}
	last := stats.MonthlyIncomeData[5]
	if last.Month != "Jul" || last.Amount != 220 {
		t.Errorf("newest month = %s/%v, want Jul/220", last.Month, last.Amount)
	}
}
