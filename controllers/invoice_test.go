package controllers

import (
	"net/http"
	"testing"
	"time"

	"paymint-backend/models"

	"github.com/gin-gonic/gin"
)

func TestUpdateInvoiceNotesLeavesRestUntouched(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestOwner(t, db, "owner@example.com")
	client := createTestClient(t, db, owner.ID, "billing@acme.com")

	due := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	invoice := createTestInvoice(t, db, &models.Invoice{
		UserID:        owner.ID,
		InvoiceNumber: "INV-2024-001",
		ClientID:      client.ID,
		Items:         []models.InvoiceItem{{Title: "Logo design", Rate: 100, Quantity: 2, Amount: 200}},
		Subtotal:      200,
		TaxRate:       10,
		TaxAmount:     20,
		Total:         220,
		DueDate:       due,
	})

	w := invokeHandler(t, UpdateInvoice, owner.ID, http.MethodPut, `{"notes":"Net 15"}`,
		gin.Params{{Key: "id", Value: invoice.ID.String()}})
	if w.Code != http.StatusOK {
		t.Fatalf("UpdateInvoice returned %d, body %s", w.Code, w.Body.String())
	}

	var got models.Invoice
	if err := db.Preload("Items").First(&got, "id = ?", invoice.ID).Error; err != nil {
		t.Fatalf("failed to reload invoice: %v", err)
	}

	if got.Notes != "Net 15" {
		t.Errorf("notes = %q, want %q", got.Notes, "Net 15")
	}
	if got.Subtotal != 200 || got.TaxAmount != 20 || got.Total != 220 {
		t.Errorf("totals changed: subtotal %v, tax %v, total %v", got.Subtotal, got.TaxAmount, got.Total)
	}
	if got.Status != models.StatusUnpaid {
		t.Errorf("status changed to %q", got.Status)
	}
	if !got.DueDate.Equal(due) {
		t.Errorf("due date changed: got %v, want %v", got.DueDate, due)
	}
	if len(got.Items) != 1 {
		t.Errorf("item count changed: got %d, want 1", len(got.Items))
	}
}

func TestGetInvoiceOwnerIsolation(t *testing.T) {
	db := setupTestDB(t)
	ownerA := createTestOwner(t, db, "a@example.com")
	ownerB := createTestOwner(t, db, "b@example.com")
	client := createTestClient(t, db, ownerB.ID, "billing@acme.com")

	invoice := createTestInvoice(t, db, &models.Invoice{
		UserID:        ownerB.ID,
		InvoiceNumber: "INV-2024-001",
		ClientID:      client.ID,
		Subtotal:      50,
		Total:         50,
	})

	w := invokeHandler(t, GetInvoice, ownerA.ID, http.MethodGet, "",
		gin.Params{{Key: "id", Value: invoice.ID.String()}})
	if w.Code != http.StatusNotFound {
		t.Errorf("fetching a foreign invoice returned %d, want 404", w.Code)
	}

	w = invokeHandler(t, GetInvoice, ownerB.ID, http.MethodGet, "",
		gin.Params{{Key: "id", Value: invoice.ID.String()}})
	if w.Code != http.StatusOK {
		t.Errorf("fetching own invoice returned %d, want 200", w.Code)
	}
}
