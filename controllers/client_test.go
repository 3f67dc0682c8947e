package controllers

import (
	"errors"
	"net/http"
	"testing"

	"paymint-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TestDeleteClientKeepsInvoices(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestOwner(t, db, "owner@example.com")
	client := createTestClient(t, db, owner.ID, "billing@acme.com")

	invoice := createTestInvoice(t, db, &models.Invoice{
		UserID:        owner.ID,
		InvoiceNumber: "INV-2024-001",
		ClientID:      client.ID,
		Items:         []models.InvoiceItem{{Title: "Logo design", Rate: 100, Quantity: 2, Amount: 200}},
		Subtotal:      200,
		Total:         200,
	})

	w := invokeHandler(t, DeleteClient, owner.ID, http.MethodDelete, "",
		gin.Params{{Key: "id", Value: client.ID.String()}})
	if w.Code != http.StatusOK {
		t.Fatalf("DeleteClient returned %d, body %s", w.Code, w.Body.String())
	}

	var gone models.Client
	if err := db.First(&gone, "id = ?", client.ID).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("client still present after delete, err = %v", err)
	}

	var kept models.Invoice
	if err := db.First(&kept, "id = ?", invoice.ID).Error; err != nil {
		t.Fatalf("invoice gone after client delete: %v", err)
	}
	if kept.ClientID != client.ID {
		t.Errorf("invoice client reference changed: got %s, want %s", kept.ClientID, client.ID)
	}
}

func TestDeleteClientOwnerIsolation(t *testing.T) {
	db := setupTestDB(t)
	ownerA := createTestOwner(t, db, "a@example.com")
	ownerB := createTestOwner(t, db, "b@example.com")
	client := createTestClient(t, db, ownerB.ID, "billing@acme.com")

	w := invokeHandler(t, DeleteClient, ownerA.ID, http.MethodDelete, "",
		gin.Params{{Key: "id", Value: client.ID.String()}})
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleting a foreign client returned %d, want 404", w.Code)
	}

	var still models.Client
	if err := db.First(&still, "id = ?", client.ID).Error; err != nil {
		t.Errorf("foreign client was deleted: %v", err)
	}
}
