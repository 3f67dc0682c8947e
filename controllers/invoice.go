// controllers/invoice.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"paymint-backend/billing"
	"paymint-backend/config"
	"paymint-backend/models"
	"paymint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceItemInput defines the structure for an invoice line item
type InvoiceItemInput struct {
	ServiceID   *uuid.UUID `json:"service"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Rate        float64    `json:"rate" binding:"min=0"`
	Quantity    int        `json:"quantity" binding:"required,min=1"`
	Amount      float64    `json:"amount" binding:"min=0"`
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	ClientID uuid.UUID          `json:"client" binding:"required"`
	Items    []InvoiceItemInput `json:"items" binding:"required,min=1,dive"`
	TaxRate  float64            `json:"taxRate" binding:"min=0,max=100"`
	DueDate  time.Time          `json:"dueDate" binding:"required"`
	Notes    string             `json:"notes"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an invoice
type UpdateInvoiceInput struct {
	Items   *[]InvoiceItemInput `json:"items" binding:"omitempty,min=1,dive"`
	TaxRate *float64            `json:"taxRate" binding:"omitempty,min=0,max=100"`
	DueDate *time.Time          `json:"dueDate"`
	Notes   *string             `json:"notes"`
	Status  *string             `json:"status" binding:"omitempty,oneof=paid unpaid overdue"`
}

// buildInvoiceItems validates item inputs and materializes line items.
// Amounts are recomputed from rate and quantity server-side; a supplied
// amount that disagrees is rejected rather than trusted. A false return
// means the response has already been written.
func buildInvoiceItems(c *gin.Context, tx *gorm.DB, ownerID uuid.UUID, inputs []InvoiceItemInput) ([]models.InvoiceItem, []float64, bool) {
	items := make([]models.InvoiceItem, 0, len(inputs))
	amounts := make([]float64, 0, len(inputs))

	for _, in := range inputs {
		if in.ServiceID != nil {
			// The referenced service template must belong to the same owner
			var service models.Service
			if err := tx.Where("user_id = ? AND id = ?", ownerID, *in.ServiceID).
				First(&service).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					utils.RespondWithError(c, http.StatusBadRequest, "Service not found: "+in.ServiceID.String())
				} else {
					utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				}
				return nil, nil, false
			}
		}

		if !billing.AmountMatches(in.Amount, in.Rate, in.Quantity) {
			utils.RespondWithError(c, http.StatusBadRequest,
				"Item amount does not equal rate times quantity for item: "+in.Title)
			return nil, nil, false
		}

		amount := billing.ItemAmount(in.Rate, in.Quantity)
		items = append(items, models.InvoiceItem{
			ServiceID:   in.ServiceID,
			Title:       in.Title,
			Description: in.Description,
			Rate:        in.Rate,
			Quantity:    in.Quantity,
			Amount:      amount,
		})
		amounts = append(amounts, amount)
	}

	return items, amounts, true
}

// CreateInvoice creates a new invoice with a freshly reserved invoice number
func CreateInvoice(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate the client exists and belongs to this owner
	var client models.Client
	if err := config.DB.Where("user_id = ? AND id = ?", ownerID, input.ClientID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	items, amounts, ok := buildInvoiceItems(c, tx, ownerID, input.Items)
	if !ok {
		tx.Rollback()
		return
	}

	totals := billing.ComputeTotals(amounts, input.TaxRate)

	// Atomically reserve the next number for this owner and year
	number, err := models.NextInvoiceNumber(tx, ownerID, time.Now().Year())
	if err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate invoice number")
		return
	}

	invoice := models.Invoice{
		UserID:        ownerID,
		InvoiceNumber: number,
		ClientID:      input.ClientID,
		Items:         items,
		Subtotal:      totals.Subtotal,
		TaxRate:       input.TaxRate,
		TaxAmount:     totals.TaxAmount,
		Total:         totals.Total,
		Status:        models.StatusUnpaid,
		DueDate:       input.DueDate,
		Notes:         input.Notes,
	}

	if err := tx.Create(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	tx.Commit()

	invoice.Client = &client
	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices retrieves the owner's invoices, newest first, with optional
// status, client and creation date range filters
func GetInvoices(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Items").Preload("Client").
		Where("user_id = ?", ownerID)

	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		query = query.Where("status = ?", status)
	}
	if clientParam := c.Query("client"); clientParam != "" {
		clientUUID, err := uuid.Parse(clientParam)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid client filter")
			return
		}
		query = query.Where("client_id = ?", clientUUID)
	}
	if startParam := c.Query("startDate"); startParam != "" {
		start, err := parseDateParam(startParam)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid startDate filter")
			return
		}
		query = query.Where("created_at >= ?", start)
	}
	if endParam := c.Query("endDate"); endParam != "" {
		end, err := parseDateParam(endParam)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid endDate filter")
			return
		}
		query = query.Where("created_at <= ?", end)
	}

	var invoices []models.Invoice
	if err := query.Order("created_at DESC").Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

func parseDateParam(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}

// GetInvoice retrieves a specific invoice by ID
func GetInvoice(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Items").Preload("Client").
		Where("user_id = ? AND id = ?", ownerID, invoiceUUID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice applies a sparse update. Replacing items or the tax rate
// recomputes the totals; a status change carries its payment-date side
// effect.
func UpdateInvoice(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Preload("Items").
		Where("user_id = ? AND id = ?", ownerID, invoiceUUID).
		First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	recompute := false

	if input.Items != nil {
		newItems, _, ok := buildInvoiceItems(c, tx, ownerID, *input.Items)
		if !ok {
			tx.Rollback()
			return
		}

		// Replace the full item set
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to clear existing items")
			return
		}
		for i := range newItems {
			newItems[i].InvoiceID = invoice.ID
		}
		invoice.Items = newItems
		recompute = true
	}

	if input.TaxRate != nil {
		invoice.TaxRate = *input.TaxRate
		recompute = true
	}

	if recompute {
		amounts := make([]float64, len(invoice.Items))
		for i, item := range invoice.Items {
			amounts[i] = item.Amount
		}
		totals := billing.ComputeTotals(amounts, invoice.TaxRate)
		invoice.Subtotal = totals.Subtotal
		invoice.TaxAmount = totals.TaxAmount
		invoice.Total = totals.Total
	}

	if input.DueDate != nil {
		invoice.DueDate = *input.DueDate
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}
	if input.Status != nil {
		invoice.SetStatus(*input.Status, time.Now())
	}

	if err := tx.Save(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	tx.Commit()

	// Reload with the client summary for the response
	if err := config.DB.Preload("Items").Preload("Client").
		First(&invoice, "id = ?", invoice.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load updated invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice and its items
func DeleteInvoice(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var invoice models.Invoice
	if err := tx.Where("user_id = ? AND id = ?", ownerID, invoiceUUID).
		First(&invoice).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice items")
		return
	}

	if err := tx.Delete(&invoice).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Invoice removed"})
}
