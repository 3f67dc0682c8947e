// controllers/document.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"paymint-backend/config"
	"paymint-backend/models"
	"paymint-backend/services"
	"paymint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// loadInvoiceWithParties fetches an owner-scoped invoice together with its
// client and owner, fully populated for rendering. A nil return means the
// response has already been written.
func loadInvoiceWithParties(c *gin.Context, ownerID uuid.UUID) (*models.Invoice, *models.User) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return nil, nil
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
		return nil, nil
	}

	if invoice.Client == nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invoice has no client attached")
		return nil, nil
	}

	var owner models.User
	if err := config.DB.First(&owner, "id = ?", ownerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return nil, nil
	}

	return &invoice, &owner
}

// GetInvoicePDF renders the invoice and returns it as a download
func GetInvoicePDF(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoice, owner := loadInvoiceWithParties(c, ownerID)
	if invoice == nil {
		return
	}

	pdf, err := services.GenerateInvoicePDF(invoice, owner)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error generating PDF")
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=invoice-%s.pdf", invoice.InvoiceNumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// SendInvoice emails the invoice to the client with the PDF attached
func SendInvoice(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	invoice, owner := loadInvoiceWithParties(c, ownerID)
	if invoice == nil {
		return
	}

	pdf, err := services.GenerateInvoicePDF(invoice, owner)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error generating PDF")
		return
	}

	mailer := services.NewMailer()
	err = mailer.Send(
		invoice.Client.Email,
		services.InvoiceEmailSubject(invoice, owner),
		services.InvoiceEmailBody(invoice, owner),
		pdf,
		fmt.Sprintf("invoice-%s.pdf", invoice.InvoiceNumber),
	)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error sending invoice")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice sent successfully"})
}
