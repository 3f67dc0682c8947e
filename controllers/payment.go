// controllers/payment.go
package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"paymint-backend/billing"
	"paymint-backend/config"
	"paymint-backend/models"
	"paymint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/account"
	"github.com/stripe/stripe-go/v76/accountlink"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
	"gorm.io/gorm"
)

// CreatePaymentSession opens a hosted checkout session for an unpaid invoice,
// routing the charge to the owner's connected account minus the platform fee.
func CreatePaymentSession(c *gin.Context) {
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
	if err := config.DB.Preload("Client").
		Where("user_id = ? AND id = ?", ownerID, invoiceUUID).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if invoice.Status == models.StatusPaid {
		utils.RespondWithError(c, http.StatusBadRequest, "Invoice is already paid")
		return
	}

	var owner models.User
	if err := config.DB.First(&owner, "id = ?", ownerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if owner.StripeAccountID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Stripe account not connected")
		return
	}

	clientName := ""
	if invoice.Client != nil {
		clientName = invoice.Client.Name
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(config.C.CurrencyCode),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(fmt.Sprintf("Invoice %s", invoice.InvoiceNumber)),
					Description: stripe.String(fmt.Sprintf(
						"Payment for invoice %s from %s", invoice.InvoiceNumber, clientName)),
				},
				UnitAmount: stripe.Int64(billing.MinorUnits(invoice.Total)),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(fmt.Sprintf("%s/invoices/%s?payment=success", config.C.FrontendURL, invoice.ID)),
		CancelURL:  stripe.String(fmt.Sprintf("%s/invoices/%s?payment=cancelled", config.C.FrontendURL, invoice.ID)),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(
				billing.PlatformFeeMinorUnits(invoice.Total, config.C.PlatformFeePercent)),
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(owner.StripeAccountID),
			},
		},
	}
	params.AddMetadata("invoiceId", invoice.ID.String())
	params.AddMetadata("clientId", invoice.ClientID.String())

	s, err := session.New(params)
	if err != nil {
		log.Error().Err(err).Str("invoice", invoice.InvoiceNumber).Msg("failed to create payment session")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": s.ID})
}

// ConnectOnboard creates an Express account for the owner and returns an
// onboarding link
func ConnectOnboard(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var owner models.User
	if err := config.DB.First(&owner, "id = ?", ownerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	acct, err := account.New(&stripe.AccountParams{
		Type: stripe.String(string(stripe.AccountTypeExpress)),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create connect account")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create Stripe Connect account")
		return
	}

	if err := config.DB.Model(&owner).Update("stripe_account_id", acct.ID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save Stripe account")
		return
	}

	link, err := accountlink.New(&stripe.AccountLinkParams{
		Account:    stripe.String(acct.ID),
		RefreshURL: stripe.String(config.C.FrontendURL + "/settings?refresh=true"),
		ReturnURL:  stripe.String(config.C.FrontendURL + "/settings?success=true"),
		Type:       stripe.String("account_onboarding"),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create account link")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create Stripe Connect account")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": link.URL})
}

// ConnectStatus reports the owner's connected account state
func ConnectStatus(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var owner models.User
	if err := config.DB.First(&owner, "id = ?", ownerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	if owner.StripeAccountID == "" {
		c.JSON(http.StatusOK, gin.H{"connected": false})
		return
	}

	acct, err := account.GetByID(owner.StripeAccountID, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch connect account")
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch Stripe Connect status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":        true,
		"detailsSubmitted": acct.DetailsSubmitted,
		"chargesEnabled":   acct.ChargesEnabled,
		"payoutsEnabled":   acct.PayoutsEnabled,
	})
}

// StripeWebhook handles checkout completion events. The signature check
// happens before anything else; a bad signature rejects the request without
// touching any invoice.
func StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Failed to read webhook body")
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.C.StripeWebhookSecret)
	if err != nil {
		log.Warn().Err(err).Msg("webhook signature verification failed")
		utils.RespondWithError(c, http.StatusBadRequest, "Webhook signature verification failed")
		return
	}

	if event.Type == "checkout.session.completed" {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Malformed webhook payload")
			return
		}

		invoiceID, err := uuid.Parse(sess.Metadata["invoiceId"])
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Webhook missing invoice reference")
			return
		}

		var invoice models.Invoice
		if err := config.DB.First(&invoice, "id = ?", invoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}

		invoice.SetStatus(models.StatusPaid, time.Now())
		if err := config.DB.Save(&invoice).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
			return
		}

		log.Info().Str("invoice", invoice.InvoiceNumber).Msg("invoice paid via checkout")
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
