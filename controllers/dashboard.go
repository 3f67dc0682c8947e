package controllers

import (
	"net/http"
	"time"

	"paymint-backend/config"
	"paymint-backend/models"
	"paymint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MonthlyIncome struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type DashboardStats struct {
	TotalInvoices        int64           `json:"totalInvoices"`
	PaidInvoices         int64           `json:"paidInvoices"`
	UnpaidInvoices       int64           `json:"unpaidInvoices"`
	OverdueInvoices      int64           `json:"overdueInvoices"`
	TotalClients         int64           `json:"totalClients"`
	TotalEarnings        float64         `json:"totalEarnings"`
	CurrentMonthEarnings float64         `json:"currentMonthEarnings"`
	OverdueAmount        float64         `json:"overdueAmount"`
	MonthlyIncomeData    []MonthlyIncome `json:"monthlyIncomeData"`
}

// GetDashboardStats computes the owner's rollup: counts per status, lifetime
// and current-month earnings, the past-due overdue sum, and a six-month paid
// income series. Any failing query fails the whole endpoint; partial stats
// are never returned.
func GetDashboardStats(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := collectDashboardStats(ownerID, time.Now())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func collectDashboardStats(ownerID uuid.UUID, now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{MonthlyIncomeData: make([]MonthlyIncome, 0, 6)}

	invoices := func() *gorm.DB { return config.DB.Model(&models.Invoice{}).Where("user_id = ?", ownerID) }

	if err := invoices().Count(&stats.TotalInvoices).Error; err != nil {
		return nil, err
	}
	if err := invoices().Where("status = ?", models.StatusPaid).Count(&stats.PaidInvoices).Error; err != nil {
		return nil, err
	}
	if err := invoices().Where("status = ?", models.StatusUnpaid).Count(&stats.UnpaidInvoices).Error; err != nil {
		return nil, err
	}
	if err := invoices().Where("status = ?", models.StatusOverdue).Count(&stats.OverdueInvoices).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.Client{}).Where("user_id = ?", ownerID).
		Count(&stats.TotalClients).Error; err != nil {
		return nil, err
	}

	// Lifetime earnings: every paid invoice
	if err := invoices().Where("status = ?", models.StatusPaid).
		Select("COALESCE(SUM(total), 0)").Scan(&stats.TotalEarnings).Error; err != nil {
		return nil, err
	}

	// Overdue sum intentionally requires both the stored label and a due
	// date in the past
	if err := invoices().Where("status = ? AND due_date < ?", models.StatusOverdue, now).
		Select("COALESCE(SUM(total), 0)").Scan(&stats.OverdueAmount).Error; err != nil {
		return nil, err
	}

	firstOfMonth := utils.BeginningOfMonth(now)
	if err := invoices().Where("status = ? AND payment_date >= ? AND payment_date <= ?",
		models.StatusPaid, firstOfMonth, now).
		Select("COALESCE(SUM(total), 0)").Scan(&stats.CurrentMonthEarnings).Error; err != nil {
		return nil, err
	}

	// Six-month paid series, oldest month first
	for i := 5; i >= 0; i-- {
		start, end := utils.MonthWindow(now, i)

		var amount float64
		if err := invoices().Where("status = ? AND payment_date >= ? AND payment_date < ?",
			models.StatusPaid, start, end).
			Select("COALESCE(SUM(total), 0)").Scan(&amount).Error; err != nil {
			return nil, err
		}

		stats.MonthlyIncomeData = append(stats.MonthlyIncomeData, MonthlyIncome{
			Month:  utils.ShortMonthName(start),
			Amount: amount,
		})
	}

	return stats, nil
}
