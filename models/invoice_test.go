package models

import (
	"testing"
	"time"
)

func TestSetStatusPaymentDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	later := now.Add(48 * time.Hour)

	t.Run("entering paid stamps payment date", func(t *testing.T) {
		inv := &Invoice{Status: StatusUnpaid}
		inv.SetStatus(StatusPaid, now)
		if inv.Status != StatusPaid {
			t.Errorf("status = %q, want paid", inv.Status)
		}
		if inv.PaymentDate == nil || !inv.PaymentDate.Equal(now) {
			t.Errorf("paymentDate = %v, want %v", inv.PaymentDate, now)
		}
	})

	t.Run("paying twice keeps the first payment date", func(t *testing.T) {
		inv := &Invoice{Status: StatusUnpaid}
		inv.SetStatus(StatusPaid, now)
		inv.SetStatus(StatusPaid, later)
		if inv.PaymentDate == nil || !inv.PaymentDate.Equal(now) {
			t.Errorf("paymentDate = %v, want original %v", inv.PaymentDate, now)
		}
	})

	t.Run("leaving paid clears payment date", func(t *testing.T) {
		inv := &Invoice{Status: StatusUnpaid}
		inv.SetStatus(StatusPaid, now)
		inv.SetStatus(StatusUnpaid, later)
		if inv.PaymentDate != nil {
			t.Errorf("paymentDate = %v, want nil", inv.PaymentDate)
		}
		if inv.Status != StatusUnpaid {
			t.Errorf("status = %q, want unpaid", inv.Status)
		}
	})

	t.Run("overdue never carries a payment date", func(t *testing.T) {
		inv := &Invoice{Status: StatusPaid, PaymentDate: &now}
		inv.SetStatus(StatusOverdue, later)
		if inv.PaymentDate != nil {
			t.Errorf("paymentDate = %v, want nil", inv.PaymentDate)
		}
	})

	t.Run("unpaid to overdue stays clear", func(t *testing.T) {
		inv := &Invoice{Status: StatusUnpaid}
		inv.SetStatus(StatusOverdue, now)
		if inv.PaymentDate != nil {
			t.Errorf("paymentDate = %v, want nil", inv.PaymentDate)
		}
	})
}

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"paid", true},
		{"unpaid", true},
		{"overdue", true},
		{"", false},
		{"PAID", false},
		{"cancelled", false},
	}

	for _, tt := range tests {
		if got := ValidStatus(tt.status); got != tt.want {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
