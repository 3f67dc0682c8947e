package services

import (
	"bytes"
	"fmt"

	"paymint-backend/config"
	"paymint-backend/models"

	"github.com/jung-kurt/gofpdf"
)

// Brand palette
var (
	colorPrimary   = [3]int{12, 166, 172}  // teal
	colorSecondary = [3]int{45, 55, 72}    // dark gray
	colorAccent    = [3]int{74, 85, 104}   // medium gray
	colorLight     = [3]int{113, 128, 150} // light gray
	colorStripe    = [3]int{247, 250, 252}
)

// GenerateInvoicePDF lays out a fully-populated invoice into an A4 document
// and returns the raw bytes. The invoice must carry its items and client.
func GenerateInvoicePDF(inv *models.Invoice, owner *models.User) ([]byte, error) {
	if inv.Client == nil {
		return nil, fmt.Errorf("invoice %s has no client attached", inv.InvoiceNumber)
	}
	sym := config.C.CurrencySymbol

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", inv.InvoiceNumber), false)
	pdf.SetAuthor("PayMint", false)
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(95, 12, "PayMint", "", 0, "L", false, 0, "")

	pdf.SetTextColor(colorSecondary[0], colorSecondary[1], colorSecondary[2])
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(85, 12, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(180, 6, fmt.Sprintf("Invoice Number: %s", inv.InvoiceNumber), "", 1, "R", false, 0, "")
	pdf.CellFormat(180, 6, fmt.Sprintf("Date: %s", inv.CreatedAt.Format("Jan 2, 2006")), "", 1, "R", false, 0, "")
	pdf.CellFormat(180, 6, fmt.Sprintf("Due Date: %s", inv.DueDate.Format("Jan 2, 2006")), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	// From / Bill To columns
	y := pdf.GetY()
	pdf.SetTextColor(colorSecondary[0], colorSecondary[1], colorSecondary[2])
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(90, 7, "From:", "", 2, "L", false, 0, "")

	pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range addressLines(owner.Name, owner.Company, owner.Email, owner.Address, owner.Phone) {
		pdf.CellFormat(90, 5.5, line, "", 2, "L", false, 0, "")
	}

	pdf.SetXY(105, y)
	pdf.SetTextColor(colorSecondary[0], colorSecondary[1], colorSecondary[2])
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(90, 7, "Bill To:", "", 2, "L", false, 0, "")

	pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.SetFont("Helvetica", "", 11)
	cl := inv.Client
	for _, line := range addressLines(cl.Name, cl.Company, cl.Email, cl.Address, cl.Phone) {
		pdf.SetX(105)
		pdf.CellFormat(90, 5.5, line, "", 2, "L", false, 0, "")
	}
	pdf.Ln(10)

	// Items table
	pdf.SetFillColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 9, "Description", "", 0, "L", true, 0, "")
	pdf.CellFormat(25, 9, "Quantity", "", 0, "R", true, 0, "")
	pdf.CellFormat(30, 9, "Rate", "", 0, "R", true, 0, "")
	pdf.CellFormat(35, 9, "Amount", "", 1, "R", true, 0, "")

	pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
	pdf.SetFont("Helvetica", "", 10)
	for i, item := range inv.Items {
		fill := i%2 == 0
		pdf.SetFillColor(colorStripe[0], colorStripe[1], colorStripe[2])
		pdf.CellFormat(90, 8, item.Title, "", 0, "L", fill, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", item.Quantity), "", 0, "R", fill, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%s%.2f", sym, item.Rate), "", 0, "R", fill, 0, "")
		pdf.CellFormat(35, 8, fmt.Sprintf("%s%.2f", sym, item.Amount), "", 1, "R", fill, 0, "")
	}

	pdf.SetDrawColor(colorLight[0], colorLight[1], colorLight[2])
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(6)

	// Totals
	pdf.SetTextColor(colorSecondary[0], colorSecondary[1], colorSecondary[2])
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(145, 7, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%s%.2f", sym, inv.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(145, 7, fmt.Sprintf("Tax (%.4g%%):", inv.TaxRate), "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%s%.2f", sym, inv.TaxAmount), "", 1, "R", false, 0, "")

	pdf.Line(120, pdf.GetY()+1, 195, pdf.GetY()+1)
	pdf.Ln(3)

	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(145, 8, "Total:", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%s%.2f", sym, inv.Total), "", 1, "R", false, 0, "")

	// Notes
	if inv.Notes != "" {
		pdf.Ln(8)
		pdf.SetTextColor(colorSecondary[0], colorSecondary[1], colorSecondary[2])
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(180, 6, "Notes:", "", 1, "L", false, 0, "")
		pdf.SetTextColor(colorAccent[0], colorAccent[1], colorAccent[2])
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(180, 5, inv.Notes, "", "L", false)
	}

	// Footer
	pdf.SetY(-25)
	pdf.SetTextColor(colorPrimary[0], colorPrimary[1], colorPrimary[2])
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(60, 6, "PayMint", "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, "Thank you for your business!", "", 0, "C", false, 0, "")
	pdf.CellFormat(60, 6, fmt.Sprintf("Invoice #%s", inv.InvoiceNumber), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addressLines(lines ...string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
