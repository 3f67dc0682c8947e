package billing

import "fmt"

// FormatInvoiceNumber renders INV-<year>-<seq> with the sequence zero-padded
// to at least three digits. The fixed-width padding keeps lexicographic and
// numeric ordering aligned for sequences below 1000; larger sequences simply
// grow wider.
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%03d", year, seq)
}
