package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/domain/models"
	"chauffeur-admin/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking invoices and the financial report as PDF.
type DocsService struct {
	Bookings  BookingService
	Stats     Stats
	RequestID string
	Now       func() time.Time
}

func (s DocsService) GenerateBookingInvoice(bookingID string) ([]byte, string, error) {
	b, err := s.Bookings.Get(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", "booking_id="+b.ID)
	return buildBookingInvoicePDF(b, s.now())
}

func (s DocsService) GenerateFinancialReport() ([]byte, string, error) {
	sum := s.Stats.FinancialSummary()
	txs := s.Stats.Transactions.Store.List()
	invoices := s.Stats.Invoices.Store.List()
	utils.LogEventf(s.RequestID, "docs", "generate_report", "transactions=%d invoices=%d", len(txs), len(invoices))
	return buildFinancialReportPDF(sum, txs, invoices, s.now())
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func buildBookingInvoicePDF(b models.Booking, at time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : INV-"+safeFilenamePart(b.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+utils.FormatDateTime(at))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name  : "+safe(b.Customer, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Phone : "+safe(b.CustomerPhone, "-"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trip:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Booking   : %s (%s)", b.ID, b.Status),
		fmt.Sprintf("Date/Time : %s %s", safe(b.Date, "-"), safe(b.Time, "-")),
		fmt.Sprintf("Route     : %s -> %s", safe(b.Pickup, "-"), safe(b.Destination, "-")),
		fmt.Sprintf("Driver    : %s", safe(b.Driver, "-")),
		fmt.Sprintf("Vehicle   : %s", safe(b.Vehicle, "-")),
	}
	for _, l := range lines {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}
	pdf.Ln(2)
	for _, leg := range b.Legs {
		pdf.MultiCell(0, 6, fmt.Sprintf("%d) %s -> %s %s", leg.Sequence,
			safe(leg.Pickup, "-"), safe(leg.Destination, "-"), safe(leg.EstimatedDuration, "")), "", "", false)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatCurrency(b.TotalAmount))
	pdf.Ln(12)

	if strings.TrimSpace(b.Notes) != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Notes: "+b.Notes, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render invoice", Err: err}
	}
	filename := fmt.Sprintf("INVOICE_%s_%s.pdf", safeFilenamePart(b.ID), safeFilenamePart(b.Customer))
	return buf.Bytes(), filename, nil
}

func buildFinancialReportPDF(sum models.FinancialSummary, txs []models.Transaction, invoices []models.Invoice, at time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Financial Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FINANCIAL REPORT")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Generated: "+utils.FormatDateTime(at))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, l := range []string{
		"Revenue            : " + utils.FormatCurrency(sum.Revenue),
		"Expenses           : " + utils.FormatCurrency(sum.Expenses),
		"Net profit         : " + utils.FormatCurrency(sum.Profit),
		fmt.Sprintf("Profit margin      : %.1f%%", sum.ProfitMargin),
		fmt.Sprintf("Outstanding        : %s (%d invoices)", utils.FormatCurrency(sum.TotalOutstanding), sum.OutstandingInvoices),
		"Pending revenue    : " + utils.FormatCurrency(sum.PendingRevenue),
	} {
		pdf.Cell(0, 6, l)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Transactions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, t := range txs {
		pdf.Cell(25, 6, t.ID)
		pdf.Cell(25, 6, t.Date)
		pdf.Cell(95, 6, truncate(t.Description, 55))
		pdf.CellFormat(0, 6, utils.FormatCurrency(t.Amount), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Outstanding invoices")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, inv := range invoices {
		if !inv.Outstanding() {
			continue
		}
		pdf.Cell(25, 6, inv.ID)
		pdf.Cell(70, 6, truncate(inv.Customer, 40))
		pdf.Cell(30, 6, inv.DueDate)
		pdf.Cell(20, 6, string(inv.Status))
		pdf.CellFormat(0, 6, utils.FormatCurrency(inv.Amount), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render financial report", Err: err}
	}
	return buf.Bytes(), "FINANCIAL_REPORT_" + utils.FormatDate(at) + ".pdf", nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_", ".", "")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
