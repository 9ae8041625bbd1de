package handlers

import (
	"net/http"

	"chauffeur-admin/internal/http/middleware"
	"chauffeur-admin/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		Bookings:  h.Services.Bookings,
		Stats:     h.Services.Stats(),
		RequestID: middleware.GetRequestID(c),
	}
}

// GetBookingInvoicePDF returns the invoice of one booking (inline).
func (h *Handlers) GetBookingInvoicePDF(c *gin.Context) {
	pdfBytes, filename, err := h.docs(c).GenerateBookingInvoice(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	writePDF(c, pdfBytes, filename)
}

// GetFinancialReportPDF returns the financial summary with the ledger (inline).
func (h *Handlers) GetFinancialReportPDF(c *gin.Context) {
	pdfBytes, filename, err := h.docs(c).GenerateFinancialReport()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	writePDF(c, pdfBytes, filename)
}

func writePDF(c *gin.Context, pdfBytes []byte, filename string) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
