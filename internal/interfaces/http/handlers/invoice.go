// internal/interfaces/http/handlers/invoice.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/invoice"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// InvoiceHandler handles billing document endpoints
type InvoiceHandler struct {
	invoiceService *invoice.Service
	pdfService     *pdf.Service
	config         *config.Config
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *invoice.Service, cfg *config.Config) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		pdfService:     pdf.NewService(cfg),
		config:         cfg,
	}
}

// ListInvoices handles GET /invoices
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	email, _ := middleware.GetUserEmailFromContext(c)

	invoices, err := h.invoiceService.ListByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve invoices",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invoices retrieved successfully",
		"data":    invoices,
	})
}

// GetInvoice handles GET /invoices/:number
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	email, _ := middleware.GetUserEmailFromContext(c)
	number := c.Param("number")

	inv, err := h.invoiceService.GetByNumber(c.Request.Context(), email, number)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve invoice",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invoice retrieved successfully",
		"data":    inv,
	})
}

// DownloadInvoice handles GET /invoices/:number/pdf
func (h *InvoiceHandler) DownloadInvoice(c *gin.Context) {
	email, _ := middleware.GetUserEmailFromContext(c)
	number := c.Param("number")

	inv, err := h.invoiceService.GetByNumber(c.Request.Context(), email, number)
	if err != nil {
		if errors.Is(err, invoice.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to retrieve invoice",
		})
		return
	}

	buf, err := h.pdfService.GenerateInvoice(inv)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate invoice PDF",
		})
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", inv.InvoiceNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
