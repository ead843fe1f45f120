package webserver

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-pdf/fpdf"
	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
)

// invoicePDF renders the last invoice as a downloadable PDF: header with
// the issue date, one row per line, then subtotal, tax and total.
func (s *WebServer) invoicePDF(c echo.Context) error {
	invoice := s.LastInvoice()
	if invoice == nil {
		return fail(c, http.StatusNotFound, "NO_INVOICE", "No checkout has happened yet")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Factura de compra - Gualmart"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Factura: %s", invoice.Number)))
	pdf.Ln(6)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Fecha: %s", invoice.IssuedAt)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(80, 8, tr("Producto"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Cant.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, "P.Unit", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range invoice.Lines {
		pdf.CellFormat(80, 8, tr(line.Name), "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", line.Qty), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, money(line.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, money(line.Subtotal), "", 1, "R", false, 0, "")
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(140, 8, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, money(invoice.Subtotal), "", 1, "R", false, 0, "")
	pdf.CellFormat(140, 8, "IVA (13%):", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, money(invoice.Tax), "", 1, "R", false, 0, "")
	pdf.CellFormat(140, 8, "Total:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, money(invoice.Total), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fail(c, http.StatusInternalServerError, "PDF_ERROR", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="factura.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

type productCSVRow struct {
	ID       string  `csv:"id"`
	Name     string  `csv:"name"`
	Price    float64 `csv:"price"`
	Stock    int     `csv:"stock"`
	ImageURL string  `csv:"image_url"`
}

// exportProductsCSV downloads the current catalog with live stock levels.
func (s *WebServer) exportProductsCSV(c echo.Context) error {
	products := s.inventory.GetAll()
	rows := make([]productCSVRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productCSVRow{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Stock:    p.Stock,
			ImageURL: p.ImageURL,
		})
	}

	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "CSV_ERROR", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(data))
}
