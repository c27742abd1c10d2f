// Package pdf renders printable invoices.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin   = 15.0
	lineHeight   = 7.0
	defaultTitle = "JMD ENTERPRISES"
)

// RenderInvoice lays out one bill as an A4 PDF and returns the document
// bytes. Settings supply the letterhead; blank settings fall back to
// sensible defaults so an invoice can always be produced.
func RenderInvoice(bill domain.Bill, settings domain.BillSettings) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.AddPage()
	pageWidth, _ := doc.GetPageSize()
	usable := pageWidth - 2*pageMargin

	// Letterhead
	companyName := settings.CompanyName
	if companyName == "" {
		companyName = defaultTitle
	}
	doc.SetFont("Helvetica", "B", 22)
	doc.CellFormat(usable, 10, companyName, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	if settings.CompanyAddress != "" {
		doc.MultiCell(usable, 5, settings.CompanyAddress, "", "C", false)
	}
	var contact []string
	if settings.CompanyMobile != "" {
		contact = append(contact, "Mobile: "+settings.CompanyMobile)
	}
	if settings.CompanyEmail != "" {
		contact = append(contact, "Email: "+settings.CompanyEmail)
	}
	if settings.CompanyGST != "" {
		contact = append(contact, "GSTIN: "+settings.CompanyGST)
	}
	if len(contact) > 0 {
		doc.CellFormat(usable, 5, strings.Join(contact, " | "), "", 1, "C", false, 0, "")
	}

	doc.Ln(3)
	doc.SetLineWidth(0.5)
	y := doc.GetY()
	doc.Line(pageMargin, y, pageWidth-pageMargin, y)
	doc.Ln(6)

	// Bill header: title left, number and date right
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(usable/2, 6, "INVOICE", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(usable/2, 6, fmt.Sprintf("Bill No: %d", bill.BillNumber), "", 1, "R", false, 0, "")
	doc.CellFormat(usable/2, 5, "Customer Name: "+bill.CustomerName, "", 0, "L", false, 0, "")
	doc.CellFormat(usable/2, 5, "Date: "+bill.Date.Format("02/01/2006"), "", 1, "R", false, 0, "")
	doc.Ln(6)

	// Items table
	colWidths := []float64{12, usable - 92, 25, 25, 30}
	headers := []string{"SN", "Description", "Qty", "Rate", "Amount"}
	aligns := []string{"L", "L", "R", "R", "R"}

	doc.SetFillColor(240, 240, 240)
	doc.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		doc.CellFormat(colWidths[i], lineHeight, h, "", 0, aligns[i], true, 0, "")
	}
	doc.Ln(lineHeight)

	doc.SetFont("Helvetica", "", 10)
	for i, item := range bill.Items {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			item.ProductName,
			item.Quantity.String(),
			item.Rate.StringFixed(2),
			item.Amount.StringFixed(2),
		}
		for j, cell := range cells {
			doc.CellFormat(colWidths[j], lineHeight, cell, "", 0, aligns[j], false, 0, "")
		}
		doc.Ln(lineHeight)
	}

	doc.SetLineWidth(0.2)
	y = doc.GetY()
	doc.Line(pageMargin, y, pageWidth-pageMargin, y)
	doc.Ln(4)

	// Totals block, right aligned
	totalRow := func(label, value string) {
		doc.CellFormat(usable-40, 6, "", "", 0, "L", false, 0, "")
		doc.CellFormat(20, 6, label, "", 0, "L", false, 0, "")
		doc.CellFormat(20, 6, value, "", 1, "R", false, 0, "")
	}
	totalRow("Subtotal:", bill.Subtotal.StringFixed(2))
	if bill.DiscountAmount.IsPositive() {
		totalRow("Discount:", "-"+bill.DiscountAmount.StringFixed(2))
	}
	if bill.TaxAmount.IsPositive() {
		totalRow("Tax:", "+"+bill.TaxAmount.StringFixed(2))
	}
	doc.SetFont("Helvetica", "B", 12)
	totalRow("Total:", bill.TotalAmount.StringFixed(2))
	doc.Ln(4)

	// Footer
	doc.SetFont("Helvetica", "", 9)
	footer := settings.FooterMessage
	if footer == "" {
		footer = "Thank you for your business!"
	}
	doc.MultiCell(usable, 5, footer, "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
