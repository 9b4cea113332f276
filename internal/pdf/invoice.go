// Package pdf renders invoices into the fixed A4 layout the school
// sends to parents: header, seller and buyer blocks, a ruled line-item
// table and a grand total.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/harmonia-school/payments/internal/entity"
)

const (
	pageLeft    = 15.0
	pageRight   = 195.0
	rowHeight   = 7.0
	pageBreakAt = 270.0

	colName  = 90.0
	colQty   = 20.0
	colPrice = 35.0
	colTotal = 35.0
)

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Invoice renders the document. The grand total is summed from the line
// totals at render time, so the document stays self-consistent even if
// the stored gross amount disagrees with the items.
func (r *Renderer) Invoice(inv entity.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("cp1250")
	doc.SetMargins(pageLeft, 15, 210-pageRight)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(120, 10, tr(fmt.Sprintf("Faktura %s", inv.Number)))

	if inv.Status == entity.InvoiceStatusPaid {
		doc.SetTextColor(0, 128, 0)
		doc.CellFormat(60, 10, "PAID", "1", 0, "C", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	}

	doc.Ln(12)

	doc.SetFont("Helvetica", "", 10)
	doc.Cell(90, 5, fmt.Sprintf("Data wystawienia: %s", inv.IssuedAt.Format("2006-01-02")))
	doc.Ln(5)
	doc.Cell(90, 5, fmt.Sprintf("Data zaplaty: %s", inv.PaidAt.Format("2006-01-02")))
	doc.Ln(10)

	r.party(doc, tr, "Sprzedawca", inv.Seller)
	doc.Ln(4)
	r.party(doc, tr, "Nabywca", inv.Buyer)
	doc.Ln(8)

	r.itemTable(doc, tr, inv)

	var buf bytes.Buffer

	err := doc.Output(&buf)
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", inv.Number, err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) party(doc *gofpdf.Fpdf, tr func(string) string, title string, p entity.Party) {
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(90, 6, tr(title))
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 10)
	doc.Cell(90, 5, tr(p.Name))
	doc.Ln(5)

	if p.Address != "" {
		doc.Cell(90, 5, tr(p.Address))
		doc.Ln(5)
	}

	if p.TaxID != "" {
		doc.Cell(90, 5, tr("NIP: "+p.TaxID))
		doc.Ln(5)
	}

	if p.Email != "" {
		doc.Cell(90, 5, tr(p.Email))
		doc.Ln(5)
	}
}

func (r *Renderer) itemTable(doc *gofpdf.Fpdf, tr func(string) string, inv entity.Invoice) {
	header := func() {
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(colName, rowHeight, tr("Nazwa"), "B", 0, "L", false, 0, "")
		doc.CellFormat(colQty, rowHeight, tr("Ilosc"), "B", 0, "R", false, 0, "")
		doc.CellFormat(colPrice, rowHeight, tr("Cena"), "B", 0, "R", false, 0, "")
		doc.CellFormat(colTotal, rowHeight, tr("Wartosc"), "B", 1, "R", false, 0, "")
		doc.SetFont("Helvetica", "", 10)
	}

	header()

	for _, item := range inv.Items {
		if doc.GetY() > pageBreakAt {
			doc.AddPage()
			header()
		}

		doc.CellFormat(colName, rowHeight, tr(item.Name), "", 0, "L", false, 0, "")
		doc.CellFormat(colQty, rowHeight, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		doc.CellFormat(colPrice, rowHeight, entity.FormatAmount(item.UnitPrice), "", 0, "R", false, 0, "")
		doc.CellFormat(colTotal, rowHeight, entity.FormatAmount(item.Total), "", 1, "R", false, 0, "")
	}

	// Ruled separator between the items and the total.
	doc.SetDrawColor(0, 0, 0)
	doc.Line(pageLeft, doc.GetY(), pageRight, doc.GetY())
	doc.Ln(2)

	doc.SetFont("Helvetica", "B", 11)
	total := fmt.Sprintf("Razem: %s %s", entity.FormatAmount(inv.ItemsTotal()), inv.Currency)
	doc.CellFormat(pageRight-pageLeft, 8, tr(total), "", 1, "R", false, 0, "")
}
