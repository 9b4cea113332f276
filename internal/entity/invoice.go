package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type InvoiceStatus string

// Invoices are issued on payment confirmation, so they are born paid.
const InvoiceStatusPaid InvoiceStatus = "paid"

func (s InvoiceStatus) String() string {
	return string(s)
}

// Party is a seller or buyer snapshot. Captured onto the invoice at
// creation time so the document stays historically accurate even if the
// source data changes later.
type Party struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
	Email   string `json:"email,omitempty"`
}

type InvoiceItem struct {
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"` // Minor units.
	Total     int64  `json:"total"`     // Minor units.
}

type Invoice struct {
	ID          uuid.UUID
	Number      string // "YYYY/MM/NNN", assigned by the repository.
	Status      InvoiceStatus
	Currency    string
	AmountGross int64 // Minor units.
	IssuedAt    time.Time
	PaidAt      time.Time
	Items       []InvoiceItem
	Seller      Party
	Buyer       Party
	PaymentID   uuid.UUID
	PDFPath     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemsTotal sums the line totals. The rendered document uses this, not
// AmountGross, so it stays self-consistent if upstream data disagrees.
func (i Invoice) ItemsTotal() int64 {
	var total int64
	for _, item := range i.Items {
		total += item.Total
	}

	return total
}

// InvoicePrefix is the year/month scope of the invoice counter.
func InvoicePrefix(t time.Time) string {
	return fmt.Sprintf("%d/%02d", t.Year(), int(t.Month()))
}

// FormatInvoiceNumber renders the human-readable invoice number for a
// sequence value within its month: 2026/08/001.
func FormatInvoiceNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("%s/%03d", InvoicePrefix(t), seq)
}
