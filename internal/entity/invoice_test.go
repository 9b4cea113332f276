package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/harmonia-school/payments/internal/entity"
)

func TestFormatInvoiceNumber(t *testing.T) {
	t.Parallel()

	march := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "2026/03/001", entity.FormatInvoiceNumber(march, 1))
	require.Equal(t, "2026/03/042", entity.FormatInvoiceNumber(march, 42))
	require.Equal(t, "2026/03/1000", entity.FormatInvoiceNumber(march, 1000))

	december := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	require.Equal(t, "2025/12/007", entity.FormatInvoiceNumber(december, 7))
}

func TestInvoicePrefix(t *testing.T) {
	t.Parallel()

	// The prefix changes at a month boundary, which is what resets the
	// sequence to 001.
	lastOfMonth := time.Date(2026, time.August, 31, 23, 59, 59, 0, time.UTC)
	firstOfNext := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, "2026/08", entity.InvoicePrefix(lastOfMonth))
	require.Equal(t, "2026/09", entity.InvoicePrefix(firstOfNext))
	require.NotEqual(t, entity.InvoicePrefix(lastOfMonth), entity.InvoicePrefix(firstOfNext))
}

func TestInvoice_ItemsTotal(t *testing.T) {
	t.Parallel()

	inv := entity.Invoice{
		AmountGross: 12345, // Deliberately inconsistent with the items.
		Items: []entity.InvoiceItem{
			{Name: "Lekcja pianina", Quantity: 1, UnitPrice: 4000, Total: 4000},
			{Name: "Lekcja gitary", Quantity: 2, UnitPrice: 3000, Total: 6000},
		},
	}

	require.Equal(t, int64(10000), inv.ItemsTotal())
}
