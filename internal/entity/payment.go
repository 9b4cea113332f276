package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

const DefaultCurrency = "PLN"

type PaymentStatus string

const (
	PaymentStatusInitiated PaymentStatus = "initiated"
	PaymentStatusPaid      PaymentStatus = "paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// Payment is a single payment attempt. Its ID doubles as the gateway
// correlation token (crc), so a webhook callback can be matched back to
// the record without any extra lookup table.
type Payment struct {
	ID          uuid.UUID
	Amount      int64 // Minor units (groszy).
	Currency    string
	Description string
	Email       string
	Meta        map[string]string
	Status      PaymentStatus
	TrID        string // Gateway transaction id, set on confirmation.
	TrAmount    int64  // Gateway amount echo in minor units, set on confirmation.
	InvoiceID   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PaidAt      time.Time
}

// NewPayment is the validated input of payment initiation.
type NewPayment struct {
	Amount      int64 // Minor units.
	Description string
	Email       string
	SuccessURL  string
	FailureURL  string
	Meta        map[string]string
}

// ReturnURLs are the browser redirect targets passed through to the
// hosted payment page.
type ReturnURLs struct {
	Success string
	Failure string
	Result  string // Server-to-server webhook URL.
}

// PaymentSession is what the caller auto-submits to the hosted payment
// page: the gateway base URL plus the signed form field map.
type PaymentSession struct {
	Payment    Payment
	GatewayURL string
	Fields     map[string]string
}

type PaymentFilter struct {
	Status    *string
	Email     *string
	CreatedAt *string
	Page      uint64
	Limit     uint64
	SortBy    PaymentSortCol
	OrderBy   OrderByCol
}

type PaymentSortCol string

func (c PaymentSortCol) String() string {
	return string(c)
}

const (
	SortByID        PaymentSortCol = "id"
	SortByAmount    PaymentSortCol = "amount"
	SortByCreatedAt PaymentSortCol = "created_at"
)

func (c PaymentSortCol) IsValid() bool {
	switch c {
	case SortByID, SortByAmount, SortByCreatedAt:
		return true
	}

	return false
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}

const minorUnitExponent = -2

// ParseAmount converts a user-supplied decimal amount into minor units.
// The gateway protocol works with two-decimal strings, so anything with
// more precision is rejected rather than silently rounded.
func ParseAmount(d decimal.Decimal) (int64, error) {
	if !d.IsPositive() {
		return 0, fmt.Errorf("%w: amount %s is not positive", ErrInvalidArgument, d)
	}

	minor := d.Shift(-minorUnitExponent)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: amount %s has more than two decimal places", ErrInvalidArgument, d)
	}

	return minor.IntPart(), nil
}

// FormatAmount renders minor units as a two-decimal string ("25.50"),
// the exact representation the gateway checksums are computed over.
func FormatAmount(minor int64) string {
	return decimal.New(minor, minorUnitExponent).StringFixed(2)
}

// ParseGatewayAmount parses a gateway-formatted amount string ("25.50")
// into minor units.
func ParseGatewayAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q: %s", ErrInvalidArgument, s, err)
	}

	return ParseAmount(d)
}
