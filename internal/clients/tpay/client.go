// Package tpay adapts the Tpay hosted payment page protocol: signed
// form fields for the outbound redirect and verification of inbound
// payment notifications. The gateway never gets called directly; it
// calls back into this service.
package tpay

import (
	"crypto/md5" //nolint:gosec // Mandated by the gateway protocol, see checksum notes below.
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/harmonia-school/payments/internal/entity"
	"github.com/harmonia-school/payments/pkg/config"
)

const (
	gatewayURLSecure  = "https://secure.tpay.com"
	gatewayURLSandbox = "https://secure.sandbox.tpay.com"

	// NotificationStatusPaid is the tr_status value of a completed payment.
	NotificationStatusPaid = "TRUE"
)

type Client struct {
	cfg config.Tpay
}

func NewClient(cfg config.Tpay) *Client {
	return &Client{cfg: cfg}
}

// Configured reports whether the gateway credentials are present. Routes
// that need them degrade per request instead of failing startup.
func (c *Client) Configured() bool {
	return c.cfg.MerchantID != "" && c.cfg.SecurityCode != ""
}

func (c *Client) MerchantID() string {
	return c.cfg.MerchantID
}

func (c *Client) Environment() string {
	return c.cfg.Environment
}

func (c *Client) GatewayURL() string {
	if c.cfg.Environment == "sandbox" {
		return gatewayURLSandbox
	}

	return gatewayURLSecure
}

// OutboundChecksum signs a payment-creation request: MD5 over the
// ampersand-joined merchant id, two-decimal amount, crc and security
// code. MD5 is a gateway-mandated compatibility requirement, not an
// integrity mechanism this codebase endorses anywhere else.
func (c *Client) OutboundChecksum(amount, crc string) string {
	return md5hex(strings.Join([]string{c.cfg.MerchantID, amount, crc, c.cfg.SecurityCode}, "&"))
}

// InboundChecksum verifies a payment notification: MD5 over the bare
// concatenation (no separators) of merchant id, transaction id,
// transaction amount, crc and security code. The joining rule really is
// different from the outbound one, per the gateway documentation.
func (c *Client) InboundChecksum(trID, trAmount, crc string) string {
	return md5hex(c.cfg.MerchantID + trID + trAmount + crc + c.cfg.SecurityCode)
}

// PaymentFields builds the form field map the caller auto-submits to the
// hosted payment page. The payment id is used as crc, so the webhook can
// correlate the callback back to the record.
func (c *Client) PaymentFields(p entity.Payment, urls entity.ReturnURLs) map[string]string {
	amount := entity.FormatAmount(p.Amount)
	crc := p.ID.String()

	return map[string]string{
		"id":           c.cfg.MerchantID,
		"kwota":        amount,
		"opis":         p.Description,
		"crc":          crc,
		"email":        p.Email,
		"pow_url":      urls.Success,
		"pow_url_blad": urls.Failure,
		"wyn_url":      urls.Result,
		"md5sum":       c.OutboundChecksum(amount, crc),
	}
}

// Notification is the parsed webhook payload, gateway field names kept.
type Notification struct {
	MerchantID string // id
	TrID       string // tr_id
	TrDate     string // tr_date
	TrCRC      string // tr_crc
	TrAmount   string // tr_amount
	TrPaid     string // tr_paid
	TrDesc     string // tr_desc
	TrStatus   string // tr_status
	TrError    string // tr_error
	TrEmail    string // tr_email
	MD5Sum     string // md5sum
}

// VerifyNotification checks the merchant id and the inbound checksum.
// Diagnostic values in errors are masked; the security code itself never
// appears in logs.
func (c *Client) VerifyNotification(n Notification) error {
	if !c.Configured() {
		return entity.ErrNotConfigured
	}

	if n.MerchantID != c.cfg.MerchantID {
		return fmt.Errorf("%w: merchant id %q does not match configuration", entity.ErrChecksum, n.MerchantID)
	}

	want := c.InboundChecksum(n.TrID, n.TrAmount, n.TrCRC)
	if n.MD5Sum != want {
		length, prefix := c.SecretInfo()
		return fmt.Errorf("%w: got %q, want %q (secret len %d, sha256 prefix %s)",
			entity.ErrChecksum, n.MD5Sum, want, length, prefix)
	}

	return nil
}

// SecretInfo returns the security code length and a SHA-256 hash prefix
// for debugging checksum mismatches without leaking the secret.
func (c *Client) SecretInfo() (int, string) {
	sum := sha256.Sum256([]byte(c.cfg.SecurityCode))
	return len(c.cfg.SecurityCode), hex.EncodeToString(sum[:])[:8]
}

func md5hex(s string) string {
	sum := md5.Sum([]byte(s)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
