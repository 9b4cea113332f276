package tpay_test

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/harmonia-school/payments/internal/clients/tpay"
	"github.com/harmonia-school/payments/internal/entity"
	"github.com/harmonia-school/payments/pkg/config"
)

func newClient() *tpay.Client {
	return tpay.NewClient(config.Tpay{
		MerchantID:   "1010",
		SecurityCode: "demo",
		Environment:  "sandbox",
	})
}

func TestClient_OutboundChecksum(t *testing.T) {
	t.Parallel()

	c := newClient()

	// MD5("1010&10.00&ord-7f3a&demo"), fixed vector.
	require.Equal(t, "ec115cefd932957ff6282f6e59907b19", c.OutboundChecksum("10.00", "ord-7f3a"))

	// MD5("1010&25.50&crc-x&demo"), fixed vector.
	require.Equal(t, "7fabeae85e3f81170708b4c0c29325c0", c.OutboundChecksum("25.50", "crc-x"))
}

func TestClient_InboundChecksum(t *testing.T) {
	t.Parallel()

	c := newClient()

	// MD5("1010" + "TR-9LX4K3" + "10.00" + "ord-7f3a" + "demo"), fixed vector.
	require.Equal(t, "0af3852fe5ee422549396cba86561f2d", c.InboundChecksum("TR-9LX4K3", "10.00", "ord-7f3a"))
}

func TestClient_ChecksumSchemesDiffer(t *testing.T) {
	t.Parallel()

	c := newClient()

	// The same logical inputs must produce different digests under the
	// two joining rules.
	require.NotEqual(t,
		c.OutboundChecksum("10.00", "ord-7f3a"),
		c.InboundChecksum("", "10.00", "ord-7f3a"),
	)
}

func TestClient_PaymentFields(t *testing.T) {
	t.Parallel()

	c := newClient()

	p := entity.Payment{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      2550,
		Currency:    entity.DefaultCurrency,
		Description: "Lekcja pianina",
		Email:       "a@b.com",
		Status:      entity.PaymentStatusInitiated,
	}

	fields := c.PaymentFields(p, entity.ReturnURLs{
		Success: "https://app.example.com/ok",
		Failure: "https://app.example.com/fail",
		Result:  "https://app.example.com/tpay/webhook",
	})

	require.Equal(t, "1010", fields["id"])
	require.Equal(t, "25.50", fields["kwota"])
	require.Equal(t, p.ID.String(), fields["crc"])
	require.Equal(t, "Lekcja pianina", fields["opis"])
	require.Equal(t, "a@b.com", fields["email"])
	require.Equal(t, "https://app.example.com/tpay/webhook", fields["wyn_url"])
	require.Equal(t, c.OutboundChecksum("25.50", p.ID.String()), fields["md5sum"])
}

func TestClient_VerifyNotification(t *testing.T) {
	t.Parallel()

	c := newClient()

	n := tpay.Notification{
		MerchantID: "1010",
		TrID:       "TR-9LX4K3",
		TrCRC:      "ord-7f3a",
		TrAmount:   "10.00",
		TrStatus:   tpay.NotificationStatusPaid,
		MD5Sum:     "0af3852fe5ee422549396cba86561f2d",
	}

	require.NoError(t, c.VerifyNotification(n))

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		tampered := n
		// MD5("1010" + "TR-1" + "10.00" + "ord-7f3a" + "wrong"): a checksum
		// computed with a different security code.
		tampered.TrID = "TR-1"
		tampered.MD5Sum = "43a01506fe955a98e6d7273215dbfe4b"

		require.ErrorIs(t, c.VerifyNotification(tampered), entity.ErrChecksum)
	})

	t.Run("wrong merchant", func(t *testing.T) {
		t.Parallel()

		tampered := n
		tampered.MerchantID = "2020"

		require.ErrorIs(t, c.VerifyNotification(tampered), entity.ErrChecksum)
	})

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()

		empty := tpay.NewClient(config.Tpay{})
		require.ErrorIs(t, empty.VerifyNotification(n), entity.ErrNotConfigured)
	})
}

func TestClient_GatewayURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://secure.sandbox.tpay.com", newClient().GatewayURL())

	prod := tpay.NewClient(config.Tpay{MerchantID: "1", SecurityCode: "x", Environment: "secure"})
	require.Equal(t, "https://secure.tpay.com", prod.GatewayURL())
}

func TestClient_SecretInfo(t *testing.T) {
	t.Parallel()

	length, prefix := newClient().SecretInfo()
	require.Equal(t, 4, length)
	// SHA-256("demo") prefix; the raw secret must never appear.
	require.Equal(t, "2a97516c", prefix)
}
