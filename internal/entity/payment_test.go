package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/harmonia-school/payments/internal/entity"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name      string
		amount    string
		wantMinor int64
		wantErr   bool
	}{
		{
			name:      "two decimal places",
			amount:    "25.50",
			wantMinor: 2550,
		},
		{
			name:      "whole number",
			amount:    "100",
			wantMinor: 10000,
		},
		{
			name:      "one grosz",
			amount:    "0.01",
			wantMinor: 1,
		},
		{
			name:    "zero",
			amount:  "0",
			wantErr: true,
		},
		{
			name:    "negative",
			amount:  "-10.00",
			wantErr: true,
		},
		{
			name:    "too precise",
			amount:  "10.999",
			wantErr: true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := entity.ParseAmount(decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantMinor, got)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	require.Equal(t, "25.50", entity.FormatAmount(2550))
	require.Equal(t, "0.05", entity.FormatAmount(5))
	require.Equal(t, "1000.00", entity.FormatAmount(100000))
}

func TestParseGatewayAmount(t *testing.T) {
	t.Parallel()

	got, err := entity.ParseGatewayAmount("25.50")
	require.NoError(t, err)
	require.Equal(t, int64(2550), got)

	_, err = entity.ParseGatewayAmount("banana")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}
