package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockPaymentGatewayForgetsConfirmedCharges(t *testing.T) {
	g := NewMockPaymentGateway(0)
	ctx := context.Background()

	charge, err := g.InitiateCharge(ctx, ChargeRequest{Amount: 2410})
	require.NoError(t, err)
	assert.Equal(t, ChargeInitiated, charge.Status)
	assert.Equal(t, "INR", charge.Currency)
	assert.Len(t, g.charges, 1)

	confirmed, err := g.ConfirmCharge(ctx, charge.ID)
	require.NoError(t, err)
	assert.Equal(t, ChargeConfirmed, confirmed.Status)
	assert.Equal(t, 2410.0, confirmed.Amount)
	assert.Empty(t, g.charges)

	_, err = g.ConfirmCharge(ctx, charge.ID)
	assert.ErrorIs(t, err, ErrChargeNotFound)
}

func TestMockPaymentGatewayDeclinesNonPositive(t *testing.T) {
	_, err := NewMockPaymentGateway(0).InitiateCharge(context.Background(), ChargeRequest{})
	assert.ErrorIs(t, err, ErrChargeDeclined)
}
