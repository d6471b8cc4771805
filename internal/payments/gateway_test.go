package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamsuite/salon-scheduler/internal/httperr"
)

func TestAirtelChargeConfirmsAfterDelay(t *testing.T) {
	g := NewSimulatedGateway(5 * time.Millisecond)

	res, err := g.Charge(context.Background(), ChargeRequest{
		Method: "airtel_money",
		Phone:  "+243991112233",
		Amount: 45000,
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", res.Status)
	assert.NotEmpty(t, res.Reference)
}

func TestAirtelChargeRequiresPhone(t *testing.T) {
	g := NewSimulatedGateway(0)

	_, err := g.Charge(context.Background(), ChargeRequest{
		Method: "airtel_money",
		Amount: 45000,
	})
	assert.True(t, httperr.IsBusiness(err, "missing_airtel_phone"))
}

func TestCashOnArrivalIsImmediate(t *testing.T) {
	g := NewSimulatedGateway(time.Hour)

	start := time.Now()
	res, err := g.Charge(context.Background(), ChargeRequest{
		Method: "cash_on_arrival",
		Amount: 20000,
	})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "pending", res.Status)
}

func TestChargeRejectsUnknownMethodAndBadAmount(t *testing.T) {
	g := NewSimulatedGateway(0)

	_, err := g.Charge(context.Background(), ChargeRequest{Method: "card", Amount: 10})
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_method"))

	_, err = g.Charge(context.Background(), ChargeRequest{Method: "cash_on_arrival", Amount: 0})
	assert.True(t, httperr.IsBusiness(err, "invalid_amount"))
}

func TestAirtelChargeHonoursContextCancel(t *testing.T) {
	g := NewSimulatedGateway(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := g.Charge(ctx, ChargeRequest{
		Method: "airtel_money",
		Phone:  "+243991112233",
		Amount: 45000,
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
