package payments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/models"
)

type ChargeRequest struct {
	Method   string
	Phone    string
	Amount   float64
	Currency string
}

type ChargeResult struct {
	Reference string
	Status    string
}

// Gateway is the seam where a real mobile-money provider would plug in.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// SimulatedGateway stands in for the Airtel Money provider: airtel_money
// charges wait out a configurable confirmation delay before succeeding,
// cash_on_arrival is recorded immediately as pending until the visit.
type SimulatedGateway struct {
	confirmDelay time.Duration
}

func NewSimulatedGateway(confirmDelay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{confirmDelay: confirmDelay}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	switch req.Method {
	case models.PaymentMethodAirtelMoney:
		if req.Phone == "" {
			return nil, httperr.ErrBusiness("missing_airtel_phone")
		}

		select {
		case <-time.After(g.confirmDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		return &ChargeResult{
			Reference: uuid.NewString(),
			Status:    models.PaymentStatusConfirmed,
		}, nil

	case models.PaymentMethodCashOnArrival:
		return &ChargeResult{
			Reference: uuid.NewString(),
			Status:    models.PaymentStatusPending,
		}, nil

	default:
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}
}
