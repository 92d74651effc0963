package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrChargeDeclined = errors.New("charge declined")
	ErrChargeNotFound = errors.New("charge not found")
)

type ChargeStatus string

const (
	ChargeInitiated ChargeStatus = "initiated"
	ChargeConfirmed ChargeStatus = "confirmed"
)

type ChargeRequest struct {
	PatientID   string
	Amount      float64
	Currency    string
	Description string
}

type Charge struct {
	ID       string       `json:"id"`
	Amount   float64      `json:"amount"`
	Currency string       `json:"currency"`
	Status   ChargeStatus `json:"status"`
}

// PaymentGateway is the boundary to the payment processor.
type PaymentGateway interface {
	InitiateCharge(ctx context.Context, req ChargeRequest) (Charge, error)
	ConfirmCharge(ctx context.Context, chargeID string) (Charge, error)
}

// MockPaymentGateway accepts every positive charge after a processing delay.
type MockPaymentGateway struct {
	delay   time.Duration
	mu      sync.Mutex
	charges map[string]Charge
}

func NewMockPaymentGateway(delay time.Duration) *MockPaymentGateway {
	return &MockPaymentGateway{delay: delay, charges: make(map[string]Charge)}
}

func (g *MockPaymentGateway) InitiateCharge(ctx context.Context, req ChargeRequest) (Charge, error) {
	if req.Amount <= 0 {
		return Charge{}, fmt.Errorf("%w: amount must be positive", ErrChargeDeclined)
	}
	if err := sleepContext(ctx, g.delay); err != nil {
		return Charge{}, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	charge := Charge{ID: "ch_" + uuid.New().String(), Amount: req.Amount, Currency: currency, Status: ChargeInitiated}

	g.mu.Lock()
	g.charges[charge.ID] = charge
	g.mu.Unlock()
	return charge, nil
}

func (g *MockPaymentGateway) ConfirmCharge(ctx context.Context, chargeID string) (Charge, error) {
	if err := ctx.Err(); err != nil {
		return Charge{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	charge, ok := g.charges[chargeID]
	if !ok {
		return Charge{}, ErrChargeNotFound
	}
	// Only pending charges are tracked
	delete(g.charges, chargeID)
	charge.Status = ChargeConfirmed
	return charge, nil
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
