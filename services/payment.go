package services

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChargeRequest is one payment for a drafted booking.
type ChargeRequest struct {
	Reference uuid.UUID
	Amount    int64
	Currency  string
	Title     string
}

type Receipt struct {
	ChargeID  string
	Amount    int64
	CreatedAt time.Time
}

// PaymentGateway performs the payment round-trip. Implementations must
// return promptly once ctx is done.
type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (Receipt, error)
	Refund(ctx context.Context, receipt Receipt) error
}

// SimulatedGateway stands in for the card processor: it waits Delay and
// approves every charge.
type SimulatedGateway struct {
	Delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{Delay: delay}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req ChargeRequest) (Receipt, error) {
	if err := g.wait(ctx); err != nil {
		return Receipt{}, err
	}
	return Receipt{
		ChargeID:  "chrg_" + uuid.NewString(),
		Amount:    req.Amount,
		CreatedAt: time.Now(),
	}, nil
}

func (g *SimulatedGateway) Refund(ctx context.Context, _ Receipt) error {
	return ctx.Err()
}

func (g *SimulatedGateway) wait(ctx context.Context) error {
	if g.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(g.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
