package payments

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ChargeRequest describes one payment submission to the provider.
type ChargeRequest struct {
	OrderID string
	UPIID   string
	Amount  decimal.Decimal
}

// Processor submits a charge to a payment provider.
type Processor interface {
	Process(ctx context.Context, req ChargeRequest) error
}

// SimulatedProcessor stands in for a real UPI gateway. It confirms every
// charge after a fixed processing delay, honoring context cancellation.
type SimulatedProcessor struct {
	delay time.Duration
}

// NewSimulatedProcessor builds a processor with the given confirmation delay.
func NewSimulatedProcessor(delay time.Duration) *SimulatedProcessor {
	return &SimulatedProcessor{delay: delay}
}

func (p *SimulatedProcessor) Process(ctx context.Context, req ChargeRequest) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
