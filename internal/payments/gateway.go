package payments

import (
	"context"

	"github.com/google/uuid"
)

// Gateway captures a payment and returns an opaque reference. Real card
// processing lives outside this service; the shipped implementation
// simulates capture.
type Gateway interface {
	Capture(ctx context.Context, amountCents int64) (string, error)
}

type SimulatedGateway struct{}

func NewSimulatedGateway() SimulatedGateway {
	return SimulatedGateway{}
}

func (SimulatedGateway) Capture(ctx context.Context, amountCents int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "sim_" + uuid.NewString(), nil
}
