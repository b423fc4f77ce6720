package gateway

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	natspkg "github.com/ridelink/ridelink/internal/pkg/nats"
)

// PaymentGateway publishes payment lifecycle events to the message bus.
type PaymentGateway struct {
	natsClient *natspkg.Client
}

// NewPaymentGateway creates a new payment gateway
func NewPaymentGateway(natsClient *natspkg.Client) *PaymentGateway {
	return &PaymentGateway{natsClient: natsClient}
}

// PublishPaymentCompleted emits a payment.completed event after a
// successful transfer.
func (g *PaymentGateway) PublishPaymentCompleted(_ context.Context, event models.PaymentCompletedEvent) error {
	err := g.natsClient.PublishJSON(natspkg.SubjectPaymentCompleted, event)
	if err != nil {
		logger.Warn("Failed to publish payment completed event",
			logger.String("transaction_id", event.TransactionID),
			logger.Err(err))
		return err
	}
	return nil
}
