package payment

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// PaymentGW defines the interface for payment event publication
type PaymentGW interface {
	PublishPaymentCompleted(ctx context.Context, event models.PaymentCompletedEvent) error
}
