package payment

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// PaymentUC defines the interface for payment relay business logic
type PaymentUC interface {
	// Transfer validates the transfer and passes it whole to the store's
	// atomic procedure. Atomicity is the store's guarantee, not ours.
	Transfer(ctx context.Context, transfer *models.MoneyTransfer) (*models.Transaction, error)
}
