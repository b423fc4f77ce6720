package payment

import (
	"context"

	"github.com/ridelink/ridelink/internal/pkg/models"
)

// PaymentRepo defines the interface for payment data access
type PaymentRepo interface {
	ProcessPayment(ctx context.Context, transfer *models.MoneyTransfer) (*models.Transaction, error)
}
