package usecase

import (
	"context"
	"fmt"

	"github.com/ridelink/ridelink/internal/pkg/apperrors"
	"github.com/ridelink/ridelink/internal/pkg/logger"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/ridelink/ridelink/internal/pkg/observability"
)

// Transfer validates the transfer, applies currency/method defaults and
// relays it to the store's atomic procedure. No retry here: duplicate
// submission protection is a store-side concern keyed by the metadata's
// idempotency_key when the client supplies one.
func (uc *PaymentUC) Transfer(ctx context.Context, transfer *models.MoneyTransfer) (*models.Transaction, error) {
	if transfer.From == "" {
		observability.TransfersTotal.WithLabelValues("unauthorized").Inc()
		return nil, apperrors.ErrUnauthorized
	}
	if transfer.Amount <= 0 || transfer.To == "" {
		observability.TransfersTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: missing payment details", apperrors.ErrValidation)
	}

	if transfer.Currency == "" {
		transfer.Currency = models.DefaultCurrency
	}
	if transfer.Method == "" {
		transfer.Method = models.DefaultPaymentMethod
	}
	if transfer.Metadata == nil {
		transfer.Metadata = map[string]any{}
	}

	transaction, err := uc.paymentRepo.ProcessPayment(ctx, transfer)
	if err != nil {
		observability.TransfersTotal.WithLabelValues("store_error").Inc()
		return nil, err
	}

	event := models.PaymentCompletedEvent{
		TransactionID: transaction.ID,
		FromUser:      transaction.FromUser,
		ToUser:        transaction.ToUser,
		Amount:        transaction.Amount,
		Currency:      transaction.Currency,
	}
	if err := uc.paymentGW.PublishPaymentCompleted(ctx, event); err != nil {
		logger.Warn("Failed to publish payment completed event", logger.Err(err))
	}

	observability.TransfersTotal.WithLabelValues("success").Inc()
	return transaction, nil
}
