package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/ridelink/ridelink/internal/pkg/apperrors"
	"github.com/ridelink/ridelink/internal/pkg/models"
)

// PaymentRepo implements the payment repository interface against the
// store's atomic process_payment procedure.
type PaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// ProcessPayment invokes the atomic balance transfer and returns the
// resulting transaction record. All-or-nothing semantics belong to the
// procedure.
func (r *PaymentRepo) ProcessPayment(ctx context.Context, transfer *models.MoneyTransfer) (*models.Transaction, error) {
	metadata, err := json.Marshal(transfer.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `
		SELECT id, from_user, to_user, amount, currency, method, status, created_at
		FROM process_payment($1, $2, $3, $4, $5, $6)
	`

	var transaction models.Transaction
	err = r.db.GetContext(ctx, &transaction, query,
		transfer.From,
		transfer.To,
		transfer.Amount,
		transfer.Currency,
		transfer.Method,
		metadata,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: process_payment: %v", apperrors.ErrStore, err)
	}

	return &transaction, nil
}
