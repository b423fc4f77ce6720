package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/ridelink/ridelink/internal/pkg/apperrors"
	"github.com/ridelink/ridelink/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestProcessPayment_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewPaymentRepository(db)

	created := time.Date(2024, 6, 11, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "from_user", "to_user", "amount", "currency", "method", "status", "created_at"}).
		AddRow("txn-1", "user-1", "user-2", 2500.0, "RWF", "wallet", "completed", created)

	mock.ExpectQuery("FROM process_payment").
		WithArgs("user-1", "user-2", 2500.0, "RWF", "wallet", []byte(`{"trip_id":"trip-42"}`)).
		WillReturnRows(rows)

	transaction, err := repo.ProcessPayment(context.Background(), &models.MoneyTransfer{
		From:     "user-1",
		To:       "user-2",
		Amount:   2500,
		Currency: "RWF",
		Method:   "wallet",
		Metadata: map[string]any{"trip_id": "trip-42"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "txn-1", transaction.ID)
	assert.Equal(t, "completed", transaction.Status)
	assert.Equal(t, 2500.0, transaction.Amount)
	assert.Equal(t, created, transaction.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessPayment_EmptyMetadataMarshalsToObject(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewPaymentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "from_user", "to_user", "amount", "currency", "method", "status", "created_at"}).
		AddRow("txn-1", "user-1", "user-2", 2500.0, "RWF", "wallet", "completed", time.Now())

	mock.ExpectQuery("FROM process_payment").
		WithArgs("user-1", "user-2", 2500.0, "RWF", "wallet", []byte(`{}`)).
		WillReturnRows(rows)

	_, err := repo.ProcessPayment(context.Background(), &models.MoneyTransfer{
		From:     "user-1",
		To:       "user-2",
		Amount:   2500,
		Currency: "RWF",
		Method:   "wallet",
		Metadata: map[string]any{},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessPayment_StoreRejectionIsStoreError(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	repo := NewPaymentRepository(db)

	mock.ExpectQuery("FROM process_payment").
		WillReturnError(errors.New("insufficient balance"))

	transaction, err := repo.ProcessPayment(context.Background(), &models.MoneyTransfer{
		From:     "user-1",
		To:       "user-2",
		Amount:   999999,
		Currency: "RWF",
		Method:   "wallet",
	})

	assert.Nil(t, transaction)
	assert.ErrorIs(t, err, apperrors.ErrStore)
	assert.Contains(t, err.Error(), "insufficient balance")
}
