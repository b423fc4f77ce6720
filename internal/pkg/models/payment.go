package models

import "time"

// Default values applied to a transfer before it reaches the store.
const (
	DefaultCurrency      = "RWF"
	DefaultPaymentMethod = "wallet"
)

// MoneyTransfer is the input to the store's atomic process_payment
// procedure. It is constructed once per request and never mutated after
// validation.
type MoneyTransfer struct {
	From     string         `json:"from"`
	To       string         `json:"to"`
	Amount   float64        `json:"amount"`
	Currency string         `json:"currency"`
	Method   string         `json:"method"`
	Metadata map[string]any `json:"metadata"`
}

// Transaction is the record returned by process_payment.
type Transaction struct {
	ID        string    `json:"id" db:"id"`
	FromUser  string    `json:"from_user" db:"from_user"`
	ToUser    string    `json:"to_user" db:"to_user"`
	Amount    float64   `json:"amount" db:"amount"`
	Currency  string    `json:"currency" db:"currency"`
	Method    string    `json:"method" db:"method"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PaymentCompletedEvent is published after a successful transfer.
type PaymentCompletedEvent struct {
	TransactionID string  `json:"transaction_id"`
	FromUser      string  `json:"from_user"`
	ToUser        string  `json:"to_user"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}
