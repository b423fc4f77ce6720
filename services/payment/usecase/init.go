package usecase

import (
	"github.com/ridelink/ridelink/services/payment"
)

// PaymentUC implements the payment use case interface
type PaymentUC struct {
	paymentRepo payment.PaymentRepo
	paymentGW   payment.PaymentGW
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	paymentRepo payment.PaymentRepo,
	paymentGW payment.PaymentGW,
) *PaymentUC {
	return &PaymentUC{
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
	}
}
