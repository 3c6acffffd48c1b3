package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// PaymentService covers the checkout's two paths: Stripe card payments and
// the simulated HSA flow.
type PaymentService interface {
	// CreateIntent creates a payment intent for an amount in minor currency
	// units and returns its client secret.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)

	// ConfirmCardPayment resolves a card payment to one of three outcomes:
	// succeeded, requires additional authentication (retried once through
	// the same confirm call), or failed. The intent's amount is checked
	// against expectedAmount (the booking total in minor units) before the
	// status is consulted. Returns the intent id on success.
	ConfirmCardPayment(ctx context.Context, paymentIntentID string, expectedAmount int64) (string, error)

	// ProcessHSAPayment runs the simulated HSA path: a provider selection is
	// unconditionally treated as success.
	ProcessHSAPayment(provider string) (string, error)
}

// StripeBackend abstracts the payment intent API so tests can substitute a
// fake without network calls.
type StripeBackend interface {
	NewIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	GetIntent(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	ConfirmIntent(id string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Backend StripeBackend
	Logger  *zap.Logger
}

// NewPaymentService returns a payment service backed by the live Stripe API.
func NewPaymentService(logger *zap.Logger) *DefaultPaymentService {
	return &DefaultPaymentService{Backend: liveBackend{}, Logger: logger}
}
