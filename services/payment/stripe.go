package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

var (
	// ErrInvalidAmount is returned for a non-positive amount.
	ErrInvalidAmount = errors.New("invalid payment amount")

	// ErrAuthenticationFailed is returned when the one-shot re-authentication
	// retry does not resolve the payment.
	ErrAuthenticationFailed = errors.New("payment authentication failed")

	// ErrPaymentNotSuccessful is returned for any terminal non-success
	// intent status.
	ErrPaymentNotSuccessful = errors.New("payment was not successful")

	// ErrAmountMismatch is returned when the intent's amount does not match
	// the booking total. A succeeded intent for the wrong amount must not
	// mark the booking paid.
	ErrAmountMismatch = errors.New("payment amount does not match the booking total")
)

// liveBackend calls the Stripe API.
type liveBackend struct{}

func (liveBackend) NewIntent(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

func (liveBackend) GetIntent(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.Get(id, params)
}

func (liveBackend) ConfirmIntent(id string, params *stripe.PaymentIntentConfirmParams) (*stripe.PaymentIntent, error) {
	return paymentintent.Confirm(id, params)
}

// CreateIntent creates a Stripe payment intent and returns the client secret
// the hosted payment element needs. No retry on failure; the caller
// re-triggers manually.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	if currency == "" {
		return "", errors.New("missing currency")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	intent, err := s.Backend.NewIntent(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.Logger.Info("Payment intent created",
		zap.String("intent", intent.ID),
		zap.Int64("amount", amount),
		zap.String("currency", currency))
	return intent.ClientSecret, nil
}

// ConfirmCardPayment checks the intent's status after the hosted element ran
// the card through. The intent's amount must match the booking total in
// minor units. A requires-action status gets exactly one confirm retry;
// anything else that is not succeeded fails.
func (s *DefaultPaymentService) ConfirmCardPayment(ctx context.Context, paymentIntentID string, expectedAmount int64) (string, error) {
	if paymentIntentID == "" {
		return "", errors.New("missing payment intent id")
	}

	getParams := &stripe.PaymentIntentParams{}
	getParams.Context = ctx
	intent, err := s.Backend.GetIntent(paymentIntentID, getParams)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	if intent.Amount != expectedAmount {
		s.Logger.Warn("Payment intent amount does not match booking total",
			zap.String("intent", paymentIntentID),
			zap.Int64("intentAmount", intent.Amount),
			zap.Int64("bookingAmount", expectedAmount))
		return "", fmt.Errorf("%w: intent %d, booking %d", ErrAmountMismatch, intent.Amount, expectedAmount)
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return intent.ID, nil

	case stripe.PaymentIntentStatusRequiresAction, stripe.PaymentIntentStatusRequiresConfirmation:
		confirmParams := &stripe.PaymentIntentConfirmParams{}
		confirmParams.Context = ctx
		retried, err := s.Backend.ConfirmIntent(paymentIntentID, confirmParams)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
		}
		if retried.Status == stripe.PaymentIntentStatusSucceeded {
			return retried.ID, nil
		}
		s.Logger.Warn("Payment re-authentication did not succeed",
			zap.String("intent", paymentIntentID),
			zap.String("status", string(retried.Status)))
		return "", ErrAuthenticationFailed

	default:
		s.Logger.Warn("Payment not successful",
			zap.String("intent", paymentIntentID),
			zap.String("status", string(intent.Status)))
		return "", ErrPaymentNotSuccessful
	}
}
