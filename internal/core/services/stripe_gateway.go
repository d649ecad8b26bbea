package services

import (
	"context"
	"fmt"

	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// stripeGateway implements the PaymentGateway port on Stripe
// PaymentIntents.
type stripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a PaymentGateway backed by Stripe.
func NewStripeGateway(secretKey string) portssvc.PaymentGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeGateway{api: api}
}

// Ensure stripeGateway implements the portssvc.PaymentGateway interface
var _ portssvc.PaymentGateway = (*stripeGateway)(nil)

// toMinorUnits converts a decimal major-currency amount to the integer
// minor units Stripe expects (e.g. dollars to cents).
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func fromMinorUnits(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(100))
}

func (g *stripeGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (*portssvc.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(toMinorUnits(amount)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &portssvc.PaymentIntent{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       fromMinorUnits(intent.Amount),
		Currency:     string(intent.Currency),
		Succeeded:    intent.Status == stripe.PaymentIntentStatusSucceeded,
		Metadata:     intent.Metadata,
	}, nil
}

func (g *stripeGateway) RetrieveIntent(ctx context.Context, intentID string) (*portssvc.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	}
	intent, err := g.api.PaymentIntents.Get(intentID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent %s: %w", intentID, err)
	}

	return &portssvc.PaymentIntent{
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       fromMinorUnits(intent.Amount),
		Currency:     string(intent.Currency),
		Succeeded:    intent.Status == stripe.PaymentIntentStatusSucceeded,
		Metadata:     intent.Metadata,
	}, nil
}
