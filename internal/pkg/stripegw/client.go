// Package stripegw wraps the Stripe API for payment-intent creation. A
// payment intent is a gateway-side staged authorization, distinct from the
// payment records the booking flow writes.
package stripegw

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

var ErrClientInitFailed = errors.New("failed to initialize Stripe client")

// Intent is the subset of a Stripe PaymentIntent the API exposes
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// Client calls the Stripe payment-intents API
type Client struct {
	api *client.API
}

// New creates a Stripe client
func New(secretKey string) (*Client, error) {
	if secretKey == "" {
		return nil, ErrClientInitFailed
	}
	return &Client{api: client.New(secretKey, nil)}, nil
}

// CreateIntent creates a USD payment intent with automatic payment methods.
// amount is in major units (dollars) and is converted to cents for Stripe.
func (c *Client) CreateIntent(ctx context.Context, amount float64) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		log.Error().Err(err).Float64("amount", amount).Msg("Stripe payment intent creation failed")
		return nil, err
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}
