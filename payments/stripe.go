package payments

import (
	"context"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"
)

// StripeClient creates card payment intents in usd. It satisfies
// services.IntentClient.
type StripeClient struct {
	intents *paymentintent.Client
}

func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		intents: &paymentintent.Client{
			B:   stripe.GetBackend(stripe.APIBackend),
			Key: secretKey,
		},
	}
}

func (c *StripeClient) CreateIntent(ctx context.Context, amountMinor int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := c.intents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
