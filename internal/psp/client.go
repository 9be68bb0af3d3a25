package psp

import (
	"context"
	stderrors "errors"

	"github.com/giftgenius/autocheckout/internal/checkout"
	"github.com/giftgenius/autocheckout/internal/config"
	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// StripeClient implements checkout.Provider against the Stripe hosted
// checkout API. The credential is injected once at construction; no global
// SDK state is mutated.
type StripeClient struct {
	api *client.API
}

func NewStripeClient(cfg *config.StripeConfig) *StripeClient {
	api := &client.API{}

	if cfg.APIBase != "" {
		backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL: stripe.String(cfg.APIBase),
		})
		api.Init(cfg.SecretKey, &stripe.Backends{
			API:     backend,
			Uploads: stripe.GetBackend(stripe.UploadsBackend),
			Connect: stripe.GetBackend(stripe.ConnectBackend),
		})
	} else {
		api.Init(cfg.SecretKey, nil)
	}

	return &StripeClient{api: api}
}

func (c *StripeClient) CreateSession(ctx context.Context, sub checkout.Submission) (string, error) {
	params := sessionParams(sub)
	params.Context = ctx

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if stderrors.As(err, &stripeErr) {
			return "", errors.Errorf("stripe: %s", stripeErr.Msg)
		}
		return "", errors.Wrap(err, "stripe checkout session create failed")
	}

	return session.URL, nil
}

func sessionParams(sub checkout.Submission) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(sub.LineItems))
	for _, item := range sub.LineItems {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(sub.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(sub.SuccessURL),
		CancelURL:          stripe.String(sub.CancelURL),
	}

	if sub.Locale != "" {
		params.Locale = stripe.String(sub.Locale)
	}

	return params
}
