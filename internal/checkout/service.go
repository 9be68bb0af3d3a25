package checkout

import (
	"context"
	"strings"

	"github.com/giftgenius/autocheckout/internal/config"
	"github.com/giftgenius/autocheckout/internal/model"
)

// ServiceFeeLabel is the display name of the synthetic fee line item.
const ServiceFeeLabel = "Service Fee"

// Submission is the single hosted-checkout creation call handed to the
// provider: the caller's line items plus the appended fee item.
type Submission struct {
	LineItems  []model.LineItem
	Currency   string
	SuccessURL string
	CancelURL  string
	Locale     string
}

// Provider creates a hosted checkout session and returns its redirect URL.
type Provider interface {
	CreateSession(ctx context.Context, sub Submission) (string, error)
}

type Service struct {
	provider        Provider
	feeCents        int64
	defaultCurrency string
}

func NewService(provider Provider, cfg *config.CheckoutConfig) *Service {
	return &Service{
		provider:        provider,
		feeCents:        cfg.ServiceFeeCents,
		defaultCurrency: cfg.DefaultCurrency,
	}
}

// CreateCheckout validates the caller's items, appends the service fee item
// last, submits one session-creation call and returns the redirect URL with
// the amount breakdown. Nothing is submitted when validation fails.
func (s *Service) CreateCheckout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if req.SuccessURL == "" {
		return nil, validationErrorf("success_url is required")
	}
	if req.CancelURL == "" {
		return nil, validationErrorf("cancel_url is required")
	}

	var productCents int64
	for i, item := range req.Items {
		if item.Name == "" {
			return nil, validationErrorf("item %d: name must not be empty", i)
		}
		if item.UnitAmount <= 0 {
			return nil, validationErrorf("item %d: unit_amount must be > 0", i)
		}
		if item.Quantity < 1 {
			return nil, validationErrorf("item %d: quantity must be >= 1", i)
		}
		productCents += item.UnitAmount * item.Quantity
	}

	currency := req.Currency
	if currency == "" {
		currency = s.defaultCurrency
	}
	currency = strings.ToLower(currency)

	// Caller items in order, fee item always last, exactly once.
	lineItems := make([]model.LineItem, 0, len(req.Items)+1)
	lineItems = append(lineItems, req.Items...)
	lineItems = append(lineItems, model.LineItem{
		Name:       ServiceFeeLabel,
		UnitAmount: s.feeCents,
		Quantity:   1,
	})

	redirectURL, err := s.provider.CreateSession(ctx, Submission{
		LineItems:  lineItems,
		Currency:   currency,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
		Locale:     req.Locale,
	})
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	return &model.CheckoutResponse{
		CheckoutURL:           redirectURL,
		Currency:              strings.ToUpper(currency),
		AmountProductCents:    productCents,
		AmountServiceFeeCents: s.feeCents,
		AmountTotalCents:      productCents + s.feeCents,
	}, nil
}
