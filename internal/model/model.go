package model

// LineItem is one purchasable entry as supplied by the caller. Amounts are
// integer cents; items are never persisted, they only live for the request.
type LineItem struct {
	Name       string `json:"name" validate:"required"`
	UnitAmount int64  `json:"unit_amount" validate:"required,gt=0"`
	Quantity   int64  `json:"quantity" validate:"required,gte=1"`
}

type CheckoutRequest struct {
	Items      []LineItem `json:"items"`
	SuccessURL string     `json:"success_url" validate:"required,url"`
	CancelURL  string     `json:"cancel_url" validate:"required,url"`
	Currency   string     `json:"currency,omitempty" validate:"omitempty,len=3"`
	Locale     string     `json:"locale,omitempty"`
}

type CheckoutResponse struct {
	CheckoutURL           string `json:"checkout_url"`
	Currency              string `json:"currency"`
	AmountProductCents    int64  `json:"amount_product_cents"`
	AmountServiceFeeCents int64  `json:"amount_service_fee_cents"`
	AmountTotalCents      int64  `json:"amount_total_cents"`
}
