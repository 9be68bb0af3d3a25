package psp

import (
	"testing"

	"github.com/giftgenius/autocheckout/internal/checkout"
	"github.com/giftgenius/autocheckout/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionParams_MapsLineItems(t *testing.T) {
	sub := checkout.Submission{
		LineItems: []model.LineItem{
			{Name: "Mug", UnitAmount: 1500, Quantity: 2},
			{Name: "Service Fee", UnitAmount: 99, Quantity: 1},
		},
		Currency:   "eur",
		SuccessURL: "https://a",
		CancelURL:  "https://b",
	}

	params := sessionParams(sub)

	require.Len(t, params.LineItems, 2)

	first := params.LineItems[0]
	assert.Equal(t, "eur", *first.PriceData.Currency)
	assert.Equal(t, "Mug", *first.PriceData.ProductData.Name)
	assert.Equal(t, int64(1500), *first.PriceData.UnitAmount)
	assert.Equal(t, int64(2), *first.Quantity)

	fee := params.LineItems[1]
	assert.Equal(t, "Service Fee", *fee.PriceData.ProductData.Name)
	assert.Equal(t, int64(99), *fee.PriceData.UnitAmount)
	assert.Equal(t, int64(1), *fee.Quantity)

	assert.Equal(t, "payment", *params.Mode)
	require.Len(t, params.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *params.PaymentMethodTypes[0])
	assert.Equal(t, "https://a", *params.SuccessURL)
	assert.Equal(t, "https://b", *params.CancelURL)
	assert.Nil(t, params.Locale)
}

func TestSessionParams_Locale(t *testing.T) {
	params := sessionParams(checkout.Submission{
		Currency:   "eur",
		SuccessURL: "https://a",
		CancelURL:  "https://b",
		Locale:     "de",
	})

	require.NotNil(t, params.Locale)
	assert.Equal(t, "de", *params.Locale)
}
