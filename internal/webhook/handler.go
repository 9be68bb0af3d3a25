package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/giftgenius/autocheckout/internal/config"
	"github.com/giftgenius/autocheckout/internal/middleware"
	"github.com/stripe/stripe-go/v81/webhook"
)

const maxBodyBytes = int64(65536)

type Handler struct {
	secret string
}

func NewHandler(cfg *config.StripeConfig) *Handler {
	return &Handler{
		secret: cfg.WebhookSecret,
	}
}

// HandleWebhook acknowledges provider events. Signature verification is
// delegated to the Stripe SDK and only runs when a webhook secret is
// configured; events are not processed beyond logging.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read webhook body")
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	if h.secret == "" {
		logger.Warn().Msg("STRIPE_WEBHOOK_SECRET not set, acknowledging without verification")
		respondReceived(w)
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.secret)
	if err != nil {
		logger.Error().Err(err).Msg("Webhook signature verification failed")
		http.Error(w, "Webhook signature verification failed", http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		logger.Info().Str("event_id", event.ID).Msg("Checkout session completed")
	default:
		logger.Debug().Str("event_type", string(event.Type)).Msg("Unhandled event type")
	}

	respondReceived(w)
}

func respondReceived(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"received": true})
}
