package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/giftgenius/autocheckout/internal/middleware"
	"github.com/giftgenius/autocheckout/internal/model"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

var validate = validator.New()

func (h *Handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	var req model.CheckoutRequest
	ctx := r.Context()

	logger := middleware.GetLogger(ctx)
	logger.Info().Msg("Received request to create checkout session")

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error().Err(err).Msg("Failed to decode checkout request")
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := validate.Struct(&req); err != nil {
		logger.Error().Err(err).Msg("Validation error on checkout request")
		respondError(w, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp, err := h.service.CreateCheckout(ctx, &req)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			logger.Error().Err(err).Msg("Rejected invalid checkout request")
			respondError(w, http.StatusBadRequest, validationErr.Msg)
			return
		}

		var upstreamErr *UpstreamError
		if errors.As(err, &upstreamErr) {
			logger.Error().Err(err).Msg("Payment provider rejected checkout session")
			respondError(w, http.StatusBadGateway, upstreamErr.Error())
			return
		}

		logger.Error().Err(err).Msg("Failed to create checkout session")
		respondError(w, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
	logger.Info().Str("checkout_url", resp.CheckoutURL).Msg("Checkout session created")
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
