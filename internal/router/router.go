package router

import (
	"encoding/json"
	"net/http"

	"github.com/giftgenius/autocheckout/internal/checkout"
	"github.com/giftgenius/autocheckout/internal/middleware"
	"github.com/giftgenius/autocheckout/internal/server"
	"github.com/giftgenius/autocheckout/internal/webhook"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Checkout *checkout.Handler
	Webhook  *webhook.Handler
}

func NewRouter(s *server.Server, h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	mw := middleware.NewMiddlewares(s)

	// Permissive CORS: the checkout endpoint is called from GPT actions and
	// arbitrary storefront origins.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.Config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// Apply middleware in order
	r.Use(middleware.RequestID)
	r.Use(mw.Tracing.NewRelicMiddleware())
	r.Use(mw.Tracing.EnhanceTracing)
	r.Use(mw.ContextEnhancer.EnhanceContext)
	r.Use(mw.Global.RequestLogger)

	r.Get("/", healthCheck(s))
	r.Post("/create_checkout", h.Checkout.CreateCheckout)
	r.Post("/webhook", h.Webhook.HandleWebhook)

	return r
}

func healthCheck(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"service": s.Config.Observability.ServiceName,
		})
	}
}
