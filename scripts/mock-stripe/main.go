package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

type checkoutSessionResponse struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	Mode   string `json:"mode"`
	Status string `json:"status"`
	URL    string `json:"url"`
}

func main() {
	port := ":8082"
	http.HandleFunc("/v1/checkout/sessions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Simulate slight processing delay
		time.Sleep(1 * time.Millisecond)

		id := fmt.Sprintf("cs_test_mock_%d", time.Now().UnixNano())
		resp := checkoutSessionResponse{
			ID:     id,
			Object: "checkout.session",
			Mode:   "payment",
			Status: "open",
			URL:    "https://checkout.stripe.com/c/pay/" + id,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)

		log.Printf("Processed mock checkout session creation: %s", resp.ID)
	})

	log.Printf("Mock Stripe server starting on %s...", port)
	if err := http.ListenAndServe(port, nil); err != nil {
		log.Fatal(err)
	}
}
