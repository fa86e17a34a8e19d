package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	apperrors "healthcare/internal/errors"
	"healthcare/internal/logger"
)

const maxWebhookBytes = int64(65536)

type StripeWebhookHandler struct {
	WebhookSecret string
	payments      CheckoutEvents
}

func NewStripeWebhookHandler(webhookSecret string, payments CheckoutEvents) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		WebhookSecret: webhookSecret,
		payments:      payments,
	}
}

// HandleWebhook serves POST /api/stripe/webhook and settles appointment payments.
func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error().Err(err).Msg("reading webhook body")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"), h.WebhookSecret)
	if err != nil {
		log.Warn().Err(err).Msg("webhook signature verification failed")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil || sess.ID == "" {
			log.Warn().Err(err).Str("event", string(event.Type)).Msg("bad checkout session payload")
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		settle := h.payments.CheckoutCompleted
		if event.Type == "checkout.session.expired" {
			settle = h.payments.CheckoutExpired
		}
		err := settle(r.Context(), sess.ID)
		if apperrors.Is(err, apperrors.KindNotFound) {
			// Acknowledge so Stripe stops redelivering an event we can never match.
			log.Warn().Err(err).Str("session_id", sess.ID).Str("event", string(event.Type)).Msg("checkout session has no appointment")
			break
		}
		if err != nil {
			respondWithError(w, r, err)
			return
		}
		log.Info().Str("session_id", sess.ID).Str("event", string(event.Type)).Msg("checkout settled")
	default:
		log.Debug().Str("event", string(event.Type)).Msg("unhandled stripe event")
	}

	w.WriteHeader(http.StatusOK)
}
