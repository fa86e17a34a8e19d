package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"healthcare/internal/config"
)

type CheckoutRequest struct {
	AppointmentID int64
	Amount        float64
	Description   string
	CustomerEmail string
}

// PaymentGateway opens hosted checkout pages.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (url, sessionID string, err error)
}

type StripeService struct {
	cfg config.StripeConfig
}

func NewStripeService(cfg config.StripeConfig) *StripeService {
	return &StripeService{cfg: cfg}
}

// CreateCheckoutSession charges req.Amount (major units) once, by card.
func (s *StripeService) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(s.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(minorUnits(req.Amount)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(s.cfg.SuccessURL),
		CancelURL:  stripe.String(s.cfg.CancelURL),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}
	params.Context = ctx
	params.AddMetadata("appointment_id", strconv.FormatInt(req.AppointmentID, 10))

	sess, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("error creating checkout session: %w", err)
	}
	return sess.URL, sess.ID, nil
}

func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
