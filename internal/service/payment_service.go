package service

import (
	"context"
	"fmt"

	apperrors "healthcare/internal/errors"
	"healthcare/internal/logger"
	"healthcare/internal/repository"
)

const (
	paymentPending = "pending"
	paymentPaid    = "paid"
	paymentFailed  = "failed"
)

// PaymentService links appointments to checkout sessions and records their outcome.
type PaymentService struct {
	repo    repository.PaymentRepository
	gateway PaymentGateway
}

// NewPaymentService takes a nil gateway when card checkout is disabled.
func NewPaymentService(repo repository.PaymentRepository, gateway PaymentGateway) *PaymentService {
	return &PaymentService{repo: repo, gateway: gateway}
}

func (s *PaymentService) Enabled() bool {
	return s != nil && s.gateway != nil
}

// StartCheckout opens a checkout session for the appointment and returns its URL.
func (s *PaymentService) StartCheckout(ctx context.Context, req CheckoutRequest) (string, error) {
	if !s.Enabled() {
		return "", nil
	}
	url, sessionID, err := s.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		return "", apperrors.External("payment provider unavailable", err)
	}
	if err := s.repo.SetStripeSession(ctx, req.AppointmentID, sessionID); err != nil {
		// The session exists at the provider; keep its id for reconciliation.
		logger.FromContext(ctx).Error().Err(err).
			Str("session_id", sessionID).
			Int64("appointment_id", req.AppointmentID).
			Msg("checkout session created but not stored")
		return "", err
	}
	return url, nil
}

func (s *PaymentService) CheckoutCompleted(ctx context.Context, sessionID string) error {
	return s.setStatus(ctx, sessionID, paymentPaid)
}

func (s *PaymentService) CheckoutExpired(ctx context.Context, sessionID string) error {
	return s.setStatus(ctx, sessionID, paymentFailed)
}

func (s *PaymentService) setStatus(ctx context.Context, sessionID, status string) error {
	n, err := s.repo.UpdatePaymentStatusBySession(ctx, sessionID, status)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFound(fmt.Sprintf("no appointment for checkout session %s", sessionID))
	}
	logger.FromContext(ctx).Info().Str("session", sessionID).Str("payment_status", status).Msg("payment status updated")
	return nil
}
