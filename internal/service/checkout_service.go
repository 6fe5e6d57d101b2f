package service

import (
	"context"
	"errors"
	"fmt"

	"volcano-insurance-api/internal/models"
	"volcano-insurance-api/internal/observability"
	"volcano-insurance-api/internal/repository"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// PolicyRepository stores policies and reads the quotes they come from.
type PolicyRepository interface {
	FindQuotesByNumber(ctx context.Context, quoteNumber string) ([]models.Quote, error)
	CreatePolicy(ctx context.Context, p *models.Policy) error
	GetPolicyByNumber(ctx context.Context, policyNumber string) (*models.Policy, error)
}

// CheckoutService turns quotes into policies.
type CheckoutService struct {
	repo    PolicyRepository
	clock   clockwork.Clock
	metrics *observability.Metrics
}

// NewCheckoutService creates a checkout service. A nil clock uses the real clock.
func NewCheckoutService(repo PolicyRepository, clock clockwork.Clock, metrics *observability.Metrics) *CheckoutService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CheckoutService{repo: repo, clock: clock, metrics: metrics}
}

// Checkout issues an active policy for the quote. The policy takes effect at
// checkout time and carries the quote number as its policy number, so a quote
// can be checked out only once.
func (s *CheckoutService) Checkout(ctx context.Context, quoteNumber string) (*models.Policy, error) {
	quote, err := findQuote(ctx, s.repo, quoteNumber)
	if err != nil {
		return nil, err
	}

	policy := &models.Policy{
		PolicyNumber:        quote.QuoteNumber,
		IsActive:            true,
		IsCancel:            false,
		AddressID:           quote.AddressID,
		TotalMonthlyPremium: quote.TotalMonthlyPremium,
		EffectiveDate:       s.clock.Now(),
		QuoteID:             quote.ID,
	}

	if err := s.repo.CreatePolicy(ctx, policy); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("service: quote %s: %w", quoteNumber, ErrQuoteAlreadyCheckedOut)
		}
		log.Error().Err(err).Str("quote_number", quoteNumber).Msg("policy insert failed")
		return nil, ErrCheckoutFailed
	}

	s.metrics.PoliciesIssued.Inc()
	log.Info().Str("policy_number", policy.PolicyNumber).Msg("policy issued")
	return policy, nil
}

// GetPolicy returns the policy with the given number.
func (s *CheckoutService) GetPolicy(ctx context.Context, policyNumber string) (*models.Policy, error) {
	policy, err := s.repo.GetPolicyByNumber(ctx, policyNumber)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to get policy: %w", err)
	}
	return policy, nil
}
