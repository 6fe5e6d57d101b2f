package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"volcano-insurance-api/internal/models"
	"volcano-insurance-api/internal/observability"
	"volcano-insurance-api/internal/repository"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// MaxQuoteNumberAttempts bounds how many quote numbers are tried before giving up.
const MaxQuoteNumberAttempts = 5

// QuoteRepository stores quotes and looks up existing policies.
type QuoteRepository interface {
	CreateQuote(ctx context.Context, q *models.Quote) error
	FindQuotesByNumber(ctx context.Context, quoteNumber string) ([]models.Quote, error)
	GetPolicyByNumber(ctx context.Context, policyNumber string) (*models.Policy, error)
}

// Resolver resolves free-text addresses.
type Resolver interface {
	Resolve(ctx context.Context, raw string) (*models.Address, error)
}

// CreateQuoteInput is the request to price and store a quote.
type CreateQuoteInput struct {
	EffectiveDate           time.Time
	HadPreviousCancellation bool
	NeverCancelled          bool
	OwnsProperty            bool
	// PreviouslyCancelPolicy is the policy number of an earlier canceled
	// policy, if the holder provides one.
	PreviouslyCancelPolicy string
	Address                string
}

// QuoteService creates and reads quotes.
type QuoteService struct {
	resolver    Resolver
	repo        QuoteRepository
	quoteNumber QuoteNumberFunc
	clock       clockwork.Clock
	metrics     *observability.Metrics
}

// NewQuoteService creates a quote service. A nil numbers uses NewQuoteNumber
// and a nil clock uses the real clock.
func NewQuoteService(resolver Resolver, repo QuoteRepository, numbers QuoteNumberFunc, clock clockwork.Clock, metrics *observability.Metrics) *QuoteService {
	if numbers == nil {
		numbers = NewQuoteNumber
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &QuoteService{
		resolver:    resolver,
		repo:        repo,
		quoteNumber: numbers,
		clock:       clock,
		metrics:     metrics,
	}
}

// CreateQuote resolves the address, prices the policy and stores the quote.
// Nothing is stored when the address cannot be resolved.
func (s *QuoteService) CreateQuote(ctx context.Context, in CreateQuoteInput) (*models.Quote, error) {
	addr, err := s.resolver.Resolve(ctx, in.Address)
	if err != nil {
		if errors.Is(err, ErrAddressResolutionFailed) {
			s.metrics.QuotesRejected.WithLabelValues("address").Inc()
			return nil, err
		}
		return nil, s.fail(err, "address storage failed")
	}

	quote := &models.Quote{
		EffectiveDate: in.EffectiveDate,
		AddressID:     addr.ID,
		Address:       addr,
	}
	if quote.EffectiveDate.IsZero() {
		quote.EffectiveDate = s.clock.Now()
	}

	if in.PreviouslyCancelPolicy != "" {
		policy, err := s.repo.GetPolicyByNumber(ctx, in.PreviouslyCancelPolicy)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			s.metrics.QuotesRejected.WithLabelValues("previous_policy").Inc()
			return nil, fmt.Errorf("service: previous policy %q: %w", in.PreviouslyCancelPolicy, ErrPolicyNotFound)
		case err != nil:
			return nil, s.fail(err, "previous policy lookup failed")
		}
		quote.PreviouslyCancelPolicy = &policy.ID
	}

	price := Price(PricingInput{
		HadPreviousCancellation: in.HadPreviousCancellation,
		NeverCancelled:          in.NeverCancelled,
		OwnsProperty:            in.OwnsProperty,
		State:                   addr.State,
	})
	quote.TotalTermPremium = price.TotalTermPremium
	quote.TotalMonthlyPremium = price.TotalMonthlyPremium
	quote.TotalAdditionalFee = price.TotalAdditionalFee
	quote.TotalMonthlyFee = price.TotalMonthlyFee
	quote.TotalDiscount = price.TotalDiscount
	quote.TotalMonthlyDiscount = price.TotalMonthlyDiscount

	if err := s.insert(ctx, quote); err != nil {
		return nil, err
	}

	s.metrics.QuotesCreated.Inc()
	log.Info().
		Str("quote_number", quote.QuoteNumber).
		Str("state", addr.State).
		Str("monthly_fee", quote.TotalMonthlyFee.StringFixed(moneyPlaces)).
		Str("monthly_discount", quote.TotalMonthlyDiscount.StringFixed(moneyPlaces)).
		Msg("quote created")
	return quote, nil
}

// insert stores quote under a fresh quote number, retrying on collisions.
func (s *QuoteService) insert(ctx context.Context, quote *models.Quote) error {
	for attempt := 1; attempt <= MaxQuoteNumberAttempts; attempt++ {
		number, err := s.quoteNumber()
		if err != nil {
			return s.fail(err, "quote number generation failed")
		}
		quote.QuoteNumber = number

		err = s.repo.CreateQuote(ctx, quote)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return s.fail(err, "quote insert failed")
		}

		s.metrics.QuoteCollisions.Inc()
		log.Warn().Str("quote_number", number).Int("attempt", attempt).Msg("quote number collision")
	}
	quote.QuoteNumber = ""
	return s.fail(ErrQuoteNumberTaken, "quote number attempts exhausted")
}

func (s *QuoteService) fail(err error, msg string) error {
	s.metrics.QuoteFailures.Inc()
	log.Error().Err(err).Msg(msg)
	return ErrQuoteCreationFailed
}

// GetQuote returns the quote with the given number.
func (s *QuoteService) GetQuote(ctx context.Context, quoteNumber string) (*models.Quote, error) {
	return findQuote(ctx, s.repo, quoteNumber)
}

// QuoteFinder looks quotes up by number.
type QuoteFinder interface {
	FindQuotesByNumber(ctx context.Context, quoteNumber string) ([]models.Quote, error)
}

// findQuote returns the single quote with quoteNumber. More than one match
// means the uniqueness constraint was bypassed and is reported, not guessed at.
func findQuote(ctx context.Context, repo QuoteFinder, quoteNumber string) (*models.Quote, error) {
	quotes, err := repo.FindQuotesByNumber(ctx, quoteNumber)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find quote: %w", err)
	}
	switch len(quotes) {
	case 0:
		return nil, ErrQuoteNotFound
	case 1:
		return &quotes[0], nil
	default:
		log.Error().Str("quote_number", quoteNumber).Int("matches", len(quotes)).Msg("duplicate quote number")
		return nil, ErrQuoteLookupAmbiguous
	}
}
