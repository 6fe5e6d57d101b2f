package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"volcano-insurance-api/internal/models"
	"volcano-insurance-api/internal/usaddress"
	"volcano-insurance-api/internal/usstates"

	"github.com/rs/zerolog/log"
)

// DefaultLookupTimeout bounds a single zip code validation.
const DefaultLookupTimeout = 3 * time.Second

// AddressTagger labels the parts of a free-text address.
type AddressTagger interface {
	Tag(text string) (usaddress.Components, error)
}

// ZipValidator reports whether a zip code exists.
type ZipValidator interface {
	IsValid(ctx context.Context, zip string) (bool, error)
}

// AddressRepository stores addresses.
type AddressRepository interface {
	GetOrCreateAddress(ctx context.Context, address, state, zipCode string) (*models.Address, error)
}

// AddressResolver turns free-text input into a stored, validated Address.
type AddressResolver struct {
	tagger        AddressTagger
	zips          ZipValidator
	repo          AddressRepository
	lookupTimeout time.Duration
}

// NewAddressResolver creates a resolver. A non-positive lookupTimeout uses
// DefaultLookupTimeout.
func NewAddressResolver(tagger AddressTagger, zips ZipValidator, repo AddressRepository, lookupTimeout time.Duration) *AddressResolver {
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultLookupTimeout
	}
	return &AddressResolver{
		tagger:        tagger,
		zips:          zips,
		repo:          repo,
		lookupTimeout: lookupTimeout,
	}
}

// Resolve validates raw and returns the matching Address, creating it on
// first use. Validation failures match ErrAddressResolutionFailed; storage
// failures do not.
func (r *AddressResolver) Resolve(ctx context.Context, raw string) (*models.Address, error) {
	parts, err := r.tagger.Tag(raw)
	if err != nil {
		log.Debug().Err(err).Str("address", raw).Msg("address tagging failed")
		return nil, resolutionError(ErrAddressTaggingFailed)
	}

	street := StreetAddress(parts)
	if street == "" || parts.ZipCode == "" || parts.StateName == "" {
		return nil, resolutionError(ErrAddressTaggingFailed)
	}

	if err := r.validateZip(ctx, parts.ZipCode); err != nil {
		return nil, err
	}

	state, ok := usstates.Lookup(parts.StateName)
	if !ok {
		return nil, resolutionError(ErrInvalidState)
	}

	addr, err := r.repo.GetOrCreateAddress(ctx, street, state, parts.ZipCode)
	if err != nil {
		return nil, fmt.Errorf("service: failed to store address: %w", err)
	}
	return addr, nil
}

func (r *AddressResolver) validateZip(ctx context.Context, zip string) error {
	ctx, cancel := context.WithTimeout(ctx, r.lookupTimeout)
	defer cancel()

	valid, err := r.zips.IsValid(ctx, zip)
	if err != nil {
		log.Warn().Err(err).Str("zip_code", zip).Msg("zip code lookup failed")
		return resolutionError(ErrInvalidZipCode)
	}
	if !valid {
		return resolutionError(ErrInvalidZipCode)
	}
	return nil
}

// StreetAddress joins the street parts of an address, skipping empty ones.
func StreetAddress(c usaddress.Components) string {
	parts := []string{
		c.AddressNumber,
		c.StreetNamePreDirectional,
		c.StreetName,
		c.StreetNamePostType,
		c.StreetNamePostDirectional,
	}
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func resolutionError(reason error) error {
	return fmt.Errorf("%w: %w", ErrAddressResolutionFailed, reason)
}
