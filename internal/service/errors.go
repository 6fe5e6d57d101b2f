package service

import "errors"

// Address resolution. Every specific reason is returned wrapped together with
// ErrAddressResolutionFailed so callers can match either.
var (
	ErrAddressResolutionFailed = errors.New("address resolution failed")
	ErrAddressTaggingFailed    = errors.New("address could not be tagged")
	ErrInvalidZipCode          = errors.New("invalid zip code")
	ErrInvalidState            = errors.New("invalid state")
)

// Quotes and policies.
var (
	ErrQuoteNumberTaken       = errors.New("quote number already taken")
	ErrQuoteCreationFailed    = errors.New("quote creation failed")
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrQuoteLookupAmbiguous   = errors.New("quote number matches more than one quote")
	ErrQuoteAlreadyCheckedOut = errors.New("quote already checked out")
	ErrPolicyNotFound         = errors.New("policy not found")
	ErrCheckoutFailed         = errors.New("checkout failed")
)

// Users.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUser        = errors.New("invalid user")
)

// IsClientError reports whether err was caused by the caller's input rather
// than by the service or its storage.
func IsClientError(err error) bool {
	return errors.Is(err, ErrAddressResolutionFailed) ||
		errors.Is(err, ErrQuoteAlreadyCheckedOut) ||
		errors.Is(err, ErrUserExists) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrInvalidUser) ||
		IsNotFound(err)
}

// IsNotFound reports whether err means a referenced record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrQuoteNotFound) ||
		errors.Is(err, ErrPolicyNotFound)
}
