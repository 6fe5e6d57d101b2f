package service

import (
	"context"

	"volcano-insurance-api/internal/models"
	"volcano-insurance-api/internal/usaddress"

	"github.com/stretchr/testify/mock"
)

// MockTagger is a mock implementation of the AddressTagger interface
type MockTagger struct {
	mock.Mock
}

func (m *MockTagger) Tag(text string) (usaddress.Components, error) {
	args := m.Called(text)
	return args.Get(0).(usaddress.Components), args.Error(1)
}

// MockZipValidator is a mock implementation of the ZipValidator interface
type MockZipValidator struct {
	mock.Mock
}

func (m *MockZipValidator) IsValid(ctx context.Context, zip string) (bool, error) {
	args := m.Called(ctx, zip)
	return args.Bool(0), args.Error(1)
}

// MockAddressRepository is a mock implementation of the AddressRepository interface
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) GetOrCreateAddress(ctx context.Context, address, state, zipCode string) (*models.Address, error) {
	args := m.Called(ctx, address, state, zipCode)
	if a := args.Get(0); a != nil {
		return a.(*models.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockResolver is a mock implementation of the Resolver interface
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, raw string) (*models.Address, error) {
	args := m.Called(ctx, raw)
	if a := args.Get(0); a != nil {
		return a.(*models.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRepository is a mock implementation of the quote, policy and user repositories
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateQuote(ctx context.Context, q *models.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockRepository) FindQuotesByNumber(ctx context.Context, quoteNumber string) ([]models.Quote, error) {
	args := m.Called(ctx, quoteNumber)
	return args.Get(0).([]models.Quote), args.Error(1)
}

func (m *MockRepository) GetPolicyByNumber(ctx context.Context, policyNumber string) (*models.Policy, error) {
	args := m.Called(ctx, policyNumber)
	if p := args.Get(0); p != nil {
		return p.(*models.Policy), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CreatePolicy(ctx context.Context, p *models.Policy) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) CreateUser(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}
