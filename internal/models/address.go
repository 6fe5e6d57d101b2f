package models

import (
	"time"

	"github.com/google/uuid"
)

// Address is a validated US property address. Rows are unique on
// (Address, State, ZipCode) and never change after creation.
type Address struct {
	ID        uuid.UUID `json:"id"`
	Address   string    `json:"address"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostalCode is one row of the postal code reference table used to validate zip codes.
type PostalCode struct {
	CountryCode string
	PostalCode  string
	PlaceName   string
	StateName   string
	StateCode   string
	Latitude    float64
	Longitude   float64
}
