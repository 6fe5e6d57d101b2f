package commands

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"volcano-insurance-api/internal/models"
)

// GeoNames postal code columns.
const (
	colCountryCode = 0
	colPostalCode  = 1
	colPlaceName   = 2
	colStateName   = 3
	colStateCode   = 4
	colLatitude    = 9
	colLongitude   = 10
	minColumns     = 11
)

// parseGeoNames reads a GeoNames postal code dump, keeping rows for country.
func parseGeoNames(r io.Reader, country string) ([]models.PostalCode, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var records []models.PostalCode
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", line, err)
		}

		if len(record) < minColumns {
			return nil, fmt.Errorf("line %d: invalid record length: %d, expected at least %d columns", line, len(record), minColumns)
		}
		if country != "" && !strings.EqualFold(record[colCountryCode], country) {
			continue
		}

		lat, err := parseCoordinate(record[colLatitude])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[colLatitude])
		}
		lon, err := parseCoordinate(record[colLongitude])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[colLongitude])
		}

		records = append(records, models.PostalCode{
			CountryCode: strings.ToUpper(record[colCountryCode]),
			PostalCode:  strings.TrimSpace(record[colPostalCode]),
			PlaceName:   record[colPlaceName],
			StateName:   record[colStateName],
			StateCode:   record[colStateCode],
			Latitude:    lat,
			Longitude:   lon,
		})
	}

	return records, nil
}

// parseCoordinate treats a blank coordinate as zero; some rows have none.
func parseCoordinate(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
