// Package usaddress splits free-text US mailing addresses into labelled components.
//
// It understands the common single-line form
//
//	<number> [pre-dir] <street name> [type] [post-dir] [unit], <place>, <state> <zip>
//
// with or without commas. Values are returned as written; validating the state or
// the zip code is up to the caller.
package usaddress

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrEmptyAddress is returned for blank input.
	ErrEmptyAddress = errors.New("usaddress: empty address")
	// ErrUnparseable is returned when no street, place, state or zip could be labelled.
	ErrUnparseable = errors.New("usaddress: unable to tag address")
)

// Components holds the labelled parts of an address. Empty fields were not found.
type Components struct {
	AddressNumber             string `json:"address_number,omitempty"`
	StreetNamePreDirectional  string `json:"street_name_pre_directional,omitempty"`
	StreetName                string `json:"street_name,omitempty"`
	StreetNamePostType        string `json:"street_name_post_type,omitempty"`
	StreetNamePostDirectional string `json:"street_name_post_directional,omitempty"`
	OccupancyType             string `json:"occupancy_type,omitempty"`
	OccupancyIdentifier       string `json:"occupancy_identifier,omitempty"`
	PlaceName                 string `json:"place_name,omitempty"`
	StateName                 string `json:"state_name,omitempty"`
	ZipCode                   string `json:"zip_code,omitempty"`
}

// Tagger tags addresses. The zero value is ready to use.
type Tagger struct{}

// NewTagger returns a Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Tag labels the components of text.
func (Tagger) Tag(text string) (Components, error) {
	return Tag(text)
}

var (
	zipRe     = regexp.MustCompile(`(?:^|[\s,])(\d{5})(?:-\d{4})?$`)
	numberRe  = regexp.MustCompile(`^\d+[A-Za-z]?(?:-\d+)?$`)
	countryRe = regexp.MustCompile(`(?i)[\s,]+(?:usa|u\.s\.a\.|us|united states(?: of america)?)$`)
)

// Tag labels the components of text.
func Tag(text string) (Components, error) {
	var c Components

	s := strings.TrimSpace(text)
	if s == "" {
		return c, ErrEmptyAddress
	}
	s = countryRe.ReplaceAllString(s, "")

	if m := zipRe.FindStringSubmatchIndex(s); m != nil {
		c.ZipCode = s[m[2]:m[3]]
		s = s[:m[2]]
	}
	s = strings.TrimRight(strings.TrimSpace(s), ",")

	segments := splitSegments(s)
	if len(segments) == 0 {
		if c.ZipCode == "" {
			return c, fmt.Errorf("%w: %q", ErrUnparseable, text)
		}
		return c, nil
	}

	// State is always the tail of the last segment.
	last := strings.Fields(segments[len(segments)-1])
	state, rest := splitState(last)
	c.StateName = state

	var street []string
	switch {
	case len(segments) == 1:
		street, c.PlaceName = splitPlace(rest)
	case len(rest) == 0 && len(segments) == 2:
		street = strings.Fields(segments[0])
	default:
		street = strings.Fields(segments[0])
		place := segments[1 : len(segments)-1]
		if len(rest) > 0 {
			place = append(place, strings.Join(rest, " "))
		}
		c.PlaceName = strings.Join(place, ", ")
	}

	tagStreet(&c, street)

	if c.AddressNumber == "" && c.StreetName == "" && c.StateName == "" && c.ZipCode == "" {
		return c, fmt.Errorf("%w: %q", ErrUnparseable, text)
	}
	return c, nil
}

func splitSegments(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.Join(strings.Fields(part), " ")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// splitState takes the longest known state name off the end of words, falling
// back to the final word.
func splitState(words []string) (state string, rest []string) {
	if len(words) == 0 {
		return "", nil
	}
	for n := min(maxStateWords, len(words)); n > 1; n-- {
		candidate := strings.Join(words[len(words)-n:], " ")
		if _, ok := stateNames[strings.ToLower(candidate)]; ok {
			return candidate, words[:len(words)-n]
		}
	}
	return words[len(words)-1], words[:len(words)-1]
}

// splitPlace separates a comma-less "street place" run at the last street type.
func splitPlace(words []string) (street []string, place string) {
	end := -1
	for i := len(words) - 1; i > 0; i-- {
		if isStreetType(words[i]) {
			end = i + 1
			break
		}
	}
	if end < 0 {
		return words, ""
	}
	if end < len(words) && isDirectional(words[end]) {
		end++
	}
	end += unitLength(words[end:])
	return words[:end], strings.Join(words[end:], " ")
}

// unitLength returns how many leading words form a unit designator and its
// identifier ("Apt 7", "# 12", "#12"), or 0.
func unitLength(words []string) int {
	if len(words) == 0 {
		return 0
	}
	switch w := words[0]; {
	case w == "#" || isOccupancyType(w):
		return min(2, len(words))
	case strings.HasPrefix(w, "#"):
		return 1
	}
	return 0
}

func tagStreet(c *Components, words []string) {
	if len(words) == 0 {
		return
	}

	if numberRe.MatchString(words[0]) {
		c.AddressNumber = words[0]
		words = words[1:]
	}

	for i, w := range words {
		if isOccupancyType(w) || strings.HasPrefix(w, "#") {
			unit := words[i:]
			if strings.HasPrefix(w, "#") {
				c.OccupancyType = "#"
				unit[0] = strings.TrimPrefix(w, "#")
			} else {
				c.OccupancyType = w
				unit = unit[1:]
			}
			c.OccupancyIdentifier = strings.TrimSpace(strings.Join(unit, " "))
			words = words[:i]
			break
		}
	}

	if len(words) > 1 && isDirectional(words[0]) {
		c.StreetNamePreDirectional = words[0]
		words = words[1:]
	}
	if len(words) > 1 && isDirectional(words[len(words)-1]) {
		c.StreetNamePostDirectional = words[len(words)-1]
		words = words[:len(words)-1]
	}
	if len(words) > 1 && isStreetType(words[len(words)-1]) {
		c.StreetNamePostType = words[len(words)-1]
		words = words[:len(words)-1]
	}
	c.StreetName = strings.Join(words, " ")
}
