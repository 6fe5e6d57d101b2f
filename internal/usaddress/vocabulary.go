package usaddress

import (
	"strings"

	"volcano-insurance-api/internal/usstates"
)

var directionals = set(
	"n", "s", "e", "w", "ne", "nw", "se", "sw",
	"north", "south", "east", "west",
	"northeast", "northwest", "southeast", "southwest",
)

// streetTypes covers the USPS primary suffixes seen in practice and their
// standard abbreviations.
var streetTypes = set(
	"alley", "aly", "avenue", "ave", "av", "boulevard", "blvd", "circle", "cir",
	"court", "ct", "cove", "cv", "crossing", "xing", "drive", "dr", "expressway", "expy",
	"freeway", "fwy", "highway", "hwy", "lane", "ln", "loop", "parkway", "pkwy",
	"place", "pl", "plaza", "plz", "point", "pt", "road", "rd", "route", "rte",
	"row", "square", "sq", "street", "st", "terrace", "ter", "trail", "trl",
	"turnpike", "tpke", "way", "wy", "run", "path", "pike", "walk",
)

var occupancyTypes = set(
	"apt", "apartment", "suite", "ste", "unit", "bldg", "building",
	"floor", "fl", "room", "rm", "dept", "lot", "space", "spc",
)

// stateNames indexes multi-word state names by their lower-cased form.
var stateNames, maxStateWords = func() (map[string]struct{}, int) {
	m := make(map[string]struct{})
	longest := 1
	for _, name := range usstates.Names() {
		n := len(strings.Fields(name))
		if n < 2 {
			continue
		}
		m[strings.ToLower(name)] = struct{}{}
		longest = max(longest, n)
	}
	return m, longest
}()

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func key(w string) string {
	return strings.ToLower(strings.TrimRight(w, "."))
}

func isDirectional(w string) bool {
	_, ok := directionals[key(w)]
	return ok
}

func isStreetType(w string) bool {
	_, ok := streetTypes[key(w)]
	return ok
}

func isOccupancyType(w string) bool {
	_, ok := occupancyTypes[key(w)]
	return ok
}
