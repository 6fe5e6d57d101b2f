// Package usstates holds the fixed table of US states and the subset with active volcanoes.
package usstates

import "strings"

// names maps postal codes to state names. DC is included because it is a valid
// mailing state for the addresses we insure.
var names = map[string]string{
	"AL": "Alabama",
	"AK": "Alaska",
	"AZ": "Arizona",
	"AR": "Arkansas",
	"CA": "California",
	"CO": "Colorado",
	"CT": "Connecticut",
	"DE": "Delaware",
	"DC": "District of Columbia",
	"FL": "Florida",
	"GA": "Georgia",
	"HI": "Hawaii",
	"ID": "Idaho",
	"IL": "Illinois",
	"IN": "Indiana",
	"IA": "Iowa",
	"KS": "Kansas",
	"KY": "Kentucky",
	"LA": "Louisiana",
	"ME": "Maine",
	"MD": "Maryland",
	"MA": "Massachusetts",
	"MI": "Michigan",
	"MN": "Minnesota",
	"MS": "Mississippi",
	"MO": "Missouri",
	"MT": "Montana",
	"NE": "Nebraska",
	"NV": "Nevada",
	"NH": "New Hampshire",
	"NJ": "New Jersey",
	"NM": "New Mexico",
	"NY": "New York",
	"NC": "North Carolina",
	"ND": "North Dakota",
	"OH": "Ohio",
	"OK": "Oklahoma",
	"OR": "Oregon",
	"PA": "Pennsylvania",
	"RI": "Rhode Island",
	"SC": "South Carolina",
	"SD": "South Dakota",
	"TN": "Tennessee",
	"TX": "Texas",
	"UT": "Utah",
	"VT": "Vermont",
	"VA": "Virginia",
	"WA": "Washington",
	"WV": "West Virginia",
	"WI": "Wisconsin",
	"WY": "Wyoming",
}

// volcanic lists the states with active volcanoes.
var volcanic = map[string]struct{}{
	"AK": {}, "AZ": {}, "CA": {}, "CO": {}, "HI": {}, "ID": {},
	"NV": {}, "NM": {}, "OR": {}, "UT": {}, "WA": {}, "WY": {},
}

// codesByName is the reverse index of names, keyed by lower-cased name.
var codesByName = func() map[string]string {
	m := make(map[string]string, len(names))
	for code, name := range names {
		m[strings.ToLower(name)] = code
	}
	return m
}()

// normalize drops dots so "D.C." and "N.M." match their codes.
func normalize(s string) string {
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(strings.Trim(s, " ,")), " ")
}

// Lookup returns the postal code for a state given either its code or its full
// name, in any case. ok is false when s names no US state.
func Lookup(s string) (code string, ok bool) {
	s = normalize(s)
	if _, found := names[strings.ToUpper(s)]; found {
		return strings.ToUpper(s), true
	}
	code, ok = codesByName[strings.ToLower(s)]
	return code, ok
}

// Name returns the full name for a postal code.
func Name(code string) (string, bool) {
	name, ok := names[strings.ToUpper(normalize(code))]
	return name, ok
}

// IsInDangerZone reports whether the state identified by code has an active
// volcano. Unknown or malformed codes are not in the danger zone.
func IsInDangerZone(code string) bool {
	_, ok := volcanic[strings.ToUpper(normalize(code))]
	return ok
}

// DangerZone returns the codes of all volcanic states.
func DangerZone() []string {
	out := make([]string, 0, len(volcanic))
	for code := range volcanic {
		out = append(out, code)
	}
	return out
}

// Names returns the full names of all states.
func Names() []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, name)
	}
	return out
}
