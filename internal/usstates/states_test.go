package usstates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInDangerZone(t *testing.T) {
	for _, code := range []string{"AK", "AZ", "CA", "CO", "HI", "ID", "NV", "NM", "OR", "UT", "WA", "WY"} {
		assert.True(t, IsInDangerZone(code), code)
	}

	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "wisconsin", code: "WI", want: false},
		{name: "texas", code: "TX", want: false},
		{name: "new jersey", code: "NJ", want: false},
		{name: "lower case", code: "ak", want: true},
		{name: "padded", code: " hi ", want: true},
		{name: "garbage", code: "??", want: false},
		{name: "empty", code: "", want: false},
		{name: "full name is not a code", code: "Alaska", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInDangerZone(tt.code))
		})
	}
}

func TestDangerZone(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"AK", "AZ", "CA", "CO", "HI", "ID", "NV", "NM", "OR", "UT", "WA", "WY"},
		DangerZone())
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		code   string
		wantOK bool
	}{
		{name: "code", input: "DC", code: "DC", wantOK: true},
		{name: "lower code", input: "tx", code: "TX", wantOK: true},
		{name: "full name", input: "New Mexico", code: "NM", wantOK: true},
		{name: "full name odd spacing", input: "new   mexico", code: "NM", wantOK: true},
		{name: "trailing period", input: "Wash.", wantOK: false},
		{name: "dotted code", input: "D.C.", code: "DC", wantOK: true},
		{name: "dotted lower code", input: "n.m.", code: "NM", wantOK: true},
		{name: "unknown code", input: "ZZ", wantOK: false},
		{name: "unknown name", input: "Atlantis", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := Lookup(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.code, code)
			}
		})
	}
}

func TestName(t *testing.T) {
	name, ok := Name("hi")
	assert.True(t, ok)
	assert.Equal(t, "Hawaii", name)

	_, ok = Name("XX")
	assert.False(t, ok)
}
