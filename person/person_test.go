package person

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeneration(t *testing.T) {
	tests := []struct {
		raw  string
		want Generation
	}{
		{raw: "0", want: Generation{Value: 0}},
		{raw: "3", want: Generation{Value: 3}},
		{raw: " 4 ", want: Generation{Value: 4}},
		{raw: "5.0", want: Generation{Value: 5}},
		{raw: "60", want: Generation{Value: 60}},
		{raw: "", want: Generation{Degraded: true}},
		{raw: "abc", want: Generation{Degraded: true}},
		{raw: "2.5", want: Generation{Degraded: true}},
		{raw: "-1", want: Generation{Degraded: true}},
		{raw: "-1.0", want: Generation{Degraded: true}},
		{raw: "61", want: Generation{Degraded: true}},
		{raw: "NaN", want: Generation{Degraded: true}},
		{raw: "Inf", want: Generation{Degraded: true}},
		{raw: "1e1", want: Generation{Degraded: true}},
		{raw: "0x1p3", want: Generation{Degraded: true}},
		{raw: "3.", want: Generation{Degraded: true}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGeneration(tt.raw))
		})
	}
}

func TestGenerationDistinguishesRealZeroFromFailure(t *testing.T) {
	zero := ParseGeneration("0")
	failed := ParseGeneration("x")

	assert.Equal(t, zero.Level(), failed.Level())
	assert.False(t, zero.Degraded)
	assert.True(t, failed.Degraded)
}

func TestExpected(t *testing.T) {
	assert.Equal(t, int64(1), Expected(0))
	assert.Equal(t, int64(8), Expected(3))
	assert.Equal(t, int64(1)<<60, Expected(MaxGeneration))
}

func TestDisplayName(t *testing.T) {
	r := Record{GivenName1: "Ana", GivenName2: "", Surname1: "Gómez", Surname2: " Ruiz "}
	assert.Equal(t, "Ana Gómez Ruiz", r.DisplayName())
	assert.Equal(t, "", Record{}.DisplayName())
}

func TestText(t *testing.T) {
	assert.True(t, NewText("Bogotá").Known())
	assert.False(t, NewText("").Known())
	assert.True(t, NewText("").Missing())

	na := NotApplicableText()
	assert.False(t, na.Known())
	assert.False(t, na.Missing())
	assert.Equal(t, "", na.String())
}

func TestDateStates(t *testing.T) {
	known := KnownDate(time.Date(1900, 1, 1, 15, 30, 0, 0, time.FixedZone("X", 3600)))
	assert.True(t, known.Valid())
	assert.False(t, known.Missing())
	assert.Equal(t, "01/01/1900", known.Format())

	assert.True(t, Date{}.Missing())
	assert.True(t, InvalidDate("31/31/1900").Missing())
	assert.False(t, NotApplicableDate().Missing())
	assert.False(t, NotApplicableDate().Valid())
	assert.Equal(t, "", NotApplicableDate().Format())
}

func TestDaysBetween(t *testing.T) {
	birth := KnownDate(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC))
	death := KnownDate(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 18262, DaysBetween(birth, death))
	assert.Equal(t, -18262, DaysBetween(death, birth))

	// Longer than time.Duration can represent
	early := KnownDate(time.Date(1500, 6, 1, 0, 0, 0, 0, time.UTC))
	late := KnownDate(time.Date(2000, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 182622, DaysBetween(early, late))
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(KnownDate(time.Date(1921, 3, 4, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"known","date":"1921-03-04"}`, string(data))

	data, err = json.Marshal(NotApplicableDate())
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"not_applicable"}`, string(data))
}
