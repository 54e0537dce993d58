// Package person defines the record model consumed by the genealogy engine.
//
// Values arrive already normalized by the ingest package: missing cells are
// empty, the "not applicable" sentinel is carried as an explicit tag, and
// generations carry a Degraded flag instead of silently defaulting.
package person

import "strings"

// Sex is the categorical sex of a person
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// Record is one row of the exported table.
// The same ID may appear on several rows (edge-per-row exports).
type Record struct {
	Row int `json:"row"` // 1-based data row in the source table

	ID         string `json:"id"`
	GivenName1 string `json:"given_name_1,omitempty"`
	GivenName2 string `json:"given_name_2,omitempty"`
	Surname1   string `json:"surname_1,omitempty"`
	Surname2   string `json:"surname_2,omitempty"`
	Sex        Sex    `json:"sex"`

	Birth        Date `json:"birth"`
	Death        Date `json:"death"`
	BirthCity    Text `json:"birth_city"`
	BirthCountry Text `json:"birth_country"`
	DeathCity    Text `json:"death_city"`
	DeathCountry Text `json:"death_country"`

	Generation Generation `json:"generation"`

	// Parent-pair shape
	FatherID string `json:"father_id,omitempty"`
	MotherID string `json:"mother_id,omitempty"`

	// Edge-per-row shape
	ChildID string `json:"child_id,omitempty"`
}

// DisplayName joins given names and surnames with single spaces, skipping empty parts.
func (r Record) DisplayName() string {
	return JoinNonEmpty(" ", r.GivenName1, r.GivenName2, r.Surname1, r.Surname2)
}

// Text is an optional string cell that may hold the "not applicable" sentinel
type Text struct {
	Value         string `json:"value,omitempty"`
	NotApplicable bool   `json:"not_applicable,omitempty"`
}

// NewText builds a known text value
func NewText(v string) Text {
	return Text{Value: v}
}

// NotApplicableText builds a text value carrying the sentinel
func NotApplicableText() Text {
	return Text{NotApplicable: true}
}

// Known reports whether the cell holds a real value
func (t Text) Known() bool {
	return !t.NotApplicable && t.Value != ""
}

// Missing reports whether the cell is empty (the sentinel is not missing)
func (t Text) Missing() bool {
	return !t.NotApplicable && t.Value == ""
}

// String returns the value, or "" for missing and sentinel cells
func (t Text) String() string {
	if !t.Known() {
		return ""
	}
	return t.Value
}

// JoinNonEmpty joins the non-blank parts with sep
func JoinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
