package person

import (
	"encoding/json"
	"time"
)

// DateState tags how a date cell was read
type DateState int

const (
	DateMissing       DateState = iota // empty cell
	DateKnown                          // parsed successfully
	DateNotApplicable                  // the sentinel literal (e.g. subject still alive)
	DateInvalid                        // non-empty but unparseable
)

var dateStateNames = map[DateState]string{
	DateMissing:       "missing",
	DateKnown:         "known",
	DateNotApplicable: "not_applicable",
	DateInvalid:       "invalid",
}

func (s DateState) String() string {
	if name, ok := dateStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the state name in JSON/YAML output
func (s DateState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Date is a tagged optional calendar date
type Date struct {
	State DateState
	Time  time.Time
	Raw   string // original cell text for invalid dates
}

type dateWire struct {
	State DateState `json:"state" yaml:"state"`
	Date  string    `json:"date,omitempty" yaml:"date,omitempty"`
	Raw   string    `json:"raw,omitempty" yaml:"raw,omitempty"`
}

func (d Date) wire() dateWire {
	w := dateWire{State: d.State, Raw: d.Raw}
	if d.Valid() {
		w.Date = d.Time.Format(time.DateOnly)
	}
	return w
}

// MarshalJSON renders the date as {"state": ..., "date": "yyyy-mm-dd"}
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

// MarshalYAML mirrors MarshalJSON for yaml.v3
func (d Date) MarshalYAML() (interface{}, error) {
	return d.wire(), nil
}

// KnownDate builds a parsed date normalized to UTC midnight
func KnownDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{State: DateKnown, Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// NotApplicableDate builds a date carrying the sentinel
func NotApplicableDate() Date {
	return Date{State: DateNotApplicable}
}

// InvalidDate records an unparseable cell
func InvalidDate(raw string) Date {
	return Date{State: DateInvalid, Raw: raw}
}

// Valid reports whether the date parsed
func (d Date) Valid() bool {
	return d.State == DateKnown
}

// Missing reports whether the date is unusable: empty or unparseable.
// The sentinel is not missing.
func (d Date) Missing() bool {
	return d.State == DateMissing || d.State == DateInvalid
}

// Format renders dd/mm/yyyy, or "" when the date is not valid
func (d Date) Format() string {
	if !d.Valid() {
		return ""
	}
	return d.Time.Format("02/01/2006")
}

// DaysBetween returns the whole days from one valid date to another.
// Both dates sit at UTC midnight, so the Unix difference is an exact
// multiple of a day; time.Duration would overflow past ~292 years.
func DaysBetween(from, to Date) int {
	return int((to.Time.Unix() - from.Time.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
