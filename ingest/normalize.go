package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/xuri/excelize/v2"

	"github.com/teranos/lineage/person"
)

// Excel serial day numbers accepted as dates (1900-01-01 .. 9999-12-31)
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

type normalizer struct {
	sentinel     string
	layouts      []string
	male, female map[string]bool
	excelSerials bool
}

func newNormalizer(opts Options, excelSerials bool) *normalizer {
	return &normalizer{
		sentinel:     strings.ToLower(strings.TrimSpace(opts.Sentinel)),
		layouts:      opts.DateLayouts,
		male:         labelSet(opts.Sex.Male),
		female:       labelSet(opts.Sex.Female),
		excelSerials: excelSerials,
	}
}

func labelSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[strings.ToLower(strings.TrimSpace(l))] = true
	}
	return set
}

func (n *normalizer) isSentinel(v string) bool {
	return n.sentinel != "" && strings.ToLower(v) == n.sentinel
}

// ref normalizes an identifier cell; the sentinel means "no reference"
func (n *normalizer) ref(v string) string {
	if n.isSentinel(v) {
		return ""
	}
	return v
}

func (n *normalizer) text(v string) person.Text {
	switch {
	case v == "":
		return person.Text{}
	case n.isSentinel(v):
		return person.NotApplicableText()
	default:
		return person.NewText(v)
	}
}

func (n *normalizer) sex(v string) person.Sex {
	key := strings.ToLower(v)
	switch {
	case n.male[key]:
		return person.SexMale
	case n.female[key]:
		return person.SexFemale
	default:
		return person.SexUnknown
	}
}

// date parses a date cell: configured layouts first, then Excel serials
// (XLSX only), then free-form parsing.
func (n *normalizer) date(v string) person.Date {
	if v == "" {
		return person.Date{}
	}
	if n.isSentinel(v) {
		return person.NotApplicableDate()
	}

	for _, layout := range n.layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return person.KnownDate(t)
		}
	}

	if n.excelSerials {
		if serial, err := strconv.ParseFloat(v, 64); err == nil && serial >= minExcelSerial && serial <= maxExcelSerial {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return person.KnownDate(t)
			}
		}
	}

	if t, err := dateparse.ParseAny(v); err == nil {
		return person.KnownDate(t)
	}
	return person.InvalidDate(v)
}
