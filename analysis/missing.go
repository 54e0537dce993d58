package analysis

import (
	"sort"

	"github.com/teranos/lineage/person"
)

// Checked fields, in report order
const (
	FieldSurname1     = "surname_1"
	FieldSurname2     = "surname_2"
	FieldBirthDate    = "birth_date"
	FieldBirthCountry = "birth_country"
	FieldDeathDate    = "death_date"
	FieldDeathCountry = "death_country"
)

// MissingFilter narrows the missing-data report; a nil Generation means all
type MissingFilter struct {
	Generation *int
}

// MissingRecord is one person with at least one empty checked field
type MissingRecord struct {
	ID            string            `json:"id" yaml:"id"`
	Name          string            `json:"name" yaml:"name"`
	Generation    person.Generation `json:"generation" yaml:"generation"`
	BirthDate     string            `json:"birth_date" yaml:"birth_date"` // dd/mm/yyyy or ""
	BirthPlace    string            `json:"birth_place" yaml:"birth_place"`
	DeathDate     string            `json:"death_date" yaml:"death_date"`
	DeathPlace    string            `json:"death_place" yaml:"death_place"`
	MissingFields []string          `json:"missing_fields" yaml:"missing_fields"`
}

// MissingReport lists persons with incomplete data
type MissingReport struct {
	Total int `json:"total" yaml:"total"`
	// Distinct generations among all incomplete persons, for filter selectors
	Generations []int           `json:"generations" yaml:"generations"`
	Records     []MissingRecord `json:"records" yaml:"records"`
}

// Missing audits surnames, birth date and country, death date and country.
// A field is missing when empty or an unparseable date; the "not applicable"
// sentinel is an answer, not a gap. Unfiltered results are ordered by
// generation with unreadable generations last; ties keep input order.
func Missing(persons []person.Record, filter MissingFilter) MissingReport {
	report := MissingReport{Generations: []int{}, Records: []MissingRecord{}}
	seenGen := make(map[int]bool)

	for _, p := range persons {
		fields := MissingFields(p)
		if len(fields) == 0 {
			continue
		}

		if !p.Generation.Degraded && !seenGen[p.Generation.Value] {
			seenGen[p.Generation.Value] = true
			report.Generations = append(report.Generations, p.Generation.Value)
		}

		if filter.Generation != nil && (p.Generation.Degraded || p.Generation.Value != *filter.Generation) {
			continue
		}

		report.Records = append(report.Records, MissingRecord{
			ID:            p.ID,
			Name:          p.DisplayName(),
			Generation:    p.Generation,
			BirthDate:     p.Birth.Format(),
			BirthPlace:    person.JoinNonEmpty(", ", p.BirthCity.String(), p.BirthCountry.String()),
			DeathDate:     p.Death.Format(),
			DeathPlace:    person.JoinNonEmpty(", ", p.DeathCity.String(), p.DeathCountry.String()),
			MissingFields: fields,
		})
	}

	sort.Ints(report.Generations)
	if filter.Generation == nil {
		sort.SliceStable(report.Records, func(i, j int) bool {
			return generationLess(report.Records[i].Generation, report.Records[j].Generation)
		})
	}
	report.Total = len(report.Records)
	return report
}

// MissingFields returns the names of the checked fields the person lacks
func MissingFields(p person.Record) []string {
	var fields []string
	if p.Surname1 == "" {
		fields = append(fields, FieldSurname1)
	}
	if p.Surname2 == "" {
		fields = append(fields, FieldSurname2)
	}
	if p.Birth.Missing() {
		fields = append(fields, FieldBirthDate)
	}
	if p.BirthCountry.Missing() {
		fields = append(fields, FieldBirthCountry)
	}
	if p.Death.Missing() {
		fields = append(fields, FieldDeathDate)
	}
	if p.DeathCountry.Missing() {
		fields = append(fields, FieldDeathCountry)
	}
	return fields
}

// generationLess orders known generations ascending, unreadable ones last
func generationLess(a, b person.Generation) bool {
	if a.Degraded != b.Degraded {
		return !a.Degraded
	}
	return a.Value < b.Value
}
