package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/teranos/lineage/person"
)

// daysPerYear is the fixed divisor for ages; leap days are ignored
const daysPerYear = 365

// PersonAge is the age at death of one person
type PersonAge struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Generation person.Generation `json:"generation" yaml:"generation"`
	Age        int               `json:"age" yaml:"age"`
}

// AgeCount is one bar of the age histogram
type AgeCount struct {
	Age   int `json:"age" yaml:"age"`
	Count int `json:"count" yaml:"count"`
}

// AgeReport summarizes ages at death
type AgeReport struct {
	Ages         []PersonAge `json:"ages" yaml:"ages"`
	Mean         *float64    `json:"mean" yaml:"mean"` // nil when no age is known
	Median       *float64    `json:"median" yaml:"median"`
	Distribution []AgeCount  `json:"distribution" yaml:"distribution"`
	// Persons skipped because death is marked not applicable
	NotApplicable int `json:"not_applicable" yaml:"not_applicable"`
}

// AgeAtDeath returns floor(days/365) between birth and death, and whether
// both dates are known.
func AgeAtDeath(p person.Record) (int, bool) {
	if !p.Birth.Valid() || !p.Death.Valid() {
		return 0, false
	}
	return floorDiv(person.DaysBetween(p.Birth, p.Death), daysPerYear), true
}

// Ages computes ages at death for persons with both dates known.
// A death marked not applicable excludes the person without error.
func Ages(persons []person.Record) AgeReport {
	report := AgeReport{Ages: []PersonAge{}, Distribution: []AgeCount{}}

	var values stats.Float64Data
	histogram := make(map[int]int)

	for _, p := range persons {
		if p.Death.State == person.DateNotApplicable {
			report.NotApplicable++
			continue
		}
		age, ok := AgeAtDeath(p)
		if !ok {
			continue
		}
		report.Ages = append(report.Ages, PersonAge{
			ID:         p.ID,
			Name:       p.DisplayName(),
			Generation: p.Generation,
			Age:        age,
		})
		values = append(values, float64(age))
		histogram[age]++
	}

	if mean, err := stats.Mean(values); err == nil {
		report.Mean = &mean
	}
	if median, err := stats.Median(values); err == nil {
		report.Median = &median
	}

	for age, count := range histogram {
		report.Distribution = append(report.Distribution, AgeCount{Age: age, Count: count})
	}
	sort.Slice(report.Distribution, func(i, j int) bool {
		return report.Distribution[i].Age < report.Distribution[j].Age
	})
	return report
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
