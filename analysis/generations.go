// Package analysis computes the statistical summaries shown next to the tree.
//
// Every function is a pure pass over canonical persons (one record per real
// person, as produced by resolve.Resolve). Inputs are never mutated, so
// repeated calls return identical results.
package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/teranos/lineage/person"
)

// GenerationSummary describes how complete one generation of ancestors is
type GenerationSummary struct {
	Generation int   `json:"generation" yaml:"generation"`
	Count      int   `json:"count" yaml:"count"`
	Expected   int64 `json:"expected" yaml:"expected"` // 2^generation
	Deficit    int64 `json:"deficit" yaml:"deficit"`
	Complete   bool  `json:"complete" yaml:"complete"`
	// Mean birth year over parsable birth dates; nil = no data
	AverageBirthYear *float64 `json:"average_birth_year" yaml:"average_birth_year"`
}

// Generations summarizes each generation present, ascending.
// Persons with an unreadable generation are skipped.
func Generations(persons []person.Record) []GenerationSummary {
	counts := make(map[int]int)
	years := make(map[int]stats.Float64Data)

	for _, p := range persons {
		if p.Generation.Degraded {
			continue
		}
		g := p.Generation.Value
		counts[g]++
		if p.Birth.Valid() {
			years[g] = append(years[g], float64(p.Birth.Time.Year()))
		}
	}

	generations := make([]int, 0, len(counts))
	for g := range counts {
		generations = append(generations, g)
	}
	sort.Ints(generations)

	summaries := make([]GenerationSummary, 0, len(generations))
	for _, g := range generations {
		expected := person.Expected(g)
		count := int64(counts[g])

		summary := GenerationSummary{
			Generation: g,
			Count:      counts[g],
			Expected:   expected,
			Complete:   count >= expected,
		}
		if !summary.Complete {
			summary.Deficit = expected - count
		}
		summary.AverageBirthYear = meanOf(years[g])

		summaries = append(summaries, summary)
	}
	return summaries
}

// meanOf returns the mean, or nil for no data. Rounding is left to display.
func meanOf(data stats.Float64Data) *float64 {
	mean, err := stats.Mean(data)
	if err != nil {
		return nil
	}
	return &mean
}
