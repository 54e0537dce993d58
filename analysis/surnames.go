package analysis

import (
	"sort"
	"strings"

	"github.com/teranos/lineage/person"
)

// SurnameWeight is one surname's share of the theoretical surname slots
type SurnameWeight struct {
	Surname    string  `json:"surname" yaml:"surname"`
	Weight     int64   `json:"weight" yaml:"weight"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// SurnameDistribution is the weighted surname inheritance of the root person
type SurnameDistribution struct {
	HighestGeneration int             `json:"highest_generation" yaml:"highest_generation"`
	TotalSlots        int64           `json:"total_slots" yaml:"total_slots"`
	Weights           []SurnameWeight `json:"weights" yaml:"weights"`
}

// TotalSlots returns 2*(2^(h+1)-1), the surnames a complete tree of height h carries
func TotalSlots(h int) int64 {
	return 2 * (person.Expected(h+1) - 1)
}

// Surnames distributes surname weight across generations.
//
// With H the highest generation present, both surnames of generation 0 weigh
// H+1; for generations 1..H only the second surname counts, weighing H-g+1.
// Percentages are relative to TotalSlots(H), so a fully known tree sums to
// 100%. Ties keep first-seen order.
func Surnames(persons []person.Record) SurnameDistribution {
	h, ok := highestGeneration(persons)
	if !ok {
		return SurnameDistribution{Weights: []SurnameWeight{}}
	}

	dist := SurnameDistribution{
		HighestGeneration: h,
		TotalSlots:        TotalSlots(h),
	}

	acc := newAccumulator()
	// Generation 0 first: its surnames are seen before any ancestor's
	for _, p := range persons {
		if p.Generation.Degraded || p.Generation.Value != 0 {
			continue
		}
		acc.add(p.Surname1, int64(h+1))
		acc.add(p.Surname2, int64(h+1))
	}
	for g := 1; g <= h; g++ {
		weight := int64(h - g + 1)
		for _, p := range persons {
			if p.Generation.Degraded || p.Generation.Value != g {
				continue
			}
			acc.add(p.Surname2, weight)
		}
	}

	dist.Weights = make([]SurnameWeight, 0, len(acc.order))
	for _, name := range acc.ranked() {
		w := acc.totals[name]
		dist.Weights = append(dist.Weights, SurnameWeight{
			Surname:    name,
			Weight:     w,
			Percentage: 100 * float64(w) / float64(dist.TotalSlots),
		})
	}
	return dist
}

// WeightSum returns the sum of all surname weights
func (d SurnameDistribution) WeightSum() int64 {
	var sum int64
	for _, w := range d.Weights {
		sum += w.Weight
	}
	return sum
}

// SurnameCounts counts each surname across both surname columns, most common first
func SurnameCounts(persons []person.Record) []Share {
	acc := newAccumulator()
	for _, p := range persons {
		acc.add(p.Surname1, 1)
		acc.add(p.Surname2, 1)
	}
	return acc.shares()
}

func highestGeneration(persons []person.Record) (int, bool) {
	h, found := 0, false
	for _, p := range persons {
		if p.Generation.Degraded {
			continue
		}
		if !found || p.Generation.Value > h {
			h, found = p.Generation.Value, true
		}
	}
	return h, found
}

// accumulator sums weights per key, remembering first-seen order
type accumulator struct {
	totals map[string]int64
	order  []string
}

func newAccumulator() *accumulator {
	return &accumulator{totals: make(map[string]int64)}
}

// add skips blank keys; keys are compared case-sensitively
func (a *accumulator) add(key string, weight int64) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if _, ok := a.totals[key]; !ok {
		a.order = append(a.order, key)
	}
	a.totals[key] += weight
}

// ranked returns keys by descending total, ties in first-seen order
func (a *accumulator) ranked() []string {
	keys := append([]string(nil), a.order...)
	sort.SliceStable(keys, func(i, j int) bool {
		return a.totals[keys[i]] > a.totals[keys[j]]
	})
	return keys
}

func (a *accumulator) sum() int64 {
	var sum int64
	for _, v := range a.totals {
		sum += v
	}
	return sum
}

func (a *accumulator) shares() []Share {
	total := a.sum()
	shares := make([]Share, 0, len(a.order))
	for _, key := range a.ranked() {
		count := a.totals[key]
		shares = append(shares, Share{
			Name:       key,
			Count:      int(count),
			Percentage: 100 * float64(count) / float64(total),
		})
	}
	return shares
}
