package analysis

import (
	"sort"

	"github.com/teranos/lineage/person"
)

// Share is one category's count and percentage of the total
type Share struct {
	Name       string  `json:"name" yaml:"name"`
	Count      int     `json:"count" yaml:"count"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// DeathRecord is a person who died in a given city
type DeathRecord struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	DeathDate string `json:"death_date" yaml:"death_date"` // dd/mm/yyyy or ""
}

// BirthCountries returns birth country shares, most common first
func BirthCountries(persons []person.Record) []Share {
	return placeShares(persons, func(p person.Record) person.Text { return p.BirthCountry })
}

// BirthCities returns birth city shares, most common first
func BirthCities(persons []person.Record) []Share {
	return placeShares(persons, func(p person.Record) person.Text { return p.BirthCity })
}

// DeathCities returns the distinct known death cities, sorted
func DeathCities(persons []person.Record) []string {
	seen := make(map[string]bool)
	cities := []string{}
	for _, p := range persons {
		city := p.DeathCity.String()
		if city == "" || seen[city] {
			continue
		}
		seen[city] = true
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// DeathsIn lists the persons who died in city, in input order
func DeathsIn(persons []person.Record, city string) []DeathRecord {
	deaths := []DeathRecord{}
	if city == "" {
		return deaths
	}
	for _, p := range persons {
		if p.DeathCity.String() != city {
			continue
		}
		deaths = append(deaths, DeathRecord{
			ID:        p.ID,
			Name:      p.DisplayName(),
			DeathDate: p.Death.Format(),
		})
	}
	return deaths
}

// placeShares counts known values; blank and sentinel cells are skipped
func placeShares(persons []person.Record, field func(person.Record) person.Text) []Share {
	acc := newAccumulator()
	for _, p := range persons {
		acc.add(field(p).String(), 1)
	}
	return acc.shares()
}
