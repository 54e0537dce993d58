package analysis

import "github.com/teranos/lineage/person"

// Report bundles every summary over one set of persons
type Report struct {
	Persons        int                 `json:"persons" yaml:"persons"`
	Generations    []GenerationSummary `json:"generations" yaml:"generations"`
	Surnames       SurnameDistribution `json:"surnames" yaml:"surnames"`
	SurnameCounts  []Share             `json:"surname_counts" yaml:"surname_counts"`
	Missing        MissingReport       `json:"missing" yaml:"missing"`
	Ages           AgeReport           `json:"ages" yaml:"ages"`
	BirthCountries []Share             `json:"birth_countries" yaml:"birth_countries"`
	BirthCities    []Share             `json:"birth_cities" yaml:"birth_cities"`
	DeathCities    []string            `json:"death_cities" yaml:"death_cities"`
}

// Analyze runs every analysis
func Analyze(persons []person.Record) Report {
	return Report{
		Persons:        len(persons),
		Generations:    Generations(persons),
		Surnames:       Surnames(persons),
		SurnameCounts:  SurnameCounts(persons),
		Missing:        Missing(persons, MissingFilter{}),
		Ages:           Ages(persons),
		BirthCountries: BirthCountries(persons),
		BirthCities:    BirthCities(persons),
		DeathCities:    DeathCities(persons),
	}
}
