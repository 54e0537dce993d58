// Package testing holds shared fixtures for package tests.
package testing

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/teranos/lineage/person"
)

// PersonBuilder builds person records with readable defaults
type PersonBuilder struct {
	rec person.Record
}

// Person starts a record with the given id and generation. Both surnames,
// dates and countries are filled so the record is complete until changed.
func Person(id string, generation int) *PersonBuilder {
	return &PersonBuilder{rec: person.Record{
		ID:           id,
		GivenName1:   "Name",
		Surname1:     "First",
		Surname2:     "Second",
		Sex:          person.SexUnknown,
		Birth:        Date(1900, 1, 1),
		Death:        Date(1950, 1, 1),
		BirthCity:    person.NewText("Bogotá"),
		BirthCountry: person.NewText("Colombia"),
		DeathCity:    person.NewText("Bogotá"),
		DeathCountry: person.NewText("Colombia"),
		Generation:   person.Known(generation),
	}}
}

// Date builds a known date
func Date(year int, month time.Month, day int) person.Date {
	return person.KnownDate(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func (b *PersonBuilder) Names(given1, given2 string) *PersonBuilder {
	b.rec.GivenName1, b.rec.GivenName2 = given1, given2
	return b
}

func (b *PersonBuilder) Surnames(s1, s2 string) *PersonBuilder {
	b.rec.Surname1, b.rec.Surname2 = s1, s2
	return b
}

func (b *PersonBuilder) Sex(s person.Sex) *PersonBuilder {
	b.rec.Sex = s
	return b
}

func (b *PersonBuilder) Born(d person.Date) *PersonBuilder {
	b.rec.Birth = d
	return b
}

func (b *PersonBuilder) Died(d person.Date) *PersonBuilder {
	b.rec.Death = d
	return b
}

func (b *PersonBuilder) BirthPlace(city, country person.Text) *PersonBuilder {
	b.rec.BirthCity, b.rec.BirthCountry = city, country
	return b
}

func (b *PersonBuilder) DeathPlace(city, country person.Text) *PersonBuilder {
	b.rec.DeathCity, b.rec.DeathCountry = city, country
	return b
}

func (b *PersonBuilder) Generation(g person.Generation) *PersonBuilder {
	b.rec.Generation = g
	return b
}

func (b *PersonBuilder) Child(id string) *PersonBuilder {
	b.rec.ChildID = id
	return b
}

func (b *PersonBuilder) Parents(father, mother string) *PersonBuilder {
	b.rec.FatherID, b.rec.MotherID = father, mother
	return b
}

// Build returns the record
func (b *PersonBuilder) Build() person.Record {
	return b.rec
}

// FullTree returns a complete ancestry of the given height in the parent-pair
// shape: 2^g persons in each generation g, every surname known.
// Person ids are "g<generation>-<index>".
func FullTree(height int) []person.Record {
	var records []person.Record
	for g := 0; g <= height; g++ {
		n := 1 << g
		for i := 0; i < n; i++ {
			b := Person(treeID(g, i), g).Surnames("S1-"+treeID(g, i), "S2-"+treeID(g, i))
			if g < height {
				b.Parents(treeID(g+1, 2*i), treeID(g+1, 2*i+1))
			}
			records = append(records, b.Build())
		}
	}
	return records
}

func treeID(g, i int) string {
	return "g" + strconv.Itoa(g) + "-" + strconv.Itoa(i)
}

// SampleCSV is a small edge-per-row export in the default column layout:
// a root, both parents (the father listed twice for two children) and one
// grandparent.
const SampleCSV = `id,generacion,sexo,nombre_1,nombre_2,apellido_1,apellido_2,fecha_nacimiento,fecha_muerte,ciudad_nacimiento,pais_nacimiento,ciudad_muerte,pais_muerte,hijo_id
L1AB-2CD,0,Hombre,Juan,,Pérez,Gómez,1990-05-01,No aplica,Bogotá,Colombia,No aplica,No aplica,
P1AB-3XY,1,Hombre,Carlos,,Pérez,Ruiz,1960-02-14,2001-07-30,Tunja,Colombia,Bogotá,Colombia,L1AB-2CD
P1AB-3XY,1,Hombre,Carlos,,Pérez,Ruiz,1960-02-14,2001-07-30,Tunja,Colombia,Bogotá,Colombia,S1AB-9QQ
M1AB-4ZZ,1,Mujer,Ana,,Gómez,Díaz,1962-09-03,,Bogotá,Colombia,,,L1AB-2CD
G1AB-5GG,2,Mujer,Rosa,,Ruiz,Lara,1931-01-01,1999-06-15,Madrid,España,Tunja,Colombia,P1AB-3XY
`

// WriteFile writes content to name inside a per-test temp dir and returns the path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.TrimLeft(content, "\n")), 0o644); err != nil {
		t.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}
