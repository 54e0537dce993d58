package ingest

import (
	"strings"

	"github.com/teranos/lineage/config"
	"github.com/teranos/lineage/errors"
	"github.com/teranos/lineage/person"
)

// layout is a resolved header: column positions for each logical field (-1 = absent)
type layout struct {
	shape string

	id, generation, sex                int
	given1, given2, surname1, surname2 int
	birth, death                       int
	birthCity, birthCountry            int
	deathCity, deathCountry            int
	father, mother, child              int
}

func mapHeader(header []string, opts Options) (*layout, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if key == "" {
			continue
		}
		// First occurrence wins for duplicated headers
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	find := func(name string) int {
		if name == "" {
			return -1
		}
		if i, ok := index[normalizeHeader(name)]; ok {
			return i
		}
		return -1
	}

	c := opts.Columns
	l := &layout{
		id:           find(c.ID),
		generation:   find(c.Generation),
		sex:          find(c.Sex),
		given1:       find(c.GivenName1),
		given2:       find(c.GivenName2),
		surname1:     find(c.Surname1),
		surname2:     find(c.Surname2),
		birth:        find(c.BirthDate),
		death:        find(c.DeathDate),
		birthCity:    find(c.BirthCity),
		birthCountry: find(c.BirthCountry),
		deathCity:    find(c.DeathCity),
		deathCountry: find(c.DeathCountry),
		father:       find(c.Father),
		mother:       find(c.Mother),
		child:        find(c.Child),
	}

	required := []struct {
		column, header string
		pos            int
	}{
		{"id", c.ID, l.id},
		{"generation", c.Generation, l.generation},
		{"sex", c.Sex, l.sex},
	}
	for _, r := range required {
		if r.pos < 0 {
			return nil, errors.WrapMissingColumn(r.column, r.header)
		}
	}

	shape, err := detectShape(l, opts)
	if err != nil {
		return nil, err
	}
	l.shape = shape
	return l, nil
}

// detectShape picks the dataset shape. In auto mode a child column wins
// over parent columns.
func detectShape(l *layout, opts Options) (string, error) {
	hasParents := l.father >= 0 || l.mother >= 0

	switch opts.Shape {
	case config.ShapeChildren:
		if l.child < 0 {
			return "", errors.WrapMissingColumn("child", opts.Columns.Child)
		}
		return config.ShapeChildren, nil
	case config.ShapeParents:
		if !hasParents {
			return "", errors.WrapMissingColumn("father", opts.Columns.Father)
		}
		return config.ShapeParents, nil
	}

	if l.child >= 0 {
		return config.ShapeChildren, nil
	}
	if hasParents {
		return config.ShapeParents, nil
	}
	return "", errors.WithDetailf(
		errors.WrapMissingColumn("child", opts.Columns.Child),
		"no %q column and no %q/%q columns", opts.Columns.Child, opts.Columns.Father, opts.Columns.Mother,
	)
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

func cell(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

// record maps one data row; sourceRow is the 1-based row in the file
func (l *layout) record(row []string, sourceRow int, n *normalizer, stats *Stats) person.Record {
	rec := person.Record{
		Row:        sourceRow,
		ID:         n.ref(cell(row, l.id)),
		GivenName1: cell(row, l.given1),
		GivenName2: cell(row, l.given2),
		Surname1:   cell(row, l.surname1),
		Surname2:   cell(row, l.surname2),
		Sex:        n.sex(cell(row, l.sex)),

		Birth: n.date(cell(row, l.birth)),
		Death: n.date(cell(row, l.death)),

		BirthCity:    n.text(cell(row, l.birthCity)),
		BirthCountry: n.text(cell(row, l.birthCountry)),
		DeathCity:    n.text(cell(row, l.deathCity)),
		DeathCountry: n.text(cell(row, l.deathCountry)),

		Generation: person.ParseGeneration(cell(row, l.generation)),
	}

	switch l.shape {
	case config.ShapeChildren:
		rec.ChildID = n.ref(cell(row, l.child))
	case config.ShapeParents:
		rec.FatherID = n.ref(cell(row, l.father))
		rec.MotherID = n.ref(cell(row, l.mother))
	}

	if rec.Generation.Degraded {
		stats.DegradedGenerations++
	}
	if rec.Sex == person.SexUnknown {
		stats.UnknownSex++
	}
	for _, d := range []person.Date{rec.Birth, rec.Death} {
		if d.State == person.DateInvalid {
			stats.InvalidDates++
		}
	}
	return rec
}
