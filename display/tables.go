package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/lineage/analysis"
	"github.com/teranos/lineage/graph"
	"github.com/teranos/lineage/person"
)

// renderTable writes a header row plus data rows as a pterm table
func renderTable(w io.Writer, header []string, rows [][]string) error {
	data := pterm.TableData{header}
	data = append(data, rows...)

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, pterm.Bold.Sprint(title))
}

func percent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

func generationLabel(g person.Generation) string {
	if g.Degraded {
		return "?"
	}
	return strconv.Itoa(g.Value)
}

// GenerationsTable renders generation completeness
func GenerationsTable(w io.Writer, summaries []analysis.GenerationSummary) error {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		status := pterm.Green(fmt.Sprintf("complete (%d)", s.Count))
		if !s.Complete {
			status = pterm.Yellow(fmt.Sprintf("missing %d", s.Deficit))
		}
		year := "no data"
		if s.AverageBirthYear != nil {
			year = fmt.Sprintf("~%.0f", *s.AverageBirthYear)
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Generation),
			strconv.Itoa(s.Count),
			strconv.FormatInt(s.Expected, 10),
			status,
			year,
		})
	}
	return renderTable(w, []string{"Generation", "Found", "Expected", "Status", "Avg. birth year"}, rows)
}

// SurnamesTable renders the weighted surname distribution
func SurnamesTable(w io.Writer, dist analysis.SurnameDistribution) error {
	rows := make([][]string, 0, len(dist.Weights))
	for _, sw := range dist.Weights {
		rows = append(rows, []string{percent(sw.Percentage), sw.Surname, strconv.FormatInt(sw.Weight, 10)})
	}
	if err := renderTable(w, []string{"Share", "Surname", "Weight"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s %d generations, %d surname slots\n",
		pterm.Gray("→"), dist.HighestGeneration+1, dist.TotalSlots)
	return err
}

// SharesTable renders name/count/percentage shares under a column title
func SharesTable(w io.Writer, title string, shares []analysis.Share) error {
	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{s.Name, strconv.Itoa(s.Count), percent(s.Percentage)})
	}
	return renderTable(w, []string{title, "Count", "Share"}, rows)
}

// MissingTable renders persons with incomplete data
func MissingTable(w io.Writer, report analysis.MissingReport) error {
	fmt.Fprintf(w, "Total: %s persons with at least one empty field\n", pterm.Bold.Sprint(report.Total))

	rows := make([][]string, 0, len(report.Records))
	for _, r := range report.Records {
		rows = append(rows, []string{
			r.Name,
			generationLabel(r.Generation),
			r.BirthDate,
			r.BirthPlace,
			r.DeathDate,
			r.DeathPlace,
			strings.Join(r.MissingFields, ", "),
			r.ID,
		})
	}
	return renderTable(w, []string{"Name", "Gen", "Birth date", "Birth place", "Death date", "Death place", "Missing", "ID"}, rows)
}

// AgesTable renders the age-at-death histogram and mean
func AgesTable(w io.Writer, report analysis.AgeReport) error {
	mean := "no data"
	if report.Mean != nil {
		mean = fmt.Sprintf("%.0f", *report.Mean)
	}
	heading(w, "Ages at death - mean "+mean)

	rows := make([][]string, 0, len(report.Distribution))
	for _, c := range report.Distribution {
		rows = append(rows, []string{strconv.Itoa(c.Age), strconv.Itoa(c.Count), strings.Repeat("█", c.Count)})
	}
	return renderTable(w, []string{"Age", "Persons", ""}, rows)
}

// DeathCitiesTable lists the known death cities
func DeathCitiesTable(w io.Writer, cities []string) error {
	rows := make([][]string, 0, len(cities))
	for _, c := range cities {
		rows = append(rows, []string{c})
	}
	return renderTable(w, []string{"Death city"}, rows)
}

// DeathsTable lists persons who died in one city
func DeathsTable(w io.Writer, deaths []analysis.DeathRecord) error {
	rows := make([][]string, 0, len(deaths))
	for _, d := range deaths {
		rows = append(rows, []string{d.Name, d.DeathDate, d.ID})
	}
	return renderTable(w, []string{"Name", "Death date", "ID"}, rows)
}

// GraphTable renders graph nodes
func GraphTable(w io.Writer, g *graph.Graph) error {
	rows := make([][]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		level := strconv.Itoa(n.Level)
		if n.GenerationDegraded {
			level += "?"
		}
		rows = append(rows, []string{n.ID, n.Label, n.Category, level, n.URL})
	}
	if err := renderTable(w, []string{"Node", "Name", "Sex", "Level", "Record"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s %d nodes, %d links\n", pterm.Gray("→"), g.Meta.Stats.TotalNodes, g.Meta.Stats.TotalEdges)
	return err
}

// ReportTable renders every section of a report
func ReportTable(w io.Writer, r analysis.Report) error {
	sections := []struct {
		title  string
		render func() error
	}{
		{"Generation sizes", func() error { return GenerationsTable(w, r.Generations) }},
		{"Surname inheritance", func() error { return SurnamesTable(w, r.Surnames) }},
		{"Most common surnames", func() error { return SharesTable(w, "Surname", r.SurnameCounts) }},
		{"Countries of birth", func() error { return SharesTable(w, "Country", r.BirthCountries) }},
		{"Cities of birth", func() error { return SharesTable(w, "City", r.BirthCities) }},
		{"Places of death", func() error { return DeathCitiesTable(w, r.DeathCities) }},
		{"Missing data", func() error { return MissingTable(w, r.Missing) }},
		{"Ages", func() error { return AgesTable(w, r.Ages) }},
	}

	fmt.Fprintf(w, "%d persons\n\n", r.Persons)
	for _, s := range sections {
		heading(w, s.title)
		if err := s.render(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}
