package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/lineage/analysis"
	"github.com/teranos/lineage/dataset"
	"github.com/teranos/lineage/display"
	"github.com/teranos/lineage/errors"
)

// GenerationsCmd reports generation completeness
var GenerationsCmd = &cobra.Command{
	Use:     "generations",
	Aliases: []string{"gen"},
	Short:   "Persons found per generation against the 2^n expected",
	Long: `Count the persons recorded in each generation and compare with the
2^n ancestors a complete tree holds. Rows with an unreadable generation
are left out.`,
	RunE: runGenerations,
}

// SurnamesCmd reports the weighted surname distribution
var SurnamesCmd = &cobra.Command{
	Use:   "surnames",
	Short: "Weighted surname inheritance",
	Long: `Distribute surname weight across generations.

Both surnames of the root weigh H+1, where H is the highest generation;
an ancestor in generation g passes on only their second surname, weighing
H-g+1. Shares are relative to the 2*(2^(H+1)-1) slots of a complete tree.`,
	RunE: runSurnames,
}

var surnameCountsCmd = &cobra.Command{
	Use:   "counts",
	Short: "Most common surnames across both surname columns",
	RunE:  runSurnameCounts,
}

// MissingCmd audits persons with incomplete data
var MissingCmd = &cobra.Command{
	Use:   "missing",
	Short: "Persons with empty or unreadable fields",
	Long: `List persons missing a surname, a birth or death date, or a birth or
death country. Cells holding the "not applicable" literal count as
answered.

Examples:
  lineage missing
  lineage missing --generation 3`,
	RunE: runMissing,
}

// AgesCmd reports ages at death
var AgesCmd = &cobra.Command{
	Use:   "ages",
	Short: "Ages at death",
	Long: `Compute whole years between birth and death for every person with both
dates known (days/365, rounded down).`,
	RunE: runAges,
}

// ReportCmd prints every analysis
var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Every analysis in one document",
	RunE:  runReport,
}

func init() {
	for _, cmd := range []*cobra.Command{GenerationsCmd, SurnamesCmd, surnameCountsCmd, MissingCmd, AgesCmd, ReportCmd} {
		addFormatFlag(cmd)
	}
	MissingCmd.Flags().IntP("generation", "g", 0, "Only list persons of this generation")
	SurnamesCmd.AddCommand(surnameCountsCmd)
}

func runGenerations(cmd *cobra.Command, args []string) error {
	return render(cmd,
		func(s *dataset.Session) ([]analysis.GenerationSummary, error) { return s.Generations(), nil },
		display.GenerationsTable,
	)
}

func runSurnames(cmd *cobra.Command, args []string) error {
	return render(cmd,
		func(s *dataset.Session) (analysis.SurnameDistribution, error) { return s.Surnames(), nil },
		display.SurnamesTable,
	)
}

func runSurnameCounts(cmd *cobra.Command, args []string) error {
	return render(cmd,
		func(s *dataset.Session) ([]analysis.Share, error) { return s.SurnameCounts(), nil },
		func(w io.Writer, shares []analysis.Share) error { return display.SharesTable(w, "Surname", shares) },
	)
}

func runMissing(cmd *cobra.Command, args []string) error {
	var filter analysis.MissingFilter
	if cmd.Flags().Changed("generation") {
		g, _ := cmd.Flags().GetInt("generation")
		if g < 0 {
			return errors.WrapInvalidRequest(errors.Newf("got %d", g), "--generation must not be negative")
		}
		filter.Generation = &g
	}
	return render(cmd,
		func(s *dataset.Session) (analysis.MissingReport, error) { return s.Missing(filter), nil },
		display.MissingTable,
	)
}

func runAges(cmd *cobra.Command, args []string) error {
	return render(cmd,
		func(s *dataset.Session) (analysis.AgeReport, error) { return s.Ages(), nil },
		display.AgesTable,
	)
}

func runReport(cmd *cobra.Command, args []string) error {
	return render(cmd,
		func(s *dataset.Session) (analysis.Report, error) { return s.Report(), nil },
		display.ReportTable,
	)
}
