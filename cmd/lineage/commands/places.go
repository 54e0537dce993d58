package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/lineage/analysis"
	"github.com/teranos/lineage/dataset"
	"github.com/teranos/lineage/display"
)

// PlacesCmd groups the place summaries
var PlacesCmd = &cobra.Command{
	Use:   "places",
	Short: "Birth and death places",
}

var placesBirthsCmd = &cobra.Command{
	Use:   "births",
	Short: "Countries and cities of birth with their shares",
	RunE:  runPlacesBirths,
}

var placesDeathsCmd = &cobra.Command{
	Use:   "deaths",
	Short: "Cities of death, or the persons who died in one city",
	Long: `Without --city, list every known city of death. With --city, list the
persons who died there.

Examples:
  lineage places deaths
  lineage places deaths --city Bogotá`,
	RunE: runPlacesDeaths,
}

// birthPlaces is the document printed by places births
type birthPlaces struct {
	Countries []analysis.Share `json:"countries" yaml:"countries"`
	Cities    []analysis.Share `json:"cities" yaml:"cities"`
}

// deathPlaces is the document printed by places deaths
type deathPlaces struct {
	Cities []string               `json:"cities" yaml:"cities"`
	City   string                 `json:"city,omitempty" yaml:"city,omitempty"`
	Deaths []analysis.DeathRecord `json:"deaths,omitempty" yaml:"deaths,omitempty"`
}

func init() {
	addFormatFlag(placesBirthsCmd)
	addFormatFlag(placesDeathsCmd)
	placesDeathsCmd.Flags().String("city", "", "List the persons who died in this city")

	PlacesCmd.AddCommand(placesBirthsCmd)
	PlacesCmd.AddCommand(placesDeathsCmd)
}

func runPlacesBirths(cmd *cobra.Command, args []string) error {
	return render(cmd,
		func(s *dataset.Session) (birthPlaces, error) {
			persons := s.Persons()
			return birthPlaces{
				Countries: analysis.BirthCountries(persons),
				Cities:    analysis.BirthCities(persons),
			}, nil
		},
		func(w io.Writer, p birthPlaces) error {
			if err := display.SharesTable(w, "Country", p.Countries); err != nil {
				return err
			}
			return display.SharesTable(w, "City", p.Cities)
		},
	)
}

func runPlacesDeaths(cmd *cobra.Command, args []string) error {
	city, _ := cmd.Flags().GetString("city")
	city = strings.TrimSpace(city)

	return render(cmd,
		func(s *dataset.Session) (deathPlaces, error) {
			persons := s.Persons()
			p := deathPlaces{Cities: analysis.DeathCities(persons)}
			if city != "" {
				p.City = city
				p.Deaths = analysis.DeathsIn(persons, city)
			}
			return p, nil
		},
		func(w io.Writer, p deathPlaces) error {
			if p.City == "" {
				return display.DeathCitiesTable(w, p.Cities)
			}
			if len(p.Deaths) == 0 {
				_, err := fmt.Fprintln(w, pterm.Yellow("Nobody in the table died in "+p.City))
				return err
			}
			return display.DeathsTable(w, p.Deaths)
		},
	)
}
