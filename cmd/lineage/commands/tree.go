package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/lineage/dataset"
	"github.com/teranos/lineage/display"
	"github.com/teranos/lineage/graph"
)

// TreeCmd prints the ancestry graph
var TreeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the ancestry graph (nodes and parent→child links)",
	Long: `Build the ancestry graph from the person table.

Each row becomes a node keyed by its id; rows repeating an id get a
numbered key (X, X2, X3...). Links run parent→child and only join nodes
that exist. The json and yaml formats carry everything a renderer needs:
colors, levels, record URLs and layout hints.

Examples:
  lineage tree --data arbol.csv
  lineage tree --format json > graph.json`,
	RunE: runTree,
}

func init() {
	addFormatFlag(TreeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	return render(cmd,
		func(s *dataset.Session) (*graph.Graph, error) { return s.Graph(), nil },
		display.GraphTable,
	)
}
