package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/lineage/analysis"
	"github.com/teranos/lineage/config"
	"github.com/teranos/lineage/errors"
	"github.com/teranos/lineage/graph"
	lineagetest "github.com/teranos/lineage/internal/testing"
)

func init() {
	pterm.DisableColor()
}

// execute runs args against a fresh root carrying the global flags
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)

	root := &cobra.Command{Use: "lineage", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", "", "")
	root.PersistentFlags().String("data", "", "")
	root.AddCommand(TreeCmd, GenerationsCmd, SurnamesCmd, MissingCmd, AgesCmd, PlacesCmd, ReportCmd, ConfigCmd, VersionCmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func sampleTable(t *testing.T) string {
	return lineagetest.WriteFile(t, "arbol.csv", lineagetest.SampleCSV)
}

func TestGenerationsCommand_JSON(t *testing.T) {
	out, err := execute(t, "generations", "--data", sampleTable(t), "--format", "json")
	require.NoError(t, err)

	var gens []analysis.GenerationSummary
	require.NoError(t, json.Unmarshal([]byte(out), &gens))
	require.Len(t, gens, 3)
	assert.Equal(t, 2, gens[1].Count)
}

func TestGenerationsCommand_Table(t *testing.T) {
	out, err := execute(t, "generations", "--data", sampleTable(t), "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Expected")
	assert.Contains(t, out, "missing 3")
}

func TestTreeCommand_YAML(t *testing.T) {
	out, err := execute(t, "tree", "--data", sampleTable(t), "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "nodes:")
	assert.Contains(t, out, "P1AB-3XY2")
}

func TestTreeCommand_JSON(t *testing.T) {
	out, err := execute(t, "tree", "--data", sampleTable(t), "--format", "json")
	require.NoError(t, err)

	var g graph.Graph
	require.NoError(t, json.Unmarshal([]byte(out), &g))
	assert.Len(t, g.Nodes, 5)
}

func TestMissingCommand_Generation(t *testing.T) {
	out, err := execute(t, "missing", "--data", sampleTable(t), "--generation", "1", "--format", "json")
	require.NoError(t, err)

	var report analysis.MissingReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Equal(t, 1, report.Total)
	assert.Equal(t, "M1AB-4ZZ", report.Records[0].ID)
}

func TestMissingCommand_NegativeGeneration(t *testing.T) {
	_, err := execute(t, "missing", "--data", sampleTable(t), "--generation=-1", "--format", "json")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
	assert.Contains(t, err.Error(), "got -1")
}

func TestSurnameCountsCommand(t *testing.T) {
	out, err := execute(t, "surnames", "counts", "--data", sampleTable(t), "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Pérez")
}

func TestPlacesDeathsCommand(t *testing.T) {
	out, err := execute(t, "places", "deaths", "--data", sampleTable(t), "--city", "Tunja", "--format", "json")
	require.NoError(t, err)

	var p deathPlaces
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	require.Len(t, p.Deaths, 1)
	assert.Equal(t, "G1AB-5GG", p.Deaths[0].ID)
}

func TestCommand_TableNotFound(t *testing.T) {
	_, err := execute(t, "ages", "--data", "does/not/exist.csv", "--format", "table")
	require.Error(t, err)
}

func TestCommand_BadFormat(t *testing.T) {
	_, err := execute(t, "report", "--data", sampleTable(t), "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRequestError(err))
}

func TestCommand_MissingColumn(t *testing.T) {
	path := lineagetest.WriteFile(t, "bad.csv", "nombre\nAna\n")
	_, err := execute(t, "ages", "--data", path, "--format", "table")
	require.Error(t, err)
	assert.True(t, errors.IsMissingColumnError(err))
}

func TestConfigGetCommand(t *testing.T) {
	out, err := execute(t, "config", "get", "data.sentinel")
	require.NoError(t, err)
	assert.Contains(t, out, config.DefaultSentinel)

	_, err = execute(t, "config", "get", "nope.nothing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestConfigShowCommand(t *testing.T) {
	out, err := execute(t, "config", "show", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[columns]")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lineage")
}
