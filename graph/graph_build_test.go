package graph

import (
	"reflect"
	"testing"

	"github.com/teranos/lineage/person"
	"github.com/teranos/lineage/resolve"
)

func rec(id, child string, sex person.Sex, gen person.Generation) person.Record {
	return person.Record{ID: id, ChildID: child, Sex: sex, Generation: gen, GivenName1: "Name", Surname1: id}
}

// TestBuildEmpty tests an empty resolution
func TestBuildEmpty(t *testing.T) {
	graph := Build(resolve.Resolve(nil), DefaultOptions())

	if len(graph.Nodes) != 0 {
		t.Errorf("Expected 0 nodes, got %d", len(graph.Nodes))
	}
	if len(graph.Links) != 0 {
		t.Errorf("Expected 0 links, got %d", len(graph.Links))
	}
	if graph.Meta.Stats.TotalNodes != 0 || graph.Meta.Stats.TotalEdges != 0 {
		t.Errorf("Meta stats = %+v, want zero", graph.Meta.Stats)
	}
	if !graph.Meta.Layout.Hierarchical || graph.Meta.Layout.Direction != "DU" {
		t.Errorf("Layout = %+v, want hierarchical DU", graph.Meta.Layout)
	}
}

// TestBuildNilResolution tests that a nil resolution yields an empty graph
func TestBuildNilResolution(t *testing.T) {
	graph := Build(nil, DefaultOptions())
	if graph.Nodes == nil || graph.Links == nil || graph.Meta.Categories == nil {
		t.Error("Expected non-nil empty slices for JSON output")
	}
}

// TestBuildDropsDanglingEdges tests that an edge to an unknown person is dropped
func TestBuildDropsDanglingEdges(t *testing.T) {
	res := resolve.Resolve([]person.Record{
		{ID: "A", Generation: person.Known(1)},
		{ID: "B", Generation: person.Known(1)},
		{ID: "A", ChildID: "C", Generation: person.Known(1)},
	})

	graph := Build(res, DefaultOptions())

	var dangling int
	for _, l := range graph.Links {
		if l.Target == "C" {
			dangling++
		}
	}
	if dangling != 0 {
		t.Errorf("Expected edge to C to be dropped, got %d", dangling)
	}
	if graph.Meta.Stats.DanglingEdges != 1 {
		t.Errorf("DanglingEdges = %d, want 1", graph.Meta.Stats.DanglingEdges)
	}
}

// TestBuildTwoNodesNoEdges tests nodes {A, B} with an edge A→C: two nodes, zero edges
func TestBuildTwoNodesNoEdges(t *testing.T) {
	res := resolve.Resolve([]person.Record{
		{ID: "A", FatherID: "", Generation: person.Known(0)},
		{ID: "B", Generation: person.Known(1)},
	})
	res.Edges = append(res.Edges, resolve.Edge{Parent: "A", Child: "C"})

	graph := Build(res, DefaultOptions())
	if len(graph.Nodes) != 2 {
		t.Errorf("Expected 2 nodes, got %d", len(graph.Nodes))
	}
	if len(graph.Links) != 0 {
		t.Errorf("Expected 0 links, got %d", len(graph.Links))
	}
}

// TestBuildCollapsesDuplicateLinks tests that repeated edges become one link
func TestBuildCollapsesDuplicateLinks(t *testing.T) {
	res := resolve.Resolve([]person.Record{
		{ID: "A", FatherID: "B", MotherID: "B"},
		{ID: "B"},
	})

	graph := Build(res, DefaultOptions())
	if len(graph.Links) != 1 {
		t.Fatalf("Expected 1 link, got %d", len(graph.Links))
	}
	if graph.Links[0] != (Link{Source: "B", Target: "A"}) {
		t.Errorf("Link = %+v, want B→A", graph.Links[0])
	}
}

// TestBuildNodeAttributes tests labels, colors, levels and record links
func TestBuildNodeAttributes(t *testing.T) {
	res := resolve.Resolve([]person.Record{
		{ID: "L1AB-2CD", GivenName1: "Ana", GivenName2: "", Surname1: "Ruiz", Surname2: "Paz", Sex: person.SexFemale, Generation: person.Known(2), ChildID: "K1"},
		{ID: "L1AB-2CD", Sex: person.SexFemale, Generation: person.Known(2), ChildID: "K2"},
		{ID: "abc", Sex: person.SexMale, Generation: person.ParseGeneration("x")},
		{ID: "Q", Sex: person.SexUnknown, Generation: person.Known(1)},
	})

	graph := Build(res, DefaultOptions())
	if len(graph.Nodes) != 4 {
		t.Fatalf("Expected 4 nodes, got %d", len(graph.Nodes))
	}

	first := graph.Nodes[0]
	if first.Label != "Ana Ruiz Paz" {
		t.Errorf("Label = %q, want %q", first.Label, "Ana Ruiz Paz")
	}
	if first.Color != "#66BB6A" || first.Category != CategoryFemale {
		t.Errorf("Female node color/category = %s/%s", first.Color, first.Category)
	}
	if first.Level != 2 {
		t.Errorf("Level = %d, want 2", first.Level)
	}
	if first.URL != "https://www.familysearch.org/tree/person/details/L1AB-2CD" {
		t.Errorf("URL = %q", first.URL)
	}

	repeat := graph.Nodes[1]
	if repeat.ID != "L1AB-2CD2" || repeat.LinkToken != "L1AB-2CD" || repeat.PersonID != "L1AB-2CD" {
		t.Errorf("Repeat node = %+v, want key L1AB-2CD2 with token L1AB-2CD", repeat)
	}

	degraded := graph.Nodes[2]
	if degraded.Level != 0 || !degraded.GenerationDegraded {
		t.Errorf("Degraded node level=%d degraded=%v, want 0/true", degraded.Level, degraded.GenerationDegraded)
	}
	if degraded.LinkToken != "abc" {
		t.Errorf("LinkToken = %q, want raw key", degraded.LinkToken)
	}
	if degraded.Color != "#6D4C41" {
		t.Errorf("Male color = %q", degraded.Color)
	}

	if graph.Nodes[3].Color != "#B0BEC5" {
		t.Errorf("Unknown color = %q", graph.Nodes[3].Color)
	}
	if graph.Meta.Stats.MaxLevel != 2 {
		t.Errorf("MaxLevel = %d, want 2", graph.Meta.Stats.MaxLevel)
	}
	if len(graph.Meta.Categories) != 3 || graph.Meta.Categories[0].Category != CategoryFemale {
		t.Errorf("Categories = %+v, want female first", graph.Meta.Categories)
	}
}

// TestBuildNodeOrderFollowsResolution tests deterministic node and link order
func TestBuildNodeOrderFollowsResolution(t *testing.T) {
	res := resolve.Resolve([]person.Record{
		rec("Z", "Y", person.SexMale, person.Known(2)),
		rec("Y", "X", person.SexMale, person.Known(1)),
		rec("X", "", person.SexFemale, person.Known(0)),
	})

	graph := Build(res, DefaultOptions())
	want := []string{"Z", "Y", "X"}
	for i, id := range want {
		if graph.Nodes[i].ID != id {
			t.Errorf("Nodes[%d] = %s, want %s", i, graph.Nodes[i].ID, id)
		}
	}
	if len(graph.Links) != 2 || graph.Links[0].Source != "Z" || graph.Links[1].Source != "Y" {
		t.Errorf("Links = %+v, want insertion order", graph.Links)
	}
}

// TestBuildRepeatable tests that building twice from one resolution gives equal graphs
func TestBuildRepeatable(t *testing.T) {
	res := resolve.Resolve([]person.Record{
		rec("Z", "Y", person.SexMale, person.Known(2)),
		rec("Y", "X", person.SexFemale, person.Known(1)),
		rec("X", "", person.SexFemale, person.Known(0)),
	})

	first := Build(res, DefaultOptions())
	second := Build(res, DefaultOptions())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Build not repeatable:\n%+v\n%+v", first, second)
	}
}

// TestCustomOptions tests custom colors and disabled record links
func TestCustomOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.MaleColor = "#000000"
	opts.LinkURL = ""

	res := resolve.Resolve([]person.Record{{ID: "A", Sex: person.SexMale}})
	node := Build(res, opts).Nodes[0]
	if node.Color != "#000000" {
		t.Errorf("Color = %q, want custom", node.Color)
	}
	if node.URL != "" {
		t.Errorf("URL = %q, want empty when links are disabled", node.URL)
	}
}
