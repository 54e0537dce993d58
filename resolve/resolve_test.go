package resolve

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/lineage/person"
)

func edgeRow(id, child string, gen int) person.Record {
	return person.Record{ID: id, ChildID: child, Generation: person.Known(gen)}
}

func keys(res *Resolution) []string {
	out := make([]string, 0, len(res.Nodes))
	for _, n := range res.Nodes {
		out = append(out, n.Key)
	}
	return out
}

func TestResolve_DisambiguatesRepeatedIDs(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		t.Run(fmt.Sprintf("%d rows", n), func(t *testing.T) {
			var records []person.Record
			want := []string{"X"}
			for i := 0; i < n; i++ {
				records = append(records, edgeRow("X", fmt.Sprintf("C%d", i), 1))
				if i > 0 {
					want = append(want, fmt.Sprintf("X%d", i+1))
				}
			}

			res := Resolve(records)
			assert.Equal(t, want, keys(res))
			require.Len(t, res.Persons, 1, "repeats never add persons")
			for _, key := range want {
				id, ok := res.Canonical(key)
				require.True(t, ok)
				assert.Equal(t, "X", id)
			}
			require.Len(t, res.Edges, n)
			assert.Equal(t, Edge{Parent: want[n-1], Child: fmt.Sprintf("C%d", n-1)}, res.Edges[n-1])
		})
	}
}

func TestResolve_DropsEmptyIDsAndDuplicates(t *testing.T) {
	res := Resolve([]person.Record{
		edgeRow("A", "B", 1),
		edgeRow("", "B", 1),
		edgeRow("A", "B", 1),
		edgeRow("A", "C", 1),
		edgeRow("B", "", 0),
		edgeRow("C", "", 0),
	})

	assert.Equal(t, []string{"A", "A2", "B", "C"}, keys(res))
	assert.Equal(t, 1, res.DroppedEmptyID)
	assert.Equal(t, 1, res.DroppedDuplicateRows)
	assert.Equal(t, []Edge{{"A", "B"}, {"A2", "C"}}, res.Edges)

	ids := make([]string, 0, len(res.Persons))
	for _, p := range res.Persons {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, ids)
}

func TestResolve_GeneratedKeyAvoidsRealIDs(t *testing.T) {
	res := Resolve([]person.Record{
		edgeRow("X", "A", 1),
		edgeRow("X", "B", 1),
		edgeRow("X", "C", 1),
		edgeRow("X2", "D", 1),
	})

	assert.Equal(t, []string{"X", "X3", "X4", "X2"}, keys(res))
	id, ok := res.Canonical("X2")
	require.True(t, ok)
	assert.Equal(t, "X2", id)
	id, _ = res.Canonical("X3")
	assert.Equal(t, "X", id)
}

func TestResolve_ParentPairShape(t *testing.T) {
	res := Resolve([]person.Record{
		{ID: "A", FatherID: "B", MotherID: "C", Generation: person.Known(0)},
		{ID: "B", Generation: person.Known(1)},
		{ID: "C", Generation: person.Known(1)},
		{ID: "A", FatherID: "B", MotherID: "C", Generation: person.Known(0)},
	})

	assert.Equal(t, []string{"A", "B", "C"}, keys(res))
	assert.Equal(t, 1, res.DroppedDuplicateRows)
	assert.Equal(t, []Edge{{"B", "A"}, {"C", "A"}}, res.Edges)
}

func TestResolve_DropsSelfLoops(t *testing.T) {
	res := Resolve([]person.Record{
		edgeRow("A", "A", 1),
		{ID: "B", FatherID: "B"},
		edgeRow("C", "D", 1),
		edgeRow("C", "C", 1),
	})

	assert.Equal(t, 3, res.DroppedSelfLoops)
	assert.Equal(t, []Edge{{"C", "D"}}, res.Edges)
	assert.True(t, res.HasKey("C2"), "the row still yields a node")
}

func TestResolve_Empty(t *testing.T) {
	res := Resolve(nil)
	assert.Empty(t, res.Nodes)
	assert.Empty(t, res.Edges)
	assert.Empty(t, res.Persons)

	_, ok := res.Canonical("X")
	assert.False(t, ok)
	_, ok = res.Node("X")
	assert.False(t, ok)
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	records := []person.Record{edgeRow("X", "A", 1), edgeRow("X", "B", 1)}
	before := append([]person.Record(nil), records...)

	first := Resolve(records)
	second := Resolve(records)

	assert.Equal(t, before, records)
	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Equal(t, first.Edges, second.Edges)
}
