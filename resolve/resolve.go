// Package resolve maps raw person rows onto canonical identities and graph node keys.
//
// Exports come in two shapes. In the edge-per-row shape a person appears once
// per child, so the same id repeats; each repeat gets its own node key
// (X, X2, X3, ...) so that every parent→child edge survives, while counting
// always happens over canonical ids. In the parent-pair shape each row
// carries father and mother ids and a person appears once.
package resolve

import (
	"strconv"

	"github.com/teranos/lineage/logger"
	"github.com/teranos/lineage/person"
)

// Node is one graph vertex. Key is unique; CanonicalID is the person it stands for.
type Node struct {
	Key         string        `json:"key"`
	CanonicalID string        `json:"canonical_id"`
	Record      person.Record `json:"record"`
}

// Edge is a parent→child relation between node keys
type Edge struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
}

// Resolution is the result of identity resolution
type Resolution struct {
	Nodes   []Node          `json:"nodes"`
	Edges   []Edge          `json:"edges"`
	Persons []person.Record `json:"persons"`

	DroppedEmptyID       int `json:"dropped_empty_id"`
	DroppedDuplicateRows int `json:"dropped_duplicate_rows"`
	DroppedSelfLoops     int `json:"dropped_self_loops"`

	byKey map[string]int
}

// Canonical returns the canonical person id behind a node key
func (r *Resolution) Canonical(key string) (string, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return "", false
	}
	return r.Nodes[i].CanonicalID, true
}

// Node returns the node for a key
func (r *Resolution) Node(key string) (Node, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return Node{}, false
	}
	return r.Nodes[i], true
}

// HasKey reports whether key names a node
func (r *Resolution) HasKey(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

type rowKey struct {
	id, child string
}

// Resolve assigns node keys and canonical ids to the rows.
// It never fails: rows without an id, exact duplicate rows and self-loops
// are dropped and counted.
func Resolve(records []person.Record) *Resolution {
	log := logger.ComponentLogger("resolve")

	res := &Resolution{byKey: make(map[string]int, len(records))}

	// Every real id is reserved up front so generated keys never shadow one
	rawIDs := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.ID != "" {
			rawIDs[rec.ID] = true
		}
	}

	seenRows := make(map[rowKey]bool, len(records))
	occurrences := make(map[string]int, len(rawIDs))
	nextOrdinal := make(map[string]int, len(rawIDs))

	for _, rec := range records {
		if rec.ID == "" {
			res.DroppedEmptyID++
			continue
		}

		rk := rowKey{id: rec.ID, child: rec.ChildID}
		if seenRows[rk] {
			res.DroppedDuplicateRows++
			continue
		}
		seenRows[rk] = true

		key := rec.ID
		if occurrences[rec.ID] > 0 {
			key = nextKey(rec.ID, nextOrdinal, rawIDs, res.byKey)
		} else {
			res.Persons = append(res.Persons, rec)
		}
		occurrences[rec.ID]++

		res.byKey[key] = len(res.Nodes)
		res.Nodes = append(res.Nodes, Node{Key: key, CanonicalID: rec.ID, Record: rec})

		res.addEdge(key, rec.ChildID, rec.ID, rec.ChildID)
		res.addEdge(rec.FatherID, key, rec.FatherID, rec.ID)
		res.addEdge(rec.MotherID, key, rec.MotherID, rec.ID)
	}

	log.Debugw("Resolved identities",
		logger.FieldRows, len(records),
		logger.FieldNodes, len(res.Nodes),
		logger.FieldEdges, len(res.Edges),
		logger.FieldCount, len(res.Persons),
		"dropped_empty_id", res.DroppedEmptyID,
		"dropped_duplicate_rows", res.DroppedDuplicateRows,
		"dropped_self_loops", res.DroppedSelfLoops,
	)
	return res
}

// addEdge records parent→child unless either side is empty or both sides
// stand for the same person.
func (r *Resolution) addEdge(parent, child, parentID, childID string) {
	if parent == "" || child == "" {
		return
	}
	if parentID == childID {
		r.DroppedSelfLoops++
		return
	}
	r.Edges = append(r.Edges, Edge{Parent: parent, Child: child})
}

// nextKey returns id+n for the smallest unused ordinal n >= 2
func nextKey(id string, next map[string]int, rawIDs map[string]bool, taken map[string]int) string {
	n := next[id]
	if n < 2 {
		n = 2
	}
	for {
		candidate := id + strconv.Itoa(n)
		n++
		if rawIDs[candidate] {
			continue
		}
		if _, used := taken[candidate]; used {
			continue
		}
		next[id] = n
		return candidate
	}
}
