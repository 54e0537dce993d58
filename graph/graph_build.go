package graph

import (
	"sort"

	"github.com/teranos/lineage/logger"
	"github.com/teranos/lineage/person"
	"github.com/teranos/lineage/resolve"
)

// Build converts a resolution into a graph with the given options
func Build(res *resolve.Resolution, opts Options) *Graph {
	return NewBuilder(opts, nil).Build(res)
}

// Build converts a resolution into a graph visualization structure.
// One node per resolution node, in resolution order. A link is kept only
// when both endpoints exist; repeated links collapse into one. Cycles are
// not detected, consumers lay out by level.
func (b *Builder) Build(res *resolve.Resolution) *Graph {
	graph := &Graph{
		Nodes: []Node{},
		Links: []Link{},
		Meta: Meta{
			Layout: Layout{
				Hierarchical:    true,
				Direction:       defaultDirection,
				SortMethod:      defaultSortMethod,
				LevelSeparation: defaultLevelSeparation,
				NodeSpacing:     defaultNodeSpacing,
				TreeSpacing:     defaultTreeSpacing,
			},
		},
	}
	if res == nil {
		graph.Meta.Categories = []CategoryInfo{}
		return graph
	}

	for _, n := range res.Nodes {
		node := b.buildNode(n)
		if node.Level > graph.Meta.Stats.MaxLevel {
			graph.Meta.Stats.MaxLevel = node.Level
		}
		graph.Nodes = append(graph.Nodes, node)
	}

	seen := make(map[Link]bool, len(res.Edges))
	for _, e := range res.Edges {
		if !res.HasKey(e.Parent) || !res.HasKey(e.Child) {
			graph.Meta.Stats.DanglingEdges++
			b.logger.Debugw("Dropping dangling edge", "parent", e.Parent, "child", e.Child)
			continue
		}
		link := Link{Source: e.Parent, Target: e.Child}
		if seen[link] {
			continue
		}
		seen[link] = true
		graph.Links = append(graph.Links, link)
	}

	graph.Meta.Stats.TotalNodes = len(graph.Nodes)
	graph.Meta.Stats.TotalEdges = len(graph.Links)
	graph.Meta.Categories = b.collectCategoryInfo(graph.Nodes)

	b.logger.Debugw("Built graph",
		logger.FieldNodes, graph.Meta.Stats.TotalNodes,
		logger.FieldEdges, graph.Meta.Stats.TotalEdges,
		"dangling_edges", graph.Meta.Stats.DanglingEdges,
	)
	return graph
}

func (b *Builder) buildNode(n resolve.Node) Node {
	rec := n.Record
	category := categoryOf(rec.Sex)
	token := linkToken(n.Key)

	return Node{
		ID:                 n.Key,
		PersonID:           n.CanonicalID,
		Label:              person.JoinNonEmpty(" ", rec.GivenName1, rec.GivenName2, rec.Surname1, rec.Surname2),
		Color:              b.opts.colorOf(category),
		Category:           category,
		Level:              rec.Generation.Level(),
		LinkToken:          token,
		URL:                linkURL(b.opts.LinkURL, token),
		GenerationDegraded: rec.Generation.Degraded,
	}
}

// collectCategoryInfo builds legend entries for the categories present,
// most common first.
func (b *Builder) collectCategoryInfo(nodes []Node) []CategoryInfo {
	counts := make(map[string]int)
	for _, node := range nodes {
		counts[node.Category]++
	}

	categories := make([]CategoryInfo, 0, len(counts))
	for category, count := range counts {
		categories = append(categories, CategoryInfo{
			Category: category,
			Label:    categoryLabels[category],
			Color:    b.opts.colorOf(category),
			Count:    count,
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Category < categories[j].Category
	})
	return categories
}
