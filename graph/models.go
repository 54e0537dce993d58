package graph

// Graph represents the complete ancestry graph for visualization
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Links []Link `json:"links" yaml:"links"`
	Meta  Meta   `json:"meta" yaml:"meta"`
}

// Node represents one person occurrence in the graph
type Node struct {
	ID                 string `json:"id" yaml:"id"`                     // Node key (raw id, or id+ordinal for repeats)
	PersonID           string `json:"person_id" yaml:"person_id"`       // Canonical person id
	Label              string `json:"label" yaml:"label"`               // Display name
	Color              string `json:"color" yaml:"color"`               // Hex color by sex
	Category           string `json:"category" yaml:"category"`         // male / female / unknown
	Level              int    `json:"level" yaml:"level"`               // Generation, 0 when unreadable
	LinkToken          string `json:"link_token" yaml:"link_token"`     // External record token
	URL                string `json:"url,omitempty" yaml:"url,omitempty"`
	GenerationDegraded bool   `json:"generation_degraded,omitempty" yaml:"generation_degraded,omitempty"`
}

// Link represents a parent→child relationship between nodes
type Link struct {
	Source string `json:"source" yaml:"source"` // Parent node ID
	Target string `json:"target" yaml:"target"` // Child node ID
}

// Meta contains metadata about the graph
type Meta struct {
	Stats      Stats          `json:"stats" yaml:"stats"`
	Layout     Layout         `json:"layout" yaml:"layout"`
	Categories []CategoryInfo `json:"categories" yaml:"categories"` // Legend entries present in this graph
}

// Layout carries hierarchical layout hints; consumers lay nodes out by level
type Layout struct {
	Hierarchical    bool   `json:"hierarchical" yaml:"hierarchical"`
	Direction       string `json:"direction" yaml:"direction"` // DU: ancestors above descendants
	SortMethod      string `json:"sort_method" yaml:"sort_method"`
	LevelSeparation int    `json:"level_separation" yaml:"level_separation"`
	NodeSpacing     int    `json:"node_spacing" yaml:"node_spacing"`
	TreeSpacing     int    `json:"tree_spacing" yaml:"tree_spacing"`
	Physics         bool   `json:"physics" yaml:"physics"`
}

// CategoryInfo describes a node category and its visual configuration
type CategoryInfo struct {
	Category string `json:"category" yaml:"category"`
	Label    string `json:"label" yaml:"label"`
	Color    string `json:"color" yaml:"color"`
	Count    int    `json:"count" yaml:"count"`
}

// Stats provides graph statistics
type Stats struct {
	TotalNodes    int `json:"total_nodes" yaml:"total_nodes"`
	TotalEdges    int `json:"total_edges" yaml:"total_edges"`
	DanglingEdges int `json:"dangling_edges,omitempty" yaml:"dangling_edges,omitempty"`
	MaxLevel      int `json:"max_level" yaml:"max_level"`
}
