package graph

// Node categories
const (
	CategoryMale    = "male"
	CategoryFemale  = "female"
	CategoryUnknown = "unknown"
)

const (
	// Default node colors
	defaultMaleColor    = "#6D4C41" // Brown
	defaultFemaleColor  = "#66BB6A" // Green
	defaultUnknownColor = "#B0BEC5" // Gray

	// Hierarchical layout defaults
	defaultDirection       = "DU"
	defaultSortMethod      = "directed"
	defaultLevelSeparation = 150
	defaultNodeSpacing     = 300
	defaultTreeSpacing     = 300
)

var categoryLabels = map[string]string{
	CategoryMale:    "Male",
	CategoryFemale:  "Female",
	CategoryUnknown: "Unknown",
}
