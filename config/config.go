// Package config loads lineage configuration with viper.
//
// Sources, lowest to highest precedence: defaults, ~/.lineage/lineage.toml,
// the nearest lineage.toml walking up from the working directory, an
// explicit --config file, LINEAGE_* environment variables.
package config

// Config represents the lineage configuration
type Config struct {
	Data    DataConfig    `mapstructure:"data" toml:"data" json:"data" yaml:"data"`
	Columns ColumnsConfig `mapstructure:"columns" toml:"columns" json:"columns" yaml:"columns"`
	Sex     SexConfig     `mapstructure:"sex" toml:"sex" json:"sex" yaml:"sex"`
	Graph   GraphConfig   `mapstructure:"graph" toml:"graph" json:"graph" yaml:"graph"`
	Server  ServerConfig  `mapstructure:"server" toml:"server" json:"server" yaml:"server"`
	Log     LogConfig     `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// Dataset shapes
const (
	ShapeAuto     = "auto"     // detect from headers: child column wins over parent columns
	ShapeParents  = "parents"  // one row per person with father/mother ids
	ShapeChildren = "children" // one row per parent→child edge
)

// DataConfig configures the input table
type DataConfig struct {
	// CSV or XLSX file
	Path        string   `mapstructure:"path" toml:"path" json:"path" yaml:"path"`
	// XLSX sheet (empty = first sheet)
	Sheet       string   `mapstructure:"sheet" toml:"sheet" json:"sheet" yaml:"sheet"`
	// auto, parents, children
	Shape       string   `mapstructure:"shape" toml:"shape" json:"shape" yaml:"shape"`
	// "not applicable" literal
	Sentinel    string   `mapstructure:"sentinel" toml:"sentinel" json:"sentinel" yaml:"sentinel"`
	// Go time layouts tried before free-form parsing
	DateLayouts []string `mapstructure:"date_layouts" toml:"date_layouts" json:"date_layouts" yaml:"date_layouts"`
}

// ColumnsConfig maps logical columns to table headers
type ColumnsConfig struct {
	ID           string `mapstructure:"id" toml:"id" json:"id" yaml:"id"`
	Generation   string `mapstructure:"generation" toml:"generation" json:"generation" yaml:"generation"`
	Sex          string `mapstructure:"sex" toml:"sex" json:"sex" yaml:"sex"`
	GivenName1   string `mapstructure:"given_name_1" toml:"given_name_1" json:"given_name_1" yaml:"given_name_1"`
	GivenName2   string `mapstructure:"given_name_2" toml:"given_name_2" json:"given_name_2" yaml:"given_name_2"`
	Surname1     string `mapstructure:"surname_1" toml:"surname_1" json:"surname_1" yaml:"surname_1"`
	Surname2     string `mapstructure:"surname_2" toml:"surname_2" json:"surname_2" yaml:"surname_2"`
	BirthDate    string `mapstructure:"birth_date" toml:"birth_date" json:"birth_date" yaml:"birth_date"`
	DeathDate    string `mapstructure:"death_date" toml:"death_date" json:"death_date" yaml:"death_date"`
	BirthCity    string `mapstructure:"birth_city" toml:"birth_city" json:"birth_city" yaml:"birth_city"`
	BirthCountry string `mapstructure:"birth_country" toml:"birth_country" json:"birth_country" yaml:"birth_country"`
	DeathCity    string `mapstructure:"death_city" toml:"death_city" json:"death_city" yaml:"death_city"`
	DeathCountry string `mapstructure:"death_country" toml:"death_country" json:"death_country" yaml:"death_country"`
	Father       string `mapstructure:"father" toml:"father" json:"father" yaml:"father"`
	Mother       string `mapstructure:"mother" toml:"mother" json:"mother" yaml:"mother"`
	Child        string `mapstructure:"child" toml:"child" json:"child" yaml:"child"`
}

// SexConfig lists the cell values read as each sex (case-insensitive)
type SexConfig struct {
	Male   []string `mapstructure:"male" toml:"male" json:"male" yaml:"male"`
	Female []string `mapstructure:"female" toml:"female" json:"female" yaml:"female"`
}

// GraphConfig configures node presentation for the renderer
type GraphConfig struct {
	MaleColor    string `mapstructure:"male_color" toml:"male_color" json:"male_color" yaml:"male_color"`
	FemaleColor  string `mapstructure:"female_color" toml:"female_color" json:"female_color" yaml:"female_color"`
	UnknownColor string `mapstructure:"unknown_color" toml:"unknown_color" json:"unknown_color" yaml:"unknown_color"`
	// fmt template, %s = link token
	LinkURL      string `mapstructure:"link_url" toml:"link_url" json:"link_url" yaml:"link_url"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Port              int      `mapstructure:"port" toml:"port" json:"port" yaml:"port"`
	AllowedOrigins    []string `mapstructure:"allowed_origins" toml:"allowed_origins" json:"allowed_origins" yaml:"allowed_origins"`
	// 0 = unlimited
	RequestsPerSecond float64  `mapstructure:"requests_per_second" toml:"requests_per_second" json:"requests_per_second" yaml:"requests_per_second"`
	Burst             int      `mapstructure:"burst" toml:"burst" json:"burst" yaml:"burst"`
	// Reload the table when the file changes
	Watch             bool     `mapstructure:"watch" toml:"watch" json:"watch" yaml:"watch"`
	DebounceMS        int      `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms"`
}

// LogConfig configures logging output
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}
