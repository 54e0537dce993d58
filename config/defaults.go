package config

import "github.com/spf13/viper"

// Default values that other packages reference directly
const (
	DefaultSentinel    = "No aplica"
	DefaultServerPort  = 8787
	DefaultDebounceMS  = 500
	DefaultMaleColor   = "#6D4C41"
	DefaultFemaleColor = "#66BB6A"
	DefaultOtherColor  = "#B0BEC5"
	DefaultLinkURL     = "https://www.familysearch.org/tree/person/details/%s"
)

// SetDefaults configures default values for all configuration options.
// Column defaults match the FamilySearch-derived export the tool was built for.
func SetDefaults(v *viper.Viper) {
	// Input table
	v.SetDefault("data.path", "data/arbol.csv")
	v.SetDefault("data.sheet", "")
	v.SetDefault("data.shape", ShapeAuto)
	v.SetDefault("data.sentinel", DefaultSentinel)
	v.SetDefault("data.date_layouts", []string{"2006-01-02", "02/01/2006", "2006-01-02 15:04:05"})

	// Column headers
	v.SetDefault("columns.id", "id")
	v.SetDefault("columns.generation", "generacion")
	v.SetDefault("columns.sex", "sexo")
	v.SetDefault("columns.given_name_1", "nombre_1")
	v.SetDefault("columns.given_name_2", "nombre_2")
	v.SetDefault("columns.surname_1", "apellido_1")
	v.SetDefault("columns.surname_2", "apellido_2")
	v.SetDefault("columns.birth_date", "fecha_nacimiento")
	v.SetDefault("columns.death_date", "fecha_muerte")
	v.SetDefault("columns.birth_city", "ciudad_nacimiento")
	v.SetDefault("columns.birth_country", "pais_nacimiento")
	v.SetDefault("columns.death_city", "ciudad_muerte")
	v.SetDefault("columns.death_country", "pais_muerte")
	v.SetDefault("columns.father", "padre_id")
	v.SetDefault("columns.mother", "madre_id")
	v.SetDefault("columns.child", "hijo_id")

	// Sex labels
	v.SetDefault("sex.male", []string{"Hombre", "M", "Male"})
	v.SetDefault("sex.female", []string{"Mujer", "F", "Female"})

	// Graph presentation
	v.SetDefault("graph.male_color", DefaultMaleColor)
	v.SetDefault("graph.female_color", DefaultFemaleColor)
	v.SetDefault("graph.unknown_color", DefaultOtherColor)
	v.SetDefault("graph.link_url", DefaultLinkURL)

	// HTTP API
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:8501", "http://127.0.0.1:8501"})
	v.SetDefault("server.requests_per_second", 20.0)
	v.SetDefault("server.burst", 40)
	v.SetDefault("server.watch", false)
	v.SetDefault("server.debounce_ms", DefaultDebounceMS)

	// Logging
	v.SetDefault("log.json", false)
}

// Default returns a Config populated only from defaults
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always decode; a failure here is a programming error
		panic(err)
	}
	return cfg
}
