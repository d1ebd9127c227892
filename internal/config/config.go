package config

// Config holds the full application configuration.
type Config struct {
	GapThreshold  float64
	OutputSuffix  string
	OutputExt     string
	MaxConcurrent int
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		GapThreshold:  5.0,
		OutputSuffix:  "_no_pauses",
		OutputExt:     ".tcx",
		MaxConcurrent: 4,
	}
}
