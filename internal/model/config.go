package model

// Config holds gatherdb configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
}

// OutputConfig controls where snapshots are written
type OutputConfig struct {
	Dir string `yaml:"dir"` // Directory for snapshot files
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{
			Dir: ".",
		},
	}
}
