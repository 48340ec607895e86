package config

// Config represents the flowgen configuration. It can be loaded from
// .flowgen/config.yml with environment variable overrides; command-line
// flags always win over both.
type Config struct {
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Scan   ScanConfig   `yaml:"scan" mapstructure:"scan"`
}

// OutputConfig controls where generated manifests go when --to is not given
// on the command line.
type OutputConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"` // default destination directory; empty means stdout
}

// ScanConfig controls candidate file discovery defaults.
type ScanConfig struct {
	Recursive bool     `yaml:"recursive" mapstructure:"recursive"` // default for --recursive
	Exclude   []string `yaml:"exclude" mapstructure:"exclude"`     // glob patterns to skip
}

// Default returns a configuration with sensible defaults. Exclude is empty so
// that discovery is driven purely by the file suffix unless configured
// otherwise.
func Default() *Config {
	return &Config{}
}
