package config

// Config holds the ambient settings of a run. The file list and keep-count
// always come from the command line, never from here.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text", "json"

	// File, when set, receives a copy of the log stream with rotation.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // node_exporter textfile collector target, e.g. /var/lib/node_exporter/yabu.prom
	Job      string `yaml:"job"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Metrics: MetricsConfig{
			Job: "yabu-vacuum",
		},
	}
}
