package config

// SettingsFile represents the structure of the optional vm settings file.
// The same schema is accepted as YAML and TOML.
type SettingsFile struct {
	Python  string     `yaml:"python" toml:"python"`
	Roots   []string   `yaml:"roots" toml:"roots"`
	Exclude ExcludeDTO `yaml:"exclude" toml:"exclude"`
}

// ExcludeDTO configures which directories list skips.
type ExcludeDTO struct {
	Match string   `yaml:"match" toml:"match"`
	Extra []string `yaml:"extra" toml:"extra"`
}
