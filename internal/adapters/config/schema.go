package config

// Snapfile represents the structure of the snap.yaml configuration file.
// Pointer fields distinguish "not set" from an explicit false.
type Snapfile struct {
	Project string      `yaml:"project"`
	Dir     string      `yaml:"dir"`
	Sort    *bool       `yaml:"sort"`
	Hash    *bool       `yaml:"hash"`
	Hidden  *bool       `yaml:"hidden"`
	Ignore  []string    `yaml:"ignore"`
	Logs    LogsDTO     `yaml:"logs"`
	Index   string      `yaml:"index"`
	Publish *PublishDTO `yaml:"publish"`
}

// LogsDTO configures the execution log locations.
type LogsDTO struct {
	Timing  string `yaml:"timing"`
	Records string `yaml:"records"`
}

// PublishDTO configures committing the artifacts after a run.
type PublishDTO struct {
	Enabled bool   `yaml:"enabled"`
	Push    bool   `yaml:"push"`
	Author  string `yaml:"author"`
	Email   string `yaml:"email"`
}
