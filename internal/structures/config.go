package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type JournalConfig struct {
	MaxEntriesPerUser int `yaml:"maxEntriesPerUser"`
	MaxUsers          int `yaml:"maxUsers"`
}

type RetentionConfig struct {
	SweepInterval time.Duration `yaml:"sweepInterval" validate:"required|min:1"`
	Workers       int           `yaml:"workers"`
	ArchiveDir    string        `yaml:"archiveDir"`
	ArchiveTTL    time.Duration `yaml:"archiveTTL"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Journal     JournalConfig   `yaml:"journal"`
	Retention   RetentionConfig `yaml:"retention"`
	WebServer   Server          `yaml:"webServer"`
	Persistence Persistence     `yaml:"persistence"`
	Logger      LoggerConfig    `yaml:"logger"`
	Cache       CacheConfig     `yaml:"cache"`
	Metrics     MetricsConfig   `yaml:"metrics"`
}
