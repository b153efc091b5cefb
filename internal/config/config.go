package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Config struct {
	Listen  string  `yaml:"listen"`
	Logger  Logger  `yaml:"logger"`
	Storage Storage `yaml:"storage"`
	Judge   Judge   `yaml:"judge"`
	Ranking Ranking `yaml:"ranking"`
	Display Display `yaml:"display"`
	Admin   Admin   `yaml:"admin"`
	CORS    CORS    `yaml:"cors"`
}

type Logger struct {
	Level string `yaml:"level"`
}

type Storage struct {
	Database string `yaml:"database"`
}

// Judge configures the external judge platform's read API.
type Judge struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Ranking selects the leaderboard strategy: "penalty" ranks by solve count
// with cumulative time penalty as tie-break, "avgrank" ranks by average
// per-problem placement.
type Ranking struct {
	Strategy string `yaml:"strategy"`
}

// Display holds presentation-side settings. UTCOffsetMinutes is the fixed
// offset used to bucket problems into calendar dates (default 330 = UTC+5:30).
// A pointer so an explicit 0 (UTC) survives defaulting.
type Display struct {
	UTCOffsetMinutes *int `yaml:"utc_offset_minutes"`
}

type Admin struct {
	Enabled      bool   `yaml:"enabled"`
	Listen       string `yaml:"listen"`
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
	JWT          JWT    `yaml:"jwt"`
}

type JWT struct {
	Secret      string `yaml:"secret"`
	ExpireHours int    `yaml:"expire_hours"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.Storage.Database == "" {
		c.Storage.Database = "data/potd.db"
	}
	if c.Judge.BaseURL == "" {
		c.Judge.BaseURL = "https://codeforces.com/api"
	}
	if c.Judge.TimeoutSeconds <= 0 {
		c.Judge.TimeoutSeconds = 15
	}
	if c.Ranking.Strategy == "" {
		c.Ranking.Strategy = "penalty"
	}
	if c.Display.UTCOffsetMinutes == nil {
		offset := 330
		c.Display.UTCOffsetMinutes = &offset
	}
	if c.Admin.Listen == "" {
		c.Admin.Listen = ":8081"
	}
	if c.Admin.JWT.ExpireHours <= 0 {
		c.Admin.JWT.ExpireHours = 24
	}
}
