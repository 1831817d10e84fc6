package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the site-level configuration loaded from matdoc.yaml.
type Config struct {
	Project struct {
		Roots   []string `yaml:"roots"`
		Exclude []string `yaml:"exclude"`
	} `yaml:"project"`
	Site struct {
		Title     string `yaml:"title"`
		OutputDir string `yaml:"output_dir"`
	} `yaml:"site"`
}

// Load reads the YAML config, layering .env and environment overrides on
// top. A missing config file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := &Config{}
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if len(cfg.Project.Roots) == 0 {
		cfg.Project.Roots = []string{"."}
	}
	if cfg.Site.OutputDir == "" {
		cfg.Site.OutputDir = "docs"
	}
	if cfg.Site.Title == "" {
		cfg.Site.Title = "Reference"
	}

	// 2. Override with environment variables if present
	if out := os.Getenv("MATDOC_OUTPUT"); out != "" {
		cfg.Site.OutputDir = out
	}
	if title := os.Getenv("MATDOC_TITLE"); title != "" {
		cfg.Site.Title = title
	}

	return cfg, nil
}
