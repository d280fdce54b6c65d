package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from codelens.yml.
type ProjectConfig struct {
	// DatabasePath is the KuzuDB directory. Defaults to .codelens/graph.db
	// under the working directory.
	DatabasePath string `yaml:"databasePath,omitempty"`

	// TargetDir is where repositories are cloned. Defaults to ./repos.
	TargetDir string `yaml:"targetDir,omitempty"`

	ExcludeDirs []string `yaml:"excludeDirs,omitempty"`

	// ExtraExternalModules extends the stdlib/third-party filter sets for
	// repositories that vendor well-known packages under their own roots.
	ExtraExternalModules []string `yaml:"extraExternalModules,omitempty"`

	GeminiModel string `yaml:"geminiModel,omitempty"`
	Concurrency int    `yaml:"concurrency,omitempty"`
	Verbose     bool   `yaml:"verbose,omitempty"`
}

// Load attempts to read codelens.yml or codelens.yaml from the given
// directory. Returns a config with defaults applied (not an error) if no
// config file exists. A .env file in the same directory is loaded into the
// environment first so API keys can live next to the config.
func Load(dir string) (*ProjectConfig, error) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg := &ProjectConfig{}
	for _, name := range []string{"codelens.yml", "codelens.yaml"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		break
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *ProjectConfig) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(".codelens", "graph.db")
	}
	if c.TargetDir == "" {
		c.TargetDir = "repos"
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.0-flash"
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 4
	}
}
