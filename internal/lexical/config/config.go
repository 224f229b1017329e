// Package config loads the optional tool configuration file. The file is
// written in cue and validated against a closed schema before decoding.
package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// schema is the closed cue schema every config file must satisfy.
const schema = `
extensions?: [...string]
format?: "table" | "json"
showCleaned?: bool
logFile?: string
`

// Config controls the CLI's project scanning and output rendering.
type Config struct {
	// Extensions selects which files project mode scans.
	Extensions []string `json:"extensions"`
	// Format picks the report renderer: "table" or "json".
	Format string `json:"format"`
	// ShowCleaned prints the cleaned source before the report.
	ShowCleaned bool `json:"showCleaned"`
	// LogFile receives the JSON log stream when set.
	LogFile string `json:"logFile"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Extensions:  []string{"cpp", "h", "cc", "txt"},
		Format:      "table",
		ShowCleaned: true,
	}
}

// Load reads and validates a cue config file, layering it over Default().
// A path naming no file is not an error; it yields the defaults.
func Load(filePath string) (Config, error) {
	conf := Default()

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}
		return conf, fmt.Errorf("config file could not be read: %w", err)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString("close({" + schema + "})")
	if err := schemaValue.Err(); err != nil {
		return conf, fmt.Errorf("config schema is invalid: %w", err)
	}

	value := ctx.CompileBytes(content, cue.Filename(filePath))
	if err := value.Err(); err != nil {
		return conf, fmt.Errorf("config file could not be compiled: %w", err)
	}

	if err := schemaValue.Unify(value).Validate(); err != nil {
		return conf, fmt.Errorf("config file rejected by schema: %w", err)
	}

	if err := value.Decode(&conf); err != nil {
		return conf, fmt.Errorf("config file could not be decoded: %w", err)
	}

	return conf, nil
}
