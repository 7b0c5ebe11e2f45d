package config

import (
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

// Config holds the toggles that change lexer/parser behavior across
// compile runs.
type Config struct {
	// AllowDotCommaAlias preserves original_source/lexer.c's
	// ScanToken bug where '.' and ',' both produce COMMA tokens
	// (spec.md §9 Open Question 1). Default is false: '.' produces
	// the distinct DOT token.
	AllowDotCommaAlias bool `yaml:"allow_dot_comma_alias"`

	// MaxIdentifierLength bounds identifier length the lexer will
	// accept before returning an ERROR token. 0 means unbounded.
	MaxIdentifierLength int `yaml:"max_identifier_length"`

	// TabWidth is the column width a tab character advances, used
	// only for diagnostic column reporting.
	TabWidth int `yaml:"tab_width"`
}

// Default returns the configuration used when no crom.yaml is found.
func Default() Config {
	return Config{
		AllowDotCommaAlias:  false,
		MaxIdentifierLength: 0,
		TabWidth:            4,
	}
}

// Load reads path and unmarshals it over Default(). A missing file is
// not an error: Default() is returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Annotatef(err, "reading config %q", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Annotatef(err, "parsing config %q", path)
	}
	return cfg, nil
}
