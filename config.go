package censor

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the serializable processor configuration.
//
//	general:
//	  output-format: json
//	encoder:
//	  mask-value: "[CENSORED]"
//	  exclude-patterns:
//	    - '\d{4}-\d{4}-\d{4}-\d{4}'
type Config struct {
	General General       `yaml:"general"`
	Encoder EncoderConfig `yaml:"encoder"`
}

// General holds settings that are not specific to an encoder.
type General struct {
	OutputFormat      Format `yaml:"output-format"`
	PrintConfigOnInit bool   `yaml:"print-config-on-init"`
}

// EncoderConfig holds masking and rendering settings.
type EncoderConfig struct {
	MaskValue            string   `yaml:"mask-value"`
	ExcludePatterns      []string `yaml:"exclude-patterns"`
	TimeLayout           string   `yaml:"time-layout"`
	DisplayStructName    bool     `yaml:"display-struct-name"`
	DisplayMapType       bool     `yaml:"display-map-type"`
	DisplayPointerSymbol bool     `yaml:"display-pointer-symbol"`
	UseJSONTagName       bool     `yaml:"use-json-tag-name"`
	MaxDepth             int      `yaml:"max-depth"`
}

// DefaultConfig returns the configuration New uses without options.
func DefaultConfig() Config {
	return defaultOptions().config()
}

// ParseConfig decodes a YAML document over DefaultConfig. Unknown keys are
// rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, newConfigError(ErrInvalidConfig, "", "", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration without compiling patterns.
func (c Config) Validate() error {
	if !IsValidFormat(c.General.OutputFormat) {
		return newConfigError(ErrInvalidFormat, "output-format", string(c.General.OutputFormat), nil)
	}
	if c.Encoder.MaskValue == "" {
		return newConfigError(ErrEmptyMaskValue, "mask-value", "", nil)
	}
	if len(c.Encoder.ExcludePatterns) > maxExcludePatterns {
		return newConfigError(ErrTooManyPatterns, "exclude-patterns", "", nil)
	}
	if c.Encoder.MaxDepth < 0 {
		return newConfigError(ErrInvalidConfig, "max-depth", "", nil)
	}
	return nil
}

const configBanner = `
   ___ ___ _ __  ___  ___  _ __
  / __/ _ \ '_ \/ __|/ _ \| '__|
 | (_|  __/ | | \__ \ (_) | |
  \___\___|_| |_|___/\___/|_|
`

// String renders the configuration as a banner followed by its YAML form.
func (c Config) String() string {
	var b strings.Builder
	b.WriteString(configBanner)
	b.WriteString("\n")

	out, err := yaml.Marshal(c)
	if err != nil {
		b.WriteString(err.Error())
		return b.String()
	}
	b.Write(out)
	return b.String()
}
