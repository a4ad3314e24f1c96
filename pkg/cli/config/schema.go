package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	domainConfig "github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Schema locates the resource schema file
type Schema struct {
	path string
}

func (x *Schema) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "schema",
			Usage:       "Resource schema file (.toml, .yaml or .yml); the built-in schema is used when omitted",
			Sources:     cli.EnvVars("JEUMALA_SCHEMA"),
			Destination: &x.path,
		},
	}
}

func (x Schema) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", x.path))
}

// Configure loads and validates the schema
func (x *Schema) Configure() (*domainConfig.Schema, error) {
	if x.path == "" {
		return domainConfig.DefaultSchema(), nil
	}
	return LoadSchema(x.path)
}

// LoadSchema reads a schema file, choosing the decoder by extension
func LoadSchema(path string) (*domainConfig.Schema, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read schema file", goerr.V(ConfigPathKey, path))
	}

	var schema domainConfig.Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &schema); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML schema", goerr.V(ConfigPathKey, path))
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &schema); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML schema", goerr.V(ConfigPathKey, path))
		}
	default:
		return nil, goerr.Wrap(ErrUnsupportedFormat, "cannot load schema", goerr.V(ConfigPathKey, path))
	}

	if err := schema.Validate(); err != nil {
		return nil, goerr.Wrap(err, "schema validation failed", goerr.V(ConfigPathKey, path))
	}
	return &schema, nil
}
