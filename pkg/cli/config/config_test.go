package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/geunaseh/jeumala/pkg/cli/config"
	domainConfig "github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

// parseFlags runs a throwaway command so that flag destinations are filled
// the same way the real commands fill them
func parseFlags(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: func(context.Context, *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...))).Required()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600)).Required()
	return path
}

func TestLoadSchema(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		path := writeFile(t, "schema.toml", `
[[resources]]
title = "Notices"
endpoint = "notices"
public = true
slugField = "slug"

  [[resources.fields]]
  name = "title"
  label = "Title"
  kind = "text"
  required = true

  [[resources.fields]]
  name = "slug"
  label = "Slug"
  kind = "text"
`)
		schema, err := config.LoadSchema(path)
		gt.NoError(t, err).Required()
		gt.Array(t, schema.Resources).Length(1)
		gt.Value(t, schema.Resources[0].Endpoint.String()).Equal("notices")
		gt.Bool(t, schema.Resources[0].Public).True()
		gt.Array(t, schema.Resources[0].Fields).Length(2)
		gt.Bool(t, schema.Resources[0].Fields[0].Required).True()
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "schema.yml", `
resources:
  - title: Notices
    endpoint: notices
    fields:
      - name: level
        label: Level
        kind: select
        options:
          - value: info
            label: Info
`)
		schema, err := config.LoadSchema(path)
		gt.NoError(t, err).Required()
		gt.Array(t, schema.Resources[0].Fields[0].Options).Length(1)
		gt.Value(t, schema.Resources[0].Fields[0].Options[0].Value).Equal("info")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "schema.json", `{}`)
		_, err := config.LoadSchema(path)
		gt.Error(t, err).Is(config.ErrUnsupportedFormat)
	})

	t.Run("invalid schema", func(t *testing.T) {
		path := writeFile(t, "schema.toml", `
[[resources]]
title = "Notices"
endpoint = "notices"

  [[resources.fields]]
  name = "title"
  label = "Title"
  kind = "text"

  [[resources.fields]]
  name = "title"
  label = "Title again"
  kind = "text"
`)
		_, err := config.LoadSchema(path)
		gt.Error(t, err).Is(domainConfig.ErrDuplicateField)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadSchema(filepath.Join(t.TempDir(), "absent.toml"))
		gt.Error(t, err)
	})
}

func TestSchemaDefault(t *testing.T) {
	var cfg config.Schema
	parseFlags(t, cfg.Flags())

	schema, err := cfg.Configure()
	gt.NoError(t, err).Required()
	gt.Array(t, schema.Resources).Length(len(domainConfig.DefaultSchema().Resources))
}

func TestRepository(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		var cfg config.Repository
		parseFlags(t, cfg.Flags(), "--repository-backend", "memory")

		repo, closer, err := cfg.Configure(context.Background())
		gt.NoError(t, err).Required()
		defer closer()
		gt.Value(t, repo).NotNil()
		gt.Value(t, cfg.Backend()).Equal(config.BackendMemory)
	})

	t.Run("sqlite", func(t *testing.T) {
		var cfg config.Repository
		dbPath := filepath.Join(t.TempDir(), "test.db")
		parseFlags(t, cfg.Flags(), "--sqlite-path", dbPath)

		repo, closer, err := cfg.Configure(context.Background())
		gt.NoError(t, err).Required()
		defer closer()
		gt.Value(t, repo).NotNil()
		gt.Value(t, cfg.Backend()).Equal(config.BackendSQLite)
	})

	t.Run("unknown backend", func(t *testing.T) {
		var cfg config.Repository
		parseFlags(t, cfg.Flags(), "--repository-backend", "cassandra")

		_, _, err := cfg.Configure(context.Background())
		gt.Error(t, err).Is(config.ErrInvalidBackend)
	})

	t.Run("firestore without project", func(t *testing.T) {
		var cfg config.Repository
		parseFlags(t, cfg.Flags(), "--repository-backend", "firestore")

		_, _, err := cfg.Configure(context.Background())
		gt.Error(t, err).Is(config.ErrMissingFlag)
	})

	t.Run("mongo without uri", func(t *testing.T) {
		var cfg config.Repository
		parseFlags(t, cfg.Flags(), "--repository-backend", "mongo")

		_, _, err := cfg.Configure(context.Background())
		gt.Error(t, err).Is(config.ErrMissingFlag)
	})
}

func TestAuth(t *testing.T) {
	ctx := context.Background()

	t.Run("jwt", func(t *testing.T) {
		var repoCfg config.Repository
		parseFlags(t, repoCfg.Flags(), "--repository-backend", "memory")
		repo, closer, err := repoCfg.Configure(ctx)
		gt.NoError(t, err).Required()
		defer closer()

		var cfg config.Auth
		parseFlags(t, cfg.Flags(), "--jwt-secret", "s3cr3t", "--admin-secret-code", "code")
		gt.Bool(t, cfg.IsNoAuthn()).False()

		authUC, err := cfg.Configure(repo)
		gt.NoError(t, err).Required()
		gt.Bool(t, authUC.IsNoAuthn()).False()
	})

	t.Run("missing secret code", func(t *testing.T) {
		var cfg config.Auth
		parseFlags(t, cfg.Flags(), "--jwt-secret", "s3cr3t")

		_, err := cfg.Configure(nil)
		gt.Error(t, err).Is(config.ErrMissingFlag)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		var cfg config.Auth
		parseFlags(t, cfg.Flags(), "--admin-secret-code", "code")

		_, err := cfg.Configure(nil)
		gt.Error(t, err).Is(config.ErrMissingFlag)
	})

	t.Run("no-authn wins", func(t *testing.T) {
		var cfg config.Auth
		parseFlags(t, cfg.Flags(), "--no-authn", "dev", "--jwt-secret", "s3cr3t")
		gt.Bool(t, cfg.IsNoAuthn()).True()

		authUC, err := cfg.Configure(nil)
		gt.NoError(t, err).Required()
		gt.Bool(t, authUC.IsNoAuthn()).True()
	})
}

func TestStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("none configured", func(t *testing.T) {
		var cfg config.Storage
		parseFlags(t, cfg.Flags())

		blobs, closer, err := cfg.Configure(ctx)
		gt.NoError(t, err).Required()
		defer closer()
		gt.Value(t, blobs).Nil()
	})

	t.Run("local", func(t *testing.T) {
		var cfg config.Storage
		parseFlags(t, cfg.Flags(), "--upload-dir", t.TempDir())

		blobs, closer, err := cfg.Configure(ctx)
		gt.NoError(t, err).Required()
		defer closer()
		gt.Value(t, blobs).NotNil()
	})

	t.Run("both configured", func(t *testing.T) {
		var cfg config.Storage
		parseFlags(t, cfg.Flags(), "--upload-dir", t.TempDir(), "--gcs-bucket", "bucket")

		_, _, err := cfg.Configure(ctx)
		gt.Error(t, err).Is(config.ErrConflictingStorage)
	})
}

func TestSlack(t *testing.T) {
	t.Run("disabled without token", func(t *testing.T) {
		var cfg config.Slack
		parseFlags(t, cfg.Flags())
		gt.Bool(t, cfg.IsConfigured()).False()

		n, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Value(t, n).Nil()
	})
}

func TestLogger(t *testing.T) {
	prev := logging.Default()
	t.Cleanup(func() { logging.SetDefault(prev) })

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		var cfg config.Logger
		parseFlags(t, cfg.Flags(), "--log-format", "json", "--log-output", path)

		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()
		closer()

		_, err = os.Stat(path)
		gt.NoError(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		var cfg config.Logger
		parseFlags(t, cfg.Flags(), "--log-level", "verbose")

		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrInvalidLogLevel)
	})

	t.Run("invalid format", func(t *testing.T) {
		var cfg config.Logger
		parseFlags(t, cfg.Flags(), "--log-format", "xml")

		_, err := cfg.Configure()
		gt.Error(t, err).Is(config.ErrInvalidLogFormat)
	})
}
