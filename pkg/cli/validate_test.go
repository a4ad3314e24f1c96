package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/geunaseh/jeumala/pkg/cli"
	"github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/m-mizutani/fireconf"
	"github.com/m-mizutani/gt"
)

func TestRun_ValidateCommand_ValidSchema(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.toml")
	content := `
[[resources]]
title = "Notices"
endpoint = "notices"
public = true

  [[resources.fields]]
  name = "title"
  label = "Title"
  kind = "text"
  required = true

  [[resources.fields]]
  name = "level"
  label = "Level"
  kind = "select"

    [[resources.fields.options]]
    value = "info"
    label = "Info"

    [[resources.fields.options]]
    value = "warning"
    label = "Warning"
`
	err := os.WriteFile(schemaPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	// Run validate command with only the schema (no DB check)
	err = cli.Run(context.Background(), []string{"jeumala", "validate", "--schema", schemaPath}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_YAMLSchema(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.yaml")
	content := `
resources:
  - title: Notices
    endpoint: notices
    fields:
      - name: title
        label: Title
        kind: text
        required: true
      - name: tags
        label: Tags
        kind: tags
`
	err := os.WriteFile(schemaPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{"jeumala", "validate", "--schema", schemaPath}, "test")
	gt.NoError(t, err)
}

func TestRun_ValidateCommand_InvalidSchema(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.toml")

	// Invalid: select field without options
	content := `
[[resources]]
title = "Notices"
endpoint = "notices"

  [[resources.fields]]
  name = "level"
  label = "Level"
  kind = "select"
`
	err := os.WriteFile(schemaPath, []byte(content), 0o600)
	gt.NoError(t, err).Required()

	err = cli.Run(context.Background(), []string{"jeumala", "validate", "--schema", schemaPath}, "test")
	gt.Error(t, err)
}

func TestRun_ValidateCommand_MissingFile(t *testing.T) {
	err := cli.Run(context.Background(), []string{"jeumala", "validate", "--schema", "/nonexistent/schema.toml"}, "test")
	gt.Error(t, err)
}

func TestRun_ValidateCommand_CheckDB(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"jeumala", "validate",
		"--check-db",
		"--repository-backend", "memory",
	}, "test")
	gt.NoError(t, err)
}

func TestGetIndexConfig(t *testing.T) {
	cfg := cli.GetIndexConfig(config.DefaultSchema())

	byName := map[string]fireconf.Collection{}
	for _, c := range cfg.Collections {
		byName[c.Name] = c
	}

	t.Run("documents filtered by docType", func(t *testing.T) {
		docs, ok := byName["documents"]
		gt.Bool(t, ok).True()
		gt.Array(t, docs.Indexes).Length(1)
		gt.Value(t, docs.Indexes[0].Fields[0].Path).Equal("docType")
		gt.Value(t, docs.Indexes[0].Fields[1].Path).Equal("createdAt")
		gt.Value(t, docs.Indexes[0].Fields[1].Order).Equal(fireconf.OrderDescending)
	})

	t.Run("tasks get one index per filter", func(t *testing.T) {
		tasks, ok := byName["tasks"]
		gt.Bool(t, ok).True()
		gt.Array(t, tasks.Indexes).Length(2)
		gt.Value(t, tasks.Indexes[0].Fields[0].Path).Equal("assignee")
		gt.Value(t, tasks.Indexes[1].Fields[0].Path).Equal("status")
	})

	t.Run("registrations by event", func(t *testing.T) {
		regs, ok := byName["registrations"]
		gt.Bool(t, ok).True()
		gt.Array(t, regs.Indexes).Length(1)
		gt.Value(t, regs.Indexes[0].Fields[0].Path).Equal("eventId")
	})

	t.Run("unfiltered resources need no index", func(t *testing.T) {
		_, ok := byName["articles"]
		gt.Bool(t, ok).False()
		_, ok = byName["members"]
		gt.Bool(t, ok).False()
	})
}
