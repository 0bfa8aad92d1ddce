package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "./tradebook.db", cfg.Database.Path)
	assert.Equal(t, 20, cfg.Query.PageSize)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  Default(),
			wantErr: false,
		},
		{
			name: "missing database path",
			config: &Config{
				Query:  QueryConfig{PageSize: 20},
				Export: ExportConfig{Dir: "."},
				Backup: BackupConfig{Dir: "."},
			},
			wantErr: true,
			errMsg:  "database.path is required",
		},
		{
			name: "zero page size",
			config: &Config{
				Database: DatabaseConfig{Path: "./tradebook.db"},
				Export:   ExportConfig{Dir: "."},
				Backup:   BackupConfig{Dir: "."},
			},
			wantErr: true,
			errMsg:  "query.page_size must be positive",
		},
		{
			name: "missing export dir",
			config: &Config{
				Database: DatabaseConfig{Path: "./tradebook.db"},
				Query:    QueryConfig{PageSize: 20},
				Backup:   BackupConfig{Dir: "."},
			},
			wantErr: true,
			errMsg:  "export.dir is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tradebook.yaml")

	cfg := Default()
	cfg.Database.Path = filepath.Join(dir, "ledger.db")
	cfg.Query.PageSize = 50
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Database.Path, loaded.Database.Path)
	assert.Equal(t, 50, loaded.Query.PageSize)
}

func TestSaveAndLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tradebook.json")

	cfg := Default()
	require.NoError(t, cfg.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"page_size": 20`)

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Query.PageSize, loaded.Query.PageSize)
}

func TestLoadInvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tradebook.yaml")

	cfg := Default()
	cfg.Query.PageSize = 0
	// SaveToFile does not validate; loading does
	require.NoError(t, cfg.SaveToFile(path))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page_size")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
