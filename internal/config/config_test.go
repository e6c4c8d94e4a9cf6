package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "promptprune.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
target_ratio: 0.25
domain_terms: ["Acme", "Widget"]
corpus:
  backend: postgres
  dsn: "postgres://localhost/corpus"
  table: idf_corpus
`), 0o644))

	cfg, corpusCfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.TargetRatio)
	assert.Equal(t, []string{"Acme", "Widget"}, cfg.DomainTerms)
	assert.Equal(t, 0.3, cfg.IDFWeight) // default preserved
	assert.Equal(t, "postgres", corpusCfg.Backend)
	assert.Equal(t, "idf_corpus", corpusCfg.Table)
}
