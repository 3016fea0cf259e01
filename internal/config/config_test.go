package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/dijkstra"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input_dir: data
crucible:
  rule: {min: 4, max: 10}
garden:
  steps: 6
batch:
  parallel: 2
  jobs:
    - name: ultra
      command: crucible
      examples: true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.InputDir = "data"
	want.Crucible.Rule = dijkstra.RunRule{Min: 4, Max: 10}
	want.Garden.Steps = 6
	want.Batch = BatchConfig{Parallel: 2, Jobs: []Job{{Name: "ultra", Command: "crucible", Examples: true}}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("garden: [1, 2"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("values replace file settings", func(t *testing.T) {
		t.Setenv(EnvInputDir, "/srv/inputs")
		t.Setenv(EnvStepBudget, "42")
		t.Setenv(EnvExpansionBudget, "7")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "/srv/inputs", cfg.InputDir)
		assert.Equal(t, 42, cfg.Budgets.Steps)
		assert.Equal(t, 7, cfg.Budgets.Expansions)
	})

	t.Run("non-numeric budget is rejected", func(t *testing.T) {
		t.Setenv(EnvStepBudget, "lots")
		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"negative steps":  func(c *Config) { c.Budgets.Steps = -1 },
		"zero unfold":     func(c *Config) { c.Springs.Unfold = 0 },
		"zero parallel":   func(c *Config) { c.Batch.Parallel = 0 },
		"bad rule":        func(c *Config) { c.Crucible.Rule = dijkstra.RunRule{Min: 5, Max: 2} },
		"job w/o command": func(c *Config) { c.Batch.Jobs = []Job{{Name: "x"}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	cfg := DefaultConfig()
	cfg.Crucible.Rule = dijkstra.RunRule{Min: 5, Max: 2}
	assert.ErrorIs(t, cfg.Validate(), dijkstra.ErrBadRunRule)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gridsearch.yaml")
	cfg := DefaultConfig()
	cfg.Pulse.Target = "zz"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "zz", got.Pulse.Target)
}
