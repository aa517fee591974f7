package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/influence/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "influence.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, "celfpp", cfg.Selection.Algorithm)
	require.Equal(t, 100, cfg.Simulation.Runs)
	require.Equal(t, 7, cfg.Cascade.RecoveryDays)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := writeFile(t, `
log:
  level: debug
simulation:
  runs: 400
  workers: 4
selection:
  algorithm: celf
path:
  mode: content
`)
	t.Setenv("INFLUENCE_RUNS", "250")
	t.Setenv("INFLUENCE_INDEPENDENT_DRAWS", "true")
	t.Setenv("INFLUENCE_HEURISTIC", "raw")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "console", cfg.Log.Format, "unset keys keep defaults")
	require.Equal(t, 250, cfg.Simulation.Runs, "env wins over file")
	require.Equal(t, 4, cfg.Simulation.Workers)
	require.True(t, cfg.Simulation.IndependentDraws)
	require.Equal(t, "celf", cfg.Selection.Algorithm)
	require.Equal(t, "content", cfg.Path.Mode)
	require.Equal(t, "raw", cfg.Path.Heuristic)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]struct {
		file string
		env  map[string]string
	}{
		"unknown key":   {file: "simulation:\n  runz: 3\n"},
		"zero runs":     {file: "simulation:\n  runs: 0\n"},
		"bad algorithm": {env: map[string]string{"INFLUENCE_ALGORITHM": "random"}},
		"bad mode":      {file: "path:\n  mode: fastest\n"},
		"bad int env":   {env: map[string]string{"INFLUENCE_BUDGET": "many"}},
		"bad bool env":  {env: map[string]string{"INFLUENCE_INDEPENDENT_DRAWS": "sometimes"}},
		"bad log level": {env: map[string]string{"INFLUENCE_LOG_LEVEL": "loud"}},
		"zero recovery": {env: map[string]string{"INFLUENCE_RECOVERY_DAYS": "0"}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			path := ""
			if tc.file != "" {
				path = writeFile(t, tc.file)
			}
			_, err := config.Load(path)
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	cfg := config.Default()
	cfg.Simulation.Workers = 0
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}

func TestEngines(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Format = "json"
	cfg.Simulation.IndependentDraws = true
	cfg.Simulation.Workers = 3

	log, err := cfg.Logger()
	require.NoError(t, err)
	require.NotNil(t, log)

	est, err := cfg.Estimator(log, nil)
	require.NoError(t, err)
	require.Equal(t, 3, est.Options().Workers)
	require.True(t, est.Options().IndependentDraws)

	sel, err := cfg.SelectOptions(est, log, nil)
	require.NoError(t, err)
	require.Len(t, sel, 5)

	po, err := cfg.PathOptions(log, nil)
	require.NoError(t, err)
	require.Len(t, po, 4)

	require.Len(t, cfg.CascadeOptions(log, nil), 5)

	cfg.Selection.Algorithm = "random"
	_, err = cfg.SelectOptions(est, log, nil)
	require.Error(t, err)
}
