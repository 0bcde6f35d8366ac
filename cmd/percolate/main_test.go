package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/config"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Size = 6
	cfg.Trials = 20
	cfg.Depth = 3
	cfg.Seed = 11
	return cfg
}

func TestRun_UnknownMode(t *testing.T) {
	cfg := smallConfig()
	err := run(context.Background(), "plot", cfg, newReport("plot", cfg))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown -mode")
}

func TestRun_Modes(t *testing.T) {
	ctx := context.Background()

	cfg := smallConfig()
	cfg.Probability = 1
	report := newReport("estimate", cfg)
	require.NoError(t, run(ctx, "estimate", cfg, report))
	require.NotNil(t, report.Rate)
	assert.Equal(t, 1.0, *report.Rate)

	report = newReport("show", cfg)
	require.NoError(t, run(ctx, "show", cfg, report))
	require.NotNil(t, report.Rate)

	report = newReport("critical", cfg)
	require.NoError(t, run(ctx, "critical", cfg, report))
	require.NotNil(t, report.Critical)
	assert.Len(t, report.Critical.Probes, 3)

	report = newReport("sweep", cfg)
	require.NoError(t, run(ctx, "sweep", cfg, report))
	assert.Len(t, report.Sweep, 10)
	assert.NotNil(t, report.Crossing)
	assert.NotEmpty(t, report.Elapsed)
}

func TestRunReport_Write(t *testing.T) {
	cfg := smallConfig()
	report := newReport("estimate", cfg)
	rate := 0.25
	report.Rate = &rate
	report.finish()

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, report.write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	_, err = uuid.Parse(decoded["run_id"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "estimate", decoded["mode"])
	assert.Equal(t, 0.25, decoded["rate"])
	assert.NotContains(t, decoded, "critical")
}
