package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/percolation/config"
	"github.com/katalvlaran/percolation/critical"
)

// runReport is the JSON record written by -report.
type runReport struct {
	RunID    string           `json:"run_id"`
	Mode     string           `json:"mode"`
	Config   *config.Config   `json:"config"`
	Started  time.Time        `json:"started"`
	Elapsed  string           `json:"elapsed"`
	Rate     *float64         `json:"rate,omitempty"`
	Critical *critical.Result `json:"critical,omitempty"`
	Sweep    []critical.Point `json:"sweep,omitempty"`
	Crossing *float64         `json:"crossing,omitempty"`
}

func newReport(mode string, cfg *config.Config) *runReport {
	return &runReport{
		RunID:   uuid.NewString(),
		Mode:    mode,
		Config:  cfg,
		Started: time.Now(),
	}
}

func (r *runReport) finish() {
	r.Elapsed = time.Since(r.Started).String()
}

func (r *runReport) write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding report")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "writing report to %q", path)
	}
	return nil
}
