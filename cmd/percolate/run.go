package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/percolation/config"
	"github.com/katalvlaran/percolation/critical"
	"github.com/katalvlaran/percolation/montecarlo"
	"github.com/katalvlaran/percolation/render"
)

// run dispatches one mode and records its outcome in report.
func run(ctx context.Context, mode string, cfg *config.Config, report *runReport) error {
	defer report.finish()
	switch mode {
	case "show":
		return runShow(ctx, cfg, report)
	case "estimate":
		return runEstimate(ctx, cfg, report)
	case "critical":
		return runCritical(ctx, cfg, report)
	case "sweep":
		return runSweep(ctx, cfg, report)
	default:
		return errors.Errorf("unknown -mode=%q: expected show, estimate, critical or sweep", mode)
	}
}

func newEstimator(cfg *config.Config) (*montecarlo.Estimator, error) {
	opts, err := cfg.EstimatorOptions()
	if err != nil {
		return nil, err
	}
	est, err := montecarlo.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "creating estimator")
	}
	return est, nil
}

func runShow(ctx context.Context, cfg *config.Config, report *runReport) error {
	est, err := newEstimator(cfg)
	if err != nil {
		return err
	}
	rate, err := est.Estimate(ctx, cfg.Probability)
	if err != nil {
		return errors.Wrapf(err, "estimating at p=%g", cfg.Probability)
	}
	report.Rate = &rate

	l := est.Snapshot()
	topology, err := cfg.TopologyValue()
	if err != nil {
		return err
	}
	path, err := l.SpanningPath(topology)
	if err != nil {
		return errors.Wrap(err, "tracing spanning path")
	}
	largest, err := l.LargestCluster(topology)
	if err != nil {
		return errors.Wrap(err, "labelling clusters")
	}

	caption := fmt.Sprintf("n=%d p=%g %s density=%.3f largest cluster=%d spans=%t",
		l.Size(), cfg.Probability, topology, l.Density(), largest, path != nil)
	textOpts := []render.TextOption{render.WithPath(path), render.WithCaption(caption)}
	if !*flagColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		textOpts = append(textOpts, render.WithPlain())
	}
	fmt.Println(render.Text(l, textOpts...))
	fmt.Printf("percolation probability over %d trials: %g\n", cfg.Trials, rate)

	if *flagPlot != "" {
		if err := render.PlotLattice(l, *flagPlot, render.WithTitle(caption)); err != nil {
			return errors.Wrapf(err, "plotting lattice to %q", *flagPlot)
		}
		klog.Infof("lattice plot written to %s", *flagPlot)
	}
	return nil
}

func runEstimate(ctx context.Context, cfg *config.Config, report *runReport) error {
	est, err := newEstimator(cfg)
	if err != nil {
		return err
	}
	rate, err := est.Estimate(ctx, cfg.Probability)
	if err != nil {
		return errors.Wrapf(err, "estimating at p=%g", cfg.Probability)
	}
	report.Rate = &rate
	fmt.Println(rate)
	return nil
}

func runCritical(ctx context.Context, cfg *config.Config, report *runReport) error {
	est, err := newEstimator(cfg)
	if err != nil {
		return err
	}
	opts := append(cfg.SearchOptions(), critical.WithProbeHook(func(pr critical.Probe) {
		fmt.Println(pr.Lower, pr.P, pr.Upper, pr.Rate)
	}))
	result, err := critical.Bisect(ctx, est, opts...)
	if err != nil {
		return errors.Wrap(err, "bisecting for p_c")
	}
	report.Critical = &result
	fmt.Printf("p_c ≈ %g\n", result.P)
	return nil
}

func runSweep(ctx context.Context, cfg *config.Config, report *runReport) error {
	est, err := newEstimator(cfg)
	if err != nil {
		return err
	}
	grid, err := critical.DecimalGrid(cfg.Decimals)
	if err != nil {
		return err
	}
	points, err := critical.Sweep(ctx, est, grid, func(pt critical.Point) {
		fmt.Printf("%.*f\t%g\n", cfg.Decimals, pt.P, pt.Rate)
	})
	if err != nil {
		return errors.Wrap(err, "sweeping p")
	}
	report.Sweep = points

	plotOpts := []render.PlotOption{
		render.WithTitle(fmt.Sprintf("Percolation probability, n=%d, %s", cfg.Size, cfg.Topology)),
		render.WithThreshold(cfg.Threshold),
	}
	if p, ok := critical.Crossing(points, cfg.Threshold); ok {
		report.Crossing = &p
		plotOpts = append(plotOpts, render.WithEstimate(p))
		fmt.Printf("crossing of %g at p ≈ %.4f\n", cfg.Threshold, p)
	} else {
		fmt.Printf("no crossing of %g in the sweep\n", cfg.Threshold)
	}

	if *flagPlot != "" {
		if err := render.PlotCurve(points, *flagPlot, plotOpts...); err != nil {
			return errors.Wrapf(err, "plotting curve to %q", *flagPlot)
		}
		klog.Infof("curve plot written to %s", *flagPlot)
	}
	return nil
}
