// percolate estimates site-percolation probabilities on n×n lattices and
// searches for the critical occupation probability.
//
// Modes:
//
//	show      generate lattices at -p and print the last one with its spanning path
//	estimate  print the percolation probability at -p
//	critical  bisect for p_c, printing every probe as "l p u r"
//	sweep     scan p over a 10^-decimals grid and optionally plot the curve
//
// Example:
//
//	percolate -mode=critical -n=50 -trials=400 -depth=12 -workers=0 -v=1
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/percolation/config"
	"github.com/katalvlaran/percolation/montecarlo"
)

var (
	flagConfig = flag.String("config", "", "JSON run configuration. Flags set explicitly override its values.")
	flagMode   = flag.String("mode", "critical", "One of: show, estimate, critical, sweep.")

	flagSize     = flag.Int("n", montecarlo.DefaultSize, "Lattice size n (n×n sites).")
	flagTopology = flag.String("topology", "square", "Neighbor topology: square or triangular.")
	flagTrials   = flag.Int("trials", montecarlo.DefaultTrials, "Monte-Carlo trials per estimate.")
	flagWorkers  = flag.Int("workers", 1, "Trials run concurrently. 0 means GOMAXPROCS.")
	flagSeed     = flag.Uint64("seed", 0, "Root random seed. 0 selects the fixed default seed.")

	flagP         = flag.Float64("p", 0.5, "Occupation probability for -mode=show and -mode=estimate.")
	flagDepth     = flag.Int("depth", 10, "Bisection steps for -mode=critical.")
	flagLower     = flag.Float64("lower", 0, "Initial lower bound for -mode=critical.")
	flagUpper     = flag.Float64("upper", 1, "Initial upper bound for -mode=critical.")
	flagThreshold = flag.Float64("threshold", 0.5, "Crossing level for -mode=critical and -mode=sweep.")
	flagDecimals  = flag.Int("decimals", 1, "Sweep grid resolution: p = i/10^decimals.")

	flagPlot   = flag.String("plot", "", "Write an image: the lattice for -mode=show, the curve for -mode=sweep.")
	flagReport = flag.String("report", "", "Write a JSON report of the run to this file.")
	flagColor  = flag.Bool("color", true, "Use colors when printing lattices to a terminal.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := must.M1(loadConfig())
	klog.V(1).Infof("configuration: %+v", *cfg)

	report := newReport(*flagMode, cfg)
	if err := run(ctx, *flagMode, cfg, report); err != nil {
		klog.Fatalf("percolate: %+v", err)
	}
	if *flagReport != "" {
		must.M(report.write(*flagReport))
		fmt.Printf("report %s written to %s\n", report.RunID, *flagReport)
	}
}

// loadConfig reads -config (or the defaults) and applies explicitly set flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		cfg, err = config.Load(*flagConfig)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %q", *flagConfig)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Size = *flagSize
		case "topology":
			cfg.Topology = *flagTopology
		case "trials":
			cfg.Trials = *flagTrials
		case "workers":
			cfg.Workers = *flagWorkers
		case "seed":
			cfg.Seed = *flagSeed
		case "p":
			cfg.Probability = *flagP
		case "depth":
			cfg.Depth = *flagDepth
		case "lower":
			cfg.Lower = *flagLower
		case "upper":
			cfg.Upper = *flagUpper
		case "threshold":
			cfg.Threshold = *flagThreshold
		case "decimals":
			cfg.Decimals = *flagDecimals
		}
	})
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
