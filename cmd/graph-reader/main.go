package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/graph-reader/internal/imaging"
	"github.com/ironsheep/graph-reader/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and --help before flag parsing
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("graph-reader %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage(os.Stdout)
			return
		}
	}

	cfg := pipeline.DefaultConfig()
	fs := flag.NewFlagSet("graph-reader", flag.ExitOnError)
	fs.Usage = func() { usage(os.Stderr) }
	bindFlags(fs, &cfg)
	fs.Parse(os.Args[1:])

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logger := log.New(os.Stderr, "", log.Ltime)
	if os.Getenv("GRAPH_READER_LOG_LEVEL") == "debug" {
		logger.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		log.Printf("graph-reader v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("config: %+v", cfg)
	}

	res, err := pipeline.Run(cfg, logger)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	if err := pipeline.Write(res, cfg, logger); err != nil {
		log.Fatalf("Write failed: %v", err)
	}
}

func bindFlags(fs *flag.FlagSet, cfg *pipeline.Config) {
	fs.StringVar(&cfg.InputFilename, "input", cfg.InputFilename, "Chart image to digitize")
	fs.StringVar(&cfg.OutputFilename, "output", cfg.OutputFilename, "Raw CSV output (smoothed table gets a _smoothed suffix)")
	fs.StringVar(&cfg.ChartFilename, "chart", cfg.ChartFilename, "Raw line plot output (empty to skip)")
	fs.StringVar(&cfg.SmoothedChartFilename, "smoothed-chart", cfg.SmoothedChartFilename, "Smoothed line plot output (empty to skip)")
	fs.StringVar(&cfg.TraceFilename, "trace", cfg.TraceFilename, "Write the input with the detected line overlaid (empty to skip)")
	fs.StringVar(&cfg.TraceColor, "trace-color", cfg.TraceColor, "Hex colour for the trace overlay")
	fs.Float64Var(&cfg.WhiteThreshold, "threshold", cfg.WhiteThreshold, "Greyscale level above which a column has no line (0-255)")
	fs.IntVar(&cfg.WindowSize, "window", cfg.WindowSize, "Smoothing window size")
	fs.Float64Var(&cfg.Axes.XMin, "x-min", cfg.Axes.XMin, "Axis value at the left edge")
	fs.Float64Var(&cfg.Axes.XMax, "x-max", cfg.Axes.XMax, "Axis value at the right edge")
	fs.Float64Var(&cfg.Axes.YMin, "y-min", cfg.Axes.YMin, "Axis value at the bottom edge")
	fs.Float64Var(&cfg.Axes.YMax, "y-max", cfg.Axes.YMax, "Axis value at the top edge")
	fs.Func("area", "Plot area in pixels as x1,y1,x2,y2 (default: whole image)", func(s string) error {
		r, err := imaging.ParseRegion(s)
		if err != nil {
			return err
		}
		cfg.PlotArea = r
		return nil
	})
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "graph-reader - digitize a line chart image into x,y samples")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: graph-reader [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fs := flag.NewFlagSet("graph-reader", flag.ContinueOnError)
	cfg := pipeline.DefaultConfig()
	bindFlags(fs, &cfg)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  GRAPH_READER_LOG_LEVEL=debug    Enable debug logging")
}
