// Command wavinfo loads audio signals and prints what a waveform or
// frequency plot of them would show.
//
// Usage:
//
//	wavinfo [flags] [source-name ...]
//
// Source names are bundled recordings (see -list) or the synthetic "linear"
// and "sine" signals. Without arguments it reports both synthetic signals.
//
// Examples:
//
//	wavinfo sine linear
//	wavinfo -dir . -kind frequency -smooth gowers-amen_break.wav
//	wavinfo -url https://example.org/notebooks -limit 512 -csv dwsd-kick_laid.wav
//	wavinfo -list
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-wave/dsp/core"
	"github.com/cwbudde/algo-wave/pipeline"
	"github.com/cwbudde/algo-wave/source"
	"github.com/cwbudde/algo-wave/stats"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	dir   string
	url   string
	kind  pipeline.Kind
	cfg   core.PipelineConfig
	csv   bool
	list  bool
	debug bool
	names []string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("wavinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	dir := fs.String("dir", ".", "directory containing data/audio")
	url := fs.String("url", "", "base URL serving data/audio (overrides -dir)")
	kind := fs.String("kind", "waveform", "plot kind: waveform or frequency")
	limit := fs.Int("limit", core.DefaultLimit, "maximum points per trace")
	smooth := fs.Bool("smooth", false, "smooth frequency traces with a moving average")
	window := fs.Int("window", core.DefaultWindow, "smoothing window in bins")
	scale := fs.String("scale", "db", "frequency scale: db or linear")
	floor := fs.Float64("floor", core.DefaultFloorDB, "lowest plotted level in dB")
	asCSV := fs.Bool("csv", false, "print prepared traces as CSV instead of a summary")
	list := fs.Bool("list", false, "list bundled recordings")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wavinfo [flags] [source-name ...]\n\n")
		fmt.Fprintf(stderr, "Loads audio signals and summarizes their prepared plot traces.\n")
		fmt.Fprintf(stderr, "Without arguments, reports the synthetic linear and sine signals.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  wavinfo sine linear\n")
		fmt.Fprintf(stderr, "  wavinfo -kind frequency -smooth gowers-amen_break.wav\n")
		fmt.Fprintf(stderr, "  wavinfo -limit 512 -csv dwsd-kick_laid.wav\n")
		fmt.Fprintf(stderr, "  wavinfo -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	k, err := pipeline.ParseKind(*kind)
	if err != nil {
		return options{}, err
	}
	sc, err := core.ParseScale(*scale)
	if err != nil {
		return options{}, err
	}
	if *limit <= 0 {
		return options{}, fmt.Errorf("limit must be > 0: %d", *limit)
	}
	if *window <= 0 {
		return options{}, fmt.Errorf("window must be > 0: %d", *window)
	}

	names := fs.Args()
	if len(names) == 0 {
		names = []string{"linear", "sine"}
	}

	return options{
		dir:  *dir,
		url:  *url,
		kind: k,
		cfg: core.ApplyPipelineOptions(
			core.WithLimit(*limit),
			core.WithSmoothing(*smooth),
			core.WithWindow(*window),
			core.WithScale(sc),
			core.WithFloorDB(*floor),
		),
		csv:   *asCSV,
		list:  *list,
		debug: *debug,
		names: names,
	}, nil
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Str("cmd", "wavinfo").Logger()
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.list {
		for _, name := range source.Catalog() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	logger := newLogger(stderr, opts.debug)
	ctx = logger.WithContext(ctx)

	loc := source.Location{Dir: opts.dir, BaseURL: opts.url}
	series := make([]pipeline.Series, 0, len(opts.names))
	for _, name := range opts.names {
		src := source.Select(name, loc)
		s, err := src.Read(ctx)
		if err != nil {
			logger.Error().Err(err).Str("source", name).Msg("failed to read source")
			continue
		}
		logger.Debug().
			Str("source", src.Name()).
			Stringer("kind", src.Kind()).
			Int("rate", s.Rate).
			Int("samples", len(s.Samples)).
			Msg("loaded")
		series = append(series, s)
	}
	if len(series) == 0 {
		return errors.New("no sources could be read")
	}

	traces, err := pipeline.PrepareAll(ctx, series, opts.kind, opts.cfg)
	if err != nil {
		return err
	}
	lo, hi := pipeline.Range(series, opts.kind)
	logger.Debug().Float64("x_min", lo).Float64("x_max", hi).Int("traces", len(traces)).Msg("prepared")

	if opts.csv {
		return writeCSV(stdout, traces)
	}
	return writeSummary(stdout, series, traces)
}

func writeSummary(w io.Writer, series []pipeline.Series, traces []pipeline.Trace) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Source\tRate [Hz]\tDuration [s]\tPeak [dB]\tRMS [dB]\tCrest [dB]\tDC\tZero X\tPoints\tColor\n")
	fmt.Fprintf(tw, "------\t---------\t------------\t---------\t--------\t----------\t--\t------\t------\t-----\n")

	for i, s := range series {
		st := stats.Calculate(s.Samples)
		tr := traces[i]
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.2f\t%.2f\t%.2f\t%.4f\t%d\t%d\t%s\n",
			tr.Label,
			s.Rate,
			st.Duration(s.Rate),
			st.PeakDB,
			st.RMSDB,
			st.CrestFactorDB,
			st.DC,
			st.ZeroCrossings,
			tr.Len(),
			tr.Color,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func writeCSV(w io.Writer, traces []pipeline.Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"label", "kind", "x", "y"}); err != nil {
		return err
	}
	for _, tr := range traces {
		kind := tr.Kind.String()
		for i := range tr.X {
			if err := cw.Write([]string{
				tr.Label,
				kind,
				strconv.FormatFloat(tr.X[i], 'g', -1, 64),
				strconv.FormatFloat(tr.Y[i], 'g', -1, 64),
			}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
