// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command logplot plots columns of CSV logs.
//
// Usage:
//
//	logplot [flags] input...
//
// Each input is a path, optionally followed by a colon and a
// comma-separated list of integer group ids, as in "run1.csv:1,2".
// Inputs may be compressed with gzip, bzip2, or xz. If no inputs are
// given, they are read from the shell-quoted LOGPLOT_INPUTS variable.
//
// The -kind flag selects the plot:
//
//	hist     histogram of column -x, one color per group
//	ecdf     empirical CDF of column -x, one line per group
//	scatter  column -y against column -x
//	median   mean of column -y per bin of column -x, as a line
//	avg      capped mean of column -y per bin of column -x
//
// The histogram and binned kinds need the axis maximum up front. If
// -max is not given, it is the largest value of column -x in the last
// row of any input, which suits logs sorted on that column.
//
// The plot is written as SVG, or as PNG if the -o file name ends in
// ".png". Flag defaults can be set with LOGPLOT_KIND, LOGPLOT_BINS,
// LOGPLOT_WIDTH, LOGPLOT_HEIGHT, LOGPLOT_CHUNK_SIZE,
// LOGPLOT_LOG_LEVEL, and LOGPLOT_LOG_DEV; LOGPLOT_LOG_FILE sends the
// log to a file instead of stderr.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/aclements/logplot/aggregate"
	"github.com/aclements/logplot/chart"
	"github.com/aclements/logplot/chart/raster"
	"github.com/aclements/logplot/chart/svgcanvas"
	"github.com/aclements/logplot/ingest"
	"github.com/aclements/logplot/internal/logging"
)

func main() {
	log.SetPrefix("logplot: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := run(ctx, os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("logplot", flag.ContinueOnError)
	var (
		flagCPUProfile = fs.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = fs.String("memprofile", "", "write heap profile to `file`")
		flagOut        = fs.String("o", "", "write output to `file` (default: SVG on stdout)")
		flagKind       = fs.String("kind", cfg.Kind, "plot `kind`: hist, ecdf, scatter, median, or avg")
		flagX          = fs.Int("x", 0, "X value `column`, counting from 0")
		flagY          = fs.Int("y", 1, "Y value `column` for scatter, median, and avg")
		flagBins       = fs.Int("bins", cfg.Bins, "number of bins")
		flagMax        = fs.Float64("max", 0, "X axis maximum (default: from the inputs' last rows)")
		flagCap        = fs.Float64("cap", 0, "cap bin averages at `ratio` for avg (default: largest average)")
		flagTitle      = fs.String("title", "", "plot title (default: input names)")
		flagXLabel     = fs.String("xlabel", "", "X axis label (default: column number)")
		flagYLabel     = fs.String("ylabel", "", "Y axis label")
		flagHeader     = fs.Bool("header", false, "skip the first row of each input")
		flagSep        = fs.String("sep", ",", "field separator")
		flagComment    = fs.String("comment", "", "skip lines starting with `char`")
		flagWidth      = fs.Int("width", cfg.Width, "image width in pixels")
		flagHeight     = fs.Int("height", cfg.Height, "image height in pixels")
		flagRestore    = fs.Bool("restore-single-bin", false, "restore drawing state after a median line of one bin")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: logplot [flags] input[:group,...]...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			return err
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Print(err)
				return
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	logCfg := logging.Config{Level: cfg.LogLevel, Development: cfg.LogDev}
	if cfg.LogFile != "" {
		logCfg.OutputPaths = []string{cfg.LogFile}
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	inputs := fs.Args()
	if len(inputs) == 0 && cfg.Inputs != "" {
		if inputs, err = splitInputs(cfg.Inputs); err != nil {
			return err
		}
	}
	if len(inputs) == 0 {
		fs.Usage()
		return errors.New("no inputs")
	}

	tok, err := tokenizer(*flagSep, *flagComment)
	if err != nil {
		return err
	}

	sources, err := openSources(inputs)
	if err != nil {
		return err
	}
	defer closeSources(sources)

	opts := plotOptions{
		kind:       *flagKind,
		x:          *flagX,
		y:          *flagY,
		bins:       *flagBins,
		max:        *flagMax,
		maxRatio:   *flagCap,
		xLabel:     *flagXLabel,
		yLabel:     *flagYLabel,
		restoreOne: *flagRestore,
	}
	if opts.yLabel == "" {
		opts.yLabel = defaultYLabel(opts)
	}
	if opts.max <= 0 && opts.kind != "scatter" {
		tm := &aggregate.TailMax{Col: aggregate.Col(opts.x), Tokenizer: tok}
		for _, s := range sources {
			if err := tm.Update(s.File); err != nil {
				return err
			}
		}
		if !tm.Found {
			return errors.New("cannot find X axis maximum in the inputs' last rows; use -max")
		}
		opts.max = tm.Max
		logger.Debug("axis maximum from tails", zap.Float64("max", opts.max))
	}

	if opts.xLabel == "" {
		opts.xLabel = defaultXLabel(opts)
	}

	p, err := newPlotter(opts)
	if err != nil {
		return err
	}
	reg := ingest.NewRegistry()
	for _, s := range p.subscribers() {
		if *flagHeader {
			s = aggregate.SkipHeader(s)
		}
		reg.Register(s)
	}
	summary := new(aggregate.Summary)
	summarySub := summary.Subscriber(aggregate.Col(opts.x))
	if *flagHeader {
		summarySub = aggregate.SkipHeader(summarySub)
	}
	reg.Register(summarySub)

	d := ingest.NewDriver(reg,
		ingest.WithChunkSize(cfg.ChunkSize),
		ingest.WithTokenizer(tok),
		ingest.WithLogger(logger))
	if err := d.ParseFiles(ctx, sources); err != nil {
		return err
	}
	logger.Info("ingested",
		zap.Int("files", len(sources)),
		zap.Stringer("summary", summary),
		zap.Int("skipped", summary.Skipped))

	title := *flagTitle
	if title == "" {
		title = strings.Join(inputs, " ")
	}

	out := stdout
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	format := "svg"
	if strings.EqualFold(filepath.Ext(*flagOut), ".png") {
		format = "png"
	}
	return render(out, format, *flagWidth, *flagHeight, func(s chart.Surface) {
		drawPlot(s, *flagWidth, *flagHeight, title, opts, p)
	})
}

func defaultXLabel(o plotOptions) string {
	if o.kind == "median" && o.bins > 0 {
		width := chart.FormatNumberPrecision(o.max/float64(o.bins), 3)
		return fmt.Sprintf("bin of column %d (width %s)", o.x, width)
	}
	return fmt.Sprintf("column %d", o.x)
}

func defaultYLabel(o plotOptions) string {
	switch o.kind {
	case "hist":
		return "count"
	case "ecdf":
		return "fraction"
	case "avg":
		return fmt.Sprintf("mean of column %d", o.y)
	}
	return fmt.Sprintf("column %d", o.y)
}

func tokenizer(sep, comment string) (ingest.CSV, error) {
	var tok ingest.CSV
	r, n := utf8.DecodeRuneInString(sep)
	if n == 0 || n != len(sep) {
		return tok, fmt.Errorf("separator must be one character, got %q", sep)
	}
	tok.Comma = r
	if comment != "" {
		c, n := utf8.DecodeRuneInString(comment)
		if n != len(comment) {
			return tok, fmt.Errorf("comment must be one character, got %q", comment)
		}
		tok.Comment = c
	}
	return tok, nil
}

// render draws onto a surface of the given format and writes it to w.
func render(w io.Writer, format string, width, height int, draw func(chart.Surface)) error {
	if format == "png" {
		c := raster.New(width, height)
		draw(c)
		return c.EncodePNG(w)
	}
	bw := bufio.NewWriter(w)
	c := svgcanvas.New(bw, width, height)
	draw(c)
	c.Close()
	return bw.Flush()
}
