package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BTBurke/rngen/pkg/cli"
	"github.com/BTBurke/rngen/pkg/crash"
	"github.com/BTBurke/rngen/pkg/metric"
	"github.com/BTBurke/rngen/pkg/rng"
	"github.com/spf13/pflag"
)

type options struct {
	dist   string
	params []float64
	count  int
	seed   uint64
	seeded bool
}

func handleOption(o *options) cli.Handler {
	return func(name string, value string) error {
		switch name {
		case "dist":
			o.dist = value
		case "params":
			o.params = o.params[:0]
			for _, f := range strings.Split(value, ",") {
				if f = strings.TrimSpace(f); f == "" {
					continue
				}
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return fmt.Errorf("could not convert parameter %q to a number", f)
				}
				o.params = append(o.params, v)
			}
		case "count":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return fmt.Errorf("count must be a non-negative integer, got %q", value)
			}
			o.count = n
		case "seed":
			s, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return fmt.Errorf("could not convert seed %q to an unsigned integer", value)
			}
			o.seed, o.seeded = s, true
		default:
			return fmt.Errorf("unknown option: %s", name)
		}
		return nil
	}
}

func main() {
	fs := pflag.NewFlagSet("sample", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "Use yaml configuration file")
	fs.StringP("dist", "d", "uniform", fmt.Sprintf("Distribution, one of %s", strings.Join(rng.Distributions(), ", ")))
	fs.StringP("params", "p", "0,1", "Comma separated distribution parameters in method order, e.g. binomial takes p,n")
	fs.IntP("count", "n", 10, "Number of variates to print")
	fs.Uint64P("seed", "s", 0, "Seed for a reproducible sequence.  Defaults to the clock.")
	fs.BoolP("verbose", "v", false, "Log the seed and a summary of the draws")
	fs.Bool("no-error-reporting", false, "Never send unexpected errors to the crash reporting service")

	o := &options{dist: "uniform", params: []float64{0, 1}, count: 10}
	if err := cli.Parse(fs, os.Args[1:], handleOption(o), "verbose", "no-error-reporting"); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Println("Error in config:", err)
		os.Exit(2)
	}
	verbose, _ := fs.GetBool("verbose")
	crash.SuppressErrorReporting, _ = fs.GetBool("no-error-reporting")
	log := cli.Logger(verbose)
	reporter := crash.New(os.Getenv("ROLLBAR_TOKEN"), os.Getenv("environment"))
	defer reporter.Wait()

	opts := []rng.Option{rng.WithLogger(log)}
	if o.seeded {
		opts = append(opts, rng.WithSeed(o.seed))
	}
	g := rng.New(opts...)
	r, err := rng.NewRNG(g, o.dist, o.params...)
	if err != nil {
		fmt.Println("Error in distribution:", err)
		os.Exit(2)
	}
	log.Debug().Uint64("seed", g.Seed()).Str("dist", o.dist).Msg("sampling")

	series, err := metric.NewSeries(capacity(o.count), metric.WithName(metric.ParamName(o.dist, paramKV(o.params)...)))
	if err != nil {
		reporter.ReportError(err)
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for i := 0; i < o.count; i++ {
		v := r.Rand()
		series.Record(v)
		fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))
	}
	values := series.Values()
	log.Debug().
		Str("dist", series.Name()).
		Int("count", series.Count()).
		Int("window", series.Capacity()).
		Float64("mean", metric.SampleAverage(values)).
		Float64("min", metric.SampleMin(values)).
		Float64("max", metric.SampleMax(values)).
		Msg("summary")
}

// summaryWindow bounds the number of draws kept for the summary of long runs
const summaryWindow = 100000

// capacity keeps a series for zero draws valid and bounds it for long runs
func capacity(count int) int {
	switch {
	case count < 1:
		return 1
	case count > summaryWindow:
		return summaryWindow
	}
	return count
}

// paramKV labels positional parameters p0, p1, ... for the series name
func paramKV(params []float64) []interface{} {
	kv := make([]interface{}, 0, 2*len(params))
	for i, p := range params {
		kv = append(kv, fmt.Sprintf("p%d", i), p)
	}
	return kv
}
