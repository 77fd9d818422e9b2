package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BTBurke/rngen/pkg/cli"
	"github.com/BTBurke/rngen/pkg/crash"
	"github.com/BTBurke/rngen/pkg/rng"
	"github.com/BTBurke/rngen/pkg/stat"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/pflag"
)

type options struct {
	seed      uint64
	n         int
	tolerance stat.Tolerance
	only      map[string]bool
}

func handleOption(o *options) cli.Handler {
	return func(name string, value string) error {
		switch name {
		case "seed":
			s, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return fmt.Errorf("could not convert seed %q to an unsigned integer", value)
			}
			o.seed = s
		case "n":
			n, err := strconv.Atoi(value)
			if err != nil || n < 2 {
				return fmt.Errorf("n must be an integer >= 2, got %q", value)
			}
			o.n = n
		case "tolerance":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil || v < 0 {
				return fmt.Errorf("tolerance must be a non-negative number, got %q", value)
			}
			o.tolerance.Relative = v
		case "sigma":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil || v < 0 {
				return fmt.Errorf("sigma must be a non-negative number, got %q", value)
			}
			o.tolerance.Sigma = v
		case "only":
			for _, d := range strings.Split(value, ",") {
				if d = strings.TrimSpace(strings.ToLower(d)); d != "" {
					o.only[d] = true
				}
			}
		default:
			return fmt.Errorf("unknown option: %s", name)
		}
		return nil
	}
}

func main() {
	fs := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "Use yaml configuration file")
	fs.Uint64P("seed", "s", 0, "Base seed, case i is seeded with seed+i.  Defaults to the clock.")
	fs.Int("n", 100000, "Number of draws per distribution")
	fs.Float64("tolerance", 0.05, "Allowed relative error of the mean and variance")
	fs.Float64("sigma", 4.0, "Allowed error in standard errors when wider than the relative tolerance")
	fs.String("only", "", "Comma separated distributions to check, e.g. normal,poisson")
	fs.BoolP("verbose", "v", false, "Log each check")
	fs.Bool("no-error-reporting", false, "Never send unexpected errors to the crash reporting service")

	o := &options{
		seed:      rng.GenerateSeed(),
		n:         100000,
		tolerance: stat.DefaultTolerance(),
		only:      make(map[string]bool),
	}
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

	var cases []stat.Case
	for _, c := range stat.DefaultCases() {
		if len(o.only) == 0 || o.only[c.Name.Distribution()] {
			cases = append(cases, c)
		}
	}
	if len(cases) == 0 {
		fmt.Printf("No distributions match --only, expected some of: %s\n", strings.Join(rng.Distributions(), ", "))
		os.Exit(2)
	}

	log.Info().Uint64("seed", o.seed).Int("n", o.n).Int("cases", len(cases)).Msg("checking moments")
	start := time.Now()
	s := &stat.Suite{
		Seed:      o.seed,
		N:         o.n,
		Tolerance: o.tolerance,
		Cases:     cases,
		Log:       log,
	}
	results := s.Run()
	log.Info().Dur("elapsed", time.Since(start)).Msg("done")

	fmt.Println(render(results))
	for _, r := range results {
		if r.Err != nil {
			reporter.ReportError(r.Err)
		}
	}
	if failed := stat.Failed(results); len(failed) > 0 {
		fmt.Printf("\n%s %d of %d distributions outside tolerance\n", color.RedString("FAIL"), len(failed), len(results))
		reporter.Wait()
		os.Exit(1)
	}
	fmt.Printf("\n%s all %d distributions within tolerance\n", color.GreenString("OK"), len(results))
}

func render(results []stat.Result) *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("DISTRIBUTION", "MEAN", "EMPIRICAL", "VARIANCE", "EMPIRICAL", "STDERR", "RESULT")
	for _, r := range results {
		if r.Err != nil {
			table.AddRow(r.Name, "", "", "", "", "", color.RedString("ERROR %v", r.Err))
			continue
		}
		table.AddRow(
			r.Name,
			fmt.Sprintf("%.6f", r.Theoretical.Mean),
			mark(fmt.Sprintf("%.6f", r.Empirical.Mean), r.MeanPass),
			fmt.Sprintf("%.6f", r.Theoretical.Variance),
			mark(fmt.Sprintf("%.6f", r.Empirical.Variance), r.VarPass),
			fmt.Sprintf("%.6f", r.StdErr),
			result(r.Pass()),
		)
	}
	return table
}

func mark(s string, ok bool) string {
	if ok {
		return s
	}
	return color.RedString(s)
}

func result(ok bool) string {
	if ok {
		return color.GreenString("PASS")
	}
	return color.RedString("FAIL")
}
