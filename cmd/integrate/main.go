package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BTBurke/rngen/pkg/cli"
	"github.com/BTBurke/rngen/pkg/crash"
	"github.com/BTBurke/rngen/pkg/integrate"
	"github.com/gosuri/uitable"
	"github.com/spf13/pflag"
)

type options struct {
	expr    string
	a       string
	b       string
	options []integrate.ConfigOption
}

func handleOption(o *options) cli.Handler {
	return func(name string, value string) error {
		switch name {
		case "expr":
			o.expr = value
		case "a":
			o.a = value
		case "b":
			o.b = value
		case "steps":
			o.options = append(o.options, integrate.Steps(value))
		case "n":
			o.options = append(o.options, integrate.Sizes(value))
		case "seed":
			o.options = append(o.options, integrate.Seed(value))
		default:
			return fmt.Errorf("unknown option: %s", name)
		}
		return nil
	}
}

func main() {
	fs := pflag.NewFlagSet("integrate", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "Use yaml configuration file")
	fs.StringP("expr", "f", "", "Integrand in x, e.g. 'x**2' or 'sin(x)'.  Prompted for when empty.")
	fs.String("a", "1", "Start of the integration interval")
	fs.String("b", fmt.Sprint(math.E), "End of the integration interval")
	fs.Int("steps", 200000, "Number of midpoint rectangles for the reference integral")
	fs.String("n", "10,50,100", "Comma separated Monte Carlo sample sizes")
	fs.StringP("seed", "s", "", "Seed for reproducible estimates.  Prompted for when the integrand is.")
	fs.BoolP("verbose", "v", false, "Log each estimate")
	fs.Bool("no-error-reporting", false, "Never send unexpected errors to the crash reporting service")

	o := &options{a: "1", b: fmt.Sprint(math.E)}
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

	fmt.Println("Monte Carlo estimate of a definite integral (random partition rectangles)")
	cfg, errs := integrate.NewConfig(append([]integrate.ConfigOption{integrate.Interval(o.a, o.b)}, o.options...)...)
	if len(errs) > 0 {
		fmt.Println("Error in config:")
		for _, e := range errs {
			fmt.Println(e)
		}
		os.Exit(2)
	}
	fmt.Printf("Interval: [%g, %g]\n", cfg.A, cfg.B)

	mid := (cfg.A + cfg.B) / 2.0
	in := bufio.NewReader(os.Stdin)
	var e *integrate.Expression
	if o.expr != "" {
		var err error
		if e, err = integrate.Compile(o.expr, mid); err != nil {
			fmt.Println("Error in expression:", err)
			os.Exit(2)
		}
	} else {
		e = promptExpression(in, os.Stdout, mid)
		if e == nil {
			os.Exit(1)
		}
		if !cfg.Seeded {
			cfg = promptSeed(in, os.Stdout, cfg)
		}
	}

	fmt.Printf("Function: f(x) = %s\n", e)
	fmt.Println("Computing the reference integral (midpoint rule)...")
	report, err := integrate.Run(e.Func(), cfg, log)
	if err != nil {
		reporter.ReportError(err)
		fmt.Println("Integration error:", err)
		reporter.Wait()
		os.Exit(1)
	}
	fmt.Printf("Reference value: %.12f\n\n", report.Reference)
	fmt.Println(render(report))
}

// promptExpression asks for an integrand until one compiles.  It returns nil at end of input.
func promptExpression(in *bufio.Reader, out io.Writer, mid float64) *integrate.Expression {
	for {
		fmt.Fprint(out, "Enter f(x) (e.g. 'x', 'x**2', 'sin(x)'): ")
		line, err := in.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			e, cerr := integrate.Compile(line, mid)
			if cerr == nil {
				return e
			}
			fmt.Fprintf(out, "Error in expression: %v.  Try again.\n", cerr)
		} else if err == nil {
			fmt.Fprintln(out, "No expression given.  Try again.")
		}
		if err != nil {
			fmt.Fprintln(out)
			return nil
		}
	}
}

// promptSeed asks for an optional seed.  Invalid input keeps the clock seeded default.
func promptSeed(in *bufio.Reader, out io.Writer, cfg integrate.Config) integrate.Config {
	fmt.Fprint(out, "Optional seed (unsigned integer) for reproducible estimates, or Enter: ")
	line, _ := in.ReadString('\n')
	if err := integrate.Seed(strings.TrimSpace(line))(&cfg); err != nil {
		fmt.Fprintln(out, "Invalid seed, using a clock seed.")
	}
	return cfg
}

func render(r *integrate.Report) *uitable.Table {
	table := uitable.New()
	table.AddRow("N", "ESTIMATE", "ABS ERROR", "REL ERROR [%]")
	for _, e := range r.Estimates {
		table.AddRow(e.N, fmt.Sprintf("%.12f", e.Value), fmt.Sprintf("%.12f", e.AbsErr), fmt.Sprintf("%.6f", e.RelErr))
	}
	return table
}
