// Package cli holds the flag, configuration file and logging plumbing shared by the commands.
package cli

import (
	"fmt"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/go-yaml/yaml"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Handler turns a flag or configuration key and its value into an option.  Unknown names must
// return an error.
type Handler func(name string, value string) error

// Parse parses args and passes every flag to handle in command line order.  A --config flag names a
// yaml file whose keys are handled, in sorted order, at the position of the flag, so later flags
// override the file.  Flags that only affect the command itself (help, verbose) are set but not
// handled, whether they come from the command line or the file.
func Parse(fs *pflag.FlagSet, args []string, handle Handler, local ...string) error {
	skip := make(map[string]bool)
	for _, l := range append(local, "help") {
		skip[l] = true
	}
	return fs.ParseAll(args, func(flag *pflag.Flag, value string) error {
		if err := fs.Set(flag.Name, value); err != nil {
			return err
		}
		switch {
		case flag.Name == "config":
			kv, err := ReadFile(value)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(kv))
			for k := range kv {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				if f := fs.Lookup(k); f != nil && k != "config" {
					if err := fs.Set(k, kv[k]); err != nil {
						return fmt.Errorf("%s: %v", value, err)
					}
				}
				if skip[k] {
					continue
				}
				if err := handle(k, kv[k]); err != nil {
					return fmt.Errorf("%s: %v", value, err)
				}
			}
			return nil
		case skip[flag.Name]:
			return nil
		default:
			return handle(flag.Name, value)
		}
	})
}

// ReadFile reads a flat yaml configuration file.  Scalars are converted to their string form and
// lists are joined with commas, matching the command line syntax.
func ReadFile(fpath string) (map[string]string, error) {
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	cfg := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %v", fpath, err)
	}
	out := make(map[string]string, len(cfg))
	for k, v := range cfg {
		switch val := v.(type) {
		case string:
			out[k] = val
		case int, int64, float64, bool:
			out[k] = fmt.Sprint(val)
		case []interface{}:
			items := make([]string, 0, len(val))
			for _, item := range val {
				items = append(items, fmt.Sprint(item))
			}
			out[k] = strings.Join(items, ",")
		case nil:
			out[k] = ""
		default:
			return nil, fmt.Errorf("could not process config key %s, unknown type", k)
		}
	}
	return out, nil
}

// Logger returns a console logger on stderr at info level, or debug level when verbose
func Logger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
