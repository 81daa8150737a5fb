// Package config parses the command-line settings of the rref program.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/rref/matrix"
)

// MaxPrecision bounds the printed decimals; float64 carries about 15-17
// significant digits.
const MaxPrecision = 15

// ErrInvalidFlag reports a flag value outside its accepted range.
var ErrInvalidFlag = errors.New("config: invalid flag value")

// Config holds the parsed command-line settings.
type Config struct {
	Epsilon   float64
	Precision int
	File      string
	Verbose   bool
}

// Parse reads args (without the program name). Usage and flag errors are
// written to errOut. A -h/-help request returns flag.ErrHelp.
func Parse(args []string, errOut io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("rref", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Float64Var(&cfg.Epsilon, "eps", matrix.DefaultEpsilon, "absolute tolerance below which a value counts as zero")
	fs.IntVar(&cfg.Precision, "precision", 3, "decimals printed per matrix entry")
	fs.StringVar(&cfg.File, "file", "", "read the matrix from this file instead of prompting")
	fs.BoolVar(&cfg.Verbose, "v", false, "log pivot placement to stderr")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlag, fs.Arg(0))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("%w: -eps must be finite and >= 0, got %v", ErrInvalidFlag, c.Epsilon)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: -precision must be in [0,%d], got %d", ErrInvalidFlag, MaxPrecision, c.Precision)
	}

	return nil
}

// Options converts the settings into matrix options.
func (c *Config) Options() []matrix.Option {
	return []matrix.Option{matrix.WithEpsilon(c.Epsilon)}
}
