// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/mnafees/chopper/v2/internal/options"
)

// ErrHelp is returned when usage was requested with -h or --help.
var ErrHelp = errors.New("help requested")

// ParseFlags parses the command line arguments, without the program name,
// and returns the program options.
func ParseFlags(args []string) (options.Program, error) {
	var opts options.Program
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "chopper"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return opts, &UsageError{parser: parser, err: ErrHelp}
		}
		return opts, &UsageError{parser: parser, err: err}
	}
	if len(rest) > 0 {
		return opts, &UsageError{
			parser: parser,
			err:    fmt.Errorf("unexpected argument %q after program file", rest[0]),
		}
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, &UsageError{parser: parser, err: err}
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	parser *flags.Parser
	err    error
}

func (e *UsageError) Error() string {
	return e.err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.err
}

// ShowUsage prints the usage to stdout.
func (e *UsageError) ShowUsage() {
	e.WriteUsage(os.Stdout)
}

// WriteUsage writes the usage to w.
func (e *UsageError) WriteUsage(w io.Writer) {
	e.parser.WriteHelp(w)
}

// normalizeOptions validates option values and applies implied options.
func normalizeOptions(opts *options.Program) error {
	if opts.Hertz <= 0 {
		return fmt.Errorf("invalid instruction rate %d, must be greater than 0", opts.Hertz)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d, must be greater than 0", opts.Scale)
	}

	switch opts.Frontend {
	case options.FrontendSDL, options.FrontendTerminal:
	default:
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s, %s",
			opts.Frontend, options.FrontendSDL, options.FrontendTerminal)
	}

	if opts.Trace {
		opts.Debug = true
	}
	if opts.Debug {
		opts.Quiet = false
	}
	return nil
}
