// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrogenie/genie"
	"github.com/retroenv/retrogenie/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && !hasInputSource(opts)) {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if err := validateOptionCombinations(opts, args); err != nil {
		return opts, err
	}

	opts.Entries = args
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage information.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	fmt.Printf("usage: retrogenie [options] <code or address:value[:compare]> ...\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// hasInputSource returns whether the options provide entries without
// positional arguments.
func hasInputSource(opts options.Program) bool {
	return opts.Input != "" || opts.Batch != "" || opts.Script != "" || opts.Interactive
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		// entries never start with a dash
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after first entry, please pass all options before the entries", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)
	validFormats := []string{options.FormatText, options.FormatPlain}
	valid := false
	for _, format := range validFormats {
		if opts.Format == format {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported output format: %s. Valid options: %s",
			opts.Format, strings.Join(validFormats, ", "))
	}

	opts.System = strings.ToLower(strings.TrimSpace(opts.System))
	if opts.System == "" {
		return nil
	}
	system, err := genie.ParseSystem(opts.System)
	if err != nil {
		names := make([]string, 0, len(genie.Systems()))
		for _, s := range genie.Systems() {
			names = append(names, s.String())
		}
		return fmt.Errorf("unsupported system: %s. Valid options: %s", opts.System, strings.Join(names, ", "))
	}
	opts.System = system.String()
	return nil
}

// validateOptionCombinations rejects options that can not be used together.
func validateOptionCombinations(opts options.Program, args []string) error {
	if opts.Decode && opts.Encode {
		return &UsageError{msg: "the options -d and -e can not be used together"}
	}
	if opts.Input != "" && opts.Batch != "" {
		return &UsageError{msg: "the options -i and -batch can not be used together"}
	}
	if opts.Interactive && (len(args) > 0 || opts.Input != "" || opts.Batch != "") {
		return &UsageError{msg: "interactive mode does not take entries"}
	}
	if opts.Script != "" && opts.Interactive {
		return &UsageError{msg: "the options -script and -interactive can not be used together"}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "input file with one code or patch per line")
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of files matching the given pattern, for example *.txt")
	flags.StringVar(&opts.Script, "script", "", "run a Lua script that can use the genie module")
	flags.StringVar(&opts.System, "s", "", "system of the codes (nes, snes, genesis, gb) - auto-detected from codes if not given")
	flags.BoolVar(&opts.Decode, "d", false, "decode all entries as Game Genie codes")
	flags.BoolVar(&opts.Encode, "e", false, "encode all entries as address:value[:compare] patches")
	flags.BoolVar(&opts.Interactive, "interactive", false, "start an interactive conversion session")
	flags.BoolVar(&opts.Verify, "verify", false, "verify every conversion by converting the result back")
	flags.BoolVar(&opts.Clipboard, "clip", false, "copy the last result to the clipboard")
	flags.StringVar(&opts.Format, "format", options.FormatText, "output format (text/plain)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
