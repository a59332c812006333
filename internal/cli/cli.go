// Package cli provides command-line interface functionality for rarlens.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AndreyAkinshin/rarlens/internal/config"
	"github.com/AndreyAkinshin/rarlens/internal/errors"
	"github.com/AndreyAkinshin/rarlens/internal/output"
)

// Version is set at build time.
var Version = "dev"

// out is the shared output writer for CLI commands.
var out = output.New()

// stdin is read when the tree document path is "-".
var stdin io.Reader = os.Stdin

// Help text alignment widths for consistent formatting.
const (
	helpCommandWidth = 16
	helpFlagWidth    = 18
)

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return 0
	case "--version", "version":
		out.Println("rarlens %s", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	if len(remaining) == 0 {
		printUsage()
		return 0
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "analyze":
		return cmdAnalyze(cmdArgs, opts)
	case "validate":
		return cmdValidate(cmdArgs)
	case "version":
		out.Println("rarlens %s", Version)
		return 0
	case "help":
		printUsage()
		return 0
	default:
		out.ErrorPrefix("unknown command %q", cmd)
		out.Errorln("  run 'rarlens help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet      bool
	Verbose    bool
	ConfigPath string
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Global flags may appear anywhere in the argument list; everything else is
// left in place for the command to parse.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			opts.ConfigPath = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			if opts.ConfigPath == "" {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			i++
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	if err := validateGlobalOptions(opts); err != nil {
		return nil, nil, err
	}

	applyVerbosityToOutput(opts)

	return opts, remaining, nil
}

// validateGlobalOptions checks that global options are valid.
func validateGlobalOptions(opts *GlobalOptions) error {
	if opts.Quiet && opts.Verbose {
		return fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

// applyVerbosityToOutput configures the output writer based on verbosity settings.
func applyVerbosityToOutput(opts *GlobalOptions) {
	out.SetQuiet(opts.Quiet)
	out.SetVerbose(opts.Verbose)
}

func printUsage() {
	out.HelpTitle("rarlens - search path usage analysis for ResolveAssemblyReference logs")

	out.HelpSection("Usage:")
	out.HelpUsage("rarlens [flags] <command> [args]")

	out.HelpSection("Commands:")
	out.HelpCommand("analyze <file>", "Analyze a build tree document (use - for stdin)", helpCommandWidth)
	out.HelpCommand("validate <file>", "Validate a build tree document", helpCommandWidth)
	out.HelpCommand("version", "Show version information", helpCommandWidth)
	out.HelpCommand("help", "Show this help", helpCommandWidth)

	printGlobalFlags()

	out.HelpSection("Examples:")
	out.HelpExample("rarlens analyze build.yaml", "Print used and unused search paths")
	out.HelpExample("rarlens analyze build.yaml --format=yaml", "Emit the annotated tree")
	out.HelpExample("rarlens validate build.json", "Check a document against the tree schema")
	out.Println("")
}

func printGlobalFlags() {
	out.HelpSection("Global Flags:")
	out.HelpFlag("-q, --quiet", "Print the report only", helpFlagWidth)
	out.HelpFlag("-v, --verbose", "Print per-invocation details on stderr", helpFlagWidth)
	out.HelpFlag("--config=<path>", "Configuration file (default "+config.DefaultFileName+")", helpFlagWidth)
	out.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	out.HelpFlag("--version", "Show version", helpFlagWidth)

	out.HelpSection("Environment:")
	out.HelpEnvVar(config.FormatEnvVar, "Default output format (text, yaml, json)", helpFlagWidth)
	out.HelpEnvVar("NO_COLOR", "Disable colored output", helpFlagWidth)
}
