package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/AndreyAkinshin/rarlens/internal/analysis"
	"github.com/AndreyAkinshin/rarlens/internal/config"
	"github.com/AndreyAkinshin/rarlens/internal/errors"
	"github.com/AndreyAkinshin/rarlens/internal/logtree"
	"github.com/AndreyAkinshin/rarlens/internal/model"
	"github.com/AndreyAkinshin/rarlens/internal/rar"
)

// analyzeOptions holds the flags of the analyze command.
type analyzeOptions struct {
	path     string
	format   string
	showTree bool
	help     bool
}

func parseAnalyzeArgs(args []string) (*analyzeOptions, error) {
	opts := &analyzeOptions{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			opts.help = true
		case arg == "--tree":
			opts.showTree = true
		case arg == "--format":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--format requires a value")
			}
			opts.format = args[i+1]
			i++
		case strings.HasPrefix(arg, "--format="):
			opts.format = strings.TrimPrefix(arg, "--format=")
		case arg != "-" && strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown flag: %s", arg)
		default:
			if opts.path != "" {
				return nil, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.path = arg
		}
	}
	return opts, nil
}

// cmdAnalyze loads a tree document, runs the analysis and prints the result.
func cmdAnalyze(args []string, gopts *GlobalOptions) int {
	opts, err := parseAnalyzeArgs(args)
	if err != nil {
		out.ErrorPrefix("analyze: %v", err)
		return errors.ExitConfigError
	}
	if opts.help {
		printAnalyzeUsage()
		return 0
	}
	if opts.path == "" {
		out.ErrorPrefix("analyze: tree document required (use - for stdin)")
		return errors.ExitConfigError
	}

	cfg, err := loadConfig(gopts.ConfigPath)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.showTree {
		cfg.Output.ShowTree = true
	}
	if err := config.ValidateFormat(cfg.Output.Format); err != nil {
		out.ErrorPrefix("%v", errors.Config(err.Error()))
		return errors.ExitConfigError
	}

	root, err := readTree(opts.path)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	summary := analysis.Run(root, analysis.Options{
		TaskNames: cfg.Analysis.TaskNames,
		OnInvocation: func(r model.InvocationResult) {
			out.Debug("%s %s (%s): used %d, unused %d", r.Project, r.Task, r.Duration, len(r.Used), len(r.Unused))
		},
	})

	if cfg.Output.Format != config.FormatText {
		data, err := logtree.Encode(root, cfg.Output.Format)
		if err != nil {
			out.ErrorPrefix("%v", errors.Wrap(err, "failed to encode tree"))
			return errors.ExitRuntimeError
		}
		if _, err := out.Out().Write(data); err != nil {
			out.ErrorPrefix("%v", errors.Wrap(err, "failed to write output"))
			return errors.ExitRuntimeError
		}
		return 0
	}

	out.Report(summary, rar.UsedReportFolder, rar.UnusedReportFolder)
	if cfg.Output.ShowTree {
		out.Section("Annotated tree")
		out.Tree(root)
	}
	return 0
}

// loadConfig resolves the configuration: an explicit path must exist,
// otherwise .rarlens.json in the working directory is used when present.
// Environment overrides are applied last.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err == nil {
			path = config.DefaultFileName
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, warnings, err := config.LoadAndValidate(path)
		for _, w := range warnings {
			out.Warning("%s", w)
		}
		if err != nil {
			return nil, &errors.Error{Kind: errors.KindConfig, Message: "invalid configuration", Path: path, Cause: err}
		}
		cfg = loaded
	}

	config.ApplyEnv(cfg, os.Getenv)
	return cfg, nil
}

// readTree decodes the tree document at path, or stdin for "-".
func readTree(path string) (*logtree.Node, error) {
	var root *logtree.Node
	var err error
	if path == "-" {
		root, err = logtree.DecodeReader(stdin)
	} else {
		root, err = logtree.Load(path)
	}
	if err != nil {
		return nil, errors.Input(path, err)
	}
	return root, nil
}

func printAnalyzeUsage() {
	out.HelpTitle("rarlens analyze - report used and unused assembly search paths")

	out.HelpSection("Usage:")
	out.HelpUsage("rarlens analyze <file> [--format=<format>] [--tree]")

	out.HelpSection("Options:")
	out.HelpFlag("--format=<format>", "Output format: text, yaml, json (default text)", helpFlagWidth)
	out.HelpFlag("--tree", "Print the annotated tree after the text report", helpFlagWidth)
	out.HelpFlag("-h, --help", "Show this help", helpFlagWidth)

	out.HelpSection("Examples:")
	out.HelpExample("rarlens analyze build.yaml", "")
	out.HelpExample("cat build.json | rarlens analyze - --format=json", "")
	out.Println("")
}
