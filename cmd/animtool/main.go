// animtool is a CLI utility for inspecting and sampling animation timelines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/midgard-anim/internal/config"
	"github.com/Faultbox/midgard-anim/internal/logger"
)

// errUsage marks errors caused by bad command-line input.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}

	command := args[0]
	args = args[1:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args, stdout, stderr)
	case "validate", "check":
		err = cmdValidate(args, stdout, stderr)
	case "sample":
		err = cmdSample(args, stdout, stderr)
	case "play":
		err = cmdPlay(args, stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", command)
		printUsage(stderr)
		return 2
	}

	logger.Sync()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		fmt.Fprintln(stderr, err)
		return 2
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `animtool - animation timeline utility

Usage:
  animtool <command> [options] <file.yaml>...

Commands:
  info <file.yaml>         Show the timeline tree and durations
  validate <file.yaml>...  Load and evaluate every node, report all errors
  sample <file.yaml>       Print state and value at regular times
  play <file.yaml>...      Simulate a frame loop over all tracks
  help                     Show this help

Common options:
  -config <path>  Config file (default ./animtool.yaml or the user config dir)
  -debug          Enable debug logging
  -log <path>     Also write logs to a rotating file

Examples:
  animtool info walk.yaml
  animtool sample -step 50ms -end 2s walk.yaml
  animtool play -fps 30 walk.yaml bob.yaml
  animtool play -matrix -point 1,0,0 arm.yaml`)
}

// setup parses the flags of one command, loads the config and starts
// logging. extra registers command-specific flags.
func setup(name string, args []string, stderr io.Writer, extra func(*flag.FlagSet)) (*config.Config, *flag.FlagSet, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var flags config.Flags
	flags.Register(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	cfg, err := config.Load(&flags)
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(cfg.Logging); err != nil {
		return nil, nil, err
	}
	return cfg, fs, nil
}
