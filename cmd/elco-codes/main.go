// elco-codes builds, decodes and checks electricity asset codes and
// validates asset registers.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/hkmshb/elco/cmd/elco-codes/commands"
	"github.com/hkmshb/elco/cmd/elco-codes/interactive"
	"github.com/hkmshb/elco/pkg/logging"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "build":
		exitCode = commands.RunBuild(args, os.Stdout, os.Stderr)
	case "decode":
		exitCode = commands.RunDecode(args, os.Stdout, os.Stderr)
	case "check":
		exitCode = commands.RunCheck(args, os.Stdout, os.Stderr)
	case "rules":
		exitCode = commands.RunRules(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = runShell()
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("elco-codes version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage(os.Stderr)
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func runShell() int {
	cfg, err := commands.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, commands.ServiceName, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer logger.Sync() //nolint:errcheck

	opts, _ := cfg.ValidateOptions()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	if err := interactive.New(logger, opts).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `elco-codes - electricity asset code tool

Usage:
  elco-codes <command> [options] [args...]

Commands:
  validate   Validate asset register files
  build      Build a transformer rating code from capacity and voltage ratio
  decode     Decode transformer rating codes
  check      Check the format of station, power line or rating codes
  rules      List validation rules
  shell      Start an interactive shell

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  elco-codes validate register.yaml
  elco-codes build --capacity 7500 --ratio 132/33KV
  elco-codes decode P375m
  elco-codes check station S30001

For command-specific help, run:
  elco-codes <command> --help`)
}
