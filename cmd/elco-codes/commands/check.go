package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/powerline"
	"github.com/hkmshb/elco/pkg/rating"
	"github.com/hkmshb/elco/pkg/station"
)

var formatCheckers = map[string]func(string) error{
	"station":   station.ValidateFormat,
	"powerline": powerline.ValidateFormat,
	"rating":    rating.ValidateFormat,
}

// RunCheck runs the check command: a format check of one or more codes.
func RunCheck(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		printCheckUsage(stdout)
		return exitSuccess
	}
	if len(args) < 2 {
		fmt.Fprintln(stderr, "Error: expected a code kind and at least one code")
		printCheckUsage(stderr)
		return exitCommandError
	}

	kind := strings.ToLower(args[0])
	validate, ok := formatCheckers[kind]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown code kind %q (expected station, powerline or rating)\n", args[0])
		return exitCommandError
	}

	exitCode := exitSuccess
	for _, code := range args[1:] {
		if err := validate(code); err != nil {
			fmt.Fprintf(stdout, "%s: %s: %v\n", code, check.Kind(err), err)
			exitCode = exitValidation
			continue
		}
		fmt.Fprintf(stdout, "%s: OK\n", code)
	}
	return exitCode
}

func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: elco-codes check <station|powerline|rating> <code...>

Examples:
  elco-codes check station T101 S30001
  elco-codes check powerline F301 U1
  elco-codes check rating P375m`)
}
