package commands

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/rating"
)

// RunBuild runs the build command. The capacity and ratio are given either
// as flags or as two positional arguments.
func RunBuild(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	capacityText := fs.String("capacity", "", "Capacity in KVA")
	ratio := fs.String("ratio", "", "Voltage ratio, e.g. 33/11KV")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printBuildUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if *capacityText == "" && *ratio == "" && fs.NArg() >= 2 {
		*capacityText = fs.Arg(0)
		*ratio = strings.Join(fs.Args()[1:], "")
	}
	if *capacityText == "" || *ratio == "" {
		fmt.Fprintln(stderr, "Error: capacity and ratio are required")
		printBuildUsage(stderr)
		return exitCommandError
	}

	capacity, err := strconv.ParseUint(strings.TrimSpace(*capacityText), 10, 32)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s: capacity %q is not a whole number of KVA\n",
			check.Kind(check.ErrInvalidCapacity), *capacityText)
		return exitValidation
	}

	code, err := rating.BuildFromText(uint32(capacity), *ratio)
	if err != nil {
		printCodecError(stderr, err)
		return exitValidation
	}

	fmt.Fprintln(stdout, code)
	return exitSuccess
}

// printCodecError writes err prefixed with its kind name.
func printCodecError(w io.Writer, err error) {
	if kind := check.Kind(err); kind != "" {
		fmt.Fprintf(w, "Error: %s: %v\n", kind, err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: elco-codes build --capacity KVA --ratio RATIO
       elco-codes build KVA RATIO

Examples:
  elco-codes build --capacity 60000 --ratio 132/33KV   # P360M
  elco-codes build 500 33/0.415KV                      # D3500`)
}
