package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hkmshb/elco/pkg/rating"
)

// DecodeOutput describes a decoded rating code.
type DecodeOutput struct {
	Code        string   `json:"code"`
	Type        string   `json:"type"`
	CapacityKVA uint32   `json:"capacity_kva"`
	Ratios      []string `json:"ratios"`
}

// Describe decodes a rating code for display.
func Describe(code string) (DecodeOutput, error) {
	c, err := rating.ParseCode(code)
	if err != nil {
		return DecodeOutput{}, err
	}
	out := DecodeOutput{
		Code:        c.String(),
		Type:        c.Type.String(),
		CapacityKVA: c.Capacity(),
	}
	for _, r := range c.Ratios() {
		out.Ratios = append(out.Ratios, r.String())
	}
	return out, nil
}

// RunDecode runs the decode command.
func RunDecode(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	asJSON := fs.Bool("json", false, "Output as JSON")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printDecodeUsage(stdout)
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: no rating code specified")
		printDecodeUsage(stderr)
		return exitCommandError
	}

	exitCode := exitSuccess
	var decoded []DecodeOutput
	for _, code := range fs.Args() {
		out, err := Describe(code)
		if err != nil {
			printCodecError(stderr, err)
			exitCode = exitValidation
			continue
		}
		decoded = append(decoded, out)
	}

	if *asJSON {
		data, _ := json.MarshalIndent(decoded, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return exitCode
	}

	for _, d := range decoded {
		fmt.Fprintln(stdout, d.Code)
		fmt.Fprintf(stdout, "  Type:     %s\n", d.Type)
		fmt.Fprintf(stdout, "  Capacity: %dKVA\n", d.CapacityKVA)
		fmt.Fprintf(stdout, "  Ratios:   %s\n", strings.Join(d.Ratios, ", "))
	}
	return exitCode
}

func printDecodeUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: elco-codes decode [--json] <rating-code...>

Examples:
  elco-codes decode P375m
  elco-codes decode --json P360M D3500`)
}
