package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hkmshb/elco/pkg/register/rules"
)

// RuleOutput describes a registered rule.
type RuleOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Severity string `json:"severity"`
}

// RunRules lists the validation rules.
func RunRules(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	asJSON := fs.Bool("json", false, "Output as JSON")
	category := fs.String("category", "", "Only list rules in this category")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			fmt.Fprintln(stdout, "Usage: elco-codes rules [--json] [--category NAME]")
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	registry := rules.NewDefaultRegistry()
	var out []RuleOutput
	for _, rule := range registry.AllRules() {
		if *category != "" && rule.Category() != *category {
			continue
		}
		out = append(out, RuleOutput{
			ID:       rule.ID(),
			Name:     rule.Name(),
			Category: rule.Category(),
			Severity: registry.Severity(rule.ID()).String(),
		})
	}

	if *asJSON {
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Fprintln(stdout, string(data))
		return exitSuccess
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tSEVERITY\tNAME")
	for _, r := range out {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Category, r.Severity, r.Name)
	}
	tw.Flush()
	return exitSuccess
}
