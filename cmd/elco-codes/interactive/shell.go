// Package interactive provides the elco-codes shell.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/hkmshb/elco/cmd/elco-codes/commands"
	"github.com/hkmshb/elco/pkg/register"
	"github.com/hkmshb/elco/pkg/register/rules"
	"github.com/hkmshb/elco/pkg/report"
	"github.com/hkmshb/elco/pkg/station"
	"github.com/hkmshb/elco/pkg/voltage"
)

// Shell runs code commands against an optionally loaded register.
type Shell struct {
	logger    *zap.Logger
	validator *register.Validator
	opts      register.Options

	file string
	reg  *register.Register
}

// New creates a shell validating with opts.
func New(logger *zap.Logger, opts register.Options) *Shell {
	return &Shell{
		logger:    logger,
		validator: register.NewValidator(rules.NewDefaultRegistry()),
		opts:      opts,
	}
}

// Run starts the interactive command loop on the terminal.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "elco> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	out := rl.Stdout()
	s.printHelp(out)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}
		if s.Exec(line, out) {
			return nil
		}
	}
}

// Exec runs one command line and reports whether the shell should exit.
func (s *Shell) Exec(line string, w io.Writer) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp(w)
	case "build", "b":
		commands.RunBuild(args, w, w)
	case "decode", "d":
		commands.RunDecode(args, w, w)
	case "check", "c":
		commands.RunCheck(args, w, w)
	case "ratios":
		s.cmdRatios(w, args)
	case "voltages":
		for _, l := range voltage.Levels() {
			fmt.Fprintf(w, "  %d  %-8s %s\n", l, l, levelName(l))
		}
	case "load", "l":
		s.cmdLoad(w, args)
	case "show", "s":
		s.cmdShow(w)
	case "validate", "v":
		s.cmdValidate(w)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(w, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) cmdRatios(w io.Writer, args []string) {
	list := voltage.Ratios()
	if len(args) > 0 {
		cat, err := station.ParseCategory(args[0])
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return
		}
		list = cat.Ratios()
	}
	for _, r := range list {
		fmt.Fprintf(w, "  %d  %-11s %s\n", r, r, r.Group())
	}
}

func (s *Shell) cmdLoad(w io.Writer, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: load <register.yaml>")
		return
	}
	reg, err := register.ParseFile(args[0])
	if err != nil {
		s.logger.Debug("load failed", zap.String("file", args[0]), zap.Error(err))
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	s.file, s.reg = args[0], reg
	fmt.Fprintf(w, "Loaded %s: %d stations, %d power lines, %d ratings, %d transformers\n",
		args[0], len(reg.Stations), len(reg.PowerLines), len(reg.Ratings), len(reg.Transformers))
}

func (s *Shell) cmdShow(w io.Writer) {
	if s.reg == nil {
		fmt.Fprintln(w, "No register loaded (use 'load <file>')")
		return
	}
	if s.reg.Name != "" {
		fmt.Fprintf(w, "Register: %s\n", s.reg.Name)
	}
	for _, st := range s.reg.Stations {
		fmt.Fprintf(w, "  station    %-8s %-12s %s\n", st.Code, st.Category, st.Ratio)
	}
	for _, p := range s.reg.PowerLines {
		fmt.Fprintf(w, "  powerline  %-8s %-12s %s\n", p.Code, p.Type, p.Voltage)
	}
	for _, r := range s.reg.Ratings {
		fmt.Fprintf(w, "  rating     %-8s %-12s %s\n", r.Code, fmt.Sprintf("%dKVA", r.Capacity), r.Ratio)
	}
	for _, t := range s.reg.Transformers {
		fmt.Fprintf(w, "  transformer %-7s %-12s %s (%s)\n", t.SerialNo, t.Station, t.Rating, t.Condition)
	}
}

func (s *Shell) cmdValidate(w io.Writer) {
	if s.reg == nil {
		fmt.Fprintln(w, "No register loaded (use 'load <file>')")
		return
	}
	rep := report.New()
	rep.Add(s.file, s.reg, s.validator.Validate(s.reg, s.opts))
	if err := rep.Encode(w, report.FormatText); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

func levelName(l voltage.Level) string {
	switch l {
	case voltage.HVoltH:
		return "high transmission"
	case voltage.HVoltL:
		return "low transmission"
	case voltage.MVoltH:
		return "high distribution"
	case voltage.MVoltL:
		return "low distribution"
	case voltage.LVolt:
		return "consumer"
	default:
		return ""
	}
}

func (s *Shell) printHelp(w io.Writer) {
	fmt.Fprintln(w, `
Commands:
  build <kva> <ratio>             Build a transformer rating code
  decode <code...>                Decode rating codes
  check <kind> <code...>          Check station, powerline or rating code format
  ratios [category]               List voltage ratios
  voltages                        List voltage levels
  load <file>                     Load a register file
  show                            Show the loaded register
  validate                        Validate the loaded register
  help                            Show this help
  quit                            Exit`)
}
