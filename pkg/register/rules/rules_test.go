package rules

import (
	"strings"
	"testing"

	"github.com/hkmshb/elco/pkg/register"
)

func parse(t *testing.T, input string) *register.Register {
	t.Helper()
	reg, err := register.ParseBytes([]byte(input))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	return reg
}

type ruleCase struct {
	name     string
	input    string
	want     int
	wantKind string
}

func runRuleCases(t *testing.T, rule register.Rule, tests []ruleCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := rule.Check(parse(t, tt.input))
			if len(violations) != tt.want {
				t.Fatalf("%s: got %d violations, want %d: %v", rule.ID(), len(violations), tt.want, violations)
			}
			if tt.wantKind != "" && violations[0].Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", violations[0].Kind, tt.wantKind)
			}
		})
	}
}

func TestSTN001_CodeFormat(t *testing.T) {
	runRuleCases(t, NewSTN001(), []ruleCase{
		{"valid", "stations:\n  - code: T301\n  - code: S30A1F\n", 0, ""},
		{"lower case accepted", "stations:\n  - code: i301\n", 0, ""},
		{"bad start", "stations:\n  - code: X301\n", 1, "InvalidFormat"},
		{"zero suffix", "stations:\n  - code: T300\n", 1, "InvalidFormat"},
		{"injection digit", "stations:\n  - code: I101\n", 1, "InvalidFormat"},
		{"missing code", "stations:\n  - name: nameless\n", 1, "RequiredFieldMissing"},
	})
}

func TestSTN002_RatioForCategory(t *testing.T) {
	runRuleCases(t, NewSTN002(), []ruleCase{
		{"allowed", "stations:\n  - code: I301\n    category: injection\n    voltage_ratio: 33/11KV\n", 0, ""},
		{"not allowed", "stations:\n  - code: I301\n    category: injection\n    voltage_ratio: 132/33KV\n", 1, "InvalidVoltageRatio"},
		{"transformer only ratio", "stations:\n  - code: T301\n    category: T\n    voltage_ratio: 132/11KV\n", 1, "InvalidVoltageRatio"},
		{"missing category", "stations:\n  - code: I301\n    voltage_ratio: 33/11KV\n", 1, "RequiredFieldMissing"},
		{"missing ratio", "stations:\n  - code: I301\n    category: injection\n", 1, "RequiredFieldMissing"},
	})
}

func TestSTN003_CodeMatchesCategory(t *testing.T) {
	runRuleCases(t, NewSTN003(), []ruleCase{
		{"match", "stations:\n  - code: S30001\n    category: distribution\n", 0, ""},
		{"mismatch", "stations:\n  - code: T301\n    category: injection\n", 1, "InvalidFormat"},
		{"bad code skipped", "stations:\n  - code: X301\n    category: injection\n", 0, ""},
	})
}

func TestSTN004_CodeMatchesRatio(t *testing.T) {
	runRuleCases(t, NewSTN004(), []ruleCase{
		{"match", "stations:\n  - code: S10001\n    voltage_ratio: 11/0.415KV\n", 0, ""},
		{"mismatch", "stations:\n  - code: S30001\n    voltage_ratio: 11/0.415KV\n", 1, "CodeRatioMismatch"},
		{"transmission", "stations:\n  - code: T101\n    voltage_ratio: 132/33KV\n", 0, ""},
		{"transmission 330", "stations:\n  - code: T101\n    voltage_ratio: 330/132KV\n", 1, "CodeRatioMismatch"},
	})
}

func TestSTN005_SourceFeederVoltage(t *testing.T) {
	lines := "power_lines:\n  - code: F301\n    type: feeder\n    voltage: 33KV\n  - code: F101\n    type: feeder\n    voltage: 11KV\n"
	runRuleCases(t, NewSTN005(), []ruleCase{
		{"injection on 33KV", lines + "stations:\n  - code: I301\n    category: injection\n    voltage_ratio: 33/11KV\n    source_feeder: F301\n", 0, ""},
		{"injection on 11KV", lines + "stations:\n  - code: I301\n    category: injection\n    voltage_ratio: 33/11KV\n    source_feeder: F101\n", 1, "SourceFeederVoltageMismatch"},
		{"distribution 11KV", lines + "stations:\n  - code: S10001\n    category: distribution\n    voltage_ratio: 11/0.415KV\n    source_feeder: F101\n", 0, ""},
		{"distribution 33KV", lines + "stations:\n  - code: S30001\n    category: distribution\n    voltage_ratio: 33/0.415KV\n    source_feeder: F301\n", 0, ""},
		{"transmission", lines + "stations:\n  - code: T301\n    category: transmission\n    voltage_ratio: 132/33KV\n    source_feeder: F301\n", 1, "SourceFeederNotSupported"},
		{"unknown feeder skipped", lines + "stations:\n  - code: I301\n    category: injection\n    voltage_ratio: 33/11KV\n    source_feeder: F3FF\n", 0, ""},
	})
}

func TestPLN_Rules(t *testing.T) {
	runRuleCases(t, NewPLN001(), []ruleCase{
		{"feeder", "power_lines:\n  - code: F30A\n", 0, ""},
		{"upriser", "power_lines:\n  - code: U1\n", 0, ""},
		{"bad digit", "power_lines:\n  - code: F201\n", 1, "InvalidFormat"},
		{"long upriser", "power_lines:\n  - code: U11\n", 1, "InvalidFormat"},
		{"missing", "power_lines:\n  - name: x\n", 1, "RequiredFieldMissing"},
	})
	runRuleCases(t, NewPLN002(), []ruleCase{
		{"match", "power_lines:\n  - code: F301\n    type: feeder\n", 0, ""},
		{"mismatch", "power_lines:\n  - code: U1\n    type: feeder\n", 1, "InvalidFormat"},
		{"missing type", "power_lines:\n  - code: U1\n", 1, "RequiredFieldMissing"},
	})
	runRuleCases(t, NewPLN003(), []ruleCase{
		{"feeder 11KV", "power_lines:\n  - code: F101\n    type: feeder\n    voltage: 11KV\n", 0, ""},
		{"feeder 0.415KV", "power_lines:\n  - code: F101\n    type: feeder\n    voltage: 0.415KV\n", 1, "InvalidVoltage"},
		{"upriser 11KV", "power_lines:\n  - code: U1\n    type: upriser\n    voltage: 11KV\n", 1, "InvalidVoltage"},
		{"missing voltage", "power_lines:\n  - code: U1\n    type: upriser\n", 1, "RequiredFieldMissing"},
	})
	runRuleCases(t, NewPLN004(), []ruleCase{
		{"match", "power_lines:\n  - code: F301\n    voltage: 33KV\n", 0, ""},
		{"mismatch", "power_lines:\n  - code: F301\n    voltage: 11KV\n", 1, "CodeVoltageMismatch"},
		{"upriser", "power_lines:\n  - code: U2\n    voltage: 0.415KV\n", 0, ""},
		{"upriser high voltage", "power_lines:\n  - code: U2\n    voltage: 33KV\n", 1, "CodeVoltageMismatch"},
	})
	runRuleCases(t, NewPLN005(), []ruleCase{
		{"present", "power_lines:\n  - code: F301\n    source_station: T301\n", 0, ""},
		{"missing", "power_lines:\n  - code: F301\n", 1, "RequiredFieldMissing"},
	})
}

func TestTXR001_CodeFormat(t *testing.T) {
	runRuleCases(t, NewTXR001(), []ruleCase{
		{"valid", "ratings:\n  - code: P360M\n  - code: D3500\n", 0, ""},
		{"bad multiplier", "ratings:\n  - code: P360K\n", 1, "InvalidFormat"},
		{"missing", "ratings:\n  - capacity: 500\n", 1, "RequiredFieldMissing"},
	})
}

func TestTXR002_CodeMatchesValues(t *testing.T) {
	runRuleCases(t, NewTXR002(), []ruleCase{
		{"match", "ratings:\n  - code: P375m\n    capacity: 7500\n    voltage_ratio: 132/33KV\n", 0, ""},
		{"wrong multiplier case", "ratings:\n  - code: P375M\n    capacity: 7500\n    voltage_ratio: 132/33KV\n", 1, "RatingMismatch"},
		{"p1 with 132/33", "ratings:\n  - code: P115m\n    capacity: 1500\n    voltage_ratio: 132/33KV\n", 1, "RatingMismatch"},
		{"both wrong", "ratings:\n  - code: P360M\n    capacity: 500\n    voltage_ratio: 11/0.415KV\n", 2, "RatingMismatch"},
		{"malformed left to TXR-001", "ratings:\n  - code: X\n    capacity: 500\n", 0, ""},
	})

	reg := parse(t, "ratings:\n  - code: P375M\n    capacity: 7500\n    voltage_ratio: 132/33KV\n")
	v := NewTXR002().Check(reg)
	if len(v) != 1 || v[0].Suggestion != "use P375m" {
		t.Errorf("violations = %v, want suggestion use P375m", v)
	}
}

func TestTXR003_CanonicalCode(t *testing.T) {
	runRuleCases(t, NewTXR003(), []ruleCase{
		{"canonical", "ratings:\n  - code: P360M\n    capacity: 60000\n    voltage_ratio: 132/33KV\n", 0, ""},
		{"bare power code", "ratings:\n  - code: P3060\n    capacity: 60000\n    voltage_ratio: 132/33KV\n", 1, ""},
		{"mismatch left to TXR-002", "ratings:\n  - code: P3060\n    capacity: 500\n    voltage_ratio: 132/33KV\n", 0, ""},
	})
}

func TestTXR004_RatingFitsStation(t *testing.T) {
	base := "stations:\n  - code: S30001\n    voltage_ratio: 33/0.415KV\nratings:\n  - code: D3500\n  - code: D1500\n"
	runRuleCases(t, NewTXR004(), []ruleCase{
		{"fits", base + "transformers:\n  - station: S30001\n    rating: D3500\n", 0, ""},
		{"wrong ratio", base + "transformers:\n  - station: S30001\n    rating: D1500\n", 1, "RatingMismatch"},
		{"unknown station skipped", base + "transformers:\n  - station: S30002\n    rating: D1500\n", 0, ""},
	})
}

func TestREF_Rules(t *testing.T) {
	runRuleCases(t, NewREF001(), []ruleCase{
		{"exists", "power_lines:\n  - code: F301\n    type: feeder\nstations:\n  - code: I301\n    source_feeder: f301\n", 0, ""},
		{"missing", "stations:\n  - code: I301\n    source_feeder: F301\n", 1, "RequiredFieldMissing"},
		{"upriser", "power_lines:\n  - code: U1\n    type: upriser\nstations:\n  - code: S10001\n    source_feeder: U1\n", 1, "SourceFeederNotSupported"},
	})
	runRuleCases(t, NewREF002(), []ruleCase{
		{"exists", "stations:\n  - code: T301\npower_lines:\n  - code: F301\n    source_station: T301\n", 0, ""},
		{"missing", "power_lines:\n  - code: F301\n    source_station: T301\n", 1, "RequiredFieldMissing"},
		{"empty skipped", "power_lines:\n  - code: F301\n", 0, ""},
	})
	runRuleCases(t, NewREF003(), []ruleCase{
		{"exists", "stations:\n  - code: S30001\ntransformers:\n  - station: S30001\n", 0, ""},
		{"missing", "transformers:\n  - station: S30001\n", 1, "RequiredFieldMissing"},
		{"empty", "transformers:\n  - serial_no: A\n", 1, "RequiredFieldMissing"},
	})
	runRuleCases(t, NewREF004(), []ruleCase{
		{"exists", "ratings:\n  - code: D3500\ntransformers:\n  - rating: D3500\n", 0, ""},
		{"case sensitive", "ratings:\n  - code: P375m\ntransformers:\n  - rating: P375M\n", 1, "RequiredFieldMissing"},
	})
}

func TestUNQ_Rules(t *testing.T) {
	runRuleCases(t, NewUNQ001(), []ruleCase{
		{"unique", "stations:\n  - code: T301\n  - code: T302\n", 0, ""},
		{"duplicate ignoring case", "stations:\n  - code: T301\n  - code: t301\n  - code: T301\n", 2, ""},
	})
	runRuleCases(t, NewUNQ002(), []ruleCase{
		{"duplicate", "power_lines:\n  - code: F301\n  - code: F301\n", 1, ""},
	})
	runRuleCases(t, NewUNQ003(), []ruleCase{
		{"multiplier case distinct", "ratings:\n  - code: P375m\n  - code: P375M\n", 0, ""},
		{"duplicate", "ratings:\n  - code: D3500\n  - code: D3500\n", 1, ""},
	})
	runRuleCases(t, NewUNQ004(), []ruleCase{
		{"empty serials skipped", "transformers:\n  - station: A\n  - station: B\n", 0, ""},
		{"duplicate", "transformers:\n  - serial_no: TX1\n  - serial_no: TX1\n", 1, ""},
	})

	v := NewUNQ001().Check(parse(t, "stations:\n  - code: T301\n  - code: T301\n"))
	if len(v) != 1 || !strings.Contains(v[0].Message, "line 2") || v[0].Line != 3 {
		t.Errorf("violations = %v, want duplicate at line 3 pointing to line 2", v)
	}
}

func TestNewDefaultRegistry(t *testing.T) {
	registry := NewDefaultRegistry()

	want := []string{
		"STN-001", "STN-002", "STN-003", "STN-004", "STN-005",
		"PLN-001", "PLN-002", "PLN-003", "PLN-004", "PLN-005",
		"TXR-001", "TXR-002", "TXR-003", "TXR-004",
		"REF-001", "REF-002", "REF-003", "REF-004",
		"UNQ-001", "UNQ-002", "UNQ-003", "UNQ-004",
	}
	rules := registry.AllRules()
	if len(rules) != len(want) {
		t.Fatalf("len(AllRules) = %d, want %d", len(rules), len(want))
	}
	for i, rule := range rules {
		if rule.ID() != want[i] {
			t.Errorf("rule %d = %s, want %s", i, rule.ID(), want[i])
		}
	}

	if registry.Severity("TXR-003") != register.SeverityWarning {
		t.Error("TXR-003 should default to warning")
	}
}

func TestDefaultRegistry_CleanRegister(t *testing.T) {
	input := `name: clean
stations:
  - code: T101
    category: transmission
    voltage_ratio: 132/33KV
  - code: I301
    category: injection
    voltage_ratio: 33/11KV
    source_feeder: F301
  - code: S10001
    category: distribution
    voltage_ratio: 11/0.415KV
    source_feeder: F101
power_lines:
  - code: F301
    type: feeder
    voltage: 33KV
    source_station: T101
  - code: F101
    type: feeder
    voltage: 11KV
    source_station: I301
  - code: U1
    type: upriser
    voltage: 0.415KV
    source_station: S10001
ratings:
  - code: P360M
    capacity: 60000
    voltage_ratio: 132/33KV
  - code: D1050
    capacity: 50
    voltage_ratio: 11/0.415KV
transformers:
  - serial_no: TX-1
    station: T101
    rating: P360M
    condition: ok
  - serial_no: TX-2
    station: S10001
    rating: D1050
`
	result := register.ValidateWithRegistry(parse(t, input), NewDefaultRegistry())
	if !result.Valid || len(result.Errors) != 0 || len(result.Warnings) != 0 {
		t.Errorf("expected clean result, got errors=%v warnings=%v", result.Errors, result.Warnings)
	}
}
