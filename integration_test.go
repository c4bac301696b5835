package elco_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hkmshb/elco/pkg/check"
	"github.com/hkmshb/elco/pkg/powerline"
	"github.com/hkmshb/elco/pkg/rating"
	"github.com/hkmshb/elco/pkg/register"
	"github.com/hkmshb/elco/pkg/register/rules"
	"github.com/hkmshb/elco/pkg/report"
	"github.com/hkmshb/elco/pkg/station"
	"github.com/hkmshb/elco/pkg/voltage"
)

// TestE2E_RegisterReport parses the sample registers, validates them with
// the default rules and round trips the report through CBOR.
func TestE2E_RegisterReport(t *testing.T) {
	validator := register.NewValidator(rules.NewDefaultRegistry())
	opts := register.Options{MinSeverity: register.SeverityWarning}

	rep := report.New()
	for _, file := range []string{"testdata/registers/valid.yaml", "testdata/registers/invalid.yaml"} {
		reg, err := register.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %s: %v", file, err)
		}
		rep.Add(file, reg, validator.Validate(reg, opts))
	}

	if rep.Valid() {
		t.Fatal("expected the invalid register to fail")
	}
	if !rep.Files[0].Valid {
		t.Errorf("expected valid.yaml to pass, got %+v", rep.Files[0].Errors)
	}

	var buf bytes.Buffer
	if err := rep.Encode(&buf, report.FormatCBOR); err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := report.Read(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if decoded.ID != rep.ID {
		t.Errorf("run ID changed: %s -> %s", rep.ID, decoded.ID)
	}
	gotErrs, gotWarns := decoded.Counts()
	wantErrs, wantWarns := rep.Counts()
	if gotErrs != wantErrs || gotWarns != wantWarns {
		t.Errorf("counts changed: %d/%d -> %d/%d", wantErrs, wantWarns, gotErrs, gotWarns)
	}
}

// TestE2E_GeneratedCodesValidate checks that codes generated for every
// valid combination pass the record checks that accompany them.
func TestE2E_GeneratedCodesValidate(t *testing.T) {
	for _, cat := range station.Categories() {
		for _, r := range cat.Ratios() {
			code, err := station.NewCode(cat, r, 1)
			if err != nil {
				t.Fatalf("NewCode(%s, %s): %v", cat, r, err)
			}
			rec := station.Record{Code: code.String(), Category: cat, Ratio: r}
			if r != voltage.HVoltHHVoltL && r != voltage.HVoltLMVoltH {
				level := voltage.MVoltH
				if r == voltage.MVoltLLVolt {
					level = voltage.MVoltL
				}
				rec.SourceFeeder = &level
			}
			if err := rec.Validate(); err != nil {
				t.Errorf("station %s (%s, %s): %v", code, cat, r, err)
			}
		}
	}

	for _, pt := range []powerline.Type{powerline.Feeder, powerline.Upriser} {
		for _, level := range pt.Voltages() {
			code, err := powerline.NewCode(pt, level, 1)
			if err != nil {
				t.Fatalf("NewCode(%s, %s): %v", pt, level, err)
			}
			rec := powerline.Record{Code: code.String(), Type: pt, Voltage: level, SourceStation: "T101"}
			if err := rec.Validate(); err != nil {
				t.Errorf("power line %s: %v", code, err)
			}
		}
	}

	for _, r := range voltage.Ratios() {
		for _, capacity := range []uint32{1000, 7500, 60000, 150000} {
			code, err := rating.Build(capacity, r)
			if err != nil {
				if !errors.Is(err, check.ErrInvalidVoltageRatio) && !errors.Is(err, check.ErrInvalidCapacity) {
					t.Errorf("Build(%d, %s): unexpected error %v", capacity, r, err)
				}
				continue
			}
			if err := rating.ValidateAgainst(code, capacity, r); err != nil {
				t.Errorf("code %s for %dKVA %s: %v", code, capacity, r, err)
			}
		}
	}
}
