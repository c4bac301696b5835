package register

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hkmshb/elco/pkg/powerline"
	"github.com/hkmshb/elco/pkg/station"
	"github.com/hkmshb/elco/pkg/voltage"
)

// ErrEmptyRegister is returned when a register document has no content.
var ErrEmptyRegister = errors.New("empty register")

type yamlStation struct {
	Code         string `yaml:"code"`
	Name         string `yaml:"name"`
	Category     string `yaml:"category"`
	VoltageRatio string `yaml:"voltage_ratio"`
	SourceFeeder string `yaml:"source_feeder"`
	Public       bool   `yaml:"public"`
	Notes        string `yaml:"notes"`
}

type yamlPowerLine struct {
	Code          string `yaml:"code"`
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	Voltage       string `yaml:"voltage"`
	SourceStation string `yaml:"source_station"`
}

type yamlRating struct {
	Code         string `yaml:"code"`
	Capacity     uint32 `yaml:"capacity"`
	VoltageRatio string `yaml:"voltage_ratio"`
	Notes        string `yaml:"notes"`
}

type yamlTransformer struct {
	SerialNo  string `yaml:"serial_no"`
	Station   string `yaml:"station"`
	Rating    string `yaml:"rating"`
	Condition string `yaml:"condition"`
}

// ParseFile reads a register from a YAML file.
func ParseFile(path string) (*Register, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseBytes(data)
}

// Parse reads a register from r.
func Parse(r io.Reader) (*Register, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses a YAML register document. Each record keeps the line it
// starts on so violations can point back into the file.
func ParseBytes(data []byte) (*Register, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyRegister
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrEmptyRegister
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: register must be a mapping", doc.Line)
	}

	reg := New()
	for i := 0; i < len(doc.Content)-1; i += 2 {
		key, value := doc.Content[i], doc.Content[i+1]

		var err error
		switch key.Value {
		case "name":
			reg.Name = value.Value
		case "stations":
			err = eachItem(value, key.Value, func(item *yaml.Node) error {
				return parseStation(reg, item)
			})
		case "power_lines":
			err = eachItem(value, key.Value, func(item *yaml.Node) error {
				return parsePowerLine(reg, item)
			})
		case "ratings":
			err = eachItem(value, key.Value, func(item *yaml.Node) error {
				return parseRating(reg, item)
			})
		case "transformers":
			err = eachItem(value, key.Value, func(item *yaml.Node) error {
				return parseTransformer(reg, item)
			})
		default:
			err = fmt.Errorf("line %d: unknown section %q", key.Line, key.Value)
		}
		if err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func eachItem(seq *yaml.Node, section string, fn func(*yaml.Node) error) error {
	// An empty section ("stations:") decodes as a null scalar.
	if seq.Kind == yaml.ScalarNode && seq.Tag == "!!null" {
		return nil
	}
	if seq.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: %s must be a list", seq.Line, section)
	}
	for _, item := range seq.Content {
		if err := fn(item); err != nil {
			return fmt.Errorf("line %d: %w", item.Line, err)
		}
	}
	return nil
}

func parseStation(reg *Register, item *yaml.Node) error {
	var y yamlStation
	if err := item.Decode(&y); err != nil {
		return err
	}

	s := Station{
		Code:         strings.TrimSpace(y.Code),
		Name:         y.Name,
		SourceFeeder: strings.TrimSpace(y.SourceFeeder),
		Public:       y.Public,
		Notes:        y.Notes,
		Line:         item.Line,
	}
	if y.Category != "" {
		cat, err := station.ParseCategory(y.Category)
		if err != nil {
			return err
		}
		s.Category = cat
	}
	if y.VoltageRatio != "" {
		r, err := voltage.ParseRatio(y.VoltageRatio)
		if err != nil {
			return err
		}
		s.Ratio = r
	}

	reg.AddStation(s)
	return nil
}

func parsePowerLine(reg *Register, item *yaml.Node) error {
	var y yamlPowerLine
	if err := item.Decode(&y); err != nil {
		return err
	}

	p := PowerLine{
		Code:          strings.TrimSpace(y.Code),
		Name:          y.Name,
		SourceStation: strings.TrimSpace(y.SourceStation),
		Line:          item.Line,
	}
	if y.Type != "" {
		t, err := powerline.ParseType(y.Type)
		if err != nil {
			return err
		}
		p.Type = t
	}
	if y.Voltage != "" {
		l, err := voltage.ParseLevel(y.Voltage)
		if err != nil {
			return err
		}
		p.Voltage = l
	}

	reg.AddPowerLine(p)
	return nil
}

func parseRating(reg *Register, item *yaml.Node) error {
	var y yamlRating
	if err := item.Decode(&y); err != nil {
		return err
	}

	rt := Rating{
		Code:     strings.TrimSpace(y.Code),
		Capacity: y.Capacity,
		Notes:    y.Notes,
		Line:     item.Line,
	}
	if y.VoltageRatio != "" {
		r, err := voltage.ParseRatio(y.VoltageRatio)
		if err != nil {
			return err
		}
		rt.Ratio = r
	}

	reg.AddRating(rt)
	return nil
}

func parseTransformer(reg *Register, item *yaml.Node) error {
	var y yamlTransformer
	if err := item.Decode(&y); err != nil {
		return err
	}

	cond, err := ParseCondition(y.Condition)
	if err != nil {
		return err
	}

	reg.AddTransformer(Transformer{
		SerialNo:  strings.TrimSpace(y.SerialNo),
		Station:   strings.TrimSpace(y.Station),
		Rating:    strings.TrimSpace(y.Rating),
		Condition: cond,
		Line:      item.Line,
	})
	return nil
}
