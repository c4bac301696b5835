package report

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

var (
	reportEncMode cbor.EncMode
	reportDecMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	reportEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create report CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
	reportDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create report CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a report to CBOR.
func Marshal(r *Report) ([]byte, error) {
	return reportEncMode.Marshal(r)
}

// Unmarshal decodes a CBOR report.
func Unmarshal(data []byte) (*Report, error) {
	var r Report
	if err := reportDecMode.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &r, nil
}

// NewEncoder creates a CBOR report encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return reportEncMode.NewEncoder(w)
}

// Read decodes one CBOR report from r.
func Read(r io.Reader) (*Report, error) {
	var rep Report
	if err := reportDecMode.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &rep, nil
}
