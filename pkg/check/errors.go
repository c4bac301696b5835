package check

import "errors"

// Failure kinds shared by the asset code codecs. Codec functions wrap one of
// these with detail, so callers match with errors.Is.
var (
	ErrInvalidFormat               = errors.New("invalid format")
	ErrInvalidVoltageRatio         = errors.New("invalid voltage ratio")
	ErrInvalidVoltage              = errors.New("invalid voltage")
	ErrInvalidCapacity             = errors.New("invalid capacity")
	ErrCodeRatioMismatch           = errors.New("code and voltage ratio mismatch")
	ErrCodeVoltageMismatch         = errors.New("code and voltage mismatch")
	ErrRatingMismatch              = errors.New("transformer rating code and values mismatch")
	ErrSourceFeederNotSupported    = errors.New("source feeder not supported")
	ErrSourceFeederVoltageMismatch = errors.New("source feeder voltage mismatch")
	ErrRequiredFieldMissing        = errors.New("required field missing")
	ErrUnknownValue                = errors.New("unknown value")
	ErrUnknownText                 = errors.New("unknown text")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidFormat, "InvalidFormat"},
	{ErrInvalidVoltageRatio, "InvalidVoltageRatio"},
	{ErrInvalidVoltage, "InvalidVoltage"},
	{ErrInvalidCapacity, "InvalidCapacity"},
	{ErrCodeRatioMismatch, "CodeRatioMismatch"},
	{ErrCodeVoltageMismatch, "CodeVoltageMismatch"},
	{ErrRatingMismatch, "RatingMismatch"},
	{ErrSourceFeederNotSupported, "SourceFeederNotSupported"},
	{ErrSourceFeederVoltageMismatch, "SourceFeederVoltageMismatch"},
	{ErrRequiredFieldMissing, "RequiredFieldMissing"},
	{ErrUnknownValue, "UnknownValue"},
	{ErrUnknownText, "UnknownText"},
}

// Kind returns the name of the first failure kind err wraps, or "" when err
// is nil or does not wrap any known kind.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}
