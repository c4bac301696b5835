// Package check holds the failure taxonomy shared by the asset code codecs
// and a small pipeline for composing independent checks.
//
// # Failure Kinds
//
// Every codec error wraps exactly one sentinel from this package:
//
//	err := station.ValidateFormat("T100")
//	errors.Is(err, check.ErrInvalidFormat) // true
//
// # Pipelines
//
// Record validation runs several independent checks. The caller decides
// whether to stop at the first failure or collect them all:
//
//	err := check.All(
//		func() error { return station.ValidateRatioForCategory(cat, ratio) },
//		func() error { return station.ValidateFormat(code) },
//	)
//	for _, e := range check.Split(err) {
//		fmt.Println(check.Kind(e), e)
//	}
package check
