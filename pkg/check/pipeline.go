package check

import "errors"

// Func is a single independent validation step.
type Func func() error

// First runs checks in order and returns the first failure.
func First(checks ...Func) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

// All runs every check and joins the failures. It returns nil when all pass.
func All(checks ...Func) error {
	var errs []error
	for _, c := range checks {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Split flattens an error produced by All (or any errors.Join tree) into its
// leaf errors. A plain error is returned as a single element slice.
func Split(err error) []error {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, Split(e)...)
	}
	return out
}
