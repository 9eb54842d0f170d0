package language

import (
	"errors"
	"fmt"
)

// Verify checks the table invariants: unique three-letter lowercase keys,
// two-letter and alternate codes of the right length, and non-empty names.
// Every violation is reported.
func Verify() error {
	return verifyRecords(records)
}

func verifyRecords(list []Record) error {
	var errs []error
	seen := make(map[string]struct{}, len(list))
	for _, r := range list {
		if !isLowerAlpha(r.Code3, 3) {
			errs = append(errs, fmt.Errorf("key %q: must be three lowercase letters", r.Code3))
		}
		if _, dup := seen[r.Code3]; dup {
			errs = append(errs, fmt.Errorf("key %q: duplicate entry", r.Code3))
		}
		seen[r.Code3] = struct{}{}
		if r.AltCode3 != "" && !isLowerAlpha(r.AltCode3, 3) {
			errs = append(errs, fmt.Errorf("key %q: alternate code %q must be three lowercase letters", r.Code3, r.AltCode3))
		}
		if r.Code2 != "" && !isLowerAlpha(r.Code2, 2) {
			errs = append(errs, fmt.Errorf("key %q: two-letter code %q must be two lowercase letters", r.Code3, r.Code2))
		}
		if r.English == "" {
			errs = append(errs, fmt.Errorf("key %q: english name is empty", r.Code3))
		}
		if r.French == "" {
			errs = append(errs, fmt.Errorf("key %q: french name is empty", r.Code3))
		}
	}
	return errors.Join(errs...)
}

func isLowerAlpha(value string, n int) bool {
	if len(value) != n {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 'a' || value[i] > 'z' {
			return false
		}
	}
	return true
}
