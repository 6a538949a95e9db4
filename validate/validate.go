/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package validate

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/accessorhooks"
	"github.com/suparena/accessorhooks/errors"
)

// KnownFormat reports whether the strfmt default registry defines format.
func KnownFormat(format string) bool {
	return strfmt.Default.ContainsName(format)
}

// Format rejects strings that are not valid according to the strfmt format.
// A format the registry does not know rejects every value.
func Format[O any](format string) accessorhooks.Hook[O] {
	return accessorhooks.ValueHook(func(_ O, v string) error {
		if !KnownFormat(format) {
			return errors.NewValidationError(format, "unknown format")
		}
		if !strfmt.Default.Validates(format, v) {
			return errors.NewValidationError(format, fmt.Sprintf("%q is not a valid %s", v, format))
		}
		return nil
	})
}

// NotEmpty rejects strings that are empty or only whitespace.
func NotEmpty[O any]() accessorhooks.Hook[O] {
	return accessorhooks.ValueHook(func(_ O, v string) error {
		if strings.TrimSpace(v) == "" {
			return errors.NewValidationError("", "value must not be empty")
		}
		return nil
	})
}

// Min rejects values lower than lower.
func Min[O any, N cmp.Ordered](lower N) accessorhooks.Hook[O] {
	return accessorhooks.ValueHook(func(_ O, v N) error {
		if v < lower {
			return errors.NewValidationError("", fmt.Sprintf("value must be at least %v, got %v", lower, v))
		}
		return nil
	})
}
