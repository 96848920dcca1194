// Package validation provides centralized input validation logic.
// This includes identifier validation, storage directive checks, and
// webhook target checks.
//
// All user inputs are validated before being sent to the API so that bad
// input fails locally instead of producing an opaque server rejection.
package validation

import (
	"net/url"
	"unicode"

	ucerrors "github.com/newtype0092/uploadcare-go/errors"
	"github.com/newtype0092/uploadcare-go/uctypes"
)

// maxIDLength bounds identifiers well above anything the API issues.
const maxIDLength = 256

// ValidateFileID validates a file identifier before it is interpolated into
// a request path.
func ValidateFileID(op, id string) error {
	return validateID(op, id, "file identifier")
}

// ValidateGroupID validates a group identifier before it is interpolated
// into a request path.
func ValidateGroupID(op, id string) error {
	return validateID(op, id, "group identifier")
}

func validateID(op, id, what string) error {
	if id == "" {
		return ucerrors.NewError(op, ucerrors.ErrInvalidInput).
			WithMessage(what + " cannot be empty")
	}
	if len(id) > maxIDLength {
		return ucerrors.NewError(op, ucerrors.ErrInvalidInput).
			WithFileID(id).
			WithMessage(what + " exceeds the maximum length")
	}
	if hasUnsafeCharacters(id) {
		return ucerrors.NewError(op, ucerrors.ErrInvalidInput).
			WithFileID(id).
			WithMessage(what + " contains control or separator characters")
	}
	return nil
}

// ValidateStoreDirective checks that a storage directive is one of the
// values the API understands.
func ValidateStoreDirective(op string, store uctypes.StoreDirective) error {
	switch store {
	case uctypes.StoreAuto, uctypes.StoreYes, uctypes.StoreNo:
		return nil
	default:
		return ucerrors.NewError(op, ucerrors.ErrInvalidInput).
			WithMessage("storage directive must be auto, 1 or 0")
	}
}

// ValidateTargetURL checks that a webhook target is an absolute http(s) URL.
func ValidateTargetURL(op, target string) error {
	if target == "" {
		return ucerrors.NewError(op, ucerrors.ErrInvalidInput).
			WithMessage("target URL cannot be empty")
	}
	parsed, err := url.Parse(target)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return ucerrors.NewError(op, ucerrors.ErrInvalidInput).
			WithURL(target).
			WithMessage("target URL must be an absolute http(s) URL")
	}
	return nil
}

// hasUnsafeCharacters reports control characters, spaces, and path
// separators, none of which occur in server-issued identifiers.
func hasUnsafeCharacters(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) || unicode.IsSpace(r) || r == '/' || r == '?' || r == '#' {
			return true
		}
	}
	return false
}
