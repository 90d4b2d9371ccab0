package validation

import (
	"errors"
	"regexp"
)

// Error is a rejected-input failure. Unlike storage errors it is never fatal
// to the request; callers render Message instead of an error page.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Fail builds a validation failure with a human-readable message.
func Fail(message string) error { return &Error{Message: message} }

// As unwraps err as a validation failure.
func As(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// Digits with exactly two fraction digits, or digits only.
var priceRe = regexp.MustCompile(`^\d*[.]\d\d$|^\d*$`)

// PriceString checks raw textual price input before numeric conversion.
// A nil pointer means the field was absent from the submitted data.
func PriceString(price *string) error {
	if price == nil {
		return Fail("Missing price.")
	}
	if len(*price) == 0 {
		return Fail("Price cannot be empty.")
	}
	if !priceRe.MatchString(*price) {
		return Fail("Price must be a nonnegative value with two decimal places.")
	}
	return nil
}
