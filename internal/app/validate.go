package app

import "regexp"

// Field validators return a user-facing message, or "" when the value is
// valid. Emptiness and malformed input produce distinct messages.

var (
	postalCodeRe = regexp.MustCompile(`^[A-Za-z]\d[A-Za-z][ -]?\d[A-Za-z]\d$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe      = regexp.MustCompile(`^\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})$`)
)

// ValidatePostalCode checks for a Canadian postal code.
func ValidatePostalCode(pc string) string {
	if pc == "" {
		return "Postal code is required"
	}
	if !postalCodeRe.MatchString(pc) {
		return "Please enter a valid Canadian postal code (e.g. A1A 1A1)"
	}
	return ""
}

// ValidateEmail checks for a local@domain.tld shape.
func ValidateEmail(email string) string {
	if email == "" {
		return "Email is required"
	}
	if !emailRe.MatchString(email) {
		return "Please enter a valid email address"
	}
	return ""
}

// ValidatePhone checks for a 10-digit North American number with optional
// separators.
func ValidatePhone(phone string) string {
	if phone == "" {
		return "Phone number is required"
	}
	if !phoneRe.MatchString(phone) {
		return "Please enter a valid 10-digit phone number"
	}
	return ""
}

// ValidateName checks for a non-empty contact name.
func ValidateName(name string) string {
	if name == "" {
		return "Name is required"
	}
	return ""
}

// ValidateAddress checks for a non-empty street address.
func ValidateAddress(address string) string {
	if address == "" {
		return "Address is required"
	}
	return ""
}
