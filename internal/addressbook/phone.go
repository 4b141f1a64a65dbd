package addressbook

import "fmt"

// MaxPhoneDigits is the longest phone number NewPhone accepts.
const MaxPhoneDigits = 12

// Phone is a Field holding 1 to MaxPhoneDigits ASCII digits at construction.
// EditPhone may later overwrite the value without re-checking it.
type Phone struct {
	Field
}

// NewPhone validates raw and wraps it as a Phone. No normalization is applied:
// spaces, dashes and a leading plus are all rejected.
func NewPhone(raw string) (Phone, error) {
	if reason := checkPhone(raw); reason != "" {
		return Phone{}, &ValidationError{
			Field:  "phone",
			Value:  raw,
			Reason: reason,
			Err:    ErrInvalidPhone,
		}
	}
	return Phone{Field{value: raw}}, nil
}

// checkPhone returns the broken rule, or "" when raw is acceptable.
func checkPhone(raw string) string {
	if raw == "" {
		return "must not be empty"
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "must contain only digits"
		}
	}
	if len(raw) > MaxPhoneDigits {
		return fmt.Sprintf("must be at most %d digits, got %d", MaxPhoneDigits, len(raw))
	}
	return ""
}

// set overwrites the stored number in place.
func (p *Phone) set(v string) {
	p.value = v
}
