package idnum

import "fmt"

// ParseError is the closed set of ways an identity-number string can be
// rejected. Exactly one of the six kinds is returned per invalid input;
// validation order (length, division, birthday, sequence, check character,
// checksum) decides which when several fields are independently bad.
//
// The unexported method keeps the set closed: no package outside idnum can
// add a seventh kind.
type ParseError interface {
	error
	// Reason is a stable snake_case code for metrics and API envelopes.
	Reason() string
	parseError()
}

// LengthError reports an input that is not exactly 18 codepoints long.
type LengthError struct {
	Count int // observed codepoint count
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("identity number must be %d characters, got %d", Length, e.Count)
}
func (e *LengthError) Reason() string { return "length_mismatch" }
func (e *LengthError) parseError()    {}

// DivisionError reports a division code absent from the historical GB/T 2260
// registry. Non-digit garbage in the code positions lands here too: it
// matches nothing.
type DivisionError struct {
	Code string // raw 6-character code field
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("division code %q not found", e.Code)
}
func (e *DivisionError) Reason() string { return "division_not_found" }
func (e *DivisionError) parseError()    {}

// BirthdayError reports a birth-date field that is not a real calendar date,
// predates the historical floor, or lies in the future.
type BirthdayError struct {
	Raw string // raw 8-character date field
}

func (e *BirthdayError) Error() string {
	return fmt.Sprintf("invalid birthday %q", e.Raw)
}
func (e *BirthdayError) Reason() string { return "invalid_birthday" }
func (e *BirthdayError) parseError()    {}

// SequenceError reports a birth-sequence field containing non-digits.
type SequenceError struct {
	Raw string // raw 3-character sequence field
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("invalid sequence %q", e.Raw)
}
func (e *SequenceError) Reason() string { return "invalid_sequence" }
func (e *SequenceError) parseError()    {}

// CheckCharError reports an 18th character outside the checksum alphabet.
// Membership is case-sensitive: lowercase 'x' is rejected here, never treated
// as a valid-but-mismatched check character.
type CheckCharError struct {
	Char rune
}

func (e *CheckCharError) Error() string {
	return fmt.Sprintf("invalid check character %q", e.Char)
}
func (e *CheckCharError) Reason() string { return "invalid_check_char" }
func (e *CheckCharError) parseError()    {}

// ChecksumError reports a check character that is in the alphabet but does
// not match the value computed over the first 17 digits.
type ChecksumError struct {
	Char rune // the character that was present
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("check character %q does not match checksum", e.Char)
}
func (e *ChecksumError) Reason() string { return "wrong_check_char" }
func (e *ChecksumError) parseError()    {}
