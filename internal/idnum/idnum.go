// Package idnum validates and decomposes second-generation Chinese resident
// identity numbers (GB 11643-1999): a 6-digit GB/T 2260 division code, an
// 8-digit birth date, a 3-digit same-day birth sequence, and a mod-11 check
// character. Parsing is a pure function over the input string; the package
// performs no I/O and keeps no state, so parsers are safe for concurrent use.
package idnum

import (
	"time"

	"idcheck/internal/division"
)

// Length is the exact codepoint count of an identity number.
const Length = 18

const (
	divCodeLen  = 6
	birthdayLen = 8
	seqLen      = 3
)

// Lookup resolves a 6-character division code synchronously. The parser
// treats the registry as read-only; thread safety is the registry's concern.
type Lookup interface {
	Get(code string) (division.Division, bool)
}

// LookupFunc adapts a plain function to Lookup.
type LookupFunc func(code string) (division.Division, bool)

func (f LookupFunc) Get(code string) (division.Division, bool) { return f(code) }

// IdentityNumber is a fully validated identity number. Only successful
// parsing produces one, so every value holds a registered division, a
// plausible birth date, and a well-formed sequence. The check character is
// derivable from the other fields and is not stored.
type IdentityNumber struct {
	div   division.Division
	birth Date
	seq   Seq
}

func (n IdentityNumber) Division() division.Division { return n.div }
func (n IdentityNumber) Birth() Date                 { return n.birth }
func (n IdentityNumber) Seq() Seq                    { return n.seq }

// Parser validates identity numbers against a division registry and a clock.
// The zero value is not usable; NewParser fills in defaults.
type Parser struct {
	// Registry resolves division codes. Required.
	Registry Lookup
	// Now supplies the upper bound for birth dates. Defaults to time.Now;
	// tests pin it for deterministic boundaries.
	Now func() time.Time
}

// NewParser returns a parser over the given registry using the wall clock.
func NewParser(registry Lookup) *Parser {
	return &Parser{Registry: registry, Now: time.Now}
}

// Parse is a convenience over the embedded GB/T 2260 table and wall clock.
func Parse(s string) (IdentityNumber, error) {
	return NewParser(division.Default()).Parse(s)
}

// Parse validates s and decomposes it into an IdentityNumber. On failure it
// returns the zero IdentityNumber and exactly one ParseError; checks run in a
// fixed order (length, division, birthday, sequence, check-character
// membership, checksum) and the first failure masks the rest.
func (p *Parser) Parse(s string) (IdentityNumber, error) {
	// Offsets are in codepoints: the input may carry full-width or otherwise
	// multi-byte garbage, and the error payloads must echo the characters the
	// caller sent, not byte fragments.
	rs := []rune(s)
	if len(rs) != Length {
		return IdentityNumber{}, &LengthError{Count: len(rs)}
	}

	code := string(rs[:divCodeLen])
	div, ok := p.Registry.Get(code)
	if !ok {
		return IdentityNumber{}, &DivisionError{Code: code}
	}

	rawBirth := string(rs[divCodeLen : divCodeLen+birthdayLen])
	birth, err := ParseDate(rawBirth, p.now())
	if err != nil {
		return IdentityNumber{}, &BirthdayError{Raw: rawBirth}
	}

	rawSeq := string(rs[divCodeLen+birthdayLen : Length-1])
	seq, err := ParseSeq(rawSeq)
	if err != nil {
		return IdentityNumber{}, &SequenceError{Raw: rawSeq}
	}

	chk := rs[Length-1]
	if !isCheckChar(chk) {
		return IdentityNumber{}, &CheckCharError{Char: chk}
	}
	// The three field validations above confirmed every one of the first 17
	// characters is an ASCII digit, which the checksum arithmetic relies on.
	if want := checkChar(rs[:Length-1]); chk != want {
		return IdentityNumber{}, &ChecksumError{Char: chk}
	}

	return IdentityNumber{div: div, birth: birth, seq: seq}, nil
}

func (p *Parser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
