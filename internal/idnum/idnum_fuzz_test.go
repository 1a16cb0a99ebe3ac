//go:build go1.18

package idnum

import (
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"idcheck/internal/division"
)

// FuzzParse checks the trust-boundary invariants of the parser on arbitrary
// input: no panics, exactly one outcome, and a closed error taxonomy.
func FuzzParse(f *testing.F) {
	f.Add("510108197205052137")
	f.Add("51010819720505213")
	f.Add("51010819720505213X")
	f.Add("51010819720505213x")
	f.Add("000000197205052137")
	f.Add("5101081972?5052137")
	f.Add("")
	f.Add("５１０１０８197205052137")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("510108197205052137\x00")

	p := NewParser(division.Default())
	p.Now = func() time.Time {
		return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	}

	f.Fuzz(func(t *testing.T, input string) {
		id, err := p.Parse(input)

		if err != nil {
			// Every failure is one of the six taxonomy kinds.
			var perr ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error outside taxonomy: %v", err)
			}
			if id != (IdentityNumber{}) {
				t.Fatal("failed parse returned a non-zero record")
			}
			return
		}

		// A successful parse implies exactly 18 codepoints and a division
		// the registry actually knows.
		if utf8.RuneCountInString(input) != Length {
			t.Fatalf("accepted input of %d codepoints", utf8.RuneCountInString(input))
		}
		if _, ok := division.Default().Get(id.Division().Code); !ok {
			t.Fatalf("accepted unregistered division %q", id.Division().Code)
		}
		if id.Seq().Int() < 0 || id.Seq().Int() > 999 {
			t.Fatalf("sequence out of range: %d", id.Seq().Int())
		}
	})
}
