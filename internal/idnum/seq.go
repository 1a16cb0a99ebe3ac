package idnum

import "fmt"

// Seq is the per-day birth sequence: the ordinal assigned to people born in
// the same division on the same day. Three decimal digits, 0 through 999.
type Seq uint16

// ParseSeq validates a 3-digit sequence string.
func ParseSeq(s string) (Seq, error) {
	rs := []rune(s)
	if len(rs) != seqLen {
		return 0, fmt.Errorf("sequence must be %d digits, got %d characters", seqLen, len(rs))
	}
	n := 0
	for _, r := range rs {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("sequence contains non-digit %q", r)
		}
		n = n*10 + int(r-'0')
	}
	return Seq(n), nil
}

func (q Seq) Int() int { return int(q) }

func (q Seq) String() string { return fmt.Sprintf("%03d", int(q)) }
