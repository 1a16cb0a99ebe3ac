package idnum

import "fmt"

// GB 11643-1999: the check character is ISO 7064 MOD 11-2 over the first 17
// digits, with fixed per-position weights and an 11-character result alphabet.
var checksumWeights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}

// checkAlphabet maps sum mod 11 to the expected character. Only uppercase 'X'
// is a member; lowercase 'x' is not valid anywhere in an identity number.
var checkAlphabet = [11]rune{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}

// checkChar computes the expected check character. The caller guarantees rs
// holds exactly 17 ASCII digits; field validation upstream establishes that.
func checkChar(rs []rune) rune {
	sum := 0
	for i, r := range rs {
		sum = (sum + int(r-'0')*checksumWeights[i]) % 11
	}
	return checkAlphabet[sum]
}

// isCheckChar reports alphabet membership for the 18th character.
func isCheckChar(r rune) bool {
	for _, c := range checkAlphabet {
		if r == c {
			return true
		}
	}
	return false
}

// ComputeCheckChar returns the check character for a 17-digit prefix. It is
// the exported face of the checksum engine, used by tests and by tooling that
// repairs transcribed numbers.
func ComputeCheckChar(prefix string) (rune, error) {
	rs := []rune(prefix)
	if len(rs) != Length-1 {
		return 0, fmt.Errorf("checksum prefix must be %d characters, got %d", Length-1, len(rs))
	}
	for _, r := range rs {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("checksum prefix contains non-digit %q", r)
		}
	}
	return checkChar(rs), nil
}
