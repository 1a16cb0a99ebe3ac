package verification

import (
	"idcheck/internal/division"
	"idcheck/internal/idnum"
)

// Result is the outcome of verifying one identity-number string. A
// semantically invalid ID is a successful verification with Valid=false;
// errors are reserved for infrastructure failures.
type Result struct {
	Valid  bool    `json:"valid"`
	Reason string  `json:"reason,omitempty"` // parse-failure code when invalid
	Record *Record `json:"record,omitempty"` // decomposed fields when valid
}

// Record holds the decomposed fields of a valid identity number plus the
// derived values callers usually want next.
type Record struct {
	Division  division.Division `json:"division"`
	BirthDate string            `json:"birth_date"` // YYYY-MM-DD
	Age       int               `json:"age"`        // completed years at verification time
	Sequence  int               `json:"sequence"`
}

// OutcomeValid is the metrics/audit outcome for an ID that passed every check.
const OutcomeValid = "valid"

// outcomeOf maps a verification result to its metrics/audit outcome code.
func outcomeOf(r Result) string {
	if r.Valid {
		return OutcomeValid
	}
	return r.Reason
}

func newRecord(id idnum.IdentityNumber, age int) *Record {
	return &Record{
		Division:  id.Division(),
		BirthDate: id.Birth().String(),
		Age:       age,
		Sequence:  id.Seq().Int(),
	}
}
