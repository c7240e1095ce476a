package models

// MaxOutcomeErrors bounds the number of row-level warnings surfaced to callers.
const MaxOutcomeErrors = 5

// ParseOutcome is the terminal artifact of the ingestion pipeline and the only
// object returned across its boundary. Failures are carried as data in Errors;
// the pipeline itself never returns an error.
type ParseOutcome struct {
	Format       string        `json:"format"`
	FormatLabel  string        `json:"formatLabel"`
	Transactions []Transaction `json:"transactions"`
	RawRows      []RawRow      `json:"-"`
	Headers      []string      `json:"headers"`
	TotalRows    int           `json:"totalRows"`
	Errors       []string      `json:"errors"`
}

// Failed reports whether the outcome counts as a hard failure from the
// caller's perspective: at least one row-level error and nothing extracted.
// Callers surface Errors[0] as the user-facing message in that case.
func (o *ParseOutcome) Failed() bool {
	return len(o.Errors) > 0 && o.TotalRows == 0
}

// CapErrors truncates the error list to MaxOutcomeErrors messages.
func (o *ParseOutcome) CapErrors() {
	if len(o.Errors) > MaxOutcomeErrors {
		o.Errors = o.Errors[:MaxOutcomeErrors]
	}
}
