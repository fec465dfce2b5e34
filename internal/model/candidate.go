package model

// Candidate is one extracted value proposed for a record field. Candidates
// are transient: produced by an extraction primitive, folded into the
// record by the assembler, and never stored on their own.
type Candidate struct {
	// FieldPath addresses the target field, e.g. "hq_city",
	// "sectors_core", "services.uitzenden".
	FieldPath string
	Value     any
	SourceURL string
}

// NewCandidate constructs a candidate for the given field.
func NewCandidate(fieldPath string, value any, sourceURL string) Candidate {
	return Candidate{FieldPath: fieldPath, Value: value, SourceURL: sourceURL}
}
