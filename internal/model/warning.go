package model

// Stage identifies where in the pipeline a warning originated.
type Stage string

const (
	StageFetch    Stage = "fetch"
	StageParse    Stage = "parse"
	StageExtract  Stage = "extract"
	StageValidate Stage = "validate"
	StageOverride Stage = "override"
)

// Warning is a structured, non-fatal degradation report. The engine never
// aborts a run because of one; aggregate success policy belongs to the
// caller.
type Warning struct {
	Agency string `json:"agency"`
	URL    string `json:"url,omitempty"`
	Stage  Stage  `json:"stage"`
	Reason string `json:"reason"`
}
