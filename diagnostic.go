package toolmedia

// Stage names a sub-operation of a discovery call.
type Stage string

// Discovery stages.
const (
	StageFetch      Stage = "fetch"
	StageClassify   Stage = "classify"
	StageScreenshot Stage = "screenshot"
	StageName       Stage = "name"
	StageSearch     Stage = "search"
	StageEmbed      Stage = "embed"
	StageFeed       Stage = "feed"
)

// Status is the outcome of a sub-operation.
type Status string

// Sub-operation outcomes. StatusNotImplemented is distinct from a
// successful search that found nothing.
const (
	StatusSuccess        Status = "success"
	StatusSkipped        Status = "skipped"
	StatusFailed         Status = "failed"
	StatusNotImplemented Status = "not_implemented"
)

// Diagnostic records the outcome of one sub-operation of a discovery call.
type Diagnostic struct {
	Stage  Stage  `json:"stage"`
	Target string `json:"target"`
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// StatusForError maps a sub-operation error to its diagnostic status.
func StatusForError(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case ErrorCode(err) == ENOTIMPLEMENTED:
		return StatusNotImplemented
	default:
		return StatusFailed
	}
}

// FilterDiagnostics returns the diagnostics recorded for stage.
func FilterDiagnostics(diags []Diagnostic, stage Stage) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Stage == stage {
			out = append(out, d)
		}
	}
	return out
}
