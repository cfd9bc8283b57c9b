package cook

import (
	"fmt"
)

// Kind says which registry a failing directive came from.
type Kind string

// Directive kinds.
const (
	KindSetting   Kind = "setting"
	KindPredicate Kind = "predicate"
)

// DirectiveError reports a directive that failed while rules were applied.
// The whole run is aborted; no partial output is produced.
type DirectiveError struct {
	Kind    Kind
	Name    string
	Pattern int
	Err     error
}

// Summary returns the one-line description without the cause.
func (e *DirectiveError) Summary() string {
	return fmt.Sprintf("failed to apply %s %q from pattern #%d", e.Kind, e.Name, e.Pattern)
}

func (e *DirectiveError) Error() string {
	if e.Err == nil {
		return e.Summary()
	}
	return e.Summary() + ": " + e.Err.Error()
}

func (e *DirectiveError) Unwrap() error {
	return e.Err
}
