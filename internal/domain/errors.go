package domain

import (
	"fmt"
	"strings"
)

// PartialError reports a multi-step mutation that failed after some steps
// already committed. Callers must surface it differently from a clean
// validation failure so an operator can reconcile the committed steps.
type PartialError struct {
	Completed []string
	Cause     error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("partial failure after [%s]: %v", strings.Join(e.Completed, ", "), e.Cause)
}

func (e *PartialError) Unwrap() error {
	return e.Cause
}
