package pipeline

import "fmt"

// Stage identifies which pipeline stage produced an error.
type Stage string

const (
	StageRetrieval    Stage = "retrieval"
	StageDraft        Stage = "draft"
	StageVerification Stage = "verification"
)

// StageError is a hard pipeline failure. Retrieval errors never become
// StageErrors: they degrade the request instead of aborting it, because a
// usable answer over an empty context beats no answer. A missing draft or a
// skipped verification is not usable, so those stages abort.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
