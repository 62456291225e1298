package types

import "fmt"

// ErrUnsupportedFormat indicates a document format the text extractor cannot
// decode.
type ErrUnsupportedFormat struct {
	Format string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported document format: %s", e.Format)
}

// ErrMissingField indicates the caller supplied an incomplete analysis record
// to the scorer or matcher.
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("analysis record is missing required field: %s", e.Field)
}

// ErrCollaboratorUnavailable indicates a supporting backend (linguistic
// analysis, LLM) failed for this request. The pipeline never retries; the
// error propagates and fails the whole call.
type ErrCollaboratorUnavailable struct {
	Name string
	Err  error
}

func (e *ErrCollaboratorUnavailable) Error() string {
	return fmt.Sprintf("collaborator %s unavailable: %v", e.Name, e.Err)
}

func (e *ErrCollaboratorUnavailable) Unwrap() error {
	return e.Err
}
