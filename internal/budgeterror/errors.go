// Package budgeterror defines the typed errors reported at the edges of the
// budget tool: decoding budget records, loading documents and asking the AI
// collaborator for suggestions.
package budgeterror

import "fmt"

// ParseError reports a record that could not be turned into a budget line.
// Index is the zero-based position of the record in its source.
type ParseError struct {
	Source string
	Index  int
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: record %d: failed to parse %s='%s': %v",
		e.Source, e.Index, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidDraftError rejects a batch of suggested lines. Index is the
// position of the first invalid draft.
type InvalidDraftError struct {
	Index int
	Err   error
}

func (e *InvalidDraftError) Error() string {
	return fmt.Sprintf("suggested item %d is invalid: %v", e.Index, e.Err)
}

func (e *InvalidDraftError) Unwrap() error {
	return e.Err
}

// DocumentError reports a budget document that could not be read or written.
type DocumentError struct {
	Path      string
	Operation string
	Err       error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("budget document %s failed for '%s': %v", e.Operation, e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// SuggestionError reports a failed AI suggestion round. Stage is "request"
// for transport failures and "parse" for responses that did not validate.
type SuggestionError struct {
	Model string
	Stage string
	Err   error
}

func (e *SuggestionError) Error() string {
	return fmt.Sprintf("suggestion %s failed (model %s): %v", e.Stage, e.Model, e.Err)
}

func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// ExportError reports a failed export of the budget.
type ExportError struct {
	Format string
	Target string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s export to '%s' failed: %v", e.Format, e.Target, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
