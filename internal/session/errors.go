// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential blocks search and chat until a Gemini API key
	// is configured.
	ErrMissingCredential = errors.New("no Gemini API key configured")

	// ErrInvalidQuery reports an empty topic or a year outside the
	// allowed range.
	ErrInvalidQuery = errors.New("invalid search query")

	// ErrNoCorpus reports a chat or export attempt on an Idle session.
	ErrNoCorpus = errors.New("no corpus: run a search first")

	// ErrEmptyQuestion reports a blank chat question.
	ErrEmptyQuestion = errors.New("question is empty")
)

// OperationError is a failure inside the literature or model round trip.
// The session is left as it was before the operation started.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }

// User-facing notices.
const (
	MissingCredentialMessage = "Please configure your API Key in .env file to proceed."
	NoResultsMessage         = "No papers with abstracts found. Try a broader term."
	InvalidQueryMessage      = "Please enter a research topic and a year from 2000 to the present."
	NoCorpusMessage          = "Run a literature search before chatting or exporting."
	EmptyQuestionMessage     = "Please type a question about these papers."
)

// ErrorMessage converts an orchestrator error into the notice shown to
// the user.
func ErrorMessage(err error) string {
	var opErr *OperationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return MissingCredentialMessage
	case errors.Is(err, ErrInvalidQuery):
		return InvalidQueryMessage
	case errors.Is(err, ErrNoCorpus):
		return NoCorpusMessage
	case errors.Is(err, ErrEmptyQuestion):
		return EmptyQuestionMessage
	case errors.As(err, &opErr):
		return "An error occurred: " + opErr.Err.Error()
	default:
		return "An error occurred: " + err.Error()
	}
}
