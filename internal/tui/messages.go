package tui

import "github.com/pdiddy/pubmed-rag/internal/session"

// SearchDoneMsg carries the result of a search run on a session copy.
// Session replaces the model's session only when Err is nil.
type SearchDoneMsg struct {
	Session *session.Session
	Outcome session.Outcome
	Err     error
}

// AnswerDoneMsg carries the result of a chat question run on a session
// copy.
type AnswerDoneMsg struct {
	Session *session.Session
	Err     error
}

// ExportDoneMsg reports a file written by an export key.
type ExportDoneMsg struct {
	Kind string
	Path string
	Err  error
}
