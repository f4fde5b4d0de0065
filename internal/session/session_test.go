// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-rag/pkg/types"
)

func TestNewSessionIsIdle(t *testing.T) {
	s := New()
	assert.False(t, s.HasCorpus())
	assert.Empty(t, s.DisplayText())
	assert.NotEqual(t, New().ID, s.ID)
}

func TestCloneIsIndependent(t *testing.T) {
	q := types.SearchQuery{Topic: "t", MinYear: 2023}
	s := &Session{
		Query:      &q,
		Corpus:     twoRecords(),
		Summary:    "sum",
		Transcript: []types.ChatMessage{{Role: types.RoleUser, Content: "hi"}},
	}

	c := s.Clone()
	c.Query.Topic = "changed"
	c.Corpus.Records[0].Title = "changed"
	c.Transcript[0].Content = "changed"
	c.Transcript = append(c.Transcript, types.ChatMessage{Role: types.RoleAssistant, Content: "x"})

	assert.Equal(t, "t", s.Query.Topic)
	assert.Equal(t, "First", s.Corpus.Records[0].Title)
	assert.Equal(t, "hi", s.Transcript[0].Content)
	assert.Len(t, s.Transcript, 1)
}

func TestDisplayText(t *testing.T) {
	q := types.SearchQuery{Topic: "bone scaffolds", MinYear: 2021}
	s := &Session{
		Query:   &q,
		Corpus:  twoRecords(),
		Summary: "## Summary\nScaffolds work.\n",
		Transcript: []types.ChatMessage{
			{Role: types.RoleUser, Content: "Which material?"},
			{Role: types.RoleAssistant, Content: "Titanium."},
		},
	}

	want := "Topic: 'bone scaffolds' (2021-Present)\n\n" +
		"Summary\n\n## Summary\nScaffolds work.\n" +
		"\nChat with the data\n" +
		"\nYou: Which material?\n" +
		"\nAssistant: Titanium.\n"
	assert.Equal(t, want, s.DisplayText())
}

func TestWriteSnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, WriteSnapshot(New(), &buf), ErrNoCorpus)

	q := types.SearchQuery{Topic: "bone scaffolds", MinYear: 2021}
	s := New()
	s.Query = &q
	s.Corpus = twoRecords()
	s.Summary = "Consensus."
	s.Transcript = []types.ChatMessage{
		{Role: types.RoleUser, Content: "Q"},
		{Role: types.RoleAssistant, Content: "A"},
	}

	require.NoError(t, WriteSnapshot(s, &buf))

	var got Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, s.ID.String(), got.Session)
	assert.Equal(t, 2, got.Found)
	assert.Equal(t, "Consensus.", got.Summary)
	require.NotNil(t, got.Query)
	assert.Equal(t, q, *got.Query)
	require.Len(t, got.Records, 2)
	assert.Equal(t, "222", got.Records[1].PMID)
	assert.Equal(t, s.Transcript, got.Transcript)
	assert.False(t, got.ExportedAt.IsZero())
}
