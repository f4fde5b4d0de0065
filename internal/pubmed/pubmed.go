// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed searches PubMed for a topic and assembles the abstracts
// of the matching records into a corpus for the summarization stage.
package pubmed

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// DefaultMaxResults caps the identifiers requested per search.
const DefaultMaxResults = 10

// Divider separates record blocks in a corpus.
var Divider = strings.Repeat("-", 20)

// Fetcher is the bibliographic database collaborator: an identifier
// search plus a per-identifier metadata fetch.
type Fetcher interface {
	PMIDsForQuery(ctx context.Context, term string, retmax int) ([]string, error)
	ArticleByPMID(ctx context.Context, pmid string) (types.Article, error)
}

// Corpus is the formatted text of every abstract-bearing record from one
// search, along with the records themselves.
type Corpus struct {
	Text    string
	Records []types.Article
}

// NewCorpus formats records into a corpus in the given order.
func NewCorpus(records []types.Article) Corpus {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(FormatRecord(r))
	}
	return Corpus{Text: b.String(), Records: records}
}

// FoundCount returns the number of records in the corpus.
func (c Corpus) FoundCount() int { return len(c.Records) }

// IsEmpty reports the empty-result condition.
func (c Corpus) IsEmpty() bool { return len(c.Records) == 0 }

// FormatRecord renders one record block followed by the divider.
func FormatRecord(a types.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TITLE: %s\n", a.Title)
	fmt.Fprintf(&b, "AUTHORS: %s\n", strings.Join(a.AuthorNames(), ", "))
	fmt.Fprintf(&b, "ABSTRACT: %s\n", a.Abstract)
	fmt.Fprintf(&b, "LINK: %s\n", a.URL())
	b.WriteString(Divider + "\n")
	return b.String()
}

// BuildTerm combines a topic with a publication-date filter meaning
// "published in minYear or later".
func BuildTerm(topic string, minYear int) string {
	return fmt.Sprintf("%s AND %d:3000[dp]", strings.TrimSpace(topic), minYear)
}

// Searcher runs a topic search against a Fetcher.
type Searcher struct {
	Fetcher    Fetcher
	MaxResults int
	Log        *zap.Logger
}

// Search requests at most MaxResults identifiers, fetches each record in
// order, and keeps only records with an abstract. Any fetch or parse error
// aborts the whole search and no partial corpus is returned. A corpus with
// no records is the empty-result condition, not an error.
func (s *Searcher) Search(ctx context.Context, q types.SearchQuery) (Corpus, error) {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	maxResults := s.MaxResults
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	term := BuildTerm(q.Topic, q.MinYear)
	pmids, err := s.Fetcher.PMIDsForQuery(ctx, term, maxResults)
	if err != nil {
		return Corpus{}, err
	}
	log.Debug("pubmed search", zap.String("term", term), zap.Int("pmids", len(pmids)))

	var records []types.Article
	for _, pmid := range pmids {
		a, err := s.Fetcher.ArticleByPMID(ctx, pmid)
		if err != nil {
			return Corpus{}, err
		}
		if !a.HasAbstract() {
			continue
		}
		if a.PMID == "" {
			a.PMID = pmid
		}
		records = append(records, a)
	}

	log.Info("pubmed corpus assembled",
		zap.String("topic", q.Topic),
		zap.Int("min_year", q.MinYear),
		zap.Int("fetched", len(pmids)),
		zap.Int("found", len(records)))
	return NewCorpus(records), nil
}
